// Package page builds the view models the renderer turns into HTML.
//
// Builders are pure: they copy what they need from the season data and
// never touch the network or the file system.
package page

import (
	"strings"

	"github.com/handiism/motogp-nospoiler/internal/model"
)

// SiteName is the title suffix of every page and the title of pages
// without breadcrumbs.
const SiteName = "MotoGP Spoiler-Free List"

// IndexPath is the output-relative path of the landing page.
const IndexPath = "index.html"

const titleSeparator = " > "

// Kind selects the template a view model is rendered with.
type Kind int

const (
	// KindYear is a season page listing its events.
	KindYear Kind = iota

	// KindEvent is a Grand Prix page listing its videos.
	KindEvent
)

// String returns the template name for the kind.
func (k Kind) String() string {
	switch k {
	case KindYear:
		return "year"
	case KindEvent:
		return "event"
	default:
		return "unknown"
	}
}

// ViewModel is everything a template needs to render one page.
type ViewModel struct {
	Kind Kind

	// Breadcrumbs lead from the season down to the current page, which is
	// always the last crumb.
	Breadcrumbs []model.Link

	// Years lists every known season in index order for cross-year navigation.
	Years []string

	// Year is set on both page kinds; Event only on event pages.
	Year  *model.YearData
	Event *model.Event
}

// Title joins the breadcrumb texts with " > " and appends SiteName.
//
// Example:
//
//	"2020 > Qatar GP > MotoGP Spoiler-Free List"
func (vm ViewModel) Title() string {
	if len(vm.Breadcrumbs) == 0 {
		return SiteName
	}

	parts := make([]string, 0, len(vm.Breadcrumbs)+1)
	for _, crumb := range vm.Breadcrumbs {
		parts = append(parts, crumb.Text)
	}
	parts = append(parts, SiteName)
	return strings.Join(parts, titleSeparator)
}

// Current returns the last breadcrumb, the page itself. It is the zero
// Link when there are no breadcrumbs.
func (vm ViewModel) Current() model.Link {
	if len(vm.Breadcrumbs) == 0 {
		return model.Link{}
	}
	return vm.Breadcrumbs[len(vm.Breadcrumbs)-1]
}

// Ancestors returns every breadcrumb above the current page.
func (vm ViewModel) Ancestors() []model.Link {
	if len(vm.Breadcrumbs) == 0 {
		return nil
	}
	return vm.Breadcrumbs[:len(vm.Breadcrumbs)-1]
}

// BuildYearPage returns the view model of a season page.
func BuildYearPage(allYears model.YearIndex, year *model.YearData) ViewModel {
	return ViewModel{
		Kind:        KindYear,
		Breadcrumbs: []model.Link{yearCrumb(year.Title)},
		Years:       copyYears(allYears),
		Year:        year,
	}
}

// BuildEventPage returns the view model of a Grand Prix page.
func BuildEventPage(allYears model.YearIndex, year *model.YearData, event *model.Event) ViewModel {
	return ViewModel{
		Kind: KindEvent,
		Breadcrumbs: []model.Link{
			yearCrumb(year.Title),
			{Text: event.Title, Href: EventPath(year.Title, event.ShortName)},
		},
		Years: copyYears(allYears),
		Year:  year,
		Event: event,
	}
}

// YearPath returns the output-relative path of a season page.
func YearPath(year string) string {
	return year + ".html"
}

// EventPath returns the output-relative path of an event page.
func EventPath(year, shortName string) string {
	return year + "/" + shortName + ".html"
}

func yearCrumb(year string) model.Link {
	return model.Link{Text: year, Href: YearPath(year)}
}

func copyYears(years model.YearIndex) []string {
	out := make([]string, len(years))
	copy(out, years)
	return out
}
