package page

import (
	"testing"

	"github.com/handiism/motogp-nospoiler/internal/model"
)

func TestBuildEventPage(t *testing.T) {
	years := model.YearIndex{"2021", "2020"}
	year := &model.YearData{Title: "2020"}
	event := &model.Event{ShortName: "qat", Title: "Qatar GP"}

	vm := BuildEventPage(years, year, event)

	want := []model.Link{
		{Text: "2020", Href: "2020.html"},
		{Text: "Qatar GP", Href: "2020/qat.html"},
	}
	if len(vm.Breadcrumbs) != len(want) {
		t.Fatalf("got %d breadcrumbs, want %d", len(vm.Breadcrumbs), len(want))
	}
	for i := range want {
		if vm.Breadcrumbs[i] != want[i] {
			t.Errorf("Breadcrumbs[%d] = %+v, want %+v", i, vm.Breadcrumbs[i], want[i])
		}
	}

	if got := vm.Title(); got != "2020 > Qatar GP > MotoGP Spoiler-Free List" {
		t.Errorf("Title() = %q", got)
	}
	if ancestors := vm.Ancestors(); len(ancestors) != 1 || ancestors[0] != want[0] {
		t.Errorf("Ancestors() = %+v", ancestors)
	}
	if vm.Current() != want[1] {
		t.Errorf("Current() = %+v", vm.Current())
	}
	if vm.Kind != KindEvent || vm.Event != event || vm.Year != year {
		t.Error("event page should carry its kind, season and event")
	}
}

func TestBuildYearPage(t *testing.T) {
	years := model.YearIndex{"2021", "2020"}
	year := &model.YearData{Title: "2021"}

	vm := BuildYearPage(years, year)

	if len(vm.Breadcrumbs) != 1 || vm.Breadcrumbs[0] != (model.Link{Text: "2021", Href: "2021.html"}) {
		t.Errorf("Breadcrumbs = %+v", vm.Breadcrumbs)
	}
	if got := vm.Title(); got != "2021 > MotoGP Spoiler-Free List" {
		t.Errorf("Title() = %q", got)
	}
	if current := vm.Current(); current.Href != "2021.html" {
		t.Errorf("Current() = %+v", current)
	}
	if len(vm.Ancestors()) != 0 {
		t.Errorf("Ancestors() = %+v, want none", vm.Ancestors())
	}
	if vm.Event != nil {
		t.Error("year page should not carry an event")
	}
}

func TestViewModel_YearsAreCopied(t *testing.T) {
	years := model.YearIndex{"2021", "2020"}
	vm := BuildYearPage(years, &model.YearData{Title: "2020"})

	years[0] = "1999"
	if vm.Years[0] != "2021" {
		t.Errorf("Years aliased the index: %v", vm.Years)
	}
}

func TestViewModel_TitleWithoutBreadcrumbs(t *testing.T) {
	var vm ViewModel
	if got := vm.Title(); got != SiteName {
		t.Errorf("Title() = %q, want %q", got, SiteName)
	}
	if vm.Current() != (model.Link{}) || vm.Ancestors() != nil {
		t.Errorf("Current() = %+v, Ancestors() = %+v", vm.Current(), vm.Ancestors())
	}
}

func TestPaths(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"year", YearPath("2020"), "2020.html"},
		{"event", EventPath("2020", "qat"), "2020/qat.html"},
		{"index", IndexPath, "index.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}
