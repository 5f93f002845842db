package generate

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/handiism/motogp-nospoiler/internal/config"
	"github.com/handiism/motogp-nospoiler/internal/http"
	ioutils "github.com/handiism/motogp-nospoiler/internal/io"
	"github.com/handiism/motogp-nospoiler/internal/model"
	"github.com/handiism/motogp-nospoiler/internal/motogp"
	"github.com/handiism/motogp-nospoiler/internal/page"
	"github.com/handiism/motogp-nospoiler/internal/render"
	"golang.org/x/sync/errgroup"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a generation progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel

	// Year and Event identify the unit the message is about. Both are empty
	// for run-wide messages.
	Year  string
	Event string
}

// Source provides season data.
type Source interface {
	FetchIndex(ctx context.Context) (model.YearIndex, error)
	FetchYear(ctx context.Context, id string) (*model.YearData, error)
}

// Renderer turns a view model into markup.
type Renderer interface {
	Render(vm page.ViewModel) (string, error)
}

// Output stores generated pages. Paths are relative to the output root.
type Output interface {
	WriteFile(ctx context.Context, path string, data []byte) error
	CopyFile(ctx context.Context, src, dst string) error
}

// Locker is implemented by outputs that can be locked for the duration of
// a run.
type Locker interface {
	Lock() (unlock func() error, err error)
}

var (
	// ErrUnsafeName is returned for season ids and event short names that
	// cannot be used as a file name.
	ErrUnsafeName = errors.New("unsafe file name")

	// ErrDuplicateEvent is returned for an event whose short name is already
	// used by an earlier event of the same season.
	ErrDuplicateEvent = errors.New("duplicate event short name")

	errNotGenerated = errors.New("season page not generated in this run")
)

// Options configures concurrency. Zero MaxConcurrentYears runs every year at
// once; MaxConcurrentEvents below one is treated as one.
type Options struct {
	MaxConcurrentYears  int
	MaxConcurrentEvents int
}

// Generator fetches every season and writes the static site.
type Generator struct {
	source   Source
	renderer Renderer
	output   Output
	opts     Options

	// Now returns the current time; the landing page follows its year.
	Now func() time.Time

	yearsTotal   int32
	yearsDone    int32
	pagesWritten int32
	bytesWritten int64

	onProgress func(ProgressEvent)
	mu         sync.Mutex
}

// New creates a Generator wired to the MotoGP API, the HTML renderer and an
// output tree rooted at settings.OutputDir.
func New(settings *config.Settings, logger *log.Logger, onProgress func(ProgressEvent)) (*Generator, error) {
	renderer, err := render.New(settings.SiteBaseURL)
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	httpClient := http.NewClient(settings.UserAgent, settings.RequestTimeout())
	source := motogp.NewClient(httpClient, settings.BaseURL, settings.IndexID, logger)
	output := ioutils.NewOutputTree(settings.OutputDir)

	return NewWith(source, renderer, output, Options{
		MaxConcurrentYears:  settings.MaxConcurrentYears,
		MaxConcurrentEvents: settings.MaxConcurrentEvents,
	}, onProgress), nil
}

// NewWith creates a Generator from explicit collaborators.
func NewWith(source Source, renderer Renderer, output Output, opts Options, onProgress func(ProgressEvent)) *Generator {
	if opts.MaxConcurrentEvents < 1 {
		opts.MaxConcurrentEvents = 1
	}
	return &Generator{
		source:     source,
		renderer:   renderer,
		output:     output,
		opts:       opts,
		Now:        time.Now,
		onProgress: onProgress,
	}
}

// Run generates the whole site.
//
// An index failure aborts the run before anything is written. A failing
// year is recorded in the report and does not stop the others. Once every
// year has finished the landing page is copied from the current calendar
// year, or the previous one, provided this run wrote that page; if neither
// qualifies Run returns a
// *LandingPageError. The report is returned in every case.
func (g *Generator) Run(ctx context.Context) (*Report, error) {
	report := &Report{
		RunID:   uuid.NewString(),
		Started: g.Now(),
	}
	defer func() { report.Finished = g.Now() }()

	if locker, ok := g.output.(Locker); ok {
		unlock, err := locker.Lock()
		if err != nil {
			g.progress(ProgressEvent{Message: fmt.Sprintf("Cannot lock output: %v", err), Level: LevelError})
			return report, err
		}
		defer func() {
			if err := unlock(); err != nil {
				g.progress(ProgressEvent{Message: fmt.Sprintf("Error releasing output lock: %v", err), Level: LevelWarning})
			}
		}()
	}

	g.progress(ProgressEvent{Message: "Fetching season index", Level: LevelInfo})
	index, err := g.source.FetchIndex(ctx)
	if err != nil {
		g.progress(ProgressEvent{Message: fmt.Sprintf("Error fetching index: %v", err), Level: LevelError})
		return report, err
	}
	report.Index = index
	atomic.StoreInt32(&g.yearsTotal, int32(len(index)))
	g.progress(ProgressEvent{Message: fmt.Sprintf("Found %d seasons", len(index)), Level: LevelInfo})

	results := make([]YearResult, len(index))

	var grp errgroup.Group
	if limit := g.opts.MaxConcurrentYears; limit > 0 {
		grp.SetLimit(limit)
	}
	for i, year := range index {
		grp.Go(func() error {
			results[i] = g.generateYear(ctx, index, year)
			atomic.AddInt32(&g.yearsDone, 1)
			return nil
		})
	}
	_ = grp.Wait()
	report.Years = results

	landing, err := g.buildLanding(ctx, report)
	report.Landing = landing
	if err != nil {
		g.progress(ProgressEvent{Message: fmt.Sprintf("Error building landing page: %v", err), Level: LevelError})
		return report, err
	}

	if failed := report.Failed(); len(failed) > 0 {
		g.progress(ProgressEvent{Message: fmt.Sprintf("Finished, %d of %d seasons failed", len(failed), len(index)), Level: LevelWarning})
	} else {
		g.progress(ProgressEvent{Message: fmt.Sprintf("Generated %d seasons", len(index)), Level: LevelSuccess})
	}
	return report, nil
}

// GetProgress returns current generation progress. It is safe to call while
// Run is in progress.
func (g *Generator) GetProgress() (yearsDone, yearsTotal, pages int32, bytes int64) {
	return atomic.LoadInt32(&g.yearsDone), atomic.LoadInt32(&g.yearsTotal),
		atomic.LoadInt32(&g.pagesWritten), atomic.LoadInt64(&g.bytesWritten)
}

func (g *Generator) generateYear(ctx context.Context, index model.YearIndex, year string) YearResult {
	result := YearResult{Year: year}

	if err := checkName(year); err != nil {
		result.Err = &WriteError{Path: page.YearPath(year), Err: err}
		g.progress(ProgressEvent{Message: fmt.Sprintf("Skipping season %q: %v", year, err), Level: LevelError, Year: year})
		return result
	}

	g.progress(ProgressEvent{Message: fmt.Sprintf("Fetching season %s", year), Level: LevelVerbose, Year: year})
	data, err := g.source.FetchYear(ctx, year)
	if err != nil {
		result.Err = err
		g.progress(ProgressEvent{Message: fmt.Sprintf("Error fetching season %s: %v", year, err), Level: LevelError, Year: year})
		return result
	}
	if !index.Contains(data.Title) {
		g.progress(ProgressEvent{Message: fmt.Sprintf("Season %s answered as %q, which is not in the index", year, data.Title), Level: LevelWarning, Year: year})
	}
	result.Events = len(data.Events)

	n, err := g.writePage(ctx, page.YearPath(year), page.BuildYearPage(index, data))
	if err != nil {
		result.Err = err
		g.progress(ProgressEvent{Message: fmt.Sprintf("Error writing season %s: %v", year, err), Level: LevelError, Year: year})
		return result
	}
	result.Pages++
	result.Bytes += n

	var (
		errsMu sync.Mutex
		errs   []error
	)
	fail := func(event *model.Event, err error) {
		g.progress(ProgressEvent{Message: fmt.Sprintf("Error writing %s: %v", event.Title, err), Level: LevelError, Year: year, Event: event.ShortName})
		errsMu.Lock()
		errs = append(errs, err)
		errsMu.Unlock()
	}

	// Every accepted event owns a distinct file below <year>/.
	seen := make(map[string]bool, len(data.Events))
	events := make([]*model.Event, 0, len(data.Events))
	for _, event := range data.Events {
		path := page.EventPath(year, event.ShortName)
		if err := checkName(event.ShortName); err != nil {
			fail(event, &WriteError{Path: path, Err: err})
			continue
		}
		if seen[event.ShortName] {
			fail(event, &WriteError{Path: path, Err: ErrDuplicateEvent})
			continue
		}
		seen[event.ShortName] = true
		events = append(events, event)
	}

	// A failing event does not stop its siblings.
	var (
		grp   errgroup.Group
		pages int32
		bytes int64
	)
	grp.SetLimit(g.opts.MaxConcurrentEvents)
	for _, event := range events {
		grp.Go(func() error {
			path := page.EventPath(year, event.ShortName)
			g.progress(ProgressEvent{Message: fmt.Sprintf("Generating %s", event.Title), Level: LevelVerbose, Year: year, Event: event.ShortName})

			n, err := g.writePage(ctx, path, page.BuildEventPage(index, data, event))
			if err != nil {
				fail(event, err)
				return nil
			}
			atomic.AddInt32(&pages, 1)
			atomic.AddInt64(&bytes, n)
			g.progress(ProgressEvent{Message: fmt.Sprintf("Wrote %s", path), Level: LevelVerbose, Year: year, Event: event.ShortName})
			return nil
		})
	}
	_ = grp.Wait()

	result.Pages += int(pages)
	result.Bytes += bytes

	if len(errs) > 0 {
		result.Err = fmt.Errorf("season %s: %d of %d events failed: %w", year, len(errs), len(data.Events), errors.Join(errs...))
		g.progress(ProgressEvent{Message: fmt.Sprintf("Finished season %s, some events failed", year), Level: LevelWarning, Year: year})
		return result
	}

	g.progress(ProgressEvent{Message: fmt.Sprintf("Generated season %s (%d events)", year, len(data.Events)), Level: LevelSuccess, Year: year})
	return result
}

// checkName rejects names that would not stay a single path segment.
func checkName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%w: empty", ErrUnsafeName)
	case strings.ContainsAny(name, `/\`), strings.Contains(name, ".."):
		return fmt.Errorf("%w: %q", ErrUnsafeName, name)
	}
	return nil
}

func (g *Generator) writePage(ctx context.Context, path string, vm page.ViewModel) (int64, error) {
	markup, err := g.renderer.Render(vm)
	if err != nil {
		return 0, &RenderError{Path: path, Err: err}
	}

	data := []byte(markup)
	if err := g.output.WriteFile(ctx, path, data); err != nil {
		return 0, &WriteError{Path: path, Err: err}
	}

	atomic.AddInt32(&g.pagesWritten, 1)
	atomic.AddInt64(&g.bytesWritten, int64(len(data)))
	return int64(len(data)), nil
}

// buildLanding copies the current calendar year's page to the landing page,
// falling back to the previous year. Only season pages written by this run
// qualify, so a page left over from an earlier run is never used.
func (g *Generator) buildLanding(ctx context.Context, report *Report) (LandingResult, error) {
	current := g.Now().Year()
	candidates := []string{strconv.Itoa(current), strconv.Itoa(current - 1)}

	var lastErr error
	for i, year := range candidates {
		path := page.YearPath(year)

		if result, ok := report.Year(year); !ok || result.Pages == 0 {
			if ok {
				g.progress(ProgressEvent{Message: fmt.Sprintf("Season %s failed, not using it for the landing page", year), Level: LevelWarning, Year: year})
			}
			lastErr = fmt.Errorf("%s: %w", path, errNotGenerated)
			continue
		}

		err := g.output.CopyFile(ctx, path, page.IndexPath)
		if err == nil {
			g.progress(ProgressEvent{Message: fmt.Sprintf("Landing page copied from %s", path), Level: LevelInfo, Year: year})
			return LandingResult{Year: year, Fallback: i > 0}, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return LandingResult{}, &WriteError{Path: page.IndexPath, Err: err}
		}
		lastErr = err
	}

	paths := make([]string, len(candidates))
	for i, year := range candidates {
		paths[i] = page.YearPath(year)
	}
	return LandingResult{}, &LandingPageError{Candidates: paths, Err: lastErr}
}

func (g *Generator) progress(event ProgressEvent) {
	if g.onProgress == nil {
		return
	}
	// Callbacks never run concurrently.
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onProgress(event)
}
