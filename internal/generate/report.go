package generate

import (
	"errors"
	"time"

	"github.com/handiism/motogp-nospoiler/internal/model"
)

// YearResult is the outcome of one year unit.
type YearResult struct {
	Year string

	// Events is the number of events in the fetched season, zero when the
	// fetch failed.
	Events int

	// Pages and Bytes count what was actually written, including pages
	// written before a failure.
	Pages int
	Bytes int64

	Err error
}

// OK reports whether every page of the year was written.
func (r YearResult) OK() bool { return r.Err == nil }

// LandingResult describes the landing page.
type LandingResult struct {
	// Year is the season the landing page was copied from.
	Year string

	// Fallback is set when the current calendar year had no page.
	Fallback bool
}

// Report summarises a generator run.
type Report struct {
	RunID string
	Index model.YearIndex

	// Years holds one result per index entry, in index order.
	Years   []YearResult
	Landing LandingResult

	Started  time.Time
	Finished time.Time
}

// Year returns the result for a season id. Report.Index.Contains(id) holds
// whenever ok is true.
func (r *Report) Year(id string) (YearResult, bool) {
	if !r.Index.Contains(id) {
		return YearResult{}, false
	}
	for _, y := range r.Years {
		if y.Year == id {
			return y, true
		}
	}
	return YearResult{}, false
}

// Failed returns the results of years that did not complete.
func (r *Report) Failed() []YearResult {
	var failed []YearResult
	for _, y := range r.Years {
		if !y.OK() {
			failed = append(failed, y)
		}
	}
	return failed
}

// Err joins the per-year errors. It returns nil when every year succeeded.
func (r *Report) Err() error {
	var errs []error
	for _, y := range r.Years {
		if y.Err != nil {
			errs = append(errs, y.Err)
		}
	}
	return errors.Join(errs...)
}

// Pages returns the total number of pages written, landing page excluded.
func (r *Report) Pages() int {
	n := 0
	for _, y := range r.Years {
		n += y.Pages
	}
	return n
}

// Bytes returns the total number of bytes written, landing page excluded.
func (r *Report) Bytes() int64 {
	var n int64
	for _, y := range r.Years {
		n += y.Bytes
	}
	return n
}

// Duration returns how long the run took.
func (r *Report) Duration() time.Duration {
	if r.Finished.IsZero() {
		return 0
	}
	return r.Finished.Sub(r.Started)
}
