package generate

import (
	"fmt"
	"strings"
)

// WriteError is returned when a page could not be written to the output tree.
type WriteError struct {
	// Path is relative to the output root.
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// RenderError is returned when a view model could not be turned into markup.
type RenderError struct {
	Path string
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Path, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// LandingPageError is returned when none of the candidate year pages exist
// once every year has been processed.
type LandingPageError struct {
	Candidates []string
	Err        error
}

func (e *LandingPageError) Error() string {
	return fmt.Sprintf("landing page: none of %s exist: %v", strings.Join(e.Candidates, ", "), e.Err)
}

func (e *LandingPageError) Unwrap() error { return e.Err }
