// Package generate provides the orchestration logic that turns the MotoGP
// season feed into a static site.
//
// # Generator
//
// The Generator coordinates the whole run:
//
//  1. Fetch the season index
//  2. Fetch every season concurrently
//  3. Write one page per season and one per event
//  4. Copy the current season's page to index.html
//
// # Basic Usage
//
//	gen, err := generate.New(settings, logger, func(event generate.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	report, err := gen.Run(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if len(report.Failed()) > 0 {
//	    fmt.Println(report.Err())
//	}
//
// # Concurrency
//
// The Generator uses configurable concurrency limits:
//   - MaxConcurrentYears: How many seasons to process in parallel (0 = all)
//   - MaxConcurrentEvents: How many event pages per season to write in parallel
//
// # Errors
//
// Index failures abort the run. A failing season is recorded in its
// YearResult and the other seasons carry on. WriteError, RenderError and
// LandingPageError can be inspected with errors.As.
package generate
