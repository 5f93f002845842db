package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/handiism/motogp-nospoiler/internal/config"
	"github.com/handiism/motogp-nospoiler/internal/generate"
	"github.com/handiism/motogp-nospoiler/internal/http"
	"github.com/handiism/motogp-nospoiler/internal/motogp"
	"github.com/handiism/motogp-nospoiler/internal/report"
)

type generateOptions struct {
	output  string
	baseURL string
	verbose bool
	strict  bool
	dryRun  bool
}

func newGenerateCommand(configFlag *string) *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Fetch every season and write the site",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(*configFlag, func(s *config.Settings) {
				if opts.output != "" {
					s.OutputDir = opts.output
				}
				if opts.baseURL != "" {
					s.BaseURL = opts.baseURL
				}
				if opts.verbose {
					s.LogLevel = "debug"
				}
			})
			if err != nil {
				return err
			}

			logger := newLogger(cmd.ErrOrStderr(), settings.LogLevel)
			if opts.dryRun {
				return runDryRun(cmd, settings, logger)
			}
			return runGenerate(cmd, settings, logger, opts.strict)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output directory (overrides config)")
	cmd.Flags().StringVar(&opts.baseURL, "base-url", "", "API base URL (overrides config)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Show verbose output")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Exit with an error when any season fails")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Fetch the season index and exit without writing")

	return cmd
}

func runGenerate(cmd *cobra.Command, settings *config.Settings, logger *log.Logger, strict bool) error {
	gen, err := generate.New(settings, logger, progressLogger(logger))
	if err != nil {
		return err
	}

	logger.Info("Generating site", "output", settings.OutputDir, "api", settings.BaseURL)

	rep, err := gen.Run(cmd.Context())
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)
	if rep != nil && len(rep.Years) > 0 {
		fmt.Fprintln(out, report.String(rep))
	}
	if err != nil {
		return err
	}

	if failed := rep.Failed(); len(failed) > 0 {
		if strict {
			return fmt.Errorf("%d of %d seasons failed: %w", len(failed), len(rep.Years), rep.Err())
		}
		fmt.Fprintln(out, styled(warnStyle, fmt.Sprintf("Done with %d failed season(s).", len(failed)), colorize))
		return nil
	}

	fmt.Fprintln(out, styled(doneStyle, "Done!", colorize))
	return nil
}

func runDryRun(cmd *cobra.Command, settings *config.Settings, logger *log.Logger) error {
	client := motogp.NewClient(
		http.NewClient(settings.UserAgent, settings.RequestTimeout()),
		settings.BaseURL,
		settings.IndexID,
		logger,
	)

	years, err := client.FetchIndex(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d seasons: %s\n", len(years), strings.Join(years, ", "))
	fmt.Fprintln(out, "[Dry run - nothing written]")
	return nil
}

// newLogger builds the process logger. Unknown levels fall back to info.
func newLogger(w io.Writer, level string) *log.Logger {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		lvl = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          "nospoiler",
	})
}

// progressLogger maps generator progress onto logger levels.
func progressLogger(logger *log.Logger) func(generate.ProgressEvent) {
	return func(event generate.ProgressEvent) {
		var keyvals []interface{}
		if event.Year != "" {
			keyvals = append(keyvals, "year", event.Year)
		}
		if event.Event != "" {
			keyvals = append(keyvals, "event", event.Event)
		}

		switch event.Level {
		case generate.LevelVerbose:
			logger.Debug(event.Message, keyvals...)
		case generate.LevelWarning:
			logger.Warn(event.Message, keyvals...)
		case generate.LevelError:
			logger.Error(event.Message, keyvals...)
		default:
			logger.Info(event.Message, keyvals...)
		}
	}
}
