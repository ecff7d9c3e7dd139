// Package commands implements CLI command handlers for descstat.
package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/descstat/internal/config"
	"github.com/Sumatoshi-tech/descstat/internal/ingest"
	"github.com/Sumatoshi-tech/descstat/internal/report"
	"github.com/Sumatoshi-tech/descstat/pkg/stat"
)

// invalidInputDiagnostic is the exact stderr line emitted when the input
// stream holds a token that is not a number.
const invalidInputDiagnostic = "Invalid input data"

// ErrInvalidInput mirrors the ingest sentinel so main can suppress its
// generic error line after the diagnostic has been printed.
var ErrInvalidInput = ingest.ErrInvalidInput

// RunCommand holds configuration and dependencies for the run command.
type RunCommand struct {
	format      string
	percentiles []float64
	configPath  string
	verbose     bool
	noColor     bool
}

// NewRootCommand creates the descstat root command. Bare invocation reads
// numbers from stdin and prints the report; `descstat run` is the explicit
// spelling of the same thing.
func NewRootCommand() *cobra.Command {
	root := newStatsCommand("descstat", "Read numbers from stdin and report descriptive statistics")
	root.Long = `descstat ingests a whitespace-separated stream of numbers from stdin and
prints min, max, mean, population standard deviation and nearest-rank
percentiles once the stream ends.`
	root.SilenceUsage = true
	root.SilenceErrors = true

	root.AddCommand(NewRunCommand())

	return root
}

// NewRunCommand creates the run command.
func NewRunCommand() *cobra.Command {
	return newStatsCommand("run", "Read numbers from stdin and report descriptive statistics")
}

func newStatsCommand(use, short string) *cobra.Command {
	rc := &RunCommand{}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.format, "format", config.DefaultFormat, "Output format: text, table, json")
	cmd.Flags().Float64SliceVar(&rc.percentiles, "percentiles", nil,
		"Percentile ranks to report in addition to min/max/mean/std (default 90,95)")
	cmd.Flags().StringVar(&rc.configPath, "config", "", "Config file path (default: .descstat.yaml in CWD or $HOME)")
	cmd.Flags().BoolVarP(&rc.verbose, "verbose", "v", false, "Log run details to stderr")
	cmd.Flags().BoolVar(&rc.noColor, "no-color", false, "Disable colored table output")

	return cmd
}

func (rc *RunCommand) run(cmd *cobra.Command, _ []string) error {
	logger := newLogger(cmd, rc.verbose)

	cfg, err := config.Load(rc.configPath)
	if err != nil {
		return err
	}

	format, ranks := rc.resolveOptions(cmd, cfg)

	if rc.noColor {
		color.NoColor = true //nolint:reassign // intentional override of library global
	}

	logger.Debug("starting run", "format", format, "percentiles", ranks)

	set := stat.WithPercentiles(ranks...)

	start := time.Now()

	count, err := ingest.Consume(cmd.InOrStdin(), set)
	if err != nil {
		if errors.Is(err, ingest.ErrInvalidInput) {
			fmt.Fprintln(cmd.ErrOrStderr(), invalidInputDiagnostic)
		}

		return err
	}

	logger.Debug("ingest complete",
		"values", humanize.Comma(int64(count)),
		"elapsed", time.Since(start).Round(time.Microsecond))

	return report.Render(cmd.OutOrStdout(), set, format)
}

// resolveOptions merges config values with flags; an explicitly set flag
// wins over the config file and environment.
func (rc *RunCommand) resolveOptions(cmd *cobra.Command, cfg *config.Config) (string, []float64) {
	format := cfg.Format
	if cmd.Flags().Changed("format") {
		format = rc.format
	}

	ranks := cfg.Percentiles
	if cmd.Flags().Changed("percentiles") {
		ranks = rc.percentiles
	}

	return format, ranks
}

// newLogger builds the run logger. Without --verbose the level is Warn, so
// contract output on stdout and the single diagnostic line on stderr stay
// untouched.
func newLogger(cmd *cobra.Command, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})

	return slog.New(handler)
}
