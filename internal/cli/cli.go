package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/hindsight/internal/config"
	"github.com/pfrederiksen/hindsight/internal/game"
	"github.com/pfrederiksen/hindsight/internal/logger"
	"github.com/pfrederiksen/hindsight/internal/parser"
	"github.com/pfrederiksen/hindsight/internal/pdftext"
)

const (
	ExitSuccess = 0
	ExitError   = 1
	ExitNoText  = 2
	ExitNoRows  = 3
)

var (
	flagVerbose bool
	flagConfig  string
)

// errReported marks failures whose message was already printed, so Execute
// exits without printing a second one.
var errReported = errors.New("reported")

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hindsight",
		Short: "Rebuild and second-guess a season from its schedule PDF",
		Long: `Rebuild a finished season from its schedule PDF and ask what almost was.
Extract schedule rows to CSV, clean them, and measure how many losses would
have flipped with a few more goals scored or a few fewer allowed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.SetVerbose(flagVerbose)
		},
	}

	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default ~/.hindsight/config.json)")

	cmd.AddCommand(newExtractCmd())
	cmd.AddCommand(newAnalyzeCmd())
	cmd.AddCommand(newGamesCmd())

	return cmd
}

// Execute runs the CLI and maps sentinel errors to exit codes
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		switch {
		case errors.Is(err, pdftext.ErrNoText):
			fmt.Fprintln(os.Stderr, "No text extracted from PDF. Try --force-ocr.")
			os.Exit(ExitNoText)
		case errors.Is(err, parser.ErrNoRows):
			fmt.Fprintln(os.Stderr, "Parsed 0 schedule rows. Try adjusting --pages or use --force-ocr.")
			os.Exit(ExitNoRows)
		case errors.Is(err, errReported):
			os.Exit(ExitError)
		default:
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(ExitError)
		}
	}
}

// configPath resolves the config file location: --config flag, then the
// HINDSIGHT_CONFIG environment variable, then the default location.
func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	if env := os.Getenv("HINDSIGHT_CONFIG"); env != "" {
		return env
	}
	return "~/.hindsight/config.json"
}

func loadConfig() (*config.Config, error) {
	return config.Load(configPath())
}

// firstNonEmpty returns the first non-empty value, so flags can win over
// config file entries.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// seasonWindow parses season bounds. Empty strings stay as zero times,
// meaning that side of the window is open.
func seasonWindow(start, end string) (time.Time, time.Time, error) {
	var s, e time.Time

	if start != "" {
		t, err := time.Parse("2006-01-02", start)
		if err != nil {
			return s, e, fmt.Errorf("invalid --season-start %q (want YYYY-MM-DD)", start)
		}
		s = t
	}
	if end != "" {
		t, err := time.Parse("2006-01-02", end)
		if err != nil {
			return s, e, fmt.Errorf("invalid --season-end %q (want YYYY-MM-DD)", end)
		}
		e = t
	}

	return s, e, nil
}

// statsFields flattens cleaning drop counters for a debug log line.
func statsFields(stats game.CleanStats) logger.Fields {
	return logger.Fields{
		"kept":          stats.Kept,
		"bad_date":      stats.BadDate,
		"out_of_window": stats.OutOfWindow,
		"bad_result":    stats.BadResult,
		"bad_goals":     stats.BadGoals,
		"bad_opponent":  stats.BadOpponent,
		"duplicate":     stats.Duplicate,
	}
}
