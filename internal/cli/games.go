package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/hindsight/internal/calendar"
	"github.com/pfrederiksen/hindsight/internal/filter"
	"github.com/pfrederiksen/hindsight/internal/game"
	"github.com/pfrederiksen/hindsight/internal/logger"
	"github.com/pfrederiksen/hindsight/internal/storage"
)

type gamesOpts struct {
	in        string
	outDir    string
	opponents []string
	venues    []string
	results   []string
	dateRange string
	from      string
	to        string
	weekends  bool
	sortBy    string
	format    string
	icsPath   string
}

func newGamesCmd() *cobra.Command {
	opts := gamesOpts{}

	cmd := &cobra.Command{
		Use:   "games",
		Short: "List, filter, and export games from an extracted CSV",
		Long: `List games from an extracted CSV with optional filters.
Reads games.csv when present, falling back to games_clean.csv. Output is a
text table by default; --format json emits a machine-readable listing and
--ics writes the matched games as an importable calendar file instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGames(opts)
		},
	}

	cmd.Flags().StringVar(&opts.in, "in", "", "Input CSV (default <outdir>/games.csv, else <outdir>/games_clean.csv)")
	cmd.Flags().StringVar(&opts.outDir, "outdir", "", "Directory holding the CSVs (default from config, else current directory)")
	cmd.Flags().StringArrayVar(&opts.opponents, "opponent", nil, "Keep games whose opponent contains this text (repeatable)")
	cmd.Flags().StringArrayVar(&opts.venues, "venue", nil, "Keep games at this venue, e.g. Home or Away (repeatable)")
	cmd.Flags().StringArrayVar(&opts.results, "result", nil, "Keep games with this result, e.g. W, L, or T (repeatable)")
	cmd.Flags().StringVar(&opts.dateRange, "range", "", "Date range like \"Oct 1 - Nov 15\"")
	cmd.Flags().StringVar(&opts.from, "from", "", "Keep games on or after this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.to, "to", "", "Keep games on or before this date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&opts.weekends, "weekends", false, "Keep only Saturday and Sunday games")
	cmd.Flags().StringVar(&opts.sortBy, "sort", "date", "Sort order: date, opponent, or margin")
	cmd.Flags().StringVar(&opts.format, "format", "text", "Output format: text or json")
	cmd.Flags().StringVar(&opts.icsPath, "ics", "", "Write the matched games as an iCalendar file to this path")

	return cmd
}

func runGames(opts gamesOpts) error {
	start := time.Now()

	order := SortOrder(opts.sortBy)
	switch order {
	case SortByDate, SortByOpponent, SortByMargin:
	default:
		return fmt.Errorf("unknown --sort %q (want date, opponent, or margin)", opts.sortBy)
	}
	format := OutputFormat(opts.format)
	switch format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("unknown --format %q (want text or json)", opts.format)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	outDir := firstNonEmpty(opts.outDir, cfg.OutDir)

	input := opts.in
	if input == "" {
		input = filepath.Join(outDir, "games.csv")
		if _, err := os.Stat(input); err != nil {
			input = filepath.Join(outDir, "games_clean.csv")
		}
	}
	if _, err := os.Stat(input); err != nil {
		fmt.Printf("Input not found: %s\n", input)
		return errReported
	}

	f, err := buildFilter(opts)
	if err != nil {
		return err
	}

	cands, _, err := storage.ReadGames(input)
	if err != nil {
		return err
	}
	logger.Count("games.rows_in", int64(len(cands)))

	records, stats, err := game.Clean(cands, game.CleanOptions{
		Results: []string{game.Win, game.Loss, game.Tie},
	})
	if err != nil {
		return err
	}
	logger.Debug("cleaning pass", statsFields(stats))

	matched := f.Apply(records)
	logger.Count("games.matched", int64(len(matched)))
	sortGames(matched, order)

	if opts.icsPath != "" {
		return writeCalendar(opts.icsPath, matched)
	}

	if err := WriteGamesOutput(os.Stdout, matched, f, format); err != nil {
		return err
	}
	logger.Timing("games.total", time.Since(start))
	logger.Debug("run metrics", logger.MetricsSnapshot())

	return nil
}

// writeCalendar exports the matched games as an iCalendar file.
func writeCalendar(path string, matched []game.Record) error {
	if len(matched) == 0 {
		fmt.Println("No games matched.")
		return nil
	}

	icsPath, err := storage.ExpandPath(path)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(icsPath); dir != "." {
		if err := storage.EnsureDir(dir); err != nil {
			return err
		}
	}

	ics := calendar.GenerateICS(matched, "Season games")
	if err := os.WriteFile(icsPath, []byte(ics), 0644); err != nil {
		return fmt.Errorf("writing calendar: %w", err)
	}
	fmt.Printf("Wrote: %s\n", icsPath)

	return nil
}

// buildFilter turns the command flags into a Filter. An explicit --from or
// --to overrides the bound that --range inferred.
func buildFilter(opts gamesOpts) (*filter.Filter, error) {
	f := filter.NewFilter()

	if opts.dateRange != "" {
		from, to, err := filter.ParseDateRange(opts.dateRange)
		if err != nil {
			return nil, err
		}
		f.DateFrom = from
		f.DateTo = to
	}
	if opts.from != "" {
		from, err := time.Parse("2006-01-02", opts.from)
		if err != nil {
			return nil, fmt.Errorf("invalid --from %q (want YYYY-MM-DD)", opts.from)
		}
		f.DateFrom = &from
	}
	if opts.to != "" {
		to, err := time.Parse("2006-01-02", opts.to)
		if err != nil {
			return nil, fmt.Errorf("invalid --to %q (want YYYY-MM-DD)", opts.to)
		}
		f.DateTo = &to
	}

	f.Opponents = append(f.Opponents, opts.opponents...)
	f.Venues = append(f.Venues, opts.venues...)
	f.Results = append(f.Results, opts.results...)
	f.WeekendsOnly = opts.weekends

	return f, nil
}
