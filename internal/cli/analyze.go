package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/hindsight/internal/game"
	"github.com/pfrederiksen/hindsight/internal/logger"
	"github.com/pfrederiksen/hindsight/internal/report"
	"github.com/pfrederiksen/hindsight/internal/sensitivity"
	"github.com/pfrederiksen/hindsight/internal/storage"
)

type analyzeOpts struct {
	in          string
	outDir      string
	seasonStart string
	seasonEnd   string
	dmax        int
}

func newAnalyzeCmd() *cobra.Command {
	opts := analyzeOpts{}

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Clean a games CSV and run the what-if sensitivity report",
		Long: `Clean extracted game rows and measure season sensitivity.
For each goal budget d from 1 to --dmax, counts how many losses would have
flipped to wins by scoring d more, allowing d fewer, or the best split of
the two. Writes games_clean.csv, games_final.csv, and flips_summary.txt.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.in, "in", "", "Input CSV (default <outdir>/games.csv, else <outdir>/games_clean.csv)")
	cmd.Flags().StringVar(&opts.outDir, "outdir", "", "Output directory (default from config, else current directory)")
	cmd.Flags().StringVar(&opts.seasonStart, "season-start", "", "Drop games before this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.seasonEnd, "season-end", "", "Drop games after this date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&opts.dmax, "dmax", 4, "Largest goal budget to test")

	return cmd
}

func runAnalyze(cmd *cobra.Command, opts analyzeOpts) error {
	start := time.Now()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dmax := opts.dmax
	if !cmd.Flags().Changed("dmax") && cfg.DMax != 0 {
		dmax = cfg.DMax
	}
	if dmax < 1 {
		return sensitivity.ErrBadMagnitude
	}

	outDir := firstNonEmpty(opts.outDir, cfg.OutDir)
	if err := storage.EnsureDir(outDir); err != nil {
		return err
	}

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

	seasonStart, seasonEnd, err := seasonWindow(
		firstNonEmpty(opts.seasonStart, cfg.SeasonStart),
		firstNonEmpty(opts.seasonEnd, cfg.SeasonEnd),
	)
	if err != nil {
		return err
	}

	cands, hasTrace, err := storage.ReadGames(input)
	if err != nil {
		return err
	}
	logger.Count("analyze.rows_in", int64(len(cands)))

	// Ties carry no flip potential, so the analyzer keeps wins and losses
	records, stats, err := game.Clean(cands, game.CleanOptions{
		Start:   seasonStart,
		End:     seasonEnd,
		Results: []string{game.Win, game.Loss},
	})
	if err != nil {
		return err
	}
	logger.Debug("cleaning pass", statsFields(stats))
	logger.Count("analyze.rows_kept", int64(len(records)))

	cleanPath := filepath.Join(outDir, "games_clean.csv")
	if err := storage.WriteGames(cleanPath, records, hasTrace); err != nil {
		return err
	}
	finalPath := filepath.Join(outDir, "games_final.csv")
	if err := storage.WriteGames(finalPath, records, false); err != nil {
		return err
	}

	fmt.Print(report.AnalyzeSummary(records))

	rows, err := sensitivity.Table(records, dmax)
	if err != nil {
		return err
	}
	lines := report.SensitivityLines(rows)
	fmt.Println()
	fmt.Println(strings.Join(lines, "\n"))

	sections := report.FlipSections(records, dmax)
	summaryPath := filepath.Join(outDir, "flips_summary.txt")
	if err := storage.WriteSummary(summaryPath, report.Summary(lines, sections)); err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("Wrote: %s\n", cleanPath)
	fmt.Printf("Wrote: %s\n", finalPath)
	fmt.Printf("Wrote: %s\n", summaryPath)

	logger.Timing("analyze.total", time.Since(start))
	logger.Debug("run metrics", logger.MetricsSnapshot())

	return nil
}
