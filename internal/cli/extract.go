package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/hindsight/internal/game"
	"github.com/pfrederiksen/hindsight/internal/logger"
	"github.com/pfrederiksen/hindsight/internal/parser"
	"github.com/pfrederiksen/hindsight/internal/pdftext"
	"github.com/pfrederiksen/hindsight/internal/report"
	"github.com/pfrederiksen/hindsight/internal/storage"
)

// textCachePath is where extracted page text is cached across runs.
const textCachePath = "~/.hindsight/textcache.json"

type extractOpts struct {
	input       string
	outDir      string
	outFile     string
	pages       string
	forceOCR    bool
	seasonStart string
	seasonEnd   string
	dumpText    bool
	noCache     bool
}

func newExtractCmd() *cobra.Command {
	opts := extractOpts{}

	cmd := &cobra.Command{
		Use:   "extract <schedule.pdf>",
		Short: "Extract schedule rows from a season PDF into CSV",
		Long: `Extract game rows from a schedule PDF into games.csv.
Each page is scanned line by line (and across wrapped line pairs) for a
date, a result letter, and a score. Rows missing any of the three are
skipped. Scanned PDFs with no text layer need --force-ocr.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.input = args[0]
			return runExtract(opts)
		},
	}

	cmd.Flags().StringVar(&opts.outDir, "outdir", "", "Output directory (default from config, else current directory)")
	cmd.Flags().StringVar(&opts.outFile, "outfile", "games.csv", "Output CSV file name")
	cmd.Flags().StringVar(&opts.pages, "pages", "", "Pages to parse, e.g. 1-3,7 (default all)")
	cmd.Flags().BoolVar(&opts.forceOCR, "force-ocr", false, "Run ocrmypdf before extraction")
	cmd.Flags().StringVar(&opts.seasonStart, "season-start", "", "Drop games before this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.seasonEnd, "season-end", "", "Drop games after this date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&opts.dumpText, "dump-text", false, "Write extracted page text under <outdir>/pdf_text_dump")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "Bypass the extracted-text cache")

	return cmd
}

func runExtract(opts extractOpts) error {
	start := time.Now()

	if _, err := os.Stat(opts.input); err != nil {
		fmt.Printf("Input not found: %s\n", opts.input)
		return errReported
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	outDir := firstNonEmpty(opts.outDir, cfg.OutDir)
	if err := storage.EnsureDir(outDir); err != nil {
		return err
	}

	seasonStart, seasonEnd, err := seasonWindow(
		firstNonEmpty(opts.seasonStart, cfg.SeasonStart),
		firstNonEmpty(opts.seasonEnd, cfg.SeasonEnd),
	)
	if err != nil {
		return err
	}

	pages, err := extractPages(opts)
	if err != nil {
		return err
	}
	logger.Count("extract.pages", int64(len(pages)))

	pages, err = pdftext.SelectPages(pages, opts.pages)
	if err != nil {
		return err
	}
	if len(pages) == 0 {
		return pdftext.ErrNoText
	}

	if opts.dumpText {
		dumpDir := filepath.Join(outDir, "pdf_text_dump")
		if err := storage.DumpPages(dumpDir, pages); err != nil {
			return err
		}
		logger.Info("dumped page text", logger.Fields{"dir": dumpDir})
	}

	cands, err := parser.New().ParsePages(pages)
	if err != nil {
		return err
	}
	logger.Count("extract.candidates", int64(len(cands)))

	records, stats, err := game.Clean(cands, game.CleanOptions{
		Start:   seasonStart,
		End:     seasonEnd,
		Results: []string{game.Win, game.Loss, game.Tie},
	})
	if err != nil {
		return err
	}
	logger.Debug("cleaning pass", statsFields(stats))
	logger.Count("extract.rows", int64(len(records)))
	logger.Timing("extract.total", time.Since(start))

	// An empty result still writes the CSV so downstream steps see headers
	outPath := filepath.Join(outDir, opts.outFile)
	if err := storage.WriteGames(outPath, records, true); err != nil {
		return err
	}

	fmt.Print(report.ExtractSummary(outPath, records))
	logger.Debug("run metrics", logger.MetricsSnapshot())

	return nil
}

// extractPages returns per-page text, preferring the cache so repeat runs
// skip both OCR and PDF parsing. Force-OCR runs get their own cache key
// since their text differs from the plain extraction.
func extractPages(opts extractOpts) ([]string, error) {
	var (
		cache *pdftext.Cache
		key   string
	)

	cachePath, err := storage.ExpandPath(textCachePath)
	if err != nil {
		return nil, err
	}

	if !opts.noCache {
		fp, err := pdftext.Fingerprint(opts.input)
		if err != nil {
			return nil, err
		}
		key = fp
		if opts.forceOCR {
			key += ":ocr"
		}

		cache, err = pdftext.LoadCache(cachePath)
		if err != nil {
			logger.Warn("text cache unreadable; starting fresh", logger.Fields{
				"path":  cachePath,
				"error": err.Error(),
			})
			cache = pdftext.NewCache()
		}
		if pages := cache.Get(key); pages != nil {
			logger.Debug("using cached page text", logger.Fields{"pages": len(pages)})
			return pages, nil
		}
	}

	src := opts.input
	if opts.forceOCR {
		ocred, ok := pdftext.OCRToTemp(src)
		if ok {
			defer os.Remove(ocred)
		}
		src = ocred
	}

	pages, err := pdftext.ExtractPages(src)
	if err != nil {
		return nil, err
	}

	if cache != nil {
		cache.Set(key, pages)
		cache.CleanExpired()
		if err := pdftext.SaveCache(cachePath, cache); err != nil {
			logger.Warn("saving text cache failed", logger.Fields{
				"path":  cachePath,
				"error": err.Error(),
			})
		}
	}

	return pages, nil
}
