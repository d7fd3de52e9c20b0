// Package report renders pipeline results as plain text: run summaries,
// the per-magnitude sensitivity table, and flip detail listings. Formats
// here are load-bearing; downstream tooling greps these lines.
package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/pfrederiksen/hindsight/internal/game"
	"github.com/pfrederiksen/hindsight/internal/sensitivity"
)

// ExtractSummary renders the extract pipeline's closing lines: the output
// path with its row count, the season record, and goal averages.
func ExtractSummary(outPath string, records []game.Record) string {
	wins, losses, ties := tally(records)
	avgFor, avgAgainst := averages(records)

	var b strings.Builder
	fmt.Fprintf(&b, "Wrote %s with %d rows\n", outPath, len(records))
	fmt.Fprintf(&b, "Record: %d-%d", wins, losses)
	if ties > 0 {
		fmt.Fprintf(&b, "-%d T", ties)
	}
	b.WriteByte('\n')
	fmt.Fprintf(&b, "Avg GF: %.2f  Avg GA: %.2f\n", avgFor, avgAgainst)
	return b.String()
}

// AnalyzeSummary renders the analyze pipeline's season overview.
func AnalyzeSummary(records []game.Record) string {
	wins, losses, _ := tally(records)
	avgFor, avgAgainst := averages(records)

	var b strings.Builder
	fmt.Fprintf(&b, "Games: %d\n", len(records))
	fmt.Fprintf(&b, "Record: %d W — %d L\n", wins, losses)
	fmt.Fprintf(&b, "Avg GF: %.2f  Avg GA: %.2f\n", avgFor, avgAgainst)
	return b.String()
}

// SensitivityLines renders one line per swing magnitude.
func SensitivityLines(rows []sensitivity.Row) []string {
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf(
			"d=%d: +%dGF -> %d flips | -%dGA -> %d flips | best split +%dGF/-%dGA -> %d flips",
			row.Magnitude,
			row.Magnitude, row.OffenseFlips,
			row.Magnitude, row.DefenseFlips,
			row.Best.ForDelta, row.Best.AgainstDelta, row.Best.Flips))
	}
	return lines
}

// FlipSections renders the detail sections for the fixed example swings of
// 2 and 4 goals, capped by dmax. Each section lists the losses that flip,
// or "(none)".
func FlipSections(records []game.Record, dmax int) []string {
	var sections []string
	for _, d := range []int{2, 4} {
		if d > dmax {
			continue
		}
		offense := sensitivity.Flipped(records, d, 0)
		defense := sensitivity.Flipped(records, 0, d)
		sections = append(sections,
			fmt.Sprintf("\n=== Flips with +%d GF ===\n%s", d, flipTable(offense)),
			fmt.Sprintf("\n=== Flips with -%d GA ===\n%s", d, flipTable(defense)))
	}
	return sections
}

// Summary joins the sensitivity lines and detail sections into the content
// of the flips summary file.
func Summary(lines, sections []string) string {
	parts := make([]string, 0, len(lines)+len(sections))
	parts = append(parts, lines...)
	parts = append(parts, sections...)
	return strings.Join(parts, "\n")
}

func flipTable(flips []sensitivity.Flip) string {
	if len(flips) == 0 {
		return "(none)"
	}

	rows := make([][]string, 0, len(flips))
	for _, f := range flips {
		rows = append(rows, []string{
			f.Record.Date.Format("2006-01-02"),
			f.Record.Opponent,
			fmt.Sprintf("%d", f.Record.GoalsFor),
			fmt.Sprintf("%d", f.Record.GoalsAgainst),
		})
	}
	return renderTable([]string{"date", "opponent", "goals_for", "goals_against"}, rows)
}

func tally(records []game.Record) (wins, losses, ties int) {
	for _, r := range records {
		switch r.Result {
		case game.Win:
			wins++
		case game.Loss:
			losses++
		case game.Tie:
			ties++
		}
	}
	return wins, losses, ties
}

func averages(records []game.Record) (avgFor, avgAgainst float64) {
	if len(records) == 0 {
		return math.NaN(), math.NaN()
	}
	var totalFor, totalAgainst int
	for _, r := range records {
		totalFor += r.GoalsFor
		totalAgainst += r.GoalsAgainst
	}
	n := float64(len(records))
	return float64(totalFor) / n, float64(totalAgainst) / n
}
