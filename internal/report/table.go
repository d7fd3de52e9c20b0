package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pfrederiksen/hindsight/internal/game"
)

// GamesTable renders a cleaned game list as an aligned text table.
func GamesTable(records []game.Record) string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.Date.Format("2006-01-02"),
			r.Opponent,
			r.Venue,
			r.Result,
			strconv.Itoa(r.GoalsFor),
			strconv.Itoa(r.GoalsAgainst),
		})
	}
	return renderTable([]string{"date", "opponent", "venue", "result", "goals_for", "goals_against"}, rows)
}

// renderTable lays out rows under right-aligned headers, one space between
// columns, no trailing newline.
func renderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		for i, cell := range cells {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%*s", widths[i], cell)
		}
		b.WriteByte('\n')
	}

	writeRow(headers)
	for _, row := range rows {
		writeRow(row)
	}
	return strings.TrimRight(b.String(), "\n")
}
