package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pfrederiksen/hindsight/internal/game"
)

// ErrNoDateColumn is returned when a CSV input has no date column, which
// makes every row unusable.
var ErrNoDateColumn = errors.New("input has no date column")

// columnAliases maps alternate header spellings to canonical column names.
var columnAliases = map[string]string{
	"gf":   "goals_for",
	"ga":   "goals_against",
	"wl":   "result",
	"team": "opponent",
}

// ReadGames reads game candidates from a CSV file. Headers are matched
// case-insensitively and a few aliases (gf, ga, wl, team) are accepted.
// The second return value reports whether the file carried trace columns
// (page or raw), so callers can preserve them on rewrite.
func ReadGames(path string) ([]game.Candidate, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, false, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.ReuseRecord = true
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, false, ErrNoDateColumn
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading header: %w", err)
	}

	// First occurrence wins when a header name repeats.
	cols := make(map[string]int)
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		if canonical, ok := columnAliases[name]; ok {
			name = canonical
		}
		if _, seen := cols[name]; !seen {
			cols[name] = i
		}
	}
	if _, ok := cols["date"]; !ok {
		return nil, false, ErrNoDateColumn
	}

	_, hasPage := cols["page"]
	_, hasRaw := cols["raw"]
	hasTrace := hasPage || hasRaw

	var cands []game.Candidate
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, false, fmt.Errorf("reading row: %w", err)
		}
		get := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}
		cands = append(cands, game.Candidate{
			Page:         atoiOr(get("page"), 0),
			DateRaw:      get("date"),
			Opponent:     get("opponent"),
			Venue:        get("venue"),
			Result:       get("result"),
			GoalsFor:     atoiOr(get("goals_for"), 0),
			GoalsAgainst: atoiOr(get("goals_against"), 0),
			Raw:          get("raw"),
		})
	}

	return cands, hasTrace, nil
}

// WriteGames writes game records as CSV. When withTrace is true the page
// and raw columns are appended after the core six.
func WriteGames(path string, records []game.Record, withTrace bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{"date", "opponent", "venue", "result", "goals_for", "goals_against"}
	if withTrace {
		header = append(header, "page", "raw")
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			rec.Date.Format("2006-01-02"),
			rec.Opponent,
			rec.Venue,
			rec.Result,
			strconv.Itoa(rec.GoalsFor),
			strconv.Itoa(rec.GoalsAgainst),
		}
		if withTrace {
			row = append(row, strconv.Itoa(rec.SourcePage), rec.Raw)
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	return nil
}

func atoiOr(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
