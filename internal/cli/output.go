package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pfrederiksen/hindsight/internal/filter"
	"github.com/pfrederiksen/hindsight/internal/game"
	"github.com/pfrederiksen/hindsight/internal/report"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// gameRow is the JSON view of a single game.
type gameRow struct {
	Date         string `json:"date"`
	Opponent     string `json:"opponent"`
	Venue        string `json:"venue,omitempty"`
	Result       string `json:"result"`
	GoalsFor     int    `json:"goals_for"`
	GoalsAgainst int    `json:"goals_against"`
}

// GamesOutput contains a game listing to be output
type GamesOutput struct {
	Count  int       `json:"count"`
	Filter string    `json:"filter,omitempty"`
	Games  []gameRow `json:"games"`
}

// WriteGamesOutput writes the matched games in the specified format
func WriteGamesOutput(w io.Writer, records []game.Record, f *filter.Filter, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, records, f)
	case FormatText:
		return writeText(w, records, f)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs the listing as JSON
func writeJSON(w io.Writer, records []game.Record, f *filter.Filter) error {
	out := GamesOutput{
		Count: len(records),
		Games: make([]gameRow, 0, len(records)),
	}
	if f != nil && !f.IsEmpty() {
		out.Filter = f.String()
	}
	for _, rec := range records {
		out.Games = append(out.Games, gameRow{
			Date:         rec.Date.Format("2006-01-02"),
			Opponent:     rec.Opponent,
			Venue:        rec.Venue,
			Result:       rec.Result,
			GoalsFor:     rec.GoalsFor,
			GoalsAgainst: rec.GoalsAgainst,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

// writeText outputs the listing as a human-readable table
func writeText(w io.Writer, records []game.Record, f *filter.Filter) error {
	if len(records) == 0 {
		fmt.Fprintln(w, "No games matched.")
		return nil
	}

	fmt.Fprintln(w, report.GamesTable(records))
	fmt.Fprintln(w)

	noun := "games"
	if len(records) == 1 {
		noun = "game"
	}
	fmt.Fprintf(w, "Total: %d %s\n", len(records), noun)

	if f != nil && !f.IsEmpty() {
		fmt.Fprintf(w, "Filter: %s\n", f)
	}

	return nil
}
