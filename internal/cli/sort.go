package cli

import (
	"sort"
	"strings"

	"github.com/pfrederiksen/hindsight/internal/game"
)

// SortOrder represents the available sorting options
type SortOrder string

const (
	SortByDate     SortOrder = "date"
	SortByOpponent SortOrder = "opponent"
	SortByMargin   SortOrder = "margin"
)

// sortGames sorts a slice of games based on the specified sort order
func sortGames(records []game.Record, sortOrder SortOrder) {
	switch sortOrder {
	case SortByDate:
		sort.SliceStable(records, func(i, j int) bool {
			return compareByDate(records[i], records[j])
		})
	case SortByOpponent:
		sort.SliceStable(records, func(i, j int) bool {
			oi := strings.ToLower(records[i].Opponent)
			oj := strings.ToLower(records[j].Opponent)
			if oi != oj {
				return oi < oj
			}
			// If opponents are equal, sort by date
			return records[i].Date.Before(records[j].Date)
		})
	case SortByMargin:
		// Largest margin of victory first
		sort.SliceStable(records, func(i, j int) bool {
			mi, mj := records[i].Margin(), records[j].Margin()
			if mi != mj {
				return mi > mj
			}
			// If margins are equal, sort by date
			return records[i].Date.Before(records[j].Date)
		})
	}
}

// compareByDate compares two games by their date
// Returns true if game i should come before game j
func compareByDate(i, j game.Record) bool {
	if !i.Date.Equal(j.Date) {
		return i.Date.Before(j.Date)
	}
	// Same day, keep a stable alphabetical order
	return strings.ToLower(i.Opponent) < strings.ToLower(j.Opponent)
}
