// Package filter narrows game lists for the games command.
//
// Filters combine several criteria:
//   - Date ranges (from/to dates, inclusive)
//   - Opponent names (substring matching, case-insensitive)
//   - Venues (exact match, case-insensitive)
//   - Results (exact match, case-insensitive)
//   - Weekends only (Saturday/Sunday)
//
// All active criteria must match; within one criterion, any listed value
// may match.
//
// Example usage:
//
//	// Filter for weekend games against the Hawks
//	f := filter.NewFilter()
//	f.WeekendsOnly = true
//	f.Opponents = []string{"Hawks"}
//
//	// Apply filter to games
//	matched := f.Apply(records)
package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/pfrederiksen/hindsight/internal/game"
)

// Filter represents game filtering criteria
type Filter struct {
	// Date range filtering, inclusive on both ends
	DateFrom *time.Time
	DateTo   *time.Time

	// Opponent filtering (case-insensitive substring match)
	Opponents []string

	// Venue filtering (case-insensitive exact match)
	Venues []string

	// Result filtering (case-insensitive exact match)
	Results []string

	// Weekend-only filtering (Saturday/Sunday)
	WeekendsOnly bool
}

// NewFilter creates a new empty filter with no active criteria.
// The filter will match all games until criteria are added.
func NewFilter() *Filter {
	return &Filter{
		Opponents: []string{},
		Venues:    []string{},
		Results:   []string{},
	}
}

// IsEmpty checks if the filter has any active criteria.
// Returns true if the filter would match all games.
func (f *Filter) IsEmpty() bool {
	return f.DateFrom == nil &&
		f.DateTo == nil &&
		len(f.Opponents) == 0 &&
		len(f.Venues) == 0 &&
		len(f.Results) == 0 &&
		!f.WeekendsOnly
}

// Matches checks if a game matches all active filter criteria.
// Returns true if the game passes all filters, false otherwise.
// An empty filter matches all games.
//
// Matching logic:
//   - Date range: game date must be within DateFrom and DateTo (inclusive)
//   - Opponents: opponent must contain at least one name (case-insensitive)
//   - Venues: venue must match at least one value (case-insensitive)
//   - Results: result must match at least one value (case-insensitive)
//   - WeekendsOnly: game must be on Saturday or Sunday
func (f *Filter) Matches(rec game.Record) bool {
	// Empty filter matches all games
	if f.IsEmpty() {
		return true
	}

	// Check date range
	if f.DateFrom != nil && rec.Date.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && rec.Date.After(*f.DateTo) {
		return false
	}

	// Check weekends only
	if f.WeekendsOnly {
		weekday := rec.Date.Weekday()
		if weekday != time.Saturday && weekday != time.Sunday {
			return false
		}
	}

	// Check opponent name (case-insensitive substring match)
	if len(f.Opponents) > 0 {
		matched := false
		opponentLower := strings.ToLower(rec.Opponent)
		for _, opponent := range f.Opponents {
			if strings.Contains(opponentLower, strings.ToLower(opponent)) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	// Check venue filtering
	if len(f.Venues) > 0 {
		matched := false
		for _, venue := range f.Venues {
			if strings.EqualFold(rec.Venue, venue) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	// Check result filtering
	if len(f.Results) > 0 {
		matched := false
		for _, result := range f.Results {
			if strings.EqualFold(rec.Result, result) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	return true
}

// Apply applies the filter to a list of games and returns only matching games.
// If the filter is empty, returns the original list unchanged.
// Otherwise, returns a new slice containing only games that match all criteria.
func (f *Filter) Apply(records []game.Record) []game.Record {
	if f.IsEmpty() {
		return records
	}

	var filtered []game.Record
	for _, rec := range records {
		if f.Matches(rec) {
			filtered = append(filtered, rec)
		}
	}

	return filtered
}

// String returns a human-readable description of the active filter criteria.
// Returns "No active filters" if the filter is empty.
// Format: "From: Oct 1, 2024 | To: Nov 15, 2024 | Opponents: Hawks | Weekends only"
func (f *Filter) String() string {
	if f.IsEmpty() {
		return "No active filters"
	}

	var parts []string

	if f.DateFrom != nil {
		parts = append(parts, fmt.Sprintf("From: %s", f.DateFrom.Format("Jan 2, 2006")))
	}

	if f.DateTo != nil {
		parts = append(parts, fmt.Sprintf("To: %s", f.DateTo.Format("Jan 2, 2006")))
	}

	if len(f.Opponents) > 0 {
		parts = append(parts, fmt.Sprintf("Opponents: %s", strings.Join(f.Opponents, ", ")))
	}

	if f.WeekendsOnly {
		parts = append(parts, "Weekends only")
	}

	if len(f.Venues) > 0 {
		parts = append(parts, fmt.Sprintf("Venues: %s", strings.Join(f.Venues, ", ")))
	}

	if len(f.Results) > 0 {
		parts = append(parts, fmt.Sprintf("Results: %s", strings.Join(f.Results, ", ")))
	}

	return strings.Join(parts, " | ")
}
