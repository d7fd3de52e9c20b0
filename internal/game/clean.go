package game

import (
	"errors"
	"regexp"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrWindowInverted reports a season window whose end precedes its start.
var ErrWindowInverted = errors.New("season window end precedes start")

// CleanOptions bound the cleaning pass. Zero Start or End leaves that side
// of the season window open. Results lists the accepted result labels; nil
// means wins and losses only.
type CleanOptions struct {
	Start   time.Time
	End     time.Time
	Results []string
}

// CleanStats counts what the cleaning pass kept and dropped, by reason.
type CleanStats struct {
	Kept        int
	BadDate     int
	OutOfWindow int
	BadResult   int
	BadGoals    int
	BadOpponent int
	Duplicate   int
}

var (
	letterRx      = regexp.MustCompile(`[A-Za-z]`)
	venuePrefixRx = regexp.MustCompile(`(?i)^(at|vs\.?)\s+(.*)$`)
)

// Clean validates candidates into records. Each candidate either becomes a
// record or increments exactly one drop counter; the pass itself only fails
// on an inverted season window. The returned records are deduplicated on
// (date, opponent, score, result), keeping the first occurrence, and sorted
// ascending by date.
func Clean(cands []Candidate, opts CleanOptions) ([]Record, CleanStats, error) {
	var stats CleanStats

	if !opts.Start.IsZero() && !opts.End.IsZero() && opts.End.Before(opts.Start) {
		return nil, stats, ErrWindowInverted
	}

	allowed := opts.Results
	if allowed == nil {
		allowed = []string{Win, Loss}
	}
	accept := make(map[string]bool, len(allowed))
	for _, r := range allowed {
		accept[strings.ToUpper(strings.TrimSpace(r))] = true
	}

	// cases.Title casers are not safe for concurrent use, so build one per
	// pass rather than sharing a package-level instance.
	caser := cases.Title(language.English)

	seen := make(map[dedupKey]bool)
	records := make([]Record, 0, len(cands))

	for _, c := range cands {
		date := ParseDate(c.DateRaw)
		if date.IsZero() {
			stats.BadDate++
			continue
		}
		if !opts.Start.IsZero() && date.Before(opts.Start) {
			stats.OutOfWindow++
			continue
		}
		if !opts.End.IsZero() && date.After(opts.End) {
			stats.OutOfWindow++
			continue
		}

		result := strings.ToUpper(strings.TrimSpace(c.Result))
		if !accept[result] {
			stats.BadResult++
			continue
		}

		if c.GoalsFor < MinGoals || c.GoalsFor > MaxGoals ||
			c.GoalsAgainst < MinGoals || c.GoalsAgainst > MaxGoals {
			stats.BadGoals++
			continue
		}

		opponent := collapseSpaces(c.Opponent)
		if !letterRx.MatchString(opponent) {
			stats.BadOpponent++
			continue
		}
		opponent, venue := fixOpponentVenue(opponent, c.Venue, caser)

		rec := Record{
			Date:         date,
			Opponent:     opponent,
			Venue:        venue,
			Result:       result,
			GoalsFor:     c.GoalsFor,
			GoalsAgainst: c.GoalsAgainst,
			SourcePage:   c.Page,
			Raw:          c.Raw,
		}

		k := rec.key()
		if seen[k] {
			stats.Duplicate++
			continue
		}
		seen[k] = true
		records = append(records, rec)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})

	stats.Kept = len(records)
	return records, stats, nil
}

// fixOpponentVenue strips stray leading tokens from the opponent, derives a
// venue from an at/vs prefix when none was set, and title-cases both. An
// "at" prefix implies an away game, "vs" a home game.
func fixOpponentVenue(opponent, venue string, caser cases.Caser) (string, string) {
	opponent = strings.TrimLeft(opponent, "= ")
	venue = strings.TrimSpace(venue)

	if m := venuePrefixRx.FindStringSubmatch(opponent); m != nil {
		if venue == "" {
			if strings.HasPrefix(strings.ToLower(m[1]), "at") {
				venue = VenueAway
			} else {
				venue = VenueHome
			}
		}
		opponent = m[2]
	}

	opponent = caser.String(opponent)
	if venue != "" {
		venue = caser.String(venue)
	}
	return opponent, venue
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
