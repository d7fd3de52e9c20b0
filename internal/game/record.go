package game

import "time"

// Result labels as they appear on a schedule sheet.
const (
	Win  = "W"
	Loss = "L"
	Tie  = "T"
)

// Venue labels. An empty venue means the source gave no usable marker.
const (
	VenueHome    = "Home"
	VenueAway    = "Away"
	VenueNeutral = "Neutral"
)

// Goal totals outside this range are treated as extraction noise.
const (
	MinGoals = 1
	MaxGoals = 35
)

// Record is one validated, played game.
type Record struct {
	Date         time.Time
	Opponent     string
	Venue        string
	Result       string
	GoalsFor     int
	GoalsAgainst int

	// SourcePage and Raw trace a record back to the page and matched text
	// it came from. Both are zero for records read from plain CSV input.
	SourcePage int
	Raw        string
}

// Margin returns goals for minus goals against.
func (r Record) Margin() int {
	return r.GoalsFor - r.GoalsAgainst
}

// Candidate is an unvalidated row as emitted by the extractor or read from
// a CSV. DateRaw stays unparsed until the cleaning pass. All fields are
// comparable, so the extractor can deduplicate candidates on exact struct
// equality.
type Candidate struct {
	Page         int
	DateRaw      string
	Opponent     string
	Venue        string
	Result       string
	GoalsFor     int
	GoalsAgainst int
	Raw          string
}

// dedupKey identifies a record for domain-level deduplication. Two records
// with the same date, opponent, score and result describe the same game no
// matter which page or line produced them.
type dedupKey struct {
	date         string
	opponent     string
	goalsFor     int
	goalsAgainst int
	result       string
}

func (r Record) key() dedupKey {
	return dedupKey{
		date:         r.Date.Format("2006-01-02"),
		opponent:     r.Opponent,
		goalsFor:     r.GoalsFor,
		goalsAgainst: r.GoalsAgainst,
		result:       r.Result,
	}
}
