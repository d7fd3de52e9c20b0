package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/pfrederiksen/hindsight/internal/game"
)

func TestParsePages_SingleLine(t *testing.T) {
	page := "10/1/24 at Hawks L 2-3"

	cands, err := New().ParsePages([]string{page})
	if err != nil {
		t.Fatalf("ParsePages() error = %v", err)
	}
	if len(cands) != 1 {
		t.Fatalf("ParsePages() returned %d candidates, want 1", len(cands))
	}

	c := cands[0]
	if c.Page != 1 {
		t.Errorf("Page = %d, want 1", c.Page)
	}
	if c.DateRaw != "10/1/24" {
		t.Errorf("DateRaw = %q, want %q", c.DateRaw, "10/1/24")
	}
	if c.Opponent != "at Hawks" {
		t.Errorf("Opponent = %q, want %q", c.Opponent, "at Hawks")
	}
	if c.Venue != game.VenueAway {
		t.Errorf("Venue = %q, want %q", c.Venue, game.VenueAway)
	}
	if c.Result != "L" {
		t.Errorf("Result = %q, want L", c.Result)
	}
	if c.GoalsFor != 2 || c.GoalsAgainst != 3 {
		t.Errorf("score = %d-%d, want 2-3", c.GoalsFor, c.GoalsAgainst)
	}
}

func TestParsePages_WrappedEntry(t *testing.T) {
	// The date sits on one line and the result with the score on the next;
	// only the pair scan can assemble the entry.
	page := "10/1/24 at Hawks\nL 2-3"

	cands, err := New().ParsePages([]string{page})
	if err != nil {
		t.Fatalf("ParsePages() error = %v", err)
	}
	if len(cands) != 1 {
		t.Fatalf("ParsePages() returned %d candidates, want 1", len(cands))
	}
	if cands[0].Result != "L" || cands[0].GoalsFor != 2 {
		t.Errorf("candidate = %+v, want wrapped entry assembled", cands[0])
	}
	if !strings.Contains(cands[0].Raw, "Hawks") || !strings.Contains(cands[0].Raw, "2-3") {
		t.Errorf("Raw = %q, want joined pair text", cands[0].Raw)
	}
}

func TestParsePages_LinePlusPairOvergeneration(t *testing.T) {
	// A complete line followed by stray text matches both alone and as a
	// pair. The raw text differs, so both candidates survive here; the
	// cleaning pass collapses them later.
	page := "10/1/24 Hawks W 3-2\ncoach notes"

	cands, err := New().ParsePages([]string{page})
	if err != nil {
		t.Fatalf("ParsePages() error = %v", err)
	}
	if len(cands) != 2 {
		t.Fatalf("ParsePages() returned %d candidates, want 2", len(cands))
	}
	for _, c := range cands {
		if c.DateRaw != "10/1/24" || c.Result != "W" || c.GoalsFor != 3 || c.GoalsAgainst != 2 {
			t.Errorf("candidate = %+v, want same game fields in both", c)
		}
	}
	if cands[0].Raw == cands[1].Raw {
		t.Error("expected differing raw text between line and pair matches")
	}
}

func TestParsePages_ExactDuplicatesCollapse(t *testing.T) {
	// The same line twice on one page produces identical candidates from
	// the line scans; exact dedup keeps one of each distinct raw text.
	page := "10/1/24 Hawks W 3-2\n10/1/24 Hawks W 3-2"

	cands, err := New().ParsePages([]string{page})
	if err != nil {
		t.Fatalf("ParsePages() error = %v", err)
	}

	seen := make(map[game.Candidate]bool)
	for _, c := range cands {
		if seen[c] {
			t.Errorf("duplicate candidate survived: %+v", c)
		}
		seen[c] = true
	}
}

func TestParsePages_MissingAnchors(t *testing.T) {
	tests := []struct {
		name string
		page string
	}{
		{
			name: "no result letter",
			page: "10/1/24 Hawks 3-2",
		},
		{
			name: "no score",
			page: "10/1/24 Hawks W",
		},
		{
			name: "no date",
			page: "Hawks W 3-2",
		},
		{
			name: "empty page",
			page: "",
		},
	}

	p := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.ParsePages([]string{tt.page})
			if !errors.Is(err, ErrNoRows) {
				t.Errorf("ParsePages() error = %v, want ErrNoRows", err)
			}
		})
	}
}

func TestParsePages_PageNumbers(t *testing.T) {
	pages := []string{
		"10/1/24 Hawks W 3-2",
		"no games here",
		"10/8/24 Eagles L 1-4",
	}

	cands, err := New().ParsePages(pages)
	if err != nil {
		t.Fatalf("ParsePages() error = %v", err)
	}

	pagesSeen := make(map[int]bool)
	for _, c := range cands {
		pagesSeen[c.Page] = true
	}
	if !pagesSeen[1] || !pagesSeen[3] {
		t.Errorf("page numbers seen = %v, want 1 and 3", pagesSeen)
	}
	if pagesSeen[2] {
		t.Error("page 2 has no games but produced candidates")
	}
}

func TestParsePages_OpponentFallback(t *testing.T) {
	// Score and result come before the date, leaving nothing between the
	// date and them; the opponent falls back to the longest name run.
	page := "W 3-2 Riverside Kings 10/1/24"

	cands, err := New().ParsePages([]string{page})
	if err != nil {
		t.Fatalf("ParsePages() error = %v", err)
	}
	if len(cands) != 1 {
		t.Fatalf("ParsePages() returned %d candidates, want 1", len(cands))
	}
	if !strings.Contains(cands[0].Opponent, "Riverside Kings") {
		t.Errorf("Opponent = %q, want fallback containing %q", cands[0].Opponent, "Riverside Kings")
	}
}

func TestParsePages_UnicodeNoise(t *testing.T) {
	// En dash score and non-breaking spaces normalize before matching.
	page := "10/1/24 Hawks W 3–2"

	cands, err := New().ParsePages([]string{page})
	if err != nil {
		t.Fatalf("ParsePages() error = %v", err)
	}
	if cands[0].GoalsFor != 3 || cands[0].GoalsAgainst != 2 {
		t.Errorf("score = %d-%d, want 3-2", cands[0].GoalsFor, cands[0].GoalsAgainst)
	}
}

func TestParsePages_TrailingPunctuationStripped(t *testing.T) {
	page := "10/1/24 - Hawks - W 3-2"

	cands, err := New().ParsePages([]string{page})
	if err != nil {
		t.Fatalf("ParsePages() error = %v", err)
	}
	if cands[0].Opponent != "Hawks" {
		t.Errorf("Opponent = %q, want %q", cands[0].Opponent, "Hawks")
	}
}
