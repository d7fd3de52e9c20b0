package report

import (
	"strings"
	"testing"
	"time"

	"github.com/pfrederiksen/hindsight/internal/game"
	"github.com/pfrederiksen/hindsight/internal/sensitivity"
)

func rec(day int, opponent, result string, goalsFor, goalsAgainst int) game.Record {
	return game.Record{
		Date:         time.Date(2024, time.October, day, 0, 0, 0, 0, time.UTC),
		Opponent:     opponent,
		Result:       result,
		GoalsFor:     goalsFor,
		GoalsAgainst: goalsAgainst,
	}
}

func TestExtractSummary(t *testing.T) {
	records := []game.Record{
		rec(1, "Hawks", game.Win, 3, 2),
		rec(8, "Eagles", game.Loss, 1, 4),
		rec(15, "Owls", game.Win, 2, 1),
	}

	got := ExtractSummary("out/games.csv", records)
	want := "Wrote out/games.csv with 3 rows\n" +
		"Record: 2-1\n" +
		"Avg GF: 2.00  Avg GA: 2.33\n"
	if got != want {
		t.Errorf("ExtractSummary() = %q, want %q", got, want)
	}
}

func TestExtractSummary_WithTies(t *testing.T) {
	records := []game.Record{
		rec(1, "Hawks", game.Win, 3, 2),
		rec(8, "Eagles", game.Tie, 2, 2),
		rec(15, "Owls", game.Tie, 1, 1),
	}

	got := ExtractSummary("games.csv", records)
	if !strings.Contains(got, "Record: 1-0-2 T\n") {
		t.Errorf("ExtractSummary() = %q, want tie count in record line", got)
	}
}

func TestAnalyzeSummary(t *testing.T) {
	records := []game.Record{
		rec(1, "Hawks", game.Win, 3, 2),
		rec(8, "Eagles", game.Loss, 1, 4),
	}

	got := AnalyzeSummary(records)
	want := "Games: 2\n" +
		"Record: 1 W — 1 L\n" +
		"Avg GF: 2.00  Avg GA: 3.00\n"
	if got != want {
		t.Errorf("AnalyzeSummary() = %q, want %q", got, want)
	}
}

func TestSensitivityLines(t *testing.T) {
	rows := []sensitivity.Row{
		{
			Magnitude:    1,
			OffenseFlips: 0,
			DefenseFlips: 0,
			Best:         sensitivity.Split{ForDelta: 0, AgainstDelta: 1, Flips: 0},
		},
		{
			Magnitude:    2,
			OffenseFlips: 3,
			DefenseFlips: 3,
			Best:         sensitivity.Split{ForDelta: 0, AgainstDelta: 2, Flips: 3},
		},
	}

	lines := SensitivityLines(rows)
	if len(lines) != 2 {
		t.Fatalf("SensitivityLines() returned %d lines, want 2", len(lines))
	}

	want := "d=2: +2GF -> 3 flips | -2GA -> 3 flips | best split +0GF/-2GA -> 3 flips"
	if lines[1] != want {
		t.Errorf("line = %q, want %q", lines[1], want)
	}
}

func TestFlipSections(t *testing.T) {
	records := []game.Record{
		rec(1, "Hawks", game.Loss, 2, 3),
		rec(8, "Eagles", game.Win, 3, 1),
	}

	sections := FlipSections(records, 4)
	if len(sections) != 4 {
		t.Fatalf("FlipSections(dmax=4) returned %d sections, want 4", len(sections))
	}

	if !strings.HasPrefix(sections[0], "\n=== Flips with +2 GF ===\n") {
		t.Errorf("section 0 header = %q", sections[0])
	}
	if !strings.Contains(sections[0], "2024-10-01") || !strings.Contains(sections[0], "Hawks") {
		t.Errorf("section 0 missing flipped loss: %q", sections[0])
	}
	if !strings.HasPrefix(sections[1], "\n=== Flips with -2 GA ===\n") {
		t.Errorf("section 1 header = %q", sections[1])
	}
}

func TestFlipSections_DmaxCapsSections(t *testing.T) {
	records := []game.Record{rec(1, "Hawks", game.Loss, 2, 3)}

	sections := FlipSections(records, 2)
	if len(sections) != 2 {
		t.Fatalf("FlipSections(dmax=2) returned %d sections, want 2", len(sections))
	}

	sections = FlipSections(records, 1)
	if len(sections) != 0 {
		t.Errorf("FlipSections(dmax=1) returned %d sections, want 0", len(sections))
	}
}

func TestFlipSections_None(t *testing.T) {
	records := []game.Record{rec(1, "Hawks", game.Loss, 1, 9)}

	sections := FlipSections(records, 2)
	for _, section := range sections {
		if !strings.Contains(section, "(none)") {
			t.Errorf("section without flips should render (none): %q", section)
		}
	}
}

func TestFlipTable_Alignment(t *testing.T) {
	flips := []sensitivity.Flip{
		{Record: rec(1, "Hawks", game.Loss, 2, 3)},
		{Record: rec(8, "Riverside Kings", game.Loss, 1, 2)},
	}

	table := flipTable(flips)
	lines := strings.Split(table, "\n")
	if len(lines) != 3 {
		t.Fatalf("flipTable() has %d lines, want 3", len(lines))
	}
	if len(lines[0]) != len(lines[1]) || len(lines[1]) != len(lines[2]) {
		t.Errorf("rows not aligned: %q", table)
	}
	if !strings.Contains(lines[0], "goals_against") {
		t.Errorf("header missing column: %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "3") {
		t.Errorf("first row should end with goals against: %q", lines[1])
	}
}

func TestSummary_JoinsWithNewlines(t *testing.T) {
	lines := []string{"d=1: a", "d=2: b"}
	sections := []string{"\n=== X ===\n(none)"}

	got := Summary(lines, sections)
	want := "d=1: a\nd=2: b\n\n=== X ===\n(none)"
	if got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
}

func TestGamesTable(t *testing.T) {
	records := []game.Record{
		{
			Date:         time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC),
			Opponent:     "Hawks",
			Venue:        game.VenueAway,
			Result:       game.Loss,
			GoalsFor:     2,
			GoalsAgainst: 3,
		},
	}

	table := GamesTable(records)
	lines := strings.Split(table, "\n")
	if len(lines) != 2 {
		t.Fatalf("GamesTable() has %d lines, want 2", len(lines))
	}
	for _, col := range []string{"date", "opponent", "venue", "result", "goals_for", "goals_against"} {
		if !strings.Contains(lines[0], col) {
			t.Errorf("header missing %q: %q", col, lines[0])
		}
	}
	if !strings.Contains(lines[1], "2024-10-01") || !strings.Contains(lines[1], "Away") {
		t.Errorf("row missing fields: %q", lines[1])
	}
}
