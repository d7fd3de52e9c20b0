package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pfrederiksen/hindsight/internal/game"
)

// months matches full names and standard abbreviations, including the
// nonstandard "Sept", each optionally followed by a period.
const months = `(Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|` +
	`Jul(?:y)?|Aug(?:ust)?|Sep(?:t|tember)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)\.?`

// Patterns is the compiled recognizer set used by the extractor. Compile it
// once with NewPatterns; all methods are safe for concurrent use.
type Patterns struct {
	dateNumeric *regexp.Regexp
	dateNamed   *regexp.Regexp
	result      *regexp.Regexp
	scorePair   *regexp.Regexp
	venueLetter *regexp.Regexp
	opponentRun *regexp.Regexp
}

// NewPatterns compiles the recognizer set.
func NewPatterns() *Patterns {
	return &Patterns{
		dateNumeric: regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{2,4}\b`),
		dateNamed:   regexp.MustCompile(`(?i)\b` + months + `\s+\d{1,2}(?:,\s*\d{4})?\b`),
		result:      regexp.MustCompile(`(?i)\b(W|L|T)\b`),
		scorePair:   regexp.MustCompile(`(\d{1,2})\s*-\s*(\d{1,2})`),
		venueLetter: regexp.MustCompile(`\b(H|A|N)\b`),
		opponentRun: regexp.MustCompile(`[A-Za-z][A-Za-z0-9 .&'()/\-]{2,}`),
	}
}

// Date returns the first date token in text and the offset just past it.
// The numeric form wins over a named month anywhere in the text, matching
// how schedule sheets prefer 10/1/24 over an occasional spelled-out date.
func (p *Patterns) Date(text string) (value string, end int, ok bool) {
	if loc := p.dateNumeric.FindStringIndex(text); loc != nil {
		return text[loc[0]:loc[1]], loc[1], true
	}
	if loc := p.dateNamed.FindStringIndex(text); loc != nil {
		return text[loc[0]:loc[1]], loc[1], true
	}
	return "", 0, false
}

// Result returns the first standalone result letter, upper-cased, with its
// start offset.
func (p *Patterns) Result(text string) (value string, start int, ok bool) {
	loc := p.result.FindStringIndex(text)
	if loc == nil {
		return "", 0, false
	}
	return strings.ToUpper(text[loc[0]:loc[1]]), loc[0], true
}

// Score finds the first plausible score pair and returns both numbers with
// the start offset of the match.
//
// Two small integers around a hyphen look like a score, but so do date
// fragments: 10-1-24 must not read as 10 to 1, and 3/24 tails must not
// produce phantom goals. A candidate match is rejected when the byte just
// before it is a digit, and when the text after it continues with optional
// spaces then '-' or '/' and another digit. In that last case a two-digit
// second number is retried with its final digit dropped first, so "3-24/5"
// reads as 3-2, the same way a backtracking matcher settles those guards.
func (p *Patterns) Score(text string) (goalsFor, goalsAgainst, start int, ok bool) {
	offset := 0
	for {
		loc := p.scorePair.FindStringSubmatchIndex(text[offset:])
		if loc == nil {
			return 0, 0, 0, false
		}
		matchStart := offset + loc[0]
		g1 := text[offset+loc[2] : offset+loc[3]]
		g2lo, g2hi := offset+loc[4], offset+loc[5]

		if matchStart > 0 && isDigit(text[matchStart-1]) {
			offset = matchStart + 1
			continue
		}

		if !dateTailFollows(text, g2hi) {
			return mustAtoi(g1), mustAtoi(text[g2lo:g2hi]), matchStart, true
		}
		if g2hi-g2lo == 2 {
			// Dropping the final digit always clears the tail guard: the
			// next byte is now that digit, which '-' or '/' cannot match.
			return mustAtoi(g1), mustAtoi(text[g2lo : g2hi-1]), matchStart, true
		}
		offset = matchStart + 1
	}
}

// Venue infers a venue marker with the sheet's priority: a literal
// "neutral" beats "at" beats "vs", and a bare uppercase H, A or N token is
// the last resort. Returns an empty string when nothing matches.
func (p *Patterns) Venue(text string) string {
	padded := " " + strings.ToLower(text) + " "
	switch {
	case strings.Contains(padded, " neutral "):
		return game.VenueNeutral
	case strings.Contains(padded, " at "):
		return game.VenueAway
	case strings.Contains(padded, " vs "):
		return game.VenueHome
	}

	if m := p.venueLetter.FindStringSubmatch(text); m != nil {
		switch m[1] {
		case "H":
			return game.VenueHome
		case "A":
			return game.VenueAway
		case "N":
			return game.VenueNeutral
		}
	}
	return ""
}

// LongestNameRun returns the longest run of name-like characters in text,
// used as an opponent fallback when slicing between tokens comes up empty.
func (p *Patterns) LongestNameRun(text string) string {
	runs := p.opponentRun.FindAllString(text, -1)
	longest := ""
	for _, run := range runs {
		if len(run) > len(longest) {
			longest = run
		}
	}
	return longest
}

func dateTailFollows(s string, i int) bool {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	if i >= len(s) || (s[i] != '-' && s[i] != '/') {
		return false
	}
	return i+1 < len(s) && isDigit(s[i+1])
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// mustAtoi converts a string the score pattern already verified is digits.
func mustAtoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
