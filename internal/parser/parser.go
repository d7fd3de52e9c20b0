package parser

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/pfrederiksen/hindsight/internal/game"
	"github.com/pfrederiksen/hindsight/internal/normalize"
)

// ErrNoRows reports that no line on any page matched the schedule shape.
var ErrNoRows = errors.New("no schedule rows matched")

// A stray venue token can lead the opponent slice when the slice starts
// exactly on it; anything space-led is left for the cleaning pass.
var opponentPrefixRx = regexp.MustCompile(`(?i)^(at|vs\.?|neutral)\s+`)

// Parser extracts candidate game records from page text.
type Parser struct {
	patterns *Patterns
}

// New creates a parser with the standard pattern set.
func New() *Parser {
	return &Parser{patterns: NewPatterns()}
}

// ParsePages runs the extractor over every page and returns the combined
// candidate set, deduplicated on exact struct equality. Page numbers in the
// output are 1-based positions within the given slice. Returns ErrNoRows
// when nothing matched anywhere.
func (p *Parser) ParsePages(pages []string) ([]game.Candidate, error) {
	var out []game.Candidate
	seen := make(map[game.Candidate]bool)

	for i, page := range pages {
		for _, cand := range p.parsePage(page, i+1) {
			if seen[cand] {
				continue
			}
			seen[cand] = true
			out = append(out, cand)
		}
	}

	if len(out) == 0 {
		return nil, ErrNoRows
	}
	return out, nil
}

// parsePage scans single lines and adjacent line pairs. Wrapped entries
// only assemble in the pair pass; entries that fit one line match in both
// passes and collapse during dedup.
func (p *Parser) parsePage(page string, pageNum int) []game.Candidate {
	rawLines := strings.Split(page, "\n")
	lines := make([]string, len(rawLines))
	for i, line := range rawLines {
		lines[i] = normalize.Text(line)
	}

	var cands []game.Candidate
	for i := range lines {
		texts := []string{lines[i]}
		if i+1 < len(lines) {
			texts = append(texts, lines[i]+" "+lines[i+1])
		}
		for _, text := range texts {
			if text == "" {
				continue
			}
			if cand, ok := p.match(text, pageNum); ok {
				cands = append(cands, cand)
			}
		}
	}
	return cands
}

// match tries to read one schedule entry out of text. All three anchors
// must be present; venue and opponent are best-effort.
func (p *Parser) match(text string, pageNum int) (game.Candidate, bool) {
	result, resultStart, ok := p.patterns.Result(text)
	if !ok {
		return game.Candidate{}, false
	}
	goalsFor, goalsAgainst, scoreStart, ok := p.patterns.Score(text)
	if !ok {
		return game.Candidate{}, false
	}
	dateValue, dateEnd, ok := p.patterns.Date(text)
	if !ok {
		return game.Candidate{}, false
	}

	venue := p.patterns.Venue(text)

	// The opponent usually sits between the date and whichever of the
	// result or score comes first.
	endPos := resultStart
	if scoreStart < endPos {
		endPos = scoreStart
	}
	opponent := ""
	if endPos > dateEnd {
		opponent = text[dateEnd:endPos]
	}
	opponent = opponentPrefixRx.ReplaceAllString(opponent, "")
	opponent = strings.Trim(opponent, " -:|")
	if utf8.RuneCountInString(opponent) < 2 {
		opponent = strings.TrimSpace(p.patterns.LongestNameRun(text))
	}

	return game.Candidate{
		Page:         pageNum,
		DateRaw:      dateValue,
		Opponent:     opponent,
		Venue:        venue,
		Result:       result,
		GoalsFor:     goalsFor,
		GoalsAgainst: goalsAgainst,
		Raw:          text,
	}, true
}
