// Package normalize canonicalizes raw page text before pattern matching.
//
// Text extracted from schedule PDFs mixes non-breaking and thin spaces with
// ordinary ones, and uses en or em dashes where the score format expects a
// plain hyphen. Every recognizer downstream assumes its input has passed
// through Text first.
package normalize

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Common substitutions applied before NFKC. The dash variants survive NFKC
// unchanged, so they have to be rewritten explicitly.
var replacer = strings.NewReplacer(
	" ", " ", // no-break space
	" ", " ", // figure space
	" ", " ", // thin space
	"–", "-", // en dash
	"—", "-", // em dash
)

// Text returns s with space variants collapsed to plain spaces, dash
// variants collapsed to hyphens, NFKC normalization applied, and runs of
// whitespace reduced to single spaces with the ends trimmed.
func Text(s string) string {
	if s == "" {
		return ""
	}
	s = replacer.Replace(s)
	s = norm.NFKC.String(s)
	return strings.Join(strings.Fields(s), " ")
}
