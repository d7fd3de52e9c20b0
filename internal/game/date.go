package game

import (
	"strings"
	"time"
)

// Layouts the extractor and CSV inputs produce, tried in order. Numeric
// forms come first because they dominate both sources.
var dateLayouts = []string{
	"2006-01-02",
	"1/2/2006",
	"1/2/06",
	"January 2, 2006",
	"Jan 2, 2006",
	"January 2,2006",
	"Jan 2,2006",
}

// Named layouts without a year. The season sheet often omits the year on
// per-game lines.
var yearlessLayouts = []string{
	"January 2",
	"Jan 2",
}

// ParseDate parses a date string in any of the formats schedule sheets use.
// Named months may be abbreviated, carry a trailing period, or use "Sept".
// Yearless dates get the current year. Returns the zero time when nothing
// matches.
func ParseDate(dateText string) time.Time {
	s := normalizeMonth(strings.TrimSpace(dateText))
	if s == "" {
		return time.Time{}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}

	for _, layout := range yearlessLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(time.Now().Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		}
	}

	return time.Time{}
}

// normalizeMonth rewrites a leading month token so time.Parse accepts it:
// "Sept" is not a standard abbreviation and abbreviations may carry a
// period ("Mar. 15").
func normalizeMonth(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}

	month := strings.TrimSuffix(fields[0], ".")
	if strings.EqualFold(month, "Sept") {
		month = "Sep"
	}
	fields[0] = month

	return strings.Join(fields, " ")
}
