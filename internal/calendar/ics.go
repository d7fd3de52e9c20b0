// Package calendar renders game records as an iCalendar season file.
//
// Each game becomes an all-day VEVENT on its date, so a season can be
// overlaid on a regular calendar for review. Events are marked transparent
// since played games never block free/busy time.
package calendar

import (
	"crypto/sha1"
	"fmt"
	"strings"
	"time"

	"github.com/pfrederiksen/hindsight/internal/game"
)

// GenerateICS generates an iCalendar (.ics) season file for a list of games.
// The optional name becomes the calendar display name. Returns an empty
// string when there are no games.
func GenerateICS(records []game.Record, name string) string {
	if len(records) == 0 {
		return ""
	}

	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:-//hindsight//season-calendar//EN\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")
	if name != "" {
		ics.WriteString(fmt.Sprintf("X-WR-CALNAME:%s\r\n", escapeICS(name)))
	}

	stamp := formatICSTime(time.Now().UTC())
	for _, rec := range records {
		writeGameEvent(&ics, rec, stamp)
	}

	ics.WriteString("END:VCALENDAR\r\n")

	return ics.String()
}

// writeGameEvent appends one VEVENT block for a game
func writeGameEvent(ics *strings.Builder, rec game.Record, stamp string) {
	ics.WriteString("BEGIN:VEVENT\r\n")

	// UID - deterministic identifier so re-exports update instead of duplicate
	ics.WriteString(fmt.Sprintf("UID:%s@hindsight\r\n", gameUID(rec)))
	ics.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", stamp))

	// All-day event; DTEND is exclusive per RFC 5545
	ics.WriteString(fmt.Sprintf("DTSTART;VALUE=DATE:%s\r\n", rec.Date.Format("20060102")))
	ics.WriteString(fmt.Sprintf("DTEND;VALUE=DATE:%s\r\n", rec.Date.AddDate(0, 0, 1).Format("20060102")))

	// SUMMARY - "at Hawks (L 2-3)" or "vs Hawks (W 3-2)"
	prefix := "vs"
	if rec.Venue == game.VenueAway {
		prefix = "at"
	}
	summary := fmt.Sprintf("%s %s (%s %d-%d)", prefix, rec.Opponent, rec.Result, rec.GoalsFor, rec.GoalsAgainst)
	ics.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICS(summary)))

	// DESCRIPTION - result and venue details
	description := fmt.Sprintf("Result: %s %d-%d", rec.Result, rec.GoalsFor, rec.GoalsAgainst)
	if rec.Venue != "" {
		description = fmt.Sprintf("%s\nVenue: %s", description, rec.Venue)
	}
	ics.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeICS(description)))

	ics.WriteString("STATUS:CONFIRMED\r\n")
	ics.WriteString("SEQUENCE:0\r\n")

	// TRANSP - played games do not block free/busy
	ics.WriteString("TRANSP:TRANSPARENT\r\n")

	ics.WriteString("END:VEVENT\r\n")
}

// gameUID creates a deterministic ID for a game based on stable fields
func gameUID(rec game.Record) string {
	key := strings.Join([]string{
		rec.Date.Format("2006-01-02"),
		rec.Opponent,
		fmt.Sprintf("%d-%d", rec.GoalsFor, rec.GoalsAgainst),
		rec.Result,
	}, "|")

	h := sha1.New()
	h.Write([]byte(key))
	return fmt.Sprintf("%x", h.Sum(nil))
}

// formatICSTime formats a time.Time as an iCalendar datetime string
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeICS escapes special characters for iCalendar format
func escapeICS(s string) string {
	// Replace special characters according to RFC 5545
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
