package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pfrederiksen/hindsight/internal/calendar"
	"github.com/pfrederiksen/hindsight/internal/game"
)

func main() {
	// A few sample games from a made-up season
	records := []game.Record{
		{
			Date:         time.Date(2024, 10, 5, 0, 0, 0, 0, time.UTC),
			Opponent:     "Riverside Hawks",
			Venue:        game.VenueAway,
			Result:       game.Win,
			GoalsFor:     3,
			GoalsAgainst: 2,
		},
		{
			Date:         time.Date(2024, 10, 12, 0, 0, 0, 0, time.UTC),
			Opponent:     "Eagles",
			Venue:        game.VenueHome,
			Result:       game.Loss,
			GoalsFor:     1,
			GoalsAgainst: 4,
		},
		{
			Date:         time.Date(2024, 10, 19, 0, 0, 0, 0, time.UTC),
			Opponent:     "St. Mary's",
			Venue:        game.VenueHome,
			Result:       game.Tie,
			GoalsFor:     2,
			GoalsAgainst: 2,
		},
	}

	icsContent := calendar.GenerateICS(records, "Sample season")

	// Write to file (owner read/write only for security)
	filename := "sample-season.ics"
	if err := os.WriteFile(filename, []byte(icsContent), 0600); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Generated calendar file: %s\n\n", filename)
	fmt.Println("Test it by:")
	fmt.Println("1. Open the .ics file with your calendar app (double-click)")
	fmt.Println("2. Or import it into Google Calendar, Apple Calendar, or Outlook")
	fmt.Println("\nFile contents preview:")
	fmt.Println("---")
	fmt.Println(icsContent)
}
