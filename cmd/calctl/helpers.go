// Shared helpers for calctl commands: service construction and output
// rendering.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mesh-intelligence/calctl/internal/service"
	"github.com/mesh-intelligence/calctl/internal/store"
	"github.com/mesh-intelligence/calctl/pkg/types"
)

// newService resolves the data file and builds the calendar service over
// it. Each command invocation constructs its own service; there is no
// shared process state beyond flags.
func newService() (*service.Service, error) {
	dataFile, err := resolveDataFile()
	if err != nil {
		return nil, fmt.Errorf("resolve data file: %w", err)
	}
	slog.Debug("using data file", "path", dataFile)
	return service.New(store.New(dataFile)), nil
}

// printJSON renders v as indented JSON on stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// timeRange formats an event's span as "HH:MM-HH:MM".
func timeRange(e types.Event) string {
	return e.StartTime + "-" + e.EndDT().Format("15:04")
}

// printEventLine prints the one-line listing form of an event.
func printEventLine(e types.Event) {
	line := fmt.Sprintf("%s  %s  %s  %s", e.ID, e.Date, timeRange(e), e.Title)
	if e.Location != "" {
		line += fmt.Sprintf(" @ %s", e.Location)
	}
	fmt.Println(line)
}

// printEventDetail prints the multi-line detail form of an event.
func printEventDetail(e types.Event) {
	fmt.Printf("ID:        %s\n", e.ID)
	fmt.Printf("Title:     %s\n", e.Title)
	fmt.Printf("Date:      %s\n", e.Date)
	fmt.Printf("Time:      %s (%d min)\n", timeRange(e), e.DurationMin)
	if e.Description != "" {
		fmt.Printf("Notes:     %s\n", e.Description)
	}
	if e.Location != "" {
		fmt.Printf("Location:  %s\n", e.Location)
	}
	fmt.Printf("Created:   %s\n", e.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Updated:   %s\n", e.UpdatedAt.Format("2006-01-02 15:04:05"))
}

// printEvents prints a list of events, honoring --json.
func printEvents(events []types.Event) error {
	if flagJSON {
		return printJSON(events)
	}
	if len(events) == 0 {
		fmt.Println("No events.")
		return nil
	}
	for _, e := range events {
		printEventLine(e)
	}
	return nil
}
