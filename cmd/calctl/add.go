// Add command creates one event or a recurring series.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/calctl/internal/service"
)

var (
	addTitle       string
	addDate        string
	addTime        string
	addDuration    int
	addDescription string
	addLocation    string
	addForce       bool
	addRepeat      string
	addCount       int
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new event",
	Long: `Add creates a new calendar event, or a recurring series with --repeat.

Events on the same date must not overlap unless --force is given.

Example:
  calctl add --title "Standup" --date 2026-09-01 --time 9:30 --duration 15
  calctl add --title "Gym" --date tomorrow --time 18:00 --duration 60
  calctl add --title "Review" --date 2026-09-04 --time 14:00 --duration 45 --repeat weekly --count 4`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addTitle, "title", "", "event title (required)")
	addCmd.Flags().StringVar(&addDate, "date", "", "event date, YYYY-MM-DD (required)")
	addCmd.Flags().StringVar(&addTime, "time", "", "start time, HH:MM 24-hour (required)")
	addCmd.Flags().IntVar(&addDuration, "duration", 0, "duration in minutes (required)")
	addCmd.Flags().StringVar(&addDescription, "description", "", "event description")
	addCmd.Flags().StringVar(&addLocation, "location", "", "event location")
	addCmd.Flags().BoolVar(&addForce, "force", false, "schedule even when it overlaps existing events")
	addCmd.Flags().StringVar(&addRepeat, "repeat", "", "recurrence step: daily or weekly")
	addCmd.Flags().IntVar(&addCount, "count", 1, "number of occurrences when repeating")
	_ = addCmd.MarkFlagRequired("title")
	_ = addCmd.MarkFlagRequired("date")
	_ = addCmd.MarkFlagRequired("time")
	_ = addCmd.MarkFlagRequired("duration")
}

func runAdd(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	created, err := svc.Create(service.CreateRequest{
		Title:       addTitle,
		Date:        addDate,
		Time:        addTime,
		Duration:    addDuration,
		Description: addDescription,
		Location:    addLocation,
		Force:       addForce,
		Repeat:      addRepeat,
		Count:       addCount,
	})
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(created)
	}
	if len(created) == 1 {
		fmt.Printf("Created event %s\n", created[0].ID)
	} else {
		fmt.Printf("Created %d events\n", len(created))
	}
	for _, e := range created {
		printEventLine(e)
	}
	return nil
}
