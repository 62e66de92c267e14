// Agenda command prints a day or week agenda.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/calctl/pkg/types"
)

var (
	agendaDate string
	agendaWeek bool
)

var agendaCmd = &cobra.Command{
	Use:   "agenda",
	Short: "Show a day or week agenda",
	Long: `Agenda shows the events of one day (today by default, or --date),
or with --week the whole week containing that day, every day listed even
when empty. Weeks start on Sunday.`,
	RunE: runAgenda,
}

func init() {
	agendaCmd.Flags().StringVar(&agendaDate, "date", "", "agenda date (default today)")
	agendaCmd.Flags().BoolVar(&agendaWeek, "week", false, "show the whole week")
}

func runAgenda(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	if agendaWeek {
		days, week, err := svc.AgendaForWeek(agendaDate)
		if err != nil {
			return err
		}
		if flagJSON {
			out := make(map[string][]types.Event, len(days))
			for _, d := range days {
				out[d.String()] = week[d]
			}
			return printJSON(out)
		}
		for _, d := range days {
			fmt.Printf("%s (%s)\n", d, d.Weekday())
			if len(week[d]) == 0 {
				fmt.Println("  -")
				continue
			}
			for _, e := range week[d] {
				fmt.Printf("  %s  %s\n", timeRange(e), e.Title)
			}
		}
		return nil
	}

	d, events, err := svc.AgendaForDay(agendaDate)
	if err != nil {
		return err
	}
	if flagJSON {
		return printJSON(struct {
			Date   types.Date    `json:"date"`
			Events []types.Event `json:"events"`
		}{d, events})
	}
	fmt.Printf("%s (%s)\n", d, d.Weekday())
	if len(events) == 0 {
		fmt.Println("  -")
		return nil
	}
	for _, e := range events {
		fmt.Printf("  %s  %s\n", timeRange(e), e.Title)
	}
	return nil
}
