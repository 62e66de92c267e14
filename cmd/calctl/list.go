// List command shows events matching a date filter.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/calctl/internal/service"
)

var (
	listToday bool
	listWeek  bool
	listFrom  string
	listTo    string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List events",
	Long: `List shows upcoming events from today onward by default.

--today restricts to today, --week to the current week (Sunday start),
and --from/--to to an inclusive date range; either bound may be omitted.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listToday, "today", false, "only today's events")
	listCmd.Flags().BoolVar(&listWeek, "week", false, "this week's events")
	listCmd.Flags().StringVar(&listFrom, "from", "", "range start date")
	listCmd.Flags().StringVar(&listTo, "to", "", "range end date")
}

func runList(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	events, err := svc.List(service.ListFilter{
		Today: listToday,
		Week:  listWeek,
		From:  listFrom,
		To:    listTo,
	})
	if err != nil {
		return err
	}
	return printEvents(events)
}
