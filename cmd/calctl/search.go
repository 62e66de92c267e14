// Search command finds events by substring.
package main

import (
	"github.com/spf13/cobra"
)

var searchTitleOnly bool

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search events",
	Long: `Search matches the query case-insensitively against each event's id,
title, description, location, date, time and duration. With --title-only
only titles are searched.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchTitleOnly, "title-only", false, "match titles only")
}

func runSearch(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	events, err := svc.Search(args[0], searchTitleOnly)
	if err != nil {
		return err
	}
	return printEvents(events)
}
