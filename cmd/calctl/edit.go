// Edit command updates fields of an existing event.
package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/calctl/internal/service"
	"github.com/mesh-intelligence/calctl/pkg/types"
)

var (
	editTitle       string
	editDate        string
	editTime        string
	editDuration    int
	editDescription string
	editLocation    string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an event",
	Long: `Edit updates the supplied fields of an event and leaves the rest
unchanged. At least one field flag is required. The updated event must
still satisfy the no-overlap and no-midnight-crossing rules.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editTitle, "title", "", "new title")
	editCmd.Flags().StringVar(&editDate, "date", "", "new date")
	editCmd.Flags().StringVar(&editTime, "time", "", "new start time")
	editCmd.Flags().IntVar(&editDuration, "duration", 0, "new duration in minutes")
	editCmd.Flags().StringVar(&editDescription, "description", "", "new description")
	editCmd.Flags().StringVar(&editLocation, "location", "", "new location")
}

func runEdit(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	// Only flags the caller actually set participate in the edit, so an
	// explicit empty value clears a field while an unset flag keeps it.
	var req service.EditRequest
	if cmd.Flags().Changed("title") {
		req.Title = &editTitle
	}
	if cmd.Flags().Changed("date") {
		req.Date = &editDate
	}
	if cmd.Flags().Changed("time") {
		req.Time = &editTime
	}
	if cmd.Flags().Changed("duration") {
		req.Duration = &editDuration
	}
	if cmd.Flags().Changed("description") {
		req.Description = &editDescription
	}
	if cmd.Flags().Changed("location") {
		req.Location = &editLocation
	}

	updated, changes, err := svc.Edit(args[0], req)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(struct {
			Event   types.Event       `json:"event"`
			Changes service.Changeset `json:"changes"`
		}{updated, changes})
	}

	fmt.Printf("Updated event %s\n", updated.ID)
	fields := make([]string, 0, len(changes))
	for f := range changes {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		c := changes[f]
		fmt.Printf("  %s: %v -> %v\n", f, c.Old, c.New)
	}
	return nil
}
