// Delete command removes one event by id or all events on a date.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/calctl/pkg/types"
)

var deleteDate string

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete event(s)",
	Long: `Delete removes the event with the given id, or with --date every
event on that date.

Example:
  calctl delete 0192d7a0-5b3c-7e41-b8f2-1a2b3c4d5e6f
  calctl delete --date 2026-09-01`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().StringVar(&deleteDate, "date", "", "delete all events on this date")
}

func runDelete(cmd *cobra.Command, args []string) error {
	if (len(args) == 0) == (deleteDate == "") {
		return types.InvalidInputf("provide exactly one of an event id or --date")
	}

	svc, err := newService()
	if err != nil {
		return err
	}

	if deleteDate != "" {
		n, err := svc.DeleteOnDate(deleteDate)
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(map[string]int{"deleted": n})
		}
		fmt.Printf("Deleted %d event(s)\n", n)
		return nil
	}

	e, err := svc.Delete(args[0])
	if err != nil {
		return err
	}
	if flagJSON {
		return printJSON(e)
	}
	fmt.Printf("Deleted event %s (%q on %s)\n", e.ID, e.Title, e.Date)
	return nil
}
