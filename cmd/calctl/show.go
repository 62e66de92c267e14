// Show command prints one event, optionally with its conflicts.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/calctl/pkg/types"
)

var showConflicts bool

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show event details",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showConflicts, "conflicts", false, "also list overlapping events")
}

func runShow(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	if !showConflicts {
		e, err := svc.Get(args[0])
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(e)
		}
		printEventDetail(e)
		return nil
	}

	e, conflicts, err := svc.GetWithConflicts(args[0])
	if err != nil {
		return err
	}
	if flagJSON {
		return printJSON(struct {
			Event     types.Event   `json:"event"`
			Conflicts []types.Event `json:"conflicts"`
		}{e, conflicts})
	}
	printEventDetail(e)
	if len(conflicts) == 0 {
		fmt.Println("No conflicts.")
		return nil
	}
	fmt.Printf("Conflicts (%d):\n", len(conflicts))
	for _, c := range conflicts {
		printEventLine(c)
	}
	return nil
}
