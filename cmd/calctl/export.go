// Export command renders events as an iCalendar document.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/calctl/internal/ics"
	"github.com/mesh-intelligence/calctl/internal/service"
)

var (
	exportOut  string
	exportFrom string
	exportTo   string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export events as iCalendar",
	Long: `Export writes events as an iCalendar (.ics) document to stdout or,
with --out, to a file. --from/--to restrict the exported date range;
without them every event from today onward is exported.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "write to this file instead of stdout")
	exportCmd.Flags().StringVar(&exportFrom, "from", "", "range start date")
	exportCmd.Flags().StringVar(&exportTo, "to", "", "range end date")
}

func runExport(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	events, err := svc.List(service.ListFilter{From: exportFrom, To: exportTo})
	if err != nil {
		return err
	}

	content := ics.Serialize(events)
	if exportOut == "" {
		fmt.Print(content)
		return nil
	}
	if err := os.WriteFile(exportOut, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", exportOut, err)
	}
	fmt.Printf("Exported %d event(s) to %s\n", len(events), exportOut)
	return nil
}
