// Package main provides the calctl CLI, a thin presentation layer over the
// calendar service. All business rules live in internal/service; this
// package only parses arguments, renders results, and maps typed failures
// to process exit codes.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mesh-intelligence/calctl/pkg/types"
)

// exitUsage is the exit class for argument/usage errors raised by the CLI
// itself, matching the invalid-input class of the core taxonomy.
const exitUsage = 2

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		var typed *types.Error
		if errors.As(err, &typed) {
			os.Exit(typed.Kind.ExitCode())
		}
		os.Exit(exitUsage)
	}
}
