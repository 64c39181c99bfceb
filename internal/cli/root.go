// Package cli wires the geopt command-line driver: it loads a YAML
// scenario, runs the optimization, and prints the report. All numeric
// work lives in the library packages; this layer is I/O glue only.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// Execute runs the root command and exits non-zero on error.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "geopt",
		Short:        "geopt — optimal location choice over weighted amenities",
		SilenceUsage: true,
	}

	cmd.AddCommand(solveCmd())

	return cmd
}
