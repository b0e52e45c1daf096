// Command stoch simulates Geometric Brownian Motion sample paths and
// reports terminal-value statistics.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Build metadata, overridden at release time via -ldflags.
var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "stoch",
		Short: "Geometric Brownian Motion path simulator",
		Long: `stoch generates discretized sample paths of Geometric Brownian Motion
under exact, Euler-Maruyama, or Milstein schemes, and derives
terminal-value statistics from the resulting ensemble.

Runs are reproducible: the same seed yields bit-identical paths.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newSimulateCmd(),
		newCompareCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
