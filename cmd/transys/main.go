package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "transys",
	Short: "Build, combine and export finite labeled transition systems",
	Long: `transys works with finite labeled transition systems described in
TOML model files: states labeled with atomic propositions, transitions
labeled with actions.

Models can be inspected, combined with synchronous (tensor) or
asynchronous (interleaving) products, and exported to Graphviz DOT or
Promela for the SPIN model checker.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
