package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tracefold",
	Short: "tracefold generalizes execution traces into control-flow automata",
	Long: `tracefold builds a prefix tree from example runs and merges its states
red/blue style, keeping only merges whose branches can still be told apart
by an inferred condition.`,
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "YAML settings file (defaults apply when empty)")
	rootCmd.PersistentFlags().String("log-level", "", "override log_level from the settings file")
}
