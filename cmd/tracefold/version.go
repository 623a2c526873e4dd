package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tracefold"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of tracefold",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "tracefold version %s\n", tracefold.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
