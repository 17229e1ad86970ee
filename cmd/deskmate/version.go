package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/deskmate"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of deskmate",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "deskmate version %s\n", strings.TrimSpace(deskmate.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
