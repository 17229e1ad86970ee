package main

import (
	"encoding/json"
	"fmt"

	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"

	"github.com/aretw0/deskmate/pkg/core"
)

var statusJSON bool

var statusCmd = &cobra.Command{
	Use:       "status [schedule|notepad]",
	Short:     "Show the state of one store",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: storeArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var intro introspection.Introspectable
		switch args[0] {
		case "schedule":
			store, err := openSchedule(cmd)
			if err != nil {
				return err
			}
			intro = store
		case "notepad":
			store, err := openNotepad(cmd)
			if err != nil {
				return err
			}
			intro = store
		}

		out := cmd.OutOrStdout()
		if statusJSON {
			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")
			return encoder.Encode(intro.State())
		}

		state, ok := intro.State().(core.StoreState)
		if !ok {
			return fmt.Errorf("unexpected state type %T", intro.State())
		}
		fmt.Fprintf(out, "path:    %s\n", state.Path)
		fmt.Fprintf(out, "records: %d\n", state.Records)
		fmt.Fprintf(out, "next id: %d\n", state.NextID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "Output in JSON format")
}
