package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/aretw0/deskmate/internal/apps"
)

var (
	listJSON  bool
	listMatch string
)

var storeArgs = []string{"schedule", "notepad"}

var listCmd = &cobra.Command{
	Use:       "list [schedule|notepad]",
	Short:     "Print the records of one app",
	Long:      `List prints tasks in chronological order or notes in insertion order. --match keeps titles matching a glob pattern.`,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: storeArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		var view any
		switch args[0] {
		case "schedule":
			store, err := openSchedule(cmd)
			if err != nil {
				return err
			}
			tasks, err := store.View(listMatch)
			if err != nil {
				return err
			}
			if !listJSON {
				apps.RenderTasks(out, tasks)
				return nil
			}
			view = tasks
		case "notepad":
			store, err := openNotepad(cmd)
			if err != nil {
				return err
			}
			notes, err := store.View(listMatch)
			if err != nil {
				return err
			}
			if !listJSON {
				apps.RenderNotes(out, notes)
				return nil
			}
			view = notes
		}

		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(view)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&listMatch, "match", "", "Keep records whose title matches a glob pattern")
}
