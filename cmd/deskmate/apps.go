package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/deskmate/internal/apps"
	"github.com/aretw0/deskmate/internal/console"
)

var scheduleCmd = &cobra.Command{
	Use:     "schedule",
	Aliases: []string{"tasks"},
	Short:   "Open the Schedule Handler",
	Long:    `Add, view and delete scheduled tasks stored in the schedule data file.`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openSchedule(cmd)
		if err != nil {
			return err
		}
		c := console.New(cmd.InOrStdin(), cmd.OutOrStdout())
		return apps.NewSchedule(store, c).Run(cmd.Context())
	},
}

var notepadCmd = &cobra.Command{
	Use:     "notepad",
	Aliases: []string{"notes"},
	Short:   "Open the Notepad",
	Long:    `Add, view and delete notes stored in the notepad data file.`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openNotepad(cmd)
		if err != nil {
			return err
		}
		c := console.New(cmd.InOrStdin(), cmd.OutOrStdout())
		return apps.NewNotepad(store, c).Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(notepadCmd)
}
