package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/deskmate"
	"github.com/aretw0/deskmate/internal/apps"
	"github.com/aretw0/deskmate/internal/console"
)

var (
	verbose    bool
	configFile string
	appConfig  = deskmate.DefaultConfig()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "deskmate",
	Short: "A task scheduler and a notepad backed by local JSON files",
	Long: `Deskmate bundles two console apps: a Schedule Handler for dated tasks
and a Notepad for free-form notes. Run it without arguments to pick one from
the menu.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		appConfig = cfg

		level, err := cfg.Level()
		if err != nil {
			return err
		}
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
		slog.SetDefault(logger)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		c := console.New(cmd.InOrStdin(), cmd.OutOrStdout())

		schedule := apps.Defer(apps.ScheduleName, func(context.Context) (apps.App, error) {
			store, err := openSchedule(cmd)
			if err != nil {
				return nil, err
			}
			return apps.NewSchedule(store, c), nil
		})
		notepad := apps.Defer(apps.NotepadName, func(context.Context) (apps.App, error) {
			store, err := openNotepad(cmd)
			if err != nil {
				return nil, err
			}
			return apps.NewNotepad(store, c), nil
		})

		return apps.Launcher(schedule, notepad).Run(cmd.Context(), c)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Config file (default ./"+deskmate.DefaultConfigFile+" when present)")
}

// loadConfig reads the named config file, or the default one if it exists.
func loadConfig() (deskmate.Config, error) {
	if configFile != "" {
		return deskmate.LoadConfig(configFile, true)
	}
	return deskmate.LoadConfig(deskmate.DefaultConfigFile, false)
}

func storeOptions() []deskmate.Option {
	return []deskmate.Option{
		deskmate.WithConfig(appConfig),
		deskmate.WithLogger(slog.Default()),
	}
}

func openSchedule(cmd *cobra.Command) (*deskmate.Store[deskmate.Task], error) {
	return deskmate.OpenSchedule(cmd.Context(), storeOptions()...)
}

func openNotepad(cmd *cobra.Command) (*deskmate.Store[deskmate.Note], error) {
	return deskmate.OpenNotepad(cmd.Context(), storeOptions()...)
}
