package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/deskmate/internal/apps"
	"github.com/aretw0/deskmate/pkg/core"
)

var watchCmd = &cobra.Command{
	Use:   "watch [schedule|notepad]",
	Short: "Print the records again whenever the data file changes",
	Long: `Watch observes the data file of one app and reprints its view after every
change made by another session. Stop it with Ctrl+C.`,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: storeArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		out := cmd.OutOrStdout()
		switch args[0] {
		case "schedule":
			store, err := openSchedule(cmd)
			if err != nil {
				return err
			}
			return watchStore(ctx, cmd, store, func(tasks []core.Task) { apps.RenderTasks(out, tasks) })
		default:
			store, err := openNotepad(cmd)
			if err != nil {
				return err
			}
			return watchStore(ctx, cmd, store, func(notes []core.Note) { apps.RenderNotes(out, notes) })
		}
	},
}

// watchStore renders the store once, then again after each change until ctx ends.
func watchStore[T core.Record[T]](ctx context.Context, cmd *cobra.Command, store *core.Store[T], render func([]T)) error {
	events, err := store.Watch(ctx)
	if err != nil {
		return err
	}

	show := func() error {
		records, err := store.View("")
		if err != nil {
			return err
		}
		render(records)
		return nil
	}
	if err := show(); err != nil {
		return err
	}

	for e := range events {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", time.Unix(e.Timestamp, 0).Format(core.DatetimeLayout), e)
		if e.Type == core.EventDelete {
			continue
		}
		if _, err := store.Load(ctx); err != nil {
			// A partially written file from a non-atomic writer; the next event retries.
			slog.Warn("reload failed", "path", e.Path, "error", err)
			continue
		}
		if err := show(); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
