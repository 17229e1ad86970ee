// Package apps wires the Schedule Handler and Notepad menus to their record stores.
package apps

import (
	"context"
	"errors"

	"github.com/aretw0/deskmate/internal/console"
	"github.com/aretw0/deskmate/pkg/core"
)

const (
	promptChoice = "Choose an option: "
	invalidApp   = "Invalid option. Please choose 1–4."
	farewell     = "Goodbye!"
)

// App is an interactive session over one store.
type App interface {
	Name() string
	Run(ctx context.Context) error
}

// Opener builds an app when it is chosen.
type Opener func(ctx context.Context) (App, error)

// Deferred is an App that is built each time it is run.
type Deferred struct {
	name string
	open Opener
}

// Defer wraps open as an App named name.
func Defer(name string, open Opener) *Deferred {
	return &Deferred{name: name, open: open}
}

func (d *Deferred) Name() string { return d.name }

// Run opens a fresh app and runs its session.
func (d *Deferred) Run(ctx context.Context) error {
	app, err := d.open(ctx)
	if err != nil {
		return err
	}
	return app.Run(ctx)
}

// Launcher presents the top-level menu that chooses between apps.
func Launcher(schedule, notepad App) console.Menu {
	return console.Menu{
		Title: "Deskmate",
		Options: []console.Option{
			{Key: "1", Label: schedule.Name(), Action: schedule.Run},
			{Key: "2", Label: notepad.Name(), Action: notepad.Run},
			{Key: "3", Label: "Exit"},
		},
		Prompt:   "Choose an app: ",
		Invalid:  "Invalid option.",
		Farewell: farewell,
	}
}

// report prints the user message for validation and lookup failures and
// swallows them. Other errors are returned.
func report(c *console.Console, err error, notFound string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, core.ErrEmptyTitle):
		c.Println("Title cannot be empty.")
	case errors.Is(err, core.ErrInvalidDatetime):
		c.Println("Invalid date/time format. Use YYYY-MM-DD HH:MM.")
	case errors.Is(err, core.ErrInvalidID):
		c.Println("Invalid ID.")
	case errors.Is(err, core.ErrNotFound):
		c.Println(notFound)
	default:
		return err
	}
	return nil
}
