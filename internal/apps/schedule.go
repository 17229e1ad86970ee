package apps

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aretw0/deskmate/internal/console"
	"github.com/aretw0/deskmate/pkg/core"
)

// ScheduleName is the title of the Schedule Handler menu.
const ScheduleName = "Schedule Handler"

// Schedule is the Schedule Handler session.
type Schedule struct {
	store   *core.Store[core.Task]
	console *console.Console
}

// NewSchedule creates a Schedule Handler over store.
func NewSchedule(store *core.Store[core.Task], c *console.Console) *Schedule {
	return &Schedule{store: store, console: c}
}

func (s *Schedule) Name() string { return ScheduleName }

// Menu returns the add/view/delete/exit menu.
func (s *Schedule) Menu() console.Menu {
	return console.Menu{
		Title: s.Name(),
		Options: []console.Option{
			{Key: "1", Label: "Add task", Action: s.Add},
			{Key: "2", Label: "View tasks", Action: s.View},
			{Key: "3", Label: "Delete task", Action: s.Delete},
			{Key: "4", Label: "Exit"},
		},
		Prompt:   promptChoice,
		Invalid:  invalidApp,
		Farewell: farewell,
	}
}

// Run reloads the store from its file and starts the session.
func (s *Schedule) Run(ctx context.Context) error {
	if _, err := s.store.Load(ctx); err != nil {
		return err
	}
	return s.Menu().Run(ctx, s.console)
}

// Add asks for a title, datetime and description and stores the task.
// The datetime is checked before the description is requested.
func (s *Schedule) Add(ctx context.Context) error {
	title, err := s.console.Ask("Task title: ")
	if err != nil {
		return err
	}
	if title == "" {
		return report(s.console, core.ErrEmptyTitle, "")
	}

	when, err := s.console.Ask("Date and time (YYYY-MM-DD HH:MM): ")
	if err != nil {
		return err
	}
	draft := core.Task{Title: title, Datetime: when}
	if err := core.Validate(draft); err != nil {
		return report(s.console, err, "")
	}

	// End of input here leaves the description empty.
	draft.Description, err = s.console.Ask("Description (optional): ")
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	task, err := s.store.Add(ctx, draft)
	if err != nil {
		return report(s.console, err, "")
	}
	s.console.Printf("Task '%s' scheduled for %s.\n", task.Title, task.Datetime)
	return nil
}

// View lists the tasks in chronological order.
func (s *Schedule) View(ctx context.Context) error {
	tasks, err := s.store.View("")
	if err != nil {
		return err
	}
	RenderTasks(s.console.Out(), tasks)
	return nil
}

// Delete lists the tasks, then removes the one whose id is entered.
func (s *Schedule) Delete(ctx context.Context) error {
	if err := s.View(ctx); err != nil {
		return err
	}
	if s.store.Len() == 0 {
		return nil
	}

	raw, err := s.console.Prompt("Enter task ID to delete: ")
	if err != nil {
		return err
	}
	if _, err := s.store.Delete(ctx, raw); err != nil {
		return report(s.console, err, "Task not found.")
	}
	s.console.Println("Task deleted.")
	return nil
}

// RenderTasks writes tasks in the order given.
func RenderTasks(w io.Writer, tasks []core.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "No scheduled tasks.")
		return
	}
	fmt.Fprintln(w, "\n--- Scheduled Tasks ---")
	for _, t := range tasks {
		fmt.Fprintf(w, "[%d] %s | %s\n", t.ID, t.Title, t.Datetime)
		if t.Description != "" {
			fmt.Fprintf(w, "     %s\n", t.Description)
		}
	}
	fmt.Fprintln(w)
}
