package apps

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aretw0/deskmate/internal/console"
	"github.com/aretw0/deskmate/pkg/core"
)

// NotepadName is the title of the Notepad menu.
const NotepadName = "Notepad"

// Notepad is the Notepad session.
type Notepad struct {
	store   *core.Store[core.Note]
	console *console.Console
	now     func() time.Time
}

// NotepadOption configures a Notepad.
type NotepadOption func(*Notepad)

// WithClock replaces the clock used to stamp new notes.
func WithClock(now func() time.Time) NotepadOption {
	return func(n *Notepad) {
		n.now = now
	}
}

// NewNotepad creates a Notepad over store.
func NewNotepad(store *core.Store[core.Note], c *console.Console, opts ...NotepadOption) *Notepad {
	n := &Notepad{store: store, console: c, now: time.Now}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func (n *Notepad) Name() string { return NotepadName }

// Menu returns the add/view/delete/exit menu.
func (n *Notepad) Menu() console.Menu {
	return console.Menu{
		Title: n.Name(),
		Options: []console.Option{
			{Key: "1", Label: "Add note", Action: n.Add},
			{Key: "2", Label: "View notes", Action: n.View},
			{Key: "3", Label: "Delete note", Action: n.Delete},
			{Key: "4", Label: "Exit"},
		},
		Prompt:   promptChoice,
		Invalid:  invalidApp,
		Farewell: farewell,
	}
}

// Run reloads the store from its file and starts the session.
func (n *Notepad) Run(ctx context.Context) error {
	if _, err := n.store.Load(ctx); err != nil {
		return err
	}
	return n.Menu().Run(ctx, n.console)
}

// Add asks for a title and multi-line content and stores the note.
func (n *Notepad) Add(ctx context.Context) error {
	title, err := n.console.Ask("Note title: ")
	if err != nil {
		return err
	}
	if title == "" {
		return report(n.console, core.ErrEmptyTitle, "")
	}

	n.console.Println("Note content (press Enter twice to finish):")
	content, err := n.readContent()
	if err != nil {
		return err
	}

	note, err := n.store.Add(ctx, core.Note{
		Title:     title,
		Content:   content,
		CreatedAt: core.Timestamp(n.now()),
	})
	if err != nil {
		return report(n.console, err, "")
	}
	n.console.Printf("Note '%s' saved.\n", note.Title)
	return nil
}

// readContent collects lines until an empty line follows another empty line.
// End of input also finishes the note.
func (n *Notepad) readContent() (string, error) {
	var lines []string
	for {
		line, err := n.console.ReadLine()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
		if line == "" && len(lines) > 0 && lines[len(lines)-1] == "" {
			break
		}
		lines = append(lines, line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

// View lists the notes in insertion order.
func (n *Notepad) View(ctx context.Context) error {
	notes, err := n.store.View("")
	if err != nil {
		return err
	}
	RenderNotes(n.console.Out(), notes)
	return nil
}

// Delete lists the notes, then removes the one whose id is entered.
func (n *Notepad) Delete(ctx context.Context) error {
	if err := n.View(ctx); err != nil {
		return err
	}
	if n.store.Len() == 0 {
		return nil
	}

	raw, err := n.console.Prompt("Enter note ID to delete: ")
	if err != nil {
		return err
	}
	if _, err := n.store.Delete(ctx, raw); err != nil {
		return report(n.console, err, "Note not found.")
	}
	n.console.Println("Note deleted.")
	return nil
}

// RenderNotes writes notes in the order given.
func RenderNotes(w io.Writer, notes []core.Note) {
	if len(notes) == 0 {
		fmt.Fprintln(w, "No notes found.")
		return
	}
	fmt.Fprintln(w, "\n--- Notes ---")
	for _, note := range notes {
		fmt.Fprintf(w, "[%d] %s (%s)\n", note.ID, note.Title, note.CreatedAt)
		if note.Content != "" {
			fmt.Fprintf(w, "     %s\n", note.Content)
		}
	}
	fmt.Fprintln(w)
}
