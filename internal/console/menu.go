package console

import (
	"context"
	"errors"
	"io"
)

// Action is run when its menu option is chosen.
// Returning io.EOF ends the session quietly; any other error aborts it.
type Action func(ctx context.Context) error

// Option is one numbered menu entry.
type Option struct {
	Key    string
	Label  string
	Action Action // nil marks the exit option
}

// Menu is a fixed list of options presented until exit.
type Menu struct {
	Title    string
	Options  []Option
	Prompt   string
	Invalid  string
	Farewell string
}

// Run shows the menu, dispatches one choice per input line, and repeats until
// the exit option is chosen, input ends, or ctx is done.
func (m Menu) Run(ctx context.Context, c *Console) error {
	if m.Title != "" {
		c.Printf("=== %s ===\n", m.Title)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.Println()
		for _, opt := range m.Options {
			c.Printf("%s. %s\n", opt.Key, opt.Label)
		}

		choice, err := c.Ask(m.Prompt)
		if errors.Is(err, io.EOF) {
			c.Println()
			return nil
		}
		if err != nil {
			return err
		}

		opt, ok := m.lookup(choice)
		if !ok {
			c.Println(m.Invalid)
			continue
		}
		if opt.Action == nil {
			if m.Farewell != "" {
				c.Println(m.Farewell)
			}
			return nil
		}

		if err := opt.Action(ctx); err != nil {
			if errors.Is(err, io.EOF) {
				c.Println()
				return nil
			}
			return err
		}
	}
}

func (m Menu) lookup(key string) (Option, bool) {
	for _, opt := range m.Options {
		if opt.Key == key {
			return opt, true
		}
	}
	return Option{}, false
}
