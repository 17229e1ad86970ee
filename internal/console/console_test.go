package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsole_ReadLine(t *testing.T) {
	c := New(strings.NewReader("first\r\n  second  \nlast"), io.Discard)

	for _, want := range []string{"first", "  second  ", "last"} {
		got, err := c.ReadLine()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := c.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}

func TestConsole_Ask(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("  Stand-up \n"), &out)

	got, err := c.Ask("Task title: ")
	require.NoError(t, err)
	assert.Equal(t, "Stand-up", got)
	assert.Equal(t, "Task title: ", out.String())
}

func testMenu(calls *[]string) Menu {
	record := func(name string) Action {
		return func(ctx context.Context) error {
			*calls = append(*calls, name)
			return nil
		}
	}
	return Menu{
		Title: "Test",
		Options: []Option{
			{Key: "1", Label: "One", Action: record("one")},
			{Key: "2", Label: "Two", Action: record("two")},
			{Key: "3", Label: "Exit"},
		},
		Prompt:   "Choose: ",
		Invalid:  "Invalid option.",
		Farewell: "Goodbye!",
	}
}

func TestMenu_DispatchesUntilExit(t *testing.T) {
	var calls []string
	var out bytes.Buffer
	c := New(strings.NewReader("1\n 2 \n9\n3\n1\n"), &out)

	require.NoError(t, testMenu(&calls).Run(context.Background(), c))

	assert.Equal(t, []string{"one", "two"}, calls)
	assert.Contains(t, out.String(), "=== Test ===")
	assert.Contains(t, out.String(), "1. One\n2. Two\n3. Exit\n")
	assert.Equal(t, 1, strings.Count(out.String(), "Invalid option."))
	assert.True(t, strings.HasSuffix(out.String(), "Goodbye!\n"))
}

func TestMenu_EndOfInputExits(t *testing.T) {
	var calls []string
	c := New(strings.NewReader("1\n"), io.Discard)

	require.NoError(t, testMenu(&calls).Run(context.Background(), c))
	assert.Equal(t, []string{"one"}, calls)
}

func TestMenu_ActionErrors(t *testing.T) {
	boom := errors.New("boom")
	m := Menu{
		Options: []Option{
			{Key: "1", Label: "Fail", Action: func(context.Context) error { return boom }},
			{Key: "2", Label: "Stop", Action: func(context.Context) error { return io.EOF }},
		},
	}

	err := m.Run(context.Background(), New(strings.NewReader("1\n"), io.Discard))
	assert.ErrorIs(t, err, boom)

	err = m.Run(context.Background(), New(strings.NewReader("2\n1\n"), io.Discard))
	assert.NoError(t, err)
}

func TestMenu_CancelledContext(t *testing.T) {
	var calls []string
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := testMenu(&calls).Run(ctx, New(strings.NewReader("1\n"), io.Discard))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, calls)
}
