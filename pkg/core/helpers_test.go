package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextID(t *testing.T) {
	assert.Equal(t, 1, NextID[Task](nil))
	assert.Equal(t, 3, NextID([]Task{{ID: 2}, {ID: 1}}))
}

func TestRemove(t *testing.T) {
	tasks := []Task{
		{ID: 1, Title: "Task A", Datetime: "2026-03-01 10:00"},
		{ID: 2, Title: "Task B", Datetime: "2026-03-02 10:00"},
	}

	remaining, removed, ok := Remove(tasks, 1)
	assert.True(t, ok)
	assert.Equal(t, 1, removed.ID)
	assert.Equal(t, []Task{tasks[1]}, remaining)
	assert.Len(t, tasks, 2, "input must not be modified")
	assert.Equal(t, 1, tasks[0].ID)

	same, _, ok := Remove(tasks, 99)
	assert.False(t, ok)
	assert.Equal(t, tasks, same)
}

func TestSortedBy(t *testing.T) {
	tasks := []Task{
		{ID: 1, Datetime: "2026-12-01 08:00"},
		{ID: 2, Datetime: "2026-01-15 23:59"},
	}
	sorted := SortedBy(tasks, TaskOrder)
	assert.Equal(t, 2, sorted[0].ID)
	assert.Equal(t, 1, tasks[0].ID)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(Task{Title: "ok", Datetime: "2026-03-01 09:00"}))
	assert.NoError(t, Validate(Note{Title: "ok"}))
	assert.ErrorIs(t, Validate(Task{Title: "ok", Datetime: "2026/03/01 09:00"}), ErrInvalidDatetime)
	assert.ErrorIs(t, Validate(Task{Title: "ok", Datetime: "2026-13-01 09:00"}), ErrInvalidDatetime)
	assert.ErrorIs(t, Validate(Note{Title: "\t"}), ErrEmptyTitle)
}

func TestTimestamp(t *testing.T) {
	at := time.Date(2026, time.February, 20, 10, 5, 30, 0, time.Local)
	assert.Equal(t, "2026-02-20 10:05", Timestamp(at))
}
