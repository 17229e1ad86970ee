// Package core holds the record types and the store that manages them.
package core

import "time"

// DatetimeLayout is the only accepted format for task datetimes and note timestamps.
// It is zero-padded, so lexicographic order matches chronological order.
const DatetimeLayout = "2006-01-02 15:04"

// Record is implemented by every value a Store can hold.
// WithIdentity returns a copy of the record carrying the given id.
type Record[T any] interface {
	Identity() int
	Label() string
	WithIdentity(id int) T
}

// Task is a scheduled entry of the Schedule Handler.
type Task struct {
	ID          int    `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title" validate:"notblank"`
	Datetime    string `json:"datetime" yaml:"datetime" validate:"datetime=2006-01-02 15:04"`
	Description string `json:"description" yaml:"description"`
}

func (t Task) Identity() int { return t.ID }

func (t Task) Label() string { return t.Title }

func (t Task) WithIdentity(id int) Task {
	t.ID = id
	return t
}

// Note is an entry of the Notepad.
type Note struct {
	ID        int    `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title" validate:"notblank"`
	Content   string `json:"content" yaml:"content"`
	CreatedAt string `json:"created_at" yaml:"created_at"`
}

func (n Note) Identity() int { return n.ID }

func (n Note) Label() string { return n.Title }

func (n Note) WithIdentity(id int) Note {
	n.ID = id
	return n
}

// TaskOrder sorts tasks by their datetime string.
func TaskOrder(t Task) string { return t.Datetime }

// Timestamp formats a moment the way notes record it.
func Timestamp(at time.Time) string {
	return at.Format(DatetimeLayout)
}

// EventType represents the type of change observed on a backing file.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to a store's backing file.
type Event struct {
	Type      EventType
	Path      string
	Timestamp int64 // Unix timestamp
}

func (e Event) String() string {
	return string(e.Type) + " " + e.Path
}
