package deskmate

import (
	"context"
	_ "embed"
	"log/slog"

	"github.com/aretw0/deskmate/internal/platform"
	"github.com/aretw0/deskmate/pkg/core"
)

// Version exposes the version of the module.
//
//go:embed VERSION
var Version string

// --- Types ---

// Task is a public alias for a scheduled task.
type Task = core.Task

// Note is a public alias for a note.
type Note = core.Note

// Store is a public alias for the record store.
type Store[T core.Record[T]] = core.Store[T]

// DefaultConfigFile is read from the working directory when present.
const DefaultConfigFile = platform.DefaultConfigFile

// Config is a public alias for the file-level configuration.
type Config = platform.Config

// --- Configuration ---

// Option defines a functional option for opening stores.
type Option = platform.Option

// WithLogger sets the logger for stores and repositories.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return platform.WithConfig(cfg)
}

// WithConfigFile loads configuration from a YAML file.
func WithConfigFile(path string) Option {
	return platform.WithConfigFile(path)
}

// WithDir resolves relative data file paths against dir.
func WithDir(dir string) Option {
	return platform.WithDir(dir)
}

// WithScheduleFile overrides the task data file.
func WithScheduleFile(path string) Option {
	return platform.WithScheduleFile(path)
}

// WithNotepadFile overrides the note data file.
func WithNotepadFile(path string) Option {
	return platform.WithNotepadFile(path)
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return platform.DefaultConfig()
}

// LoadConfig reads a YAML configuration file over the defaults.
func LoadConfig(path string, required bool) (Config, error) {
	return platform.LoadConfig(path, required)
}

// --- Factories ---

// OpenSchedule opens and loads the task store.
func OpenSchedule(ctx context.Context, opts ...Option) (*Store[Task], error) {
	return platform.OpenSchedule(ctx, opts...)
}

// OpenNotepad opens and loads the note store.
func OpenNotepad(ctx context.Context, opts ...Option) (*Store[Note], error) {
	return platform.OpenNotepad(ctx, opts...)
}
