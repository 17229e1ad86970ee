package platform

import (
	"log/slog"
)

// options holds the internal configuration used to open stores.
type options struct {
	logger     *slog.Logger
	config     Config
	configFile string
	dir        string
}

// Option defines a functional option for opening stores.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		config: DefaultConfig(),
	}
}

// WithLogger sets the logger handed to stores and repositories.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.config = cfg
	}
}

// WithConfigFile loads configuration from a YAML file before other options apply.
func WithConfigFile(path string) Option {
	return func(o *options) {
		o.configFile = path
	}
}

// WithDir resolves relative data file paths against dir instead of the working directory.
func WithDir(dir string) Option {
	return func(o *options) {
		o.dir = dir
	}
}

// WithScheduleFile overrides the task data file.
func WithScheduleFile(path string) Option {
	return func(o *options) {
		o.config.ScheduleFile = path
	}
}

// WithNotepadFile overrides the note data file.
func WithNotepadFile(path string) Option {
	return func(o *options) {
		o.config.NotepadFile = path
	}
}
