package platform

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/aretw0/deskmate/pkg/adapters/fs"
	"github.com/aretw0/deskmate/pkg/core"
)

// resolve applies opts, loading the config file when one was named.
func resolve(opts ...Option) (*options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.configFile != "" {
		cfg, err := LoadConfig(o.configFile, true)
		if err != nil {
			return nil, err
		}
		o.config = cfg
		// Explicit file overrides win over the loaded file.
		for _, opt := range opts {
			opt(o)
		}
		o.configFile = ""
	}

	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o, nil
}

func (o *options) path(name string) string {
	if o.dir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(o.dir, name)
}

// OpenSchedule opens and loads the task store.
func OpenSchedule(ctx context.Context, opts ...Option) (*core.Store[core.Task], error) {
	o, err := resolve(opts...)
	if err != nil {
		return nil, err
	}
	repo := fs.NewRepository[core.Task](fs.Config{
		Path:   o.path(o.config.ScheduleFile),
		Logger: o.logger.With("store", "schedule"),
	})
	store := core.NewStore[core.Task](repo,
		core.WithLogger[core.Task](o.logger.With("store", "schedule")),
		core.WithSortKey(core.TaskOrder),
	)
	if _, err := store.Load(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

// OpenNotepad opens and loads the note store.
func OpenNotepad(ctx context.Context, opts ...Option) (*core.Store[core.Note], error) {
	o, err := resolve(opts...)
	if err != nil {
		return nil, err
	}
	repo := fs.NewRepository[core.Note](fs.Config{
		Path:   o.path(o.config.NotepadFile),
		Logger: o.logger.With("store", "notepad"),
	})
	store := core.NewStore[core.Note](repo,
		core.WithLogger[core.Note](o.logger.With("store", "notepad")),
	)
	if _, err := store.Load(ctx); err != nil {
		return nil, err
	}
	return store, nil
}
