package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/deskmate/pkg/core"
)

// Watch reports changes to the backing file until ctx is cancelled.
// The parent directory is watched rather than the file itself because atomic
// saves replace the file with a renamed temp file.
// Bursts of events closer than Config.Debounce collapse into the last one.
func (r *Repository[T]) Watch(ctx context.Context) (<-chan core.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	events := make(chan core.Event)
	r.setWatcherActive(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer r.setWatcherActive(false)
		defer watcher.Close()
		return r.watchLoop(ctx, watcher, events)
	}, lifecycle.WithErrorHandler(func(err error) {
		r.handleWatchError(fmt.Errorf("watcher panic: %w", err))
	}))

	return events, nil
}

func (r *Repository[T]) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, out chan<- core.Event) error {
	var (
		pending *core.Event
		timer   *time.Timer
		fire    <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				err := fmt.Errorf("watcher events channel closed")
				r.config.Logger.Error("watcher stopped", "path", r.path, "error", err)
				return err
			}
			r.config.Logger.Debug("event received", "name", event.Name, "op", event.Op.String())

			e, ok := r.toEvent(event)
			if !ok {
				continue
			}
			pending = &e
			if timer == nil {
				timer = time.NewTimer(r.config.Debounce)
			} else {
				timer.Reset(r.config.Debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			if pending == nil {
				continue
			}
			select {
			case out <- *pending:
			case <-ctx.Done():
				return nil
			}
			pending = nil

		case wErr, ok := <-watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				err := fmt.Errorf("watcher errors channel closed")
				r.config.Logger.Error("watcher stopped", "path", r.path, "error", err)
				return err
			}
			r.handleWatchError(wErr)
		}
	}
}

// toEvent maps a raw filesystem event to a store event, dropping anything
// that does not concern the backing file.
func (r *Repository[T]) toEvent(event fsnotify.Event) (core.Event, bool) {
	base := filepath.Base(event.Name)
	if base != filepath.Base(r.path) || strings.HasPrefix(base, TempFilePrefix) {
		return core.Event{}, false
	}

	eType := mapEventType(event)
	if eType == "" {
		return core.Event{}, false
	}
	return core.Event{
		Type:      eType,
		Path:      r.path,
		Timestamp: time.Now().Unix(),
	}, true
}

func mapEventType(event fsnotify.Event) core.EventType {
	switch {
	case event.Has(fsnotify.Create):
		return core.EventCreate
	case event.Has(fsnotify.Write):
		return core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return core.EventDelete
	}
	return ""
}

func (r *Repository[T]) handleWatchError(err error) {
	r.config.Logger.Error("watcher error", "path", r.path, "error", err)
	if r.config.ErrorHandler != nil {
		r.config.ErrorHandler(err)
	}
}
