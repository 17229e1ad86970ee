package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultPerm is the mode used for data files unless Config.Perm is set.
const DefaultPerm os.FileMode = 0644

// Config holds the configuration for a file-backed repository.
type Config struct {
	Path         string
	Perm         os.FileMode
	Codec        Codec // Picked from the Path extension when nil.
	Logger       *slog.Logger
	ErrorHandler func(error) // Receives watcher failures that cannot be returned.
	Debounce     time.Duration
}

// Repository implements core.Repository over a single file holding the whole collection.
type Repository[T any] struct {
	path   string
	codec  Codec
	config Config

	mu            sync.RWMutex
	watcherActive bool
	lastSave      *time.Time
}

// NewRepository creates a new file-backed repository.
func NewRepository[T any](config Config) *Repository[T] {
	if config.Perm == 0 {
		config.Perm = DefaultPerm
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if config.Debounce == 0 {
		config.Debounce = 50 * time.Millisecond
	}
	codec := config.Codec
	if codec == nil {
		codec = CodecFor(config.Path)
	}
	return &Repository[T]{
		path:   config.Path,
		codec:  codec,
		config: config,
	}
}

// Path returns the backing filename.
func (r *Repository[T]) Path() string {
	return r.path
}

// Load reads and decodes the backing file.
// A missing file is an empty collection; a malformed one is an error.
func (r *Repository[T]) Load(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if errors.Is(err, iofs.ErrNotExist) {
		r.config.Logger.Debug("data file missing, starting empty", "path", r.path)
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", r.path, err)
	}

	var records []T
	if err := r.codec.Decode(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", r.path, err)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// Save encodes records and atomically replaces the backing file.
func (r *Repository[T]) Save(ctx context.Context, records []T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if records == nil {
		records = []T{}
	}

	data, err := r.codec.Encode(records)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", r.path, err)
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if err := writeFileAtomic(r.path, data, r.config.Perm); err != nil {
		return err
	}

	r.recordSave()
	r.config.Logger.Debug("data file written", "path", r.path, "records", len(records), "bytes", len(data))
	return nil
}
