package core

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
)

// Store manages one ordered collection of records backed by a Repository.
// The whole collection is held in memory and rewritten on every mutation.
type Store[T Record[T]] struct {
	mu      sync.RWMutex
	repo    Repository[T]
	records []T
	opts    options[T]
}

// NewStore creates a Store over repo. Call Load before reading.
func NewStore[T Record[T]](repo Repository[T], opts ...Option[T]) *Store[T] {
	o := defaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}
	return &Store[T]{repo: repo, opts: o}
}

// Load reads the backing collection into memory, replacing what was held.
func (s *Store[T]) Load(ctx context.Context) ([]T, error) {
	records, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", s.repo.Path(), err)
	}

	s.mu.Lock()
	s.records = records
	s.mu.Unlock()

	s.opts.logger.Debug("store loaded", "path", s.repo.Path(), "records", len(records))
	return slices.Clone(records), nil
}

// Save persists records as the full collection and adopts them in memory.
func (s *Store[T]) Save(ctx context.Context, records []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(ctx, slices.Clone(records))
}

func (s *Store[T]) saveLocked(ctx context.Context, records []T) error {
	if err := s.repo.Save(ctx, records); err != nil {
		return fmt.Errorf("save %s: %w", s.repo.Path(), err)
	}
	s.records = records
	s.opts.logger.Debug("store saved", "path", s.repo.Path(), "records", len(records))
	return nil
}

// Records returns the collection in insertion order.
func (s *Store[T]) Records() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.records)
}

// Len returns the number of records held.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// NextID returns the id the next added record will receive.
func (s *Store[T]) NextID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return NextID(s.records)
}

// Add validates draft, assigns it the next id, appends it and persists the
// collection. Validation failures return before anything is touched.
func (s *Store[T]) Add(ctx context.Context, draft T) (T, error) {
	var zero T
	if err := Validate(draft); err != nil {
		return zero, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := draft.WithIdentity(NextID(s.records))
	next := append(slices.Clone(s.records), rec)
	if err := s.saveLocked(ctx, next); err != nil {
		return zero, err
	}
	return rec, nil
}

// View returns the records in display order, keeping only those whose label
// matches pattern. An empty pattern keeps everything.
func (s *Store[T]) View(pattern string) ([]T, error) {
	s.mu.RLock()
	records := append([]T{}, s.records...)
	s.mu.RUnlock()

	if s.opts.sortKey != nil {
		records = SortedBy(records, s.opts.sortKey)
	}
	if pattern == "" {
		return records, nil
	}
	return FilterByLabel(records, pattern)
}

// Delete removes the record whose id is rawID and persists the remainder.
// It returns ErrInvalidID when rawID is not an integer and ErrNotFound when no
// record matches; in both cases the collection is unchanged.
func (s *Store[T]) Delete(ctx context.Context, rawID string) (T, error) {
	var zero T
	id, err := strconv.Atoi(strings.TrimSpace(rawID))
	if err != nil {
		return zero, fmt.Errorf("%w: %q", ErrInvalidID, rawID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	remaining, removed, ok := Remove(s.records, id)
	if !ok {
		return zero, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if err := s.saveLocked(ctx, remaining); err != nil {
		return zero, err
	}
	return removed, nil
}

// Watch forwards change events of the backing file if the repository supports it.
func (s *Store[T]) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := s.repo.(Watchable)
	if !ok {
		return nil, fmt.Errorf("repository %s does not support watching", s.repo.Path())
	}
	return w.Watch(ctx)
}

// NextID returns max(ids)+1, or 1 for an empty collection.
func NextID[T Record[T]](records []T) int {
	highest := 0
	for _, r := range records {
		highest = max(highest, r.Identity())
	}
	return highest + 1
}

// Remove returns records without the one carrying id.
// The input slice is never modified.
func Remove[T Record[T]](records []T, id int) (remaining []T, removed T, ok bool) {
	idx := slices.IndexFunc(records, func(r T) bool { return r.Identity() == id })
	if idx < 0 {
		return records, removed, false
	}
	remaining = make([]T, 0, len(records)-1)
	remaining = append(remaining, records[:idx]...)
	remaining = append(remaining, records[idx+1:]...)
	return remaining, records[idx], true
}

// SortedBy returns a copy of records in ascending order of key.
// Records with equal keys keep their relative order.
func SortedBy[T any](records []T, key func(T) string) []T {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b T) int {
		return strings.Compare(key(a), key(b))
	})
	return sorted
}

// FilterByLabel keeps records whose label matches the glob pattern, ignoring case.
func FilterByLabel[T Record[T]](records []T, pattern string) ([]T, error) {
	pattern = strings.ToLower(pattern)
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: %q", doublestar.ErrBadPattern, pattern)
	}

	kept := []T{}
	for _, r := range records {
		ok, err := doublestar.Match(pattern, strings.ToLower(r.Label()))
		if err != nil {
			return nil, err
		}
		if ok {
			kept = append(kept, r)
		}
	}
	return kept, nil
}
