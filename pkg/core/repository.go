package core

import "context"

// Repository defines the contract for persisting a whole collection.
// Collections are always read and written in full; there are no partial writes.
type Repository[T any] interface {
	// Load returns every stored record in file order.
	// A missing backing file yields an empty collection, not an error.
	Load(ctx context.Context) ([]T, error)

	// Save overwrites the backing storage with records.
	Save(ctx context.Context, records []T) error

	// Path identifies the backing storage (e.g. a filename).
	Path() string
}

// Watchable defines an interface for repositories that can report external changes.
type Watchable interface {
	Watch(ctx context.Context) (<-chan Event, error)
}
