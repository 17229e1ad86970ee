package core

import (
	"io"
	"log/slog"
)

// options holds the internal configuration for a Store.
type options[T any] struct {
	logger  *slog.Logger
	sortKey func(T) string
}

// Option defines a functional option for configuring a Store.
type Option[T any] func(*options[T])

func defaultOptions[T any]() options[T] {
	return options[T]{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithLogger sets the logger for the store.
func WithLogger[T any](logger *slog.Logger) Option[T] {
	return func(o *options[T]) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithSortKey makes View order records by key instead of insertion order.
func WithSortKey[T any](key func(T) string) Option[T] {
	return func(o *options[T]) {
		o.sortKey = key
	}
}
