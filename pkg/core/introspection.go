package core

import (
	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Path           string `json:"path"`
	Records        int    `json:"records"`
	NextID         int    `json:"next_id"`
	Sorted         bool   `json:"sorted"`
	RepositoryType string `json:"repository_type"`
}

// State implements introspection.Introspectable.
func (s *Store[T]) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	repoType := "repository"
	if comp, ok := s.repo.(introspection.Component); ok {
		repoType = comp.ComponentType()
	}

	return StoreState{
		Path:           s.repo.Path(),
		Records:        len(s.records),
		NextID:         NextID(s.records),
		Sorted:         s.opts.sortKey != nil,
		RepositoryType: repoType,
	}
}

// ComponentType implements introspection.Component.
func (s *Store[T]) ComponentType() string {
	return "store"
}

var _ introspection.Introspectable = (*Store[Task])(nil)
var _ introspection.Component = (*Store[Note])(nil)
