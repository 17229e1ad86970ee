package fs

import (
	"time"

	"github.com/aretw0/introspection"
)

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	Path          string     `json:"path"`
	Codec         string     `json:"codec"`
	Perm          string     `json:"perm"`
	WatcherActive bool       `json:"watcher_active"`
	LastSave      *time.Time `json:"last_save,omitempty"`
}

// State implements introspection.Introspectable.
func (r *Repository[T]) State() any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return RepositoryState{
		Path:          r.path,
		Codec:         r.codec.Name(),
		Perm:          r.config.Perm.String(),
		WatcherActive: r.watcherActive,
		LastSave:      r.lastSave,
	}
}

// ComponentType implements introspection.Component.
func (r *Repository[T]) ComponentType() string {
	return "file-repository"
}

var _ introspection.Introspectable = (*Repository[struct{}])(nil)
var _ introspection.Component = (*Repository[struct{}])(nil)

func (r *Repository[T]) setWatcherActive(active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.watcherActive = active
}

func (r *Repository[T]) recordSave() {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	r.lastSave = &now
}
