// Package registry holds the in-memory task table. The table is volatile:
// it starts empty on every process start and entries are never removed.
package registry

import (
	"sync"

	"github.com/tubegrab/tubegrab/internal/domain"
)

// Registry maps task id to its current status record. Set fully replaces the
// record for an id (no partial merge); Get returns a copy, so callers can
// never observe a half-written record.
type Registry struct {
	mu    sync.RWMutex
	tasks map[string]domain.Task
}

func New() *Registry {
	return &Registry{tasks: make(map[string]domain.Task)}
}

// Get returns the record for id and whether it exists.
func (r *Registry) Get(id string) (domain.Task, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tasks[id]
	return t, ok
}

// Set replaces the record for id.
func (r *Registry) Set(id string, t domain.Task) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks[id] = t
}

// Len returns the number of tracked tasks.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tasks)
}
