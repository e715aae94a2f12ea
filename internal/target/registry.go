package target

import "sync"

// Registry tracks the targets mounted on a page, by element id.
type Registry struct {
	mu      sync.RWMutex
	targets map[string]Target
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{targets: make(map[string]Target)}
}

// Mount binds a target to an id, replacing any previous binding.
func (r *Registry) Mount(id string, t Target) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.targets[id] = t
}

// Unmount removes the target bound to id.
func (r *Registry) Unmount(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.targets, id)
}

// Get returns the target bound to id, or nil when nothing is mounted there.
func (r *Registry) Get(id string) Target {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.targets[id]
	if !ok {
		return nil
	}
	return t
}

// Len returns the number of mounted targets.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.targets)
}
