package confkit

import "sync"

// Standard accessor names published by Bootstrap.
const (
	NameEnv       = "env"
	NameEnvString = "env.string"
	NameConfig    = "config"
)

// Registry publishes accessors under stable names so application code can
// share process-wide instances without a mutable package-level global. The
// composition root builds one Registry at startup and passes it down;
// reads after that point are lock-cheap and concurrent-safe.
type Registry struct {
	mu        sync.RWMutex
	accessors map[string]*Accessor
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		accessors: make(map[string]*Accessor),
	}
}

// Publish registers an accessor under name, replacing any previous entry.
func (r *Registry) Publish(name string, a *Accessor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accessors[name] = a
}

// Accessor returns the accessor published under name.
func (r *Registry) Accessor(name string) (*Accessor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.accessors[name]
	return a, ok
}

// Names returns the published names in unspecified order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.accessors))
	for name := range r.accessors {
		names = append(names, name)
	}
	return names
}
