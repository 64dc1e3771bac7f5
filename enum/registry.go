package enum

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"
)

// registry holds the published values of every closed enumeration, keyed by
// enumeration name. Each name is written once and read thereafter.
type registry struct {
	mu     sync.RWMutex
	values map[string][]Constant
}

var enumerations = &registry{values: make(map[string][]Constant)}

func (r *registry) has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.values[name]
	return ok
}

func (r *registry) publish(name string, values []Constant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.values[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	slog.Debug("Registering enumeration.", "name", name, "members", len(values))
	r.values[name] = slices.Clone(values)
	return nil
}

func (r *registry) lookup(name string) []Constant {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.values[name])
}
