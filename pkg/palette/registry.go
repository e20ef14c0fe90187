package palette

import (
	"fmt"
	"sync"
)

// Registry holds the known presets. It is an explicit object passed to
// whichever component needs lookups; there is no package-level registry.
// All methods are safe for concurrent use, since imports may register
// presets while request handlers read them.
type Registry struct {
	mu          sync.RWMutex
	presets     map[string]Preset
	order       []string
	defaultName string
}

// NewRegistry creates a registry seeded with the given presets. The first
// preset becomes the fallback default.
func NewRegistry(presets ...Preset) (*Registry, error) {
	if len(presets) == 0 {
		return nil, fmt.Errorf("registry needs at least one preset to act as default")
	}
	r := &Registry{
		presets:     make(map[string]Preset, len(presets)),
		defaultName: presets[0].Name,
	}
	for _, p := range presets {
		if err := r.Register(p); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// NewBuiltinRegistry creates a registry with the built-in presets, with
// "default" as the fallback.
func NewBuiltinRegistry() *Registry {
	r, err := NewRegistry(Builtins()...)
	if err != nil {
		// Builtins are compile-time tables; this cannot fail.
		panic(err)
	}
	return r
}

// Register adds or replaces a preset. Replacing keeps the original
// position in the listing order.
func (r *Registry) Register(p Preset) error {
	if p.Name == "" {
		return fmt.Errorf("preset name must not be empty")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.presets[p.Name]; !exists {
		r.order = append(r.order, p.Name)
	}
	r.presets[p.Name] = p
	return nil
}

// Remove deletes a preset by name and reports whether it was present.
// The default preset cannot be removed; lookups must always resolve.
func (r *Registry) Remove(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if name == r.defaultName {
		return false
	}
	if _, ok := r.presets[name]; !ok {
		return false
	}
	delete(r.presets, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Get returns the preset with the given name.
func (r *Registry) Get(name string) (Preset, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.presets[name]
	return p, ok
}

// Has reports whether a preset with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Lookup returns the named preset, falling back to the default preset
// when the name is unknown. Unknown names are never an error: selection
// values arrive from cookies and query strings and are corrected, not
// rejected.
func (r *Registry) Lookup(name string) Preset {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if p, ok := r.presets[name]; ok {
		return p
	}
	return r.presets[r.defaultName]
}

// Default returns the fallback preset.
func (r *Registry) Default() Preset {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.presets[r.defaultName]
}

// DefaultName returns the name of the fallback preset.
func (r *Registry) DefaultName() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaultName
}

// Names returns the preset names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Presets returns all presets in registration order.
func (r *Registry) Presets() []Preset {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Preset, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.presets[name])
	}
	return out
}

// Len returns the number of registered presets.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
