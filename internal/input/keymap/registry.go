package keymap

import (
	"fmt"
	"slices"
	"sync"

	"github.com/dshills/composable/internal/input/key"
)

// GlobalLayer is the name of the bottom layer that is always active.
const GlobalLayer = "global"

// Registry manages keymaps, the active layer stack and the transient
// binding.
type Registry struct {
	mu sync.RWMutex

	keymaps map[string]*Keymap

	// active holds activated layer names, most recent last.
	active []string

	transient *transient
}

// NewRegistry creates a registry containing an empty global keymap.
func NewRegistry() *Registry {
	return &Registry{
		keymaps: map[string]*Keymap{GlobalLayer: NewKeymap(GlobalLayer)},
	}
}

// Register adds a keymap, replacing any keymap with the same name.
func (r *Registry) Register(km *Keymap) error {
	if km == nil || km.Name == "" {
		return fmt.Errorf("keymap: cannot register unnamed keymap")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keymaps[km.Name] = km
	return nil
}

// Get returns the keymap with the given name, creating it if necessary.
func (r *Registry) Get(name string) *Keymap {
	r.mu.Lock()
	defer r.mu.Unlock()
	km, ok := r.keymaps[name]
	if !ok {
		km = NewKeymap(name)
		r.keymaps[name] = km
	}
	return km
}

// Bind adds a binding to the named layer.
func (r *Registry) Bind(layer, keys, command string) error {
	km := r.Get(layer)
	r.mu.Lock()
	defer r.mu.Unlock()
	return km.Bind(keys, command)
}

// Activate pushes a layer on top of the active stack. Activating a layer
// that is already active moves it to the top.
func (r *Registry) Activate(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.keymaps[name]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKeymap, name)
	}
	r.active = slices.DeleteFunc(r.active, func(n string) bool { return n == name })
	r.active = append(r.active, name)
	return nil
}

// Deactivate removes a layer from the active stack.
func (r *Registry) Deactivate(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active = slices.DeleteFunc(r.active, func(n string) bool { return n == name })
}

// IsActive reports whether a layer is on the active stack.
func (r *Registry) IsActive(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Contains(r.active, name)
}

// Resolve looks seq up in the active layers from the top down, then in
// the global layer. The first layer that matches at all, fully or as a
// prefix, decides.
func (r *Registry) Resolve(seq key.Sequence) (string, Match) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	layers := make([]string, 0, len(r.active)+1)
	for i := len(r.active) - 1; i >= 0; i-- {
		layers = append(layers, r.active[i])
	}
	layers = append(layers, GlobalLayer)

	for _, name := range layers {
		km := r.keymaps[name]
		if km == nil {
			continue
		}
		cmd, m := km.Lookup(seq)
		if m != MatchNone {
			return cmd, m
		}
	}
	return "", MatchNone
}

// Keymaps returns the registered keymaps sorted by name.
func (r *Registry) Keymaps() []*Keymap {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Keymap, 0, len(r.keymaps))
	for _, km := range r.keymaps {
		out = append(out, km)
	}
	slices.SortFunc(out, func(a, b *Keymap) int {
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		}
		return 0
	})
	return out
}
