package dispatcher

import (
	"slices"
	"sort"
	"sync"

	"github.com/dshills/composable/internal/dispatcher/handler"
)

// Command describes a registered command.
type Command struct {
	Name        string
	Description string
}

type registration struct {
	handler     handler.Handler
	description string
}

// Registry maps command names to handlers. Several handlers may share a
// name; the highest priority one runs.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string][]registration
}

// NewRegistry creates a new command registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string][]registration)}
}

// Register adds a handler for a command name.
func (r *Registry) Register(name, description string, h handler.Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	regs := append(r.handlers[name], registration{handler: h, description: description})
	slices.SortStableFunc(regs, func(a, b registration) int {
		return b.handler.Priority() - a.handler.Priority()
	})
	r.handlers[name] = regs
}

// Unregister removes all handlers for a command name.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.handlers, name)
}

// Get returns the highest priority handler for a command, or nil.
func (r *Registry) Get(name string) handler.Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()
	regs := r.handlers[name]
	if len(regs) == 0 {
		return nil
	}
	return regs[0].handler
}

// Has returns true if a handler is registered for the command.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers[name]) > 0
}

// Commands returns all registered commands sorted by name.
func (r *Registry) Commands() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cmds := make([]Command, 0, len(r.handlers))
	for name, regs := range r.handlers {
		if len(regs) == 0 {
			continue
		}
		cmds = append(cmds, Command{Name: name, Description: regs[0].description})
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name < cmds[j].Name })
	return cmds
}

// Count returns the number of registered commands.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers)
}
