package hook

import (
	"slices"
	"sync"

	"github.com/dshills/composable/internal/dispatcher/execctx"
	"github.com/dshills/composable/internal/dispatcher/handler"
	"github.com/dshills/composable/internal/input"
)

// chain is one ordered hook list. Hook names are unique within it.
type chain[T Hook] struct {
	hooks []T
	// before orders a ahead of b.
	before func(a, b T) bool
}

// put replaces the hook named like h or adds it. Equal priorities keep
// registration order.
func (c *chain[T]) put(h T) {
	if i := c.index(h.Name()); i >= 0 {
		c.hooks[i] = h
	} else {
		c.hooks = append(c.hooks, h)
	}
	slices.SortStableFunc(c.hooks, func(a, b T) int {
		switch {
		case c.before(a, b):
			return -1
		case c.before(b, a):
			return 1
		}
		return 0
	})
}

func (c *chain[T]) drop(name string) bool {
	i := c.index(name)
	if i >= 0 {
		c.hooks = slices.Delete(c.hooks, i, i+1)
	}
	return i >= 0
}

func (c *chain[T]) index(name string) int {
	return slices.IndexFunc(c.hooks, func(h T) bool { return h.Name() == name })
}

func (c *chain[T]) names() []string {
	out := make([]string, len(c.hooks))
	for i, h := range c.hooks {
		out[i] = h.Name()
	}
	return out
}

// Manager holds the pre and post dispatch chains. Hooks run on a
// snapshot, so a hook may register or remove hooks while running.
type Manager struct {
	mu   sync.RWMutex
	pre  chain[PreDispatchHook]
	post chain[PostDispatchHook]
}

// NewManager returns a manager with empty chains.
func NewManager() *Manager {
	return &Manager{
		pre:  chain[PreDispatchHook]{before: func(a, b PreDispatchHook) bool { return a.Priority() > b.Priority() }},
		post: chain[PostDispatchHook]{before: func(a, b PostDispatchHook) bool { return a.Priority() < b.Priority() }},
	}
}

// RegisterPre adds h to the pre-dispatch chain, replacing a hook of the
// same name.
func (m *Manager) RegisterPre(h PreDispatchHook) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pre.put(h)
}

// RegisterPost adds h to the post-dispatch chain, replacing a hook of
// the same name.
func (m *Manager) RegisterPost(h PostDispatchHook) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.post.put(h)
}

// Register adds h to each chain whose interface it implements. The
// composition controller and the scope hook implement both.
func (m *Manager) Register(h Hook) {
	if pre, ok := h.(PreDispatchHook); ok {
		m.RegisterPre(pre)
	}
	if post, ok := h.(PostDispatchHook); ok {
		m.RegisterPost(post)
	}
}

// Unregister removes the hook called name from both chains.
func (m *Manager) Unregister(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	pre := m.pre.drop(name)
	post := m.post.drop(name)
	return pre || post
}

// RunPreDispatch reports whether dispatch should continue to the
// handler. The first hook returning false ends the chain.
func (m *Manager) RunPreDispatch(action *input.Action, ctx *execctx.ExecutionContext) bool {
	m.mu.RLock()
	hooks := slices.Clone(m.pre.hooks)
	m.mu.RUnlock()

	for _, h := range hooks {
		if !h.PreDispatch(action, ctx) {
			return false
		}
	}
	return true
}

// RunPostDispatch runs every post-dispatch hook, lowest priority first.
func (m *Manager) RunPostDispatch(action *input.Action, ctx *execctx.ExecutionContext, result *handler.Result) {
	m.mu.RLock()
	hooks := slices.Clone(m.post.hooks)
	m.mu.RUnlock()

	for _, h := range hooks {
		h.PostDispatch(action, ctx, result)
	}
}

// Names lists both chains in run order.
func (m *Manager) Names() (pre, post []string) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pre.names(), m.post.names()
}
