package keymap

import (
	"github.com/dshills/composable/internal/input"
	"github.com/dshills/composable/internal/input/key"
)

// Disposable releases a registration. Dispose is idempotent.
type Disposable interface {
	Dispose()
}

// FireFunc runs a transient binding with the prefix argument typed
// before its key.
type FireFunc func(arg input.PrefixArg) error

type transient struct {
	reg      *Registry
	key      key.Event
	fire     FireFunc
	onExpire func()
}

// Dispose removes the binding if it is still installed and runs onExpire.
func (t *transient) Dispose() {
	t.reg.mu.Lock()
	installed := t.reg.transient == t
	if installed {
		t.reg.transient = nil
	}
	t.reg.mu.Unlock()

	if installed && t.onExpire != nil {
		t.onExpire()
	}
}

// ArmOnce installs a one-shot binding for ev above every layer. Any
// previous transient binding is disposed first.
func (r *Registry) ArmOnce(ev key.Event, fire FireFunc, onExpire func()) Disposable {
	t := &transient{reg: r, key: ev, fire: fire, onExpire: onExpire}

	r.mu.RLock()
	prev := r.transient
	r.mu.RUnlock()
	if prev != nil {
		prev.Dispose()
	}

	r.mu.Lock()
	r.transient = t
	r.mu.Unlock()
	return t
}

// TakeTransient consumes the transient binding if ev is its key. The
// binding is removed without calling onExpire.
func (r *Registry) TakeTransient(ev key.Event) (FireFunc, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := r.transient
	if t == nil || t.key != ev {
		return nil, false
	}
	r.transient = nil
	return t.fire, true
}

// TransientKey returns the key of the armed transient binding.
func (r *Registry) TransientKey() (key.Event, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.transient == nil {
		return key.Event{}, false
	}
	return r.transient.key, true
}
