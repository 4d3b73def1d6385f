package engine

import (
	"sync"

	"github.com/dshills/composable/internal/engine/buffer"
)

// KillRing stores killed text, most recent first.
type KillRing struct {
	mu      sync.Mutex
	entries []string
	max     int
	yank    int
}

// NewKillRing creates a ring holding at most max entries.
func NewKillRing(max int) *KillRing {
	if max <= 0 {
		max = DefaultKillRingSize
	}
	return &KillRing{max: max}
}

// Push adds text as the newest entry.
func (k *KillRing) Push(text string) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.entries = append([]string{text}, k.entries...)
	if len(k.entries) > k.max {
		k.entries = k.entries[:k.max]
	}
	k.yank = 0
}

// Append joins text onto the newest entry, before it when prepend is set.
// With an empty ring it behaves like Push.
func (k *KillRing) Append(text string, prepend bool) {
	k.mu.Lock()
	if len(k.entries) == 0 {
		k.mu.Unlock()
		k.Push(text)
		return
	}
	defer k.mu.Unlock()
	if prepend {
		k.entries[0] = text + k.entries[0]
	} else {
		k.entries[0] += text
	}
	k.yank = 0
}

// Current returns the entry a yank would insert.
func (k *KillRing) Current() (string, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if len(k.entries) == 0 {
		return "", false
	}
	return k.entries[k.yank], true
}

// Rotate moves the yank pointer n entries towards older kills.
func (k *KillRing) Rotate(n int) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if len(k.entries) == 0 {
		return
	}
	k.yank = ((k.yank+n)%len(k.entries) + len(k.entries)) % len(k.entries)
}

// Len returns the number of entries.
func (k *KillRing) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.entries)
}

// Entries returns a copy of the entries, most recent first.
func (k *KillRing) Entries() []string {
	k.mu.Lock()
	defer k.mu.Unlock()
	return append([]string(nil), k.entries...)
}

// markRing remembers previous marks as live markers.
type markRing struct {
	markers []*buffer.Marker
	max     int
}

func newMarkRing(max int) *markRing {
	return &markRing{max: max}
}

func (r *markRing) push(m *buffer.Marker) {
	r.markers = append(r.markers, m)
	if len(r.markers) > r.max {
		r.markers[0].Release()
		r.markers = r.markers[1:]
	}
}

func (r *markRing) pop() *buffer.Marker {
	if len(r.markers) == 0 {
		return nil
	}
	m := r.markers[len(r.markers)-1]
	r.markers = r.markers[:len(r.markers)-1]
	return m
}

// rotateIn puts m at the far end of the ring, so it is popped last.
// Callers pop before rotating in, so the ring never overflows here.
func (r *markRing) rotateIn(m *buffer.Marker) {
	r.markers = append([]*buffer.Marker{m}, r.markers...)
}

func (r *markRing) len() int {
	return len(r.markers)
}
