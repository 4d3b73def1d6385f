package macro

import (
	"slices"
	"sync"

	"github.com/dshills/composable/internal/input/key"
)

// DefaultRingSize is the number of macros a recorder remembers.
const DefaultRingSize = 8

// Recorder records key sequences for macro playback.
type Recorder struct {
	mu        sync.Mutex
	recording bool
	events    []key.Event

	// ring holds finished macros, most recent first.
	ring [][]key.Event
	size int
}

// NewRecorder creates a recorder that keeps up to size macros.
func NewRecorder(size int) *Recorder {
	if size < 1 {
		size = 1
	}
	return &Recorder{size: size}
}

// Start begins a definition. With appendLast the new keys extend the
// last macro instead of starting an empty one.
func (r *Recorder) Start(appendLast bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.recording {
		return ErrRecording
	}
	r.recording = true
	r.events = nil
	if appendLast && len(r.ring) > 0 {
		r.events = slices.Clone(r.ring[0])
		r.ring = r.ring[1:]
	}
	return nil
}

// Record adds a key event to the current definition. Does nothing if
// not recording.
func (r *Recorder) Record(ev key.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.recording {
		r.events = append(r.events, ev)
	}
}

// Stop ends the definition, drops the last trim events and pushes the
// rest onto the ring. An empty definition is discarded with ErrEmpty.
func (r *Recorder) Stop(trim int) ([]key.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.recording {
		return nil, ErrNotRecording
	}
	r.recording = false
	events := r.events
	r.events = nil
	if trim > 0 {
		events = events[:max(len(events)-trim, 0)]
	}
	if len(events) == 0 {
		return nil, ErrEmpty
	}

	r.ring = append([][]key.Event{events}, r.ring...)
	if len(r.ring) > r.size {
		r.ring = r.ring[:r.size]
	}
	return slices.Clone(events), nil
}

// Cancel abandons the definition without saving it.
func (r *Recorder) Cancel() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	was := r.recording
	r.recording = false
	r.events = nil
	return was
}

// Recording reports whether a definition is in progress.
func (r *Recorder) Recording() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.recording
}

// Len returns the number of keys recorded so far.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

// Last returns a copy of the most recent macro, or nil.
func (r *Recorder) Last() []key.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.ring) == 0 {
		return nil
	}
	return slices.Clone(r.ring[0])
}

// RingLen returns the number of stored macros.
func (r *Recorder) RingLen() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.ring)
}

// Rotate makes the next older macro the last one. The previous head
// moves to the end of the ring. It reports false with fewer than two
// macros.
func (r *Recorder) Rotate() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.ring) < 2 {
		return false
	}
	r.ring = append(r.ring[1:], r.ring[0])
	return true
}
