package buffer

import "fmt"

// InsertionType decides where a marker goes when text is inserted exactly
// at its position.
type InsertionType uint8

const (
	// StayBefore keeps the marker before text inserted at its position.
	StayBefore InsertionType = iota
	// AdvanceAfter moves the marker past text inserted at its position.
	AdvanceAfter
)

// Marker is a position that follows edits to its buffer.
// A released marker no longer moves and reports its last position.
type Marker struct {
	buf      *Buffer
	pos      int
	kind     InsertionType
	released bool
}

// NewMarker creates a marker at offset (clamped to the buffer).
func (b *Buffer) NewMarker(offset int, kind InsertionType) *Marker {
	b.mu.Lock()
	defer b.mu.Unlock()
	m := &Marker{buf: b, pos: b.clamp(offset), kind: kind}
	b.markers[m] = struct{}{}
	return m
}

// MarkerCount returns the number of live markers.
func (b *Buffer) MarkerCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.markers)
}

// Pos returns the marker's current offset.
func (m *Marker) Pos() int {
	m.buf.mu.RLock()
	defer m.buf.mu.RUnlock()
	return m.pos
}

// Set moves the marker to offset (clamped). Setting a released marker
// has no effect.
func (m *Marker) Set(offset int) {
	m.buf.mu.Lock()
	defer m.buf.mu.Unlock()
	if m.released {
		return
	}
	m.pos = m.buf.clamp(offset)
}

// Release detaches the marker from the buffer. Release is idempotent.
func (m *Marker) Release() {
	m.buf.mu.Lock()
	defer m.buf.mu.Unlock()
	m.released = true
	delete(m.buf.markers, m)
}

// Released reports whether Release was called.
func (m *Marker) Released() bool {
	m.buf.mu.RLock()
	defer m.buf.mu.RUnlock()
	return m.released
}

// String returns a string representation of the marker.
func (m *Marker) String() string {
	return fmt.Sprintf("Marker(%d)", m.Pos())
}

// adjust shifts the marker for the replacement of [start, end) by n runes.
// Called with the buffer lock held.
func (m *Marker) adjust(start, end, n int) {
	switch {
	case m.pos > end || (m.pos == end && end > start):
		m.pos += n - (end - start)
	case m.pos > start:
		m.pos = start
		if m.kind == AdvanceAfter {
			m.pos += n
		}
	case m.pos == start && m.kind == AdvanceAfter:
		m.pos += n
	}
}
