package buffer

import (
	"fmt"
	"sync"
)

// Buffer holds editable text and the markers that track it.
// All methods are thread-safe.
type Buffer struct {
	mu       sync.RWMutex
	text     []rune
	markers  map[*Marker]struct{}
	readOnly bool
	modified bool
	revision uint64
}

// New creates a new empty buffer.
func New(opts ...Option) *Buffer {
	b := &Buffer{
		text:    []rune{},
		markers: make(map[*Marker]struct{}),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewFromString creates a buffer holding s.
func NewFromString(s string, opts ...Option) *Buffer {
	return New(append([]Option{WithText(s)}, opts...)...)
}

// Len returns the number of runes in the buffer.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.text)
}

// String returns the full text.
func (b *Buffer) String() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return string(b.text)
}

// Runes returns a copy of the text.
func (b *Buffer) Runes() []rune {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]rune, len(b.text))
	copy(out, b.text)
	return out
}

// Slice returns the text in [start, end). Out of range ends are clamped.
func (b *Buffer) Slice(start, end int) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	r := b.clampRange(start, end)
	return string(b.text[r.Start:r.End])
}

// RuneAt returns the rune at offset.
func (b *Buffer) RuneAt(offset int) (rune, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if offset < 0 || offset >= len(b.text) {
		return 0, false
	}
	return b.text[offset], true
}

// Clamp limits offset to [0, Len()].
func (b *Buffer) Clamp(offset int) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.clamp(offset)
}

// ReadOnly reports whether edits are rejected.
func (b *Buffer) ReadOnly() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.readOnly
}

// SetReadOnly toggles edit rejection.
func (b *Buffer) SetReadOnly(readOnly bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.readOnly = readOnly
}

// Modified reports whether the buffer changed since the last MarkSaved.
func (b *Buffer) Modified() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.modified
}

// MarkSaved clears the modified flag.
func (b *Buffer) MarkSaved() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.modified = false
}

// Revision returns a counter incremented on every edit.
func (b *Buffer) Revision() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revision
}

// Insert inserts s at offset.
func (b *Buffer) Insert(offset int, s string) error {
	return b.Replace(offset, offset, s)
}

// Delete removes [start, end) and returns the removed text.
func (b *Buffer) Delete(start, end int) (string, error) {
	b.mu.RLock()
	var removed string
	if start >= 0 && start <= end && end <= len(b.text) {
		removed = string(b.text[start:end])
	}
	b.mu.RUnlock()

	if err := b.Replace(start, end, ""); err != nil {
		return "", err
	}
	return removed, nil
}

// Replace replaces [start, end) with s and adjusts markers.
func (b *Buffer) Replace(start, end int, s string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.readOnly {
		return ErrReadOnly
	}
	if start < 0 || end > len(b.text) {
		return fmt.Errorf("%w: [%d:%d) in buffer of %d", ErrOffsetOutOfRange, start, end, len(b.text))
	}
	if start > end {
		return fmt.Errorf("%w: [%d:%d)", ErrRangeInvalid, start, end)
	}

	ins := []rune(s)
	if start == end && len(ins) == 0 {
		return nil
	}

	out := make([]rune, 0, len(b.text)-(end-start)+len(ins))
	out = append(out, b.text[:start]...)
	out = append(out, ins...)
	out = append(out, b.text[end:]...)
	b.text = out

	for m := range b.markers {
		m.adjust(start, end, len(ins))
	}

	b.modified = true
	b.revision++
	return nil
}

// SetText replaces the whole content. Markers collapse to 0.
func (b *Buffer) SetText(s string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.text = []rune(s)
	for m := range b.markers {
		m.pos = 0
	}
	b.modified = false
	b.revision++
}

func (b *Buffer) clamp(offset int) int {
	if offset < 0 {
		return 0
	}
	if offset > len(b.text) {
		return len(b.text)
	}
	return offset
}

func (b *Buffer) clampRange(start, end int) Range {
	start, end = b.clamp(start), b.clamp(end)
	return NewRange(start, end)
}
