package engine

import (
	"fmt"
	"io"
	"sync"
	"unicode/utf8"

	"github.com/dshills/composable/internal/engine/buffer"
	"github.com/dshills/composable/internal/engine/cursor"
	"github.com/dshills/composable/internal/engine/history"
)

// Re-export commonly used types for convenience.
type (
	// Range represents a rune range in the buffer.
	Range = buffer.Range

	// Selection represents the region as mark (anchor) and point (head).
	Selection = cursor.Selection

	// Marker is a position that follows edits.
	Marker = buffer.Marker
)

// Engine is the editing state of one buffer.
//
// All operations are thread-safe and can be called from multiple goroutines.
type Engine struct {
	mu sync.RWMutex

	buf     *buffer.Buffer
	history *history.History

	point      *buffer.Marker
	mark       *buffer.Marker
	markActive bool
	markRing   *markRing

	kills *KillRing
	// Consecutive kills append to the same kill ring entry.
	killedThisCommand bool
	lastCommandKilled bool
	lastKillPos       int

	readOnly    bool
	indentWidth int
	maxUndo     int
	initContent string
}

// New creates a new Engine with the given options.
func New(opts ...Option) *Engine {
	e := &Engine{
		markRing:    newMarkRing(DefaultMarkRingSize),
		kills:       NewKillRing(DefaultKillRingSize),
		indentWidth: DefaultIndentWidth,
		maxUndo:     DefaultMaxUndoEntries,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.buf = buffer.NewFromString(e.initContent)
	e.history = history.New(e.maxUndo)
	e.point = e.buf.NewMarker(0, buffer.AdvanceAfter)
	return e
}

// NewFromReader creates an Engine from an io.Reader.
func NewFromReader(r io.Reader, opts ...Option) (*Engine, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("engine: read content: %w", err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("engine: content is not valid UTF-8")
	}
	return New(append([]Option{WithContent(string(data))}, opts...)...), nil
}

// WriteTo writes the buffer content to w.
func (e *Engine) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, e.buf.String())
	return int64(n), err
}

// Buffer returns the underlying buffer for read access.
// Edits should go through the engine so they are recorded for undo.
func (e *Engine) Buffer() *buffer.Buffer {
	return e.buf
}

// Text returns the full buffer content.
func (e *Engine) Text() string {
	return e.buf.String()
}

// Len returns the buffer length in runes.
func (e *Engine) Len() int {
	return e.buf.Len()
}

// Slice returns the text in [start, end).
func (e *Engine) Slice(start, end int) string {
	return e.buf.Slice(start, end)
}

// ReadOnly reports whether edits are rejected.
func (e *Engine) ReadOnly() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.readOnly
}

// SetReadOnly toggles edit rejection.
func (e *Engine) SetReadOnly(readOnly bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.readOnly = readOnly
}

// Modified reports unsaved changes.
func (e *Engine) Modified() bool {
	return e.buf.Modified()
}

// MarkSaved clears the modified flag.
func (e *Engine) MarkSaved() {
	e.buf.MarkSaved()
}

// IndentWidth returns the configured indentation step.
func (e *Engine) IndentWidth() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.indentWidth
}

// Point returns the cursor offset.
func (e *Engine) Point() int {
	return e.point.Pos()
}

// SetPoint moves the cursor, clamped to the buffer.
func (e *Engine) SetPoint(pos int) {
	e.point.Set(pos)
}

// HasMark reports whether a mark was ever set.
func (e *Engine) HasMark() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.mark != nil
}

// Mark returns the mark offset, or point when no mark was ever set.
func (e *Engine) Mark() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.mark == nil {
		return e.point.Pos()
	}
	return e.mark.Pos()
}

// MarkActive reports whether the region is active.
func (e *Engine) MarkActive() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.markActive && e.mark != nil
}

// SetMark pushes the previous mark onto the mark ring, sets the mark at
// pos and activates it.
func (e *Engine) SetMark(pos int) {
	e.PushMark(pos, true)
}

// PushMark pushes the previous mark onto the mark ring and sets a new mark
// at pos. The region is active afterwards only if activate is set.
func (e *Engine) PushMark(pos int, activate bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.mark != nil {
		e.markRing.push(e.mark)
	}
	e.mark = e.buf.NewMarker(pos, buffer.StayBefore)
	e.markActive = activate
}

// ActivateMark activates the existing mark. It reports false when no mark
// was ever set.
func (e *Engine) ActivateMark() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.mark == nil {
		return false
	}
	e.markActive = true
	return true
}

// DeactivateMark deactivates the region. The mark itself stays.
func (e *Engine) DeactivateMark() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.markActive = false
}

// ExchangePointAndMark swaps point and mark and activates the region.
func (e *Engine) ExchangePointAndMark() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.mark == nil {
		return ErrNoMark
	}
	p, m := e.point.Pos(), e.mark.Pos()
	e.point.Set(m)
	e.mark.Set(p)
	e.markActive = true
	return nil
}

// PopMark moves point to the mark and makes the most recent ring entry the
// new mark. The old mark rotates to the far end of the ring.
func (e *Engine) PopMark() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.mark == nil {
		return ErrNoMark
	}
	e.point.Set(e.mark.Pos())
	if prev := e.markRing.pop(); prev != nil {
		e.markRing.rotateIn(e.mark)
		e.mark = prev
	}
	e.markActive = false
	return nil
}

// MarkRingLen returns the number of remembered marks.
func (e *Engine) MarkRingLen() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.markRing.len()
}

// Selection returns mark and point as a selection. Without a mark the
// selection is empty at point.
func (e *Engine) Selection() Selection {
	point := e.point.Pos()
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.mark == nil {
		return cursor.NewCursorSelection(point)
	}
	return cursor.NewSelection(e.mark.Pos(), point)
}

// Region returns the active region.
func (e *Engine) Region() (Selection, error) {
	if !e.MarkActive() {
		return Selection{}, ErrMarkInactive
	}
	return e.Selection(), nil
}

// NewMarker creates a marker at pos that stays before text inserted at it.
// Callers release it when done.
func (e *Engine) NewMarker(pos int) *Marker {
	return e.buf.NewMarker(pos, buffer.StayBefore)
}

// Insert inserts text at pos.
func (e *Engine) Insert(pos int, text string) error {
	return e.Replace(pos, pos, text)
}

// InsertAtPoint inserts text at point. Point ends after the text.
func (e *Engine) InsertAtPoint(text string) error {
	return e.Insert(e.Point(), text)
}

// Delete removes [start, end) and returns the removed text.
func (e *Engine) Delete(start, end int) (string, error) {
	r := buffer.NewRange(start, end)
	old := e.buf.Slice(r.Start, r.End)
	if err := e.Replace(r.Start, r.End, ""); err != nil {
		return "", err
	}
	return old, nil
}

// Replace replaces [start, end) with text and records the edit for undo.
// A same-length replacement leaves point where it was.
func (e *Engine) Replace(start, end int, text string) error {
	if e.ReadOnly() {
		return ErrReadOnly
	}
	r := buffer.NewRange(start, end)
	old := e.buf.Slice(r.Start, r.End)
	before := e.point.Pos()

	if err := e.buf.Replace(r.Start, r.End, text); err != nil {
		return fmt.Errorf("engine: replace %s: %w", r, err)
	}
	if before >= r.Start && before <= r.End && utf8.RuneCountInString(text) == r.Len() {
		e.point.Set(before)
	}

	e.history.Record(history.Edit{
		Start:       r.Start,
		OldText:     old,
		NewText:     text,
		PointBefore: before,
		PointAfter:  e.point.Pos(),
	})
	return nil
}

// Kill deletes [start, end) into the kill ring. A kill directly following
// another kill in the previous command joins its entry, prepending when
// the new text ends where the last kill happened.
func (e *Engine) Kill(start, end int) (string, error) {
	r := buffer.NewRange(start, end)
	text, err := e.Delete(r.Start, r.End)
	if err != nil {
		return "", err
	}
	e.record(text, r)
	return text, nil
}

// KillRegion kills the active region and deactivates the mark.
func (e *Engine) KillRegion() (string, error) {
	sel, err := e.Region()
	if err != nil {
		return "", err
	}
	text, err := e.Kill(sel.Start(), sel.End())
	if err != nil {
		return "", err
	}
	e.DeactivateMark()
	return text, nil
}

// CopyAsKill saves [start, end) to the kill ring without deleting it.
// It joins the kill chain the same way Kill does.
func (e *Engine) CopyAsKill(start, end int) string {
	r := buffer.NewRange(start, end)
	text := e.buf.Slice(r.Start, r.End)
	e.record(text, r)
	return text
}

// record adds text taken from r to the kill ring, joining the previous
// entry when the last or current command killed too.
func (e *Engine) record(text string, r buffer.Range) {
	e.mu.Lock()
	appendKill := e.lastCommandKilled || e.killedThisCommand
	prepend := r.End <= e.lastKillPos && !r.IsEmpty()
	e.killedThisCommand = true
	e.lastKillPos = r.Start
	e.mu.Unlock()

	if appendKill {
		e.kills.Append(text, prepend)
	} else {
		e.kills.Push(text)
	}
}

// Yank inserts the current kill at point. The mark is pushed, inactive,
// at the start of the inserted text.
func (e *Engine) Yank() error {
	text, ok := e.kills.Current()
	if !ok {
		return ErrKillRingEmpty
	}
	at := e.Point()
	if err := e.Insert(at, text); err != nil {
		return err
	}
	e.PushMark(at, false)
	return nil
}

// KillRing returns the kill ring.
func (e *Engine) KillRing() *KillRing {
	return e.kills
}

// BeginCommand opens an undo unit for one dispatched command.
func (e *Engine) BeginCommand(name string) {
	e.history.BeginGroup(name)
}

// EndCommand closes the undo unit opened by BeginCommand and decides
// whether the next kill appends.
func (e *Engine) EndCommand() {
	e.history.EndGroup()
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastCommandKilled = e.killedThisCommand
	e.killedThisCommand = false
}

// Undo reverts the last undo unit.
func (e *Engine) Undo() error {
	if e.ReadOnly() {
		return ErrReadOnly
	}
	point, err := e.history.Undo(e.buf)
	if err != nil {
		return err
	}
	e.point.Set(point)
	e.DeactivateMark()
	return nil
}

// Redo reapplies the last undone unit.
func (e *Engine) Redo() error {
	if e.ReadOnly() {
		return ErrReadOnly
	}
	point, err := e.history.Redo(e.buf)
	if err != nil {
		return err
	}
	e.point.Set(point)
	e.DeactivateMark()
	return nil
}

// UndoCount returns the number of undo units available.
func (e *Engine) UndoCount() int {
	return e.history.UndoCount()
}
