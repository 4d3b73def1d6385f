package history

import (
	"errors"
	"sync"

	"github.com/dshills/composable/internal/engine/buffer"
)

// Common errors for history operations.
var (
	ErrNothingToUndo = errors.New("history: nothing to undo")
	ErrNothingToRedo = errors.New("history: nothing to redo")
)

// DefaultMaxEntries is used when New is given a non-positive limit.
const DefaultMaxEntries = 1000

// History manages undo/redo state for a buffer.
type History struct {
	mu sync.Mutex

	undoStack []*group
	redoStack []*group

	// Grouping state; nested BeginGroup calls are counted.
	depth   int
	current *group

	maxEntries int
}

// New creates a history that keeps at most maxEntries undo units.
func New(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &History{maxEntries: maxEntries}
}

// Record adds an edit. Outside a group the edit is its own undo unit.
// Recording clears the redo stack.
func (h *History) Record(e Edit) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.depth > 0 {
		h.current.edits = append(h.current.edits, e)
		return
	}
	h.pushLocked(&group{name: e.String(), edits: []Edit{e}})
}

func (h *History) pushLocked(g *group) {
	h.undoStack = append(h.undoStack, g)
	h.redoStack = nil
	if excess := len(h.undoStack) - h.maxEntries; excess > 0 {
		h.undoStack = h.undoStack[excess:]
	}
}

// BeginGroup starts an undo unit. Nested calls join the outer group.
func (h *History) BeginGroup(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.depth == 0 {
		h.current = &group{name: name}
	}
	h.depth++
}

// EndGroup closes the innermost BeginGroup. Closing the outermost group
// pushes it if it recorded anything.
func (h *History) EndGroup() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.depth == 0 {
		return
	}
	h.depth--
	if h.depth > 0 {
		return
	}
	if len(h.current.edits) > 0 {
		h.pushLocked(h.current)
	}
	h.current = nil
}

// Undo reverts the last undo unit on buf and returns the point to restore.
func (h *History) Undo(buf *buffer.Buffer) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.undoStack) == 0 {
		return 0, ErrNothingToUndo
	}
	g := h.undoStack[len(h.undoStack)-1]
	point, err := g.undo(buf)
	if err != nil {
		return 0, err
	}
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, g)
	return point, nil
}

// Redo reapplies the last undone unit and returns the point to restore.
func (h *History) Redo(buf *buffer.Buffer) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.redoStack) == 0 {
		return 0, ErrNothingToRedo
	}
	g := h.redoStack[len(h.redoStack)-1]
	point, err := g.redo(buf)
	if err != nil {
		return 0, err
	}
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, g)
	return point, nil
}

// UndoCount returns the number of undo units available.
func (h *History) UndoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undoStack)
}

// RedoCount returns the number of redo units available.
func (h *History) RedoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redoStack)
}

// PeekUndo returns the name of the next undo unit.
func (h *History) PeekUndo() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.undoStack) == 0 {
		return "", false
	}
	return h.undoStack[len(h.undoStack)-1].name, true
}

// Clear removes all undo/redo history.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.undoStack = nil
	h.redoStack = nil
	h.depth = 0
	h.current = nil
}
