package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/composable/internal/engine/buffer"
)

// edit applies a replacement to buf and records it.
func edit(t *testing.T, h *History, buf *buffer.Buffer, start, end int, text string, point int) {
	t.Helper()
	old, err := buf.Delete(start, end)
	require.NoError(t, err)
	require.NoError(t, buf.Insert(start, text))
	h.Record(Edit{Start: start, OldText: old, NewText: text, PointBefore: point, PointAfter: start})
}

func TestUndoRedoSingle(t *testing.T) {
	buf := buffer.NewFromString("hello world")
	h := New(10)

	edit(t, h, buf, 0, 5, "HELLO", 3)
	assert.Equal(t, "HELLO world", buf.String())

	point, err := h.Undo(buf)
	require.NoError(t, err)
	assert.Equal(t, 3, point)
	assert.Equal(t, "hello world", buf.String())

	point, err = h.Redo(buf)
	require.NoError(t, err)
	assert.Equal(t, 0, point)
	assert.Equal(t, "HELLO world", buf.String())
}

func TestGroupUndoesTogether(t *testing.T) {
	buf := buffer.NewFromString("one two three")
	h := New(10)

	h.BeginGroup("outer")
	edit(t, h, buf, 0, 4, "", 0)
	h.BeginGroup("inner")
	edit(t, h, buf, 4, 9, "", 4)
	h.EndGroup()
	h.EndGroup()

	assert.Equal(t, "two ", buf.String())
	assert.Equal(t, 1, h.UndoCount())
	name, ok := h.PeekUndo()
	require.True(t, ok)
	assert.Equal(t, "outer", name)

	_, err := h.Undo(buf)
	require.NoError(t, err)
	assert.Equal(t, "one two three", buf.String())
}

func TestEmptyGroupIsDropped(t *testing.T) {
	h := New(10)
	h.BeginGroup("nothing")
	h.EndGroup()
	h.EndGroup()
	assert.Equal(t, 0, h.UndoCount())
}

func TestRecordClearsRedo(t *testing.T) {
	buf := buffer.NewFromString("abc")
	h := New(10)
	edit(t, h, buf, 0, 1, "", 0)
	_, err := h.Undo(buf)
	require.NoError(t, err)
	assert.Equal(t, 1, h.RedoCount())

	edit(t, h, buf, 2, 3, "", 2)
	assert.Equal(t, 0, h.RedoCount())
}

func TestEmptyStacks(t *testing.T) {
	h := New(0)
	buf := buffer.New()
	_, err := h.Undo(buf)
	assert.ErrorIs(t, err, ErrNothingToUndo)
	_, err = h.Redo(buf)
	assert.ErrorIs(t, err, ErrNothingToRedo)
}

func TestMaxEntries(t *testing.T) {
	buf := buffer.NewFromString("abcdef")
	h := New(2)
	for i := 0; i < 4; i++ {
		edit(t, h, buf, 0, 1, "", 0)
	}
	assert.Equal(t, 2, h.UndoCount())
	assert.Equal(t, "ef", buf.String())
}
