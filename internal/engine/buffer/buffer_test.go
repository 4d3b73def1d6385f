package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertDelete(t *testing.T) {
	b := NewFromString("Hello, World!")
	require.NoError(t, b.Insert(7, "Beautiful "))
	assert.Equal(t, "Hello, Beautiful World!", b.String())
	assert.True(t, b.Modified())

	removed, err := b.Delete(0, 7)
	require.NoError(t, err)
	assert.Equal(t, "Hello, ", removed)
	assert.Equal(t, "Beautiful World!", b.String())
	assert.Equal(t, uint64(2), b.Revision())

	b.MarkSaved()
	assert.False(t, b.Modified())
}

func TestEditErrors(t *testing.T) {
	b := NewFromString("abc")
	assert.ErrorIs(t, b.Insert(4, "x"), ErrOffsetOutOfRange)
	_, err := b.Delete(2, 1)
	assert.ErrorIs(t, err, ErrRangeInvalid)

	ro := NewFromString("abc", WithReadOnly(true))
	assert.ErrorIs(t, ro.Insert(0, "x"), ErrReadOnly)
	assert.Equal(t, "abc", ro.String())
}

func TestSliceClamps(t *testing.T) {
	b := NewFromString("héllo")
	assert.Equal(t, "éll", b.Slice(1, 4))
	assert.Equal(t, "héllo", b.Slice(-5, 50))
	assert.Equal(t, "él", b.Slice(3, 1))
	assert.Equal(t, 5, b.Len())
}

func TestMarkerFollowsEdits(t *testing.T) {
	tests := []struct {
		name  string
		kind  InsertionType
		pos   int
		edit  func(b *Buffer)
		want  int
		wantS string
	}{
		{"insert before", StayBefore, 5, func(b *Buffer) { _ = b.Insert(0, "xx") }, 7, "xx0123456789"},
		{"insert after", StayBefore, 5, func(b *Buffer) { _ = b.Insert(8, "xx") }, 5, "01234567xx89"},
		{"insert at stays", StayBefore, 5, func(b *Buffer) { _ = b.Insert(5, "xx") }, 5, "01234xx56789"},
		{"insert at advances", AdvanceAfter, 5, func(b *Buffer) { _ = b.Insert(5, "xx") }, 7, "01234xx56789"},
		{"delete before", StayBefore, 5, func(b *Buffer) { _, _ = b.Delete(0, 2) }, 3, "23456789"},
		{"delete spanning", StayBefore, 5, func(b *Buffer) { _, _ = b.Delete(3, 8) }, 3, "01289"},
		{"delete ending at", StayBefore, 5, func(b *Buffer) { _, _ = b.Delete(2, 5) }, 2, "0156789"},
		{"delete after", StayBefore, 5, func(b *Buffer) { _, _ = b.Delete(6, 9) }, 5, "0123459"},
		{"replace spanning", StayBefore, 5, func(b *Buffer) { _ = b.Replace(4, 6, "abc") }, 4, "0123abc6789"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewFromString("0123456789")
			m := b.NewMarker(tt.pos, tt.kind)
			tt.edit(b)
			assert.Equal(t, tt.wantS, b.String())
			assert.Equal(t, tt.want, m.Pos())
		})
	}
}

func TestMarkerRelease(t *testing.T) {
	b := NewFromString("0123456789")
	m := b.NewMarker(4, StayBefore)
	assert.Equal(t, 1, b.MarkerCount())

	m.Release()
	m.Release()
	assert.True(t, m.Released())
	assert.Equal(t, 0, b.MarkerCount())

	require.NoError(t, b.Insert(0, "xx"))
	assert.Equal(t, 4, m.Pos(), "released markers stop following edits")
	m.Set(9)
	assert.Equal(t, 4, m.Pos())
}

func TestMarkerClamps(t *testing.T) {
	b := NewFromString("abc")
	m := b.NewMarker(10, StayBefore)
	assert.Equal(t, 3, m.Pos())
	m.Set(-1)
	assert.Equal(t, 0, m.Pos())
}

func TestLines(t *testing.T) {
	b := NewFromString("one\ntwo\n\nfour")
	assert.Equal(t, 4, b.LineCount())
	assert.Equal(t, 4, b.LineStart(6))
	assert.Equal(t, 7, b.LineEnd(5))
	assert.Equal(t, 8, b.LineStart(8))
	assert.Equal(t, 8, b.LineEnd(8))
	assert.Equal(t, 13, b.LineEnd(10))
	assert.Equal(t, 1, b.LineOf(5))
	assert.Equal(t, 3, b.LineOf(13))
	assert.Equal(t, 4, b.OffsetOfLine(1))
	assert.Equal(t, 9, b.OffsetOfLine(3))
	assert.Equal(t, 9, b.OffsetOfLine(42))
	assert.Equal(t, 0, b.OffsetOfLine(-1))
}

func TestSetTextCollapsesMarkers(t *testing.T) {
	b := NewFromString("abcdef")
	m := b.NewMarker(4, StayBefore)
	b.SetText("xy")
	assert.Equal(t, 0, m.Pos())
	assert.False(t, b.Modified())
}
