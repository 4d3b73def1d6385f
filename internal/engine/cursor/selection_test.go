package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dshills/composable/internal/engine/buffer"
)

func TestSelectionBounds(t *testing.T) {
	tests := []struct {
		name       string
		sel        Selection
		start, end int
		backward   bool
	}{
		{"forward", NewSelection(3, 9), 3, 9, false},
		{"backward", NewSelection(9, 3), 3, 9, true},
		{"empty", NewCursorSelection(5), 5, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.start, tt.sel.Start())
			assert.Equal(t, tt.end, tt.sel.End())
			assert.Equal(t, tt.end-tt.start, tt.sel.Len())
			assert.Equal(t, tt.backward, tt.sel.IsBackward())
			assert.Equal(t, buffer.NewRange(tt.start, tt.end), tt.sel.Range())
		})
	}
}

func TestSelectionContains(t *testing.T) {
	s := NewSelection(10, 4)
	assert.True(t, s.Contains(4))
	assert.True(t, s.Contains(9))
	assert.False(t, s.Contains(10))
	assert.False(t, NewCursorSelection(4).Contains(4))
}

func TestSelectionString(t *testing.T) {
	assert.Equal(t, "point 3", NewCursorSelection(3).String())
	assert.Equal(t, "mark 1 point 4", NewSelection(1, 4).String())
}
