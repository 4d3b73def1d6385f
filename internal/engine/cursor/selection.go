package cursor

import (
	"fmt"

	"github.com/dshills/composable/internal/engine/buffer"
)

// Range is buffer.Range.
type Range = buffer.Range

// Selection is the region between the mark and point. Either may come
// first.
type Selection struct {
	Mark  int
	Point int
}

// NewSelection returns the region from mark to point.
func NewSelection(mark, point int) Selection {
	return Selection{Mark: mark, Point: point}
}

// NewCursorSelection returns the empty region at point, used when no mark
// is set.
func NewCursorSelection(point int) Selection {
	return Selection{Mark: point, Point: point}
}

func (s Selection) IsEmpty() bool { return s.Mark == s.Point }

func (s Selection) Start() int { return min(s.Mark, s.Point) }

func (s Selection) End() int { return max(s.Mark, s.Point) }

func (s Selection) Len() int { return s.End() - s.Start() }

// Range returns the region in buffer order.
func (s Selection) Range() Range {
	return Range{Start: s.Start(), End: s.End()}
}

// IsBackward reports whether point is before the mark, as after a
// backward motion.
func (s Selection) IsBackward() bool {
	return s.Point < s.Mark
}

// Contains reports whether offset lies in [Start, End).
func (s Selection) Contains(offset int) bool {
	return offset >= s.Start() && offset < s.End()
}

func (s Selection) String() string {
	if s.IsEmpty() {
		return fmt.Sprintf("point %d", s.Point)
	}
	return fmt.Sprintf("mark %d point %d", s.Mark, s.Point)
}
