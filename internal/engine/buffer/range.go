package buffer

import "fmt"

// Range is the half-open rune span [Start, End).
type Range struct {
	Start, End int
}

// NewRange orders a and b. Motions and the region hand over their ends
// in either direction.
func NewRange(a, b int) Range {
	return Range{Start: min(a, b), End: max(a, b)}
}

func (r Range) Len() int { return r.End - r.Start }

func (r Range) IsEmpty() bool { return r.Start == r.End }

func (r Range) String() string { return fmt.Sprintf("[%d:%d)", r.Start, r.End) }
