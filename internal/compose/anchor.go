package compose

// Marker is a host position that follows buffer edits.
type Marker interface {
	Pos() int
	Set(pos int)
	Release()
}

// anchor owns a Marker and releases it exactly once.
type anchor struct {
	m Marker
}

func newAnchor(m Marker) *anchor {
	return &anchor{m: m}
}

// Pos returns the tracked position, or -1 once released.
func (a *anchor) Pos() int {
	if a == nil || a.m == nil {
		return -1
	}
	return a.m.Pos()
}

func (a *anchor) Set(pos int) {
	if a != nil && a.m != nil {
		a.m.Set(pos)
	}
}

// Release frees the marker. It is safe on a nil or released anchor.
func (a *anchor) Release() {
	if a == nil || a.m == nil {
		return
	}
	a.m.Release()
	a.m = nil
}

func (a *anchor) live() bool {
	return a != nil && a.m != nil
}
