package history

import (
	"fmt"
	"unicode/utf8"

	"github.com/dshills/composable/internal/engine/buffer"
)

// Edit is a single replacement of text at Start.
type Edit struct {
	Start       int
	OldText     string
	NewText     string
	PointBefore int
	PointAfter  int
}

// apply performs the edit on buf.
func (e Edit) apply(buf *buffer.Buffer) error {
	end := e.Start + utf8.RuneCountInString(e.OldText)
	return buf.Replace(e.Start, end, e.NewText)
}

// invert returns the edit that undoes e.
func (e Edit) invert() Edit {
	return Edit{
		Start:       e.Start,
		OldText:     e.NewText,
		NewText:     e.OldText,
		PointBefore: e.PointAfter,
		PointAfter:  e.PointBefore,
	}
}

// String returns a short description of the edit.
func (e Edit) String() string {
	switch {
	case e.OldText == "":
		return fmt.Sprintf("insert %q at %d", e.NewText, e.Start)
	case e.NewText == "":
		return fmt.Sprintf("delete %q at %d", e.OldText, e.Start)
	default:
		return fmt.Sprintf("replace %q with %q at %d", e.OldText, e.NewText, e.Start)
	}
}

// group is one undo unit.
type group struct {
	name  string
	edits []Edit
}

func (g *group) undo(buf *buffer.Buffer) (int, error) {
	for i := len(g.edits) - 1; i >= 0; i-- {
		if err := g.edits[i].invert().apply(buf); err != nil {
			return 0, fmt.Errorf("undo %s: %w", g.edits[i], err)
		}
	}
	return g.edits[0].PointBefore, nil
}

func (g *group) redo(buf *buffer.Buffer) (int, error) {
	for _, e := range g.edits {
		if err := e.apply(buf); err != nil {
			return 0, fmt.Errorf("redo %s: %w", e, err)
		}
	}
	return g.edits[len(g.edits)-1].PointAfter, nil
}
