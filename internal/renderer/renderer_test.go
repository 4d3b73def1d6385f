package renderer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/dshills/composable/internal/engine"
	"github.com/dshills/composable/internal/renderer/backend"
)

type screenHarness struct {
	term *backend.Terminal
	sim  tcell.SimulationScreen
	r    *Renderer
}

func newScreen(t *testing.T, w, h int) *screenHarness {
	t.Helper()
	term, sim := backend.NewSimulation(w, h)
	t.Cleanup(term.Shutdown)
	return &screenHarness{term: term, sim: sim, r: New(term, DefaultOptions())}
}

func (s *screenHarness) cell(x, y int) (rune, tcell.Style) {
	cells, w, _ := s.sim.GetContents()
	c := cells[y*w+x]
	if len(c.Runes) == 0 {
		return ' ', c.Style
	}
	return c.Runes[0], c.Style
}

func (s *screenHarness) row(y int) string {
	cells, w, _ := s.sim.GetContents()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			sb.WriteRune(' ')
			continue
		}
		sb.WriteRune(c.Runes[0])
	}
	return sb.String()
}

func reversed(st tcell.Style) bool {
	_, _, attr := st.Decompose()
	return attr&tcell.AttrReverse != 0
}

func TestDrawTextAndCursor(t *testing.T) {
	s := newScreen(t, 20, 5)
	e := engine.New(engine.WithContent("hello\nworld"))
	e.SetPoint(7)

	s.r.Draw(View{Engine: e, Name: "notes.txt"})

	assert.True(t, strings.HasPrefix(s.row(0), "hello"))
	assert.True(t, strings.HasPrefix(s.row(1), "world"))
	x, y, visible := s.sim.GetCursor()
	assert.True(t, visible)
	assert.Equal(t, 1, x)
	assert.Equal(t, 1, y)
	assert.Contains(t, s.row(4), "notes.txt")
	assert.Contains(t, s.row(4), "L2 C2")
	assert.Equal(t, backend.CursorBlock, s.term.CursorStyle())
}

func TestDrawRegion(t *testing.T) {
	s := newScreen(t, 20, 5)
	e := engine.New(engine.WithContent("abcdef"))
	e.SetMark(1)
	e.SetPoint(4)

	s.r.Draw(View{Engine: e})

	for x := 0; x < 6; x++ {
		_, st := s.cell(x, 0)
		assert.Equal(t, x >= 1 && x < 4, reversed(st), "column %d", x)
	}
	assert.Contains(t, s.row(4), "mark")
}

func TestAwaitingIndicator(t *testing.T) {
	s := newScreen(t, 60, 4)
	e := engine.New(engine.WithContent("text"))

	s.r.Draw(View{Engine: e, State: "awaiting-object", Awaiting: true, Prefix: "C-u"})
	assert.Equal(t, backend.CursorUnderline, s.term.CursorStyle())
	_, st := s.cell(0, 3)
	_, bg, _ := st.Decompose()
	assert.Equal(t, tcell.ColorYellow, bg)
	assert.Contains(t, s.row(3), "C-u")
	assert.Contains(t, s.row(3), "awaiting-object")

	s.r.SetOptions(Options{IndicatorColor: tcell.ColorGreen, IndicatorCursor: backend.CursorBar})
	s.r.Draw(View{Engine: e, State: "awaiting-object", Awaiting: true})
	assert.Equal(t, backend.CursorBar, s.term.CursorStyle())
	_, st = s.cell(0, 3)
	_, bg, _ = st.Decompose()
	assert.Equal(t, tcell.ColorGreen, bg)

	s.r.Draw(View{Engine: e, State: "idle"})
	assert.Equal(t, backend.CursorBlock, s.term.CursorStyle())
}

func TestScrollFollowsPoint(t *testing.T) {
	s := newScreen(t, 20, 5)
	lines := make([]string, 30)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}
	e := engine.New(engine.WithContent(strings.Join(lines, "\n")))
	e.SetPoint(e.Buffer().OffsetOfLine(10))

	s.r.Draw(View{Engine: e})
	assert.Equal(t, 7, s.r.Top())
	assert.True(t, strings.HasPrefix(s.row(3), "line 10"))

	e.SetPoint(0)
	s.r.Draw(View{Engine: e})
	assert.Equal(t, 0, s.r.Top())
}

func TestTabsAndWideRunes(t *testing.T) {
	s := newScreen(t, 20, 4)
	e := engine.New(engine.WithContent("\tx\n日本語"))

	e.SetPoint(1)
	s.r.Draw(View{Engine: e})
	r, _ := s.cell(TabWidth, 0)
	assert.Equal(t, 'x', r)
	x, _, _ := s.sim.GetCursor()
	assert.Equal(t, TabWidth, x)

	e.SetPoint(4)
	s.r.Draw(View{Engine: e})
	x, y, _ := s.sim.GetCursor()
	assert.Equal(t, 2, x)
	assert.Equal(t, 1, y)
}

func TestMessage(t *testing.T) {
	s := newScreen(t, 40, 3)
	e := engine.New(engine.WithContent("x"))
	s.r.Draw(View{Engine: e, Message: "Wrote notes.txt"})
	assert.Contains(t, s.row(2), "Wrote notes.txt")

	s.r.Draw(View{Engine: e, Name: "notes.txt"})
	assert.NotContains(t, s.row(2), "Wrote")
}
