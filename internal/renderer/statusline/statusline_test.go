package statusline

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	s := New(tcell.ColorYellow)
	s.SetBuffer("a.go", true, false)
	s.SetPosition(3, 7, 42)

	left, right := s.Text()
	assert.Equal(t, " ** a.go  L3 C7  @42", left)
	assert.Empty(t, right)

	s.SetBuffer("", false, true)
	s.SetMarkActive(true)
	s.SetPrefix("-2")
	s.SetComposition("awaiting-object", true)
	left, right = s.Text()
	assert.Equal(t, " %% *scratch*  L3 C7  @42", left)
	assert.Equal(t, "-2 mark awaiting-object ", right)

	s.SetDefining(true)
	_, right = s.Text()
	assert.Equal(t, "-2 mark Def awaiting-object ", right)
	s.SetDefining(false)

	s.SetMessage("Quit", MessageError)
	left, _ = s.Text()
	assert.Equal(t, " Quit", left)
	s.ClearMessage()
	left, _ = s.Text()
	assert.Contains(t, left, "*scratch*")
}

type grid struct {
	w, h  int
	cells map[[2]int]rune
}

func (g *grid) SetContent(x, y int, r rune, _ []rune, _ tcell.Style) {
	g.cells[[2]int{x, y}] = r
}

func (g *grid) Size() (int, int) { return g.w, g.h }

func (g *grid) row(y int) string {
	out := make([]rune, g.w)
	for x := range out {
		out[x] = g.cells[[2]int{x, y}]
	}
	return string(out)
}

func TestRenderRightAligned(t *testing.T) {
	g := &grid{w: 40, h: 1, cells: map[[2]int]rune{}}
	s := New(tcell.ColorYellow)
	s.SetBuffer("f", false, false)
	s.SetPosition(1, 1, 0)
	s.SetComposition("repeating", false)
	s.Render(g, 0)

	row := g.row(0)
	assert.Equal(t, " -- f  L1 C1  @0", row[:16])
	assert.Equal(t, "repeating ", row[30:])
}

func TestRenderKeepsStateWhenNarrow(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  string
	}{
		{"drops offset", 30, " -- a-long-name  L2 C5   mark "},
		{"shortens name", 22, " -- a-lon  L2 C5 mark "},
		{"drops name", 14, " --  L2  mark "},
		{"state wins", 4, "mark"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &grid{w: tt.width, h: 1, cells: map[[2]int]rune{}}
			s := New(tcell.ColorYellow)
			s.SetBuffer("a-long-name", false, false)
			s.SetPosition(2, 5, 123)
			s.SetMarkActive(true)
			s.Render(g, 0)
			assert.Equal(t, tt.want, g.row(0))
		})
	}
}

func TestRenderTruncatesMessage(t *testing.T) {
	g := &grid{w: 12, h: 1, cells: map[[2]int]rune{}}
	s := New(tcell.ColorYellow)
	s.SetComposition("repeating", false)
	s.SetMessage("a long message", MessageInfo)
	s.Render(g, 0)
	assert.Equal(t, " repeating ", g.row(0)[1:])
	assert.Contains(t, g.row(0), "repeating")
}
