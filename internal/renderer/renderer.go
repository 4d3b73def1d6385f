package renderer

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/dshills/composable/internal/engine"
	"github.com/dshills/composable/internal/renderer/backend"
	"github.com/dshills/composable/internal/renderer/statusline"
)

// TabWidth is the column multiple a tab advances to.
const TabWidth = 8

// Screen is what the renderer draws on.
type Screen interface {
	backend.Surface
	Clear()
	Show()
	ShowCursor(x, y int)
	SetCursorStyle(style backend.CursorStyle)
}

// Options configures the awaiting-object affordance.
type Options struct {
	IndicatorColor  tcell.Color
	IndicatorCursor backend.CursorStyle
}

// DefaultOptions returns a yellow status line and an underline cursor.
func DefaultOptions() Options {
	return Options{IndicatorColor: tcell.ColorYellow, IndicatorCursor: backend.CursorUnderline}
}

// View is everything drawn in one frame.
type View struct {
	Engine *engine.Engine
	Name   string

	// Prefix is the pending prefix argument, empty when none.
	Prefix string

	// State is the composition state name; Awaiting selects the
	// indicator style and cursor.
	State    string
	Awaiting bool

	// Defining is set while a keyboard macro is recorded.
	Defining bool

	Message string
	Error   bool
}

// Renderer draws a buffer with its region and a status line.
type Renderer struct {
	screen Screen
	status *statusline.StatusLine
	opts   Options

	// top is the first buffer line shown.
	top int
}

// New creates a renderer on screen.
func New(screen Screen, opts Options) *Renderer {
	return &Renderer{
		screen: screen,
		status: statusline.New(opts.IndicatorColor),
		opts:   opts,
	}
}

// SetOptions changes the indicator colour and cursor.
func (r *Renderer) SetOptions(opts Options) {
	r.opts = opts
	r.status.SetIndicatorColor(opts.IndicatorColor)
}

// StatusLine returns the status line.
func (r *Renderer) StatusLine() *statusline.StatusLine { return r.status }

// Top returns the first visible buffer line.
func (r *Renderer) Top() int { return r.top }

// Draw renders v and shows the frame.
func (r *Renderer) Draw(v View) {
	e := v.Engine
	buf := e.Buffer()
	width, height := r.screen.Size()
	textRows := max(height-1, 0)

	point := e.Point()
	pointLine := buf.LineOf(point)
	r.scrollTo(pointLine, textRows)

	regionStart, regionEnd := -1, -1
	if e.MarkActive() {
		regionStart, regionEnd = min(point, e.Mark()), max(point, e.Mark())
	}

	r.screen.Clear()
	cursorX, cursorY := 0, 0
	for row := 0; row < textRows; row++ {
		line := r.top + row
		if line >= buf.LineCount() {
			break
		}
		start := buf.OffsetOfLine(line)
		end := buf.LineEnd(start)
		x := r.drawLine(buf.Slice(start, end), start, row, width, point, regionStart, regionEnd)
		if line == pointLine {
			cursorX, cursorY = x, row
		}
	}

	r.status.SetBuffer(v.Name, e.Modified(), e.ReadOnly())
	r.status.SetPosition(pointLine+1, point-buf.LineStart(point)+1, point)
	r.status.SetMarkActive(e.MarkActive())
	r.status.SetDefining(v.Defining)
	r.status.SetPrefix(v.Prefix)
	r.status.SetComposition(v.State, v.Awaiting)
	if v.Message != "" {
		kind := statusline.MessageInfo
		if v.Error {
			kind = statusline.MessageError
		}
		r.status.SetMessage(v.Message, kind)
	} else {
		r.status.ClearMessage()
	}
	r.status.Render(r.screen, textRows)

	if v.Awaiting {
		r.screen.SetCursorStyle(r.opts.IndicatorCursor)
	} else {
		r.screen.SetCursorStyle(backend.CursorBlock)
	}
	r.screen.ShowCursor(cursorX, cursorY)
	r.screen.Show()
}

// scrollTo keeps line within the rows shown.
func (r *Renderer) scrollTo(line, rows int) {
	if rows <= 0 {
		return
	}
	if line < r.top {
		r.top = line
	}
	if line >= r.top+rows {
		r.top = line - rows + 1
	}
}

// drawLine draws one buffer line whose first rune is at offset base and
// returns the screen column of point, or the line end column when point
// is elsewhere.
func (r *Renderer) drawLine(text string, base, row, width, point, regionStart, regionEnd int) int {
	x := 0
	off := base
	cursorX := -1
	state := -1
	for text != "" {
		var cluster string
		var w int
		cluster, text, w, state = uniseg.FirstGraphemeClusterInString(text, state)
		n := len([]rune(cluster))
		if cursorX < 0 && point >= off && point < off+n {
			cursorX = x
		}
		style := tcell.StyleDefault
		if off >= regionStart && off < regionEnd {
			style = style.Reverse(true)
		}
		if cluster == "\t" {
			w = TabWidth - x%TabWidth
			for i := 0; i < w && x+i < width; i++ {
				r.screen.SetContent(x+i, row, ' ', nil, style)
			}
		} else if x+w <= width {
			runes := []rune(cluster)
			r.screen.SetContent(x, row, runes[0], runes[1:], style)
		}
		x += w
		off += n
	}
	if cursorX < 0 {
		cursorX = x
	}
	return min(cursorX, max(width-1, 0))
}
