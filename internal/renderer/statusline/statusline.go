// Package statusline renders the bottom line of the editor: buffer name,
// position, mark, prefix argument and composition state, or a message.
package statusline

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/dshills/composable/internal/renderer/backend"
)

// MessageType indicates the type of status message.
type MessageType int

const (
	MessageNone MessageType = iota
	MessageInfo
	MessageError
)

// StatusLine renders the bottom status line.
type StatusLine struct {
	name     string
	modified bool
	readOnly bool

	line, col int // 1-indexed
	point     int

	markActive bool
	defining   bool
	prefix     string
	state      string
	awaiting   bool

	message     string
	messageType MessageType

	barStyle       tcell.Style
	indicatorStyle tcell.Style
	errorStyle     tcell.Style
}

// New creates a status line whose background turns indicator while a
// composition awaits its object.
func New(indicator tcell.Color) *StatusLine {
	bar := tcell.StyleDefault.Reverse(true)
	return &StatusLine{
		barStyle:       bar,
		indicatorStyle: tcell.StyleDefault.Background(indicator).Foreground(tcell.ColorBlack).Bold(true),
		errorStyle:     tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
	}
}

// SetIndicatorColor changes the awaiting-object colour.
func (s *StatusLine) SetIndicatorColor(c tcell.Color) {
	s.indicatorStyle = s.indicatorStyle.Background(c)
}

// SetBuffer updates the buffer name and flags.
func (s *StatusLine) SetBuffer(name string, modified, readOnly bool) {
	s.name = name
	s.modified = modified
	s.readOnly = readOnly
}

// SetPosition updates the cursor line and column (1-indexed) and offset.
func (s *StatusLine) SetPosition(line, col, point int) {
	s.line = line
	s.col = col
	s.point = point
}

// SetMarkActive shows "mark" while the region is active.
func (s *StatusLine) SetMarkActive(active bool) { s.markActive = active }

// SetDefining shows "Def" while a keyboard macro is being recorded.
func (s *StatusLine) SetDefining(on bool) { s.defining = on }

// SetPrefix shows a pending prefix argument such as "C-u" or "-3".
func (s *StatusLine) SetPrefix(prefix string) { s.prefix = prefix }

// SetComposition shows the composition state. awaiting switches the
// line to the indicator style.
func (s *StatusLine) SetComposition(state string, awaiting bool) {
	s.state = state
	s.awaiting = awaiting
}

// SetMessage displays a message in place of the buffer name until
// ClearMessage.
func (s *StatusLine) SetMessage(msg string, msgType MessageType) {
	s.message = msg
	s.messageType = msgType
}

// ClearMessage goes back to showing the buffer name and position.
func (s *StatusLine) ClearMessage() {
	s.message = ""
	s.messageType = MessageNone
}

// Text returns the status line content without styling.
func (s *StatusLine) Text() (left, right string) {
	return s.left(s.displayName(), true), s.right()
}

func (s *StatusLine) displayName() string {
	if s.name == "" {
		return "*scratch*"
	}
	return s.name
}

func (s *StatusLine) left(name string, withPoint bool) string {
	if s.message != "" {
		return " " + s.message
	}
	flags := "--"
	switch {
	case s.readOnly:
		flags = "%%"
	case s.modified:
		flags = "**"
	}
	out := " " + flags
	if name != "" {
		out += " " + name
	}
	out += fmt.Sprintf("  L%d C%d", s.line, s.col)
	if withPoint {
		out += fmt.Sprintf("  @%d", s.point)
	}
	return out
}

func (s *StatusLine) right() string {
	var parts []string
	if s.prefix != "" {
		parts = append(parts, s.prefix)
	}
	if s.markActive {
		parts = append(parts, "mark")
	}
	if s.defining {
		parts = append(parts, "Def")
	}
	if s.state != "" {
		parts = append(parts, s.state)
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, " ") + " "
}

// fitLeft shortens the left text to width cells: the offset goes first,
// then the buffer name is cut down and finally dropped. A message is
// left for drawString to cut.
func (s *StatusLine) fitLeft(width int) string {
	full := s.left(s.displayName(), true)
	if s.message != "" || uniseg.StringWidth(full) <= width {
		return full
	}
	name := s.displayName()
	short := s.left(name, false)
	over := uniseg.StringWidth(short) - width
	if over <= 0 {
		return short
	}
	if keep := uniseg.StringWidth(name) - over; keep > 0 {
		return s.left(truncate(name, keep), false)
	}
	return s.left("", false)
}

// Render draws the status line on row. The right segment, which carries
// the composition state, keeps its place and the left text gives way.
func (s *StatusLine) Render(b backend.Surface, row int) {
	width, _ := b.Size()
	style := s.barStyle
	if s.awaiting {
		style = s.indicatorStyle
	}
	for x := 0; x < width; x++ {
		b.SetContent(x, row, ' ', nil, style)
	}

	right := s.right()
	rx, room := width, width
	if right != "" {
		rx = max(0, width-uniseg.StringWidth(right))
		room = rx - 1
	}
	leftStyle := style
	if s.message != "" && s.messageType == MessageError {
		leftStyle = s.errorStyle
	}
	if room > 0 {
		drawString(b, 0, row, room, s.fitLeft(room), leftStyle)
	}
	drawString(b, rx, row, width, right, style)
}

// truncate returns the leading graphemes of text that fit in width cells.
func truncate(text string, width int) string {
	var out strings.Builder
	state := -1
	for text != "" {
		var cluster string
		var w int
		cluster, text, w, state = uniseg.FirstGraphemeClusterInString(text, state)
		if width -= w; width < 0 {
			break
		}
		out.WriteString(cluster)
	}
	return out.String()
}

// drawString writes text from x, stopping at limit, and returns the
// column after the last cell written.
func drawString(b backend.Surface, x, y, limit int, text string, style tcell.Style) int {
	state := -1
	for text != "" {
		var cluster string
		var w int
		cluster, text, w, state = uniseg.FirstGraphemeClusterInString(text, state)
		if w == 0 {
			continue
		}
		if x+w > limit {
			break
		}
		runes := []rune(cluster)
		b.SetContent(x, y, runes[0], runes[1:], style)
		x += w
	}
	return x
}
