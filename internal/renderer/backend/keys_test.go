package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/composable/internal/input/key"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want string
	}{
		{"plain rune", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), "w"},
		{"shifted rune", tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModShift), "W"},
		{"control letter", tcell.NewEventKey(tcell.KeyCtrlW, 0, tcell.ModCtrl), "C-w"},
		{"control rune", tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModCtrl), "C-w"},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModAlt), "M-w"},
		{"alt minus", tcell.NewEventKey(tcell.KeyRune, '-', tcell.ModAlt), "M--"},
		{"ctrl space", tcell.NewEventKey(tcell.KeyCtrlSpace, 0, tcell.ModCtrl), "C-SPC"},
		{"ctrl underscore", tcell.NewEventKey(tcell.KeyCtrlUnderscore, 0, tcell.ModCtrl), "C-_"},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), "TAB"},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), "RET"},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), "BS"},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), "ESC"},
		{"arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), "<left>"},
		{"meta arrow", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModAlt), "M-<right>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TranslateKey(tt.ev)
			require.True(t, ok)
			assert.Equal(t, key.MustParse(tt.want), got)
		})
	}

	_, ok := TranslateKey(tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone))
	assert.False(t, ok)
}

func TestParseCursorStyle(t *testing.T) {
	assert.Equal(t, CursorUnderline, ParseCursorStyle("underline"))
	assert.Equal(t, CursorBar, ParseCursorStyle("bar"))
	assert.Equal(t, CursorBlock, ParseCursorStyle("block"))
	assert.Equal(t, CursorBlock, ParseCursorStyle("other"))
}

func TestSimulationEvents(t *testing.T) {
	term, sim := NewSimulation(40, 10)
	t.Cleanup(term.Shutdown)
	require.NoError(t, term.Init())

	w, h := term.Size()
	assert.Equal(t, 40, w)
	assert.Equal(t, 10, h)

	sim.InjectKey(tcell.KeyCtrlW, 0, tcell.ModCtrl)
	ev := nextEvent(term)
	require.Equal(t, EventKey, ev.Type)
	assert.Equal(t, key.MustParse("C-w"), ev.Key)

	require.NoError(t, term.Interrupt("reload"))
	ev = nextEvent(term)
	require.Equal(t, EventInterrupt, ev.Type)
	assert.Equal(t, "reload", ev.Data)

	term.SetCursorStyle(CursorUnderline)
	assert.Equal(t, CursorUnderline, term.CursorStyle())
}

// nextEvent skips resize notifications the screen may queue on its own.
func nextEvent(term *Terminal) Event {
	for {
		ev := term.PollEvent()
		if ev.Type != EventResize && ev.Type != EventNone {
			return ev
		}
	}
}
