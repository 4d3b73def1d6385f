// Package backend wraps a tcell screen for the renderer and translates
// terminal input into key events.
package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/composable/internal/input/key"
)

// CursorStyle defines how the cursor appears.
type CursorStyle int

const (
	CursorBlock CursorStyle = iota
	CursorUnderline
	CursorBar
)

// ParseCursorStyle maps a configuration name to a style. Unknown names
// give CursorBlock.
func ParseCursorStyle(name string) CursorStyle {
	switch name {
	case "underline":
		return CursorUnderline
	case "bar":
		return CursorBar
	default:
		return CursorBlock
	}
}

func (c CursorStyle) tcell() tcell.CursorStyle {
	switch c {
	case CursorUnderline:
		return tcell.CursorStyleSteadyUnderline
	case CursorBar:
		return tcell.CursorStyleSteadyBar
	default:
		return tcell.CursorStyleSteadyBlock
	}
}

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
	EventInterrupt
	EventClosed
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key is set for EventKey.
	Key key.Event

	// Width and Height are set for EventResize.
	Width, Height int

	// Data is the payload of EventInterrupt.
	Data any
}

// Surface is the drawing part of a screen.
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// Terminal is the renderer's screen. Drawing calls may come from any
// goroutine; PollEvent is meant for the event loop alone.
type Terminal struct {
	mu     sync.Mutex
	screen tcell.Screen
	cursor CursorStyle
}

func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewSimulation returns a terminal on an in-memory screen of the given
// size, already initialized, together with that screen so tests can
// inject keys and read cells back.
func NewSimulation(width, height int) (*Terminal, tcell.SimulationScreen) {
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err == nil {
		sim.SetSize(width, height)
	}
	return &Terminal{screen: sim}, sim
}

func (t *Terminal) locked(fn func(s tcell.Screen)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fn(t.screen)
}

// Init takes over the terminal with bracketed paste on.
func (t *Terminal) Init() (err error) {
	t.locked(func(s tcell.Screen) {
		if _, sim := s.(tcell.SimulationScreen); sim {
			return
		}
		if err = s.Init(); err == nil {
			s.EnablePaste()
		}
	})
	return err
}

// Shutdown gives the terminal back.
func (t *Terminal) Shutdown() { t.locked(tcell.Screen.Fini) }

func (t *Terminal) Size() (w, h int) {
	t.locked(func(s tcell.Screen) { w, h = s.Size() })
	return w, h
}

func (t *Terminal) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	t.locked(func(s tcell.Screen) { s.SetContent(x, y, primary, combining, style) })
}

func (t *Terminal) Clear() { t.locked(tcell.Screen.Clear) }

func (t *Terminal) Show() { t.locked(tcell.Screen.Show) }

func (t *Terminal) ShowCursor(x, y int) {
	t.locked(func(s tcell.Screen) { s.ShowCursor(x, y) })
}

func (t *Terminal) Beep() {
	t.locked(func(s tcell.Screen) { _ = s.Beep() })
}

// SetCursorStyle changes the cursor shape, leaving the screen alone when
// it already has it.
func (t *Terminal) SetCursorStyle(style CursorStyle) {
	t.locked(func(s tcell.Screen) {
		if style != t.cursor {
			t.cursor = style
			s.SetCursorStyle(style.tcell())
		}
	})
}

func (t *Terminal) CursorStyle() (c CursorStyle) {
	t.locked(func(tcell.Screen) { c = t.cursor })
	return c
}

// PollEvent blocks for the next event. Keys that have no key.Event
// equivalent come back as EventNone.
func (t *Terminal) PollEvent() Event {
	ev := t.screen.PollEvent()
	switch ev := ev.(type) {
	case nil:
		return Event{Type: EventClosed}
	case *tcell.EventKey:
		k, ok := TranslateKey(ev)
		if !ok {
			return Event{Type: EventNone}
		}
		return Event{Type: EventKey, Key: k}
	case *tcell.EventResize:
		t.locked(tcell.Screen.Sync)
		w, h := ev.Size()
		return Event{Type: EventResize, Width: w, Height: h}
	case *tcell.EventInterrupt:
		return Event{Type: EventInterrupt, Data: ev.Data()}
	default:
		return Event{Type: EventNone}
	}
}

// Interrupt wakes PollEvent with an EventInterrupt carrying data. It is
// safe to call from any goroutine.
func (t *Terminal) Interrupt(data any) error {
	return t.screen.PostEvent(tcell.NewEventInterrupt(data))
}
