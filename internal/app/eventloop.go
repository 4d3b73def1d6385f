package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/dshills/composable/internal/action"
	"github.com/dshills/composable/internal/compose"
	"github.com/dshills/composable/internal/input"
	"github.com/dshills/composable/internal/input/key"
	"github.com/dshills/composable/internal/input/keymap"
	"github.com/dshills/composable/internal/renderer"
	"github.com/dshills/composable/internal/renderer/backend"
)

// Run takes over the terminal and processes events until the session
// quits or the terminal goes away.
func (app *Application) Run() error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.screen.Init(); err != nil {
		return &InitError{Component: "terminal", Err: err}
	}
	defer app.screen.Shutdown()
	if app.watcher != nil {
		app.watcher.Start()
	}

	app.redraw()
	for {
		err := app.HandleEvent(app.screen.PollEvent())
		if errors.Is(err, ErrQuit) {
			return nil
		}
		if err != nil {
			return err
		}
		app.redraw()
	}
}

type quitRequest struct {
	reason string
}

// RequestQuit asks a running event loop to return, stopping any macro
// being played first. It is safe to call from any goroutine.
func (app *Application) RequestQuit(reason string) error {
	app.player.Cancel()
	return app.screen.Interrupt(quitRequest{reason: reason})
}

// HandleEvent processes one terminal event. It returns ErrQuit when the
// session should end.
func (app *Application) HandleEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		if err := app.handleKey(ev.Key); err != nil {
			return err
		}
		return app.runMacro()
	case backend.EventInterrupt:
		switch req := ev.Data.(type) {
		case reloadRequest:
			app.log.Debug("config changed", "path", req.path)
			if err := app.Reload(); err != nil {
				app.setMessage(err.Error(), true)
			} else {
				app.setMessage("Configuration reloaded", false)
			}
		case quitRequest:
			app.log.Info("quit requested", "reason", req.reason)
			return ErrQuit
		}
		return nil
	case backend.EventClosed:
		return ErrQuit
	default:
		return nil
	}
}

// handleKey resolves ev against the armed repeat key, the pending prefix
// argument and the active keymaps, and dispatches the command it names.
func (app *Application) handleKey(ev key.Event) error {
	app.clearMessage()
	app.recordKey(ev)
	app.commandKeys++

	if len(app.pending) == 0 {
		if tk, ok := app.keys.TransientKey(); ok && tk == ev {
			return app.dispatch(input.Action{
				Name:   compose.CmdRepeat,
				Keys:   key.Sequence{ev},
				Source: input.SourceTransient,
			})
		}
		if name, ok := app.prefixKey(ev); ok {
			return app.dispatch(input.Action{Name: name, Keys: key.Sequence{ev}})
		}
	}

	seq := append(slices.Clone(app.pending), ev)
	name, m := app.keys.Resolve(seq)
	switch m {
	case keymap.MatchPrefix:
		app.pending = seq
		app.setMessage(seq.String()+"-", false)
		return nil
	case keymap.MatchFull:
		app.pending = nil
		return app.dispatch(input.Action{Name: name, Keys: seq})
	}

	app.pending = nil
	if len(seq) == 1 && ev.IsChar() {
		return app.dispatch(input.Action{Name: action.SelfInsertCommand, Keys: seq})
	}
	app.prefix.Reset()
	app.commandKeys = 0
	app.dropMacroRepeat("")
	app.setMessage(seq.String()+" is undefined", true)
	app.screen.Beep()
	return nil
}

// prefixKey lets plain digits extend a prefix argument being typed, and
// "-" negate one that is still C-u alone.
func (app *Application) prefixKey(ev key.Event) (string, bool) {
	if !app.prefix.Active() || ev.Modifiers != key.ModNone {
		return "", false
	}
	if _, ok := ev.Digit(); ok {
		return input.CmdDigitArgument, true
	}
	if ev.IsChar() && ev.Rune == '-' && app.prefix.Peek().Universal() {
		return input.CmdNegativeArgument, true
	}
	return "", false
}

// dispatch runs a with the pending prefix argument. The argument
// survives prefix and delimiter commands and is consumed by anything
// else.
func (app *Application) dispatch(a input.Action) error {
	a.Arg = app.prefix.Peek()
	state := app.controller.State()
	res := app.dispatcher.Dispatch(a)
	if !input.IsPrefixCommand(a.Name) && !compose.IsDelimiterCommand(a.Name) {
		app.prefix.Reset()
		app.commandKeys = 0
	}
	app.lastCommand = a.Name
	app.dropMacroRepeat(a.Name)

	if msg, isErr := res.Display(); msg != "" {
		app.setMessage(msg, isErr)
	}
	app.cancelDefinition(a, state)
	if res.Quit {
		return ErrQuit
	}
	return nil
}

// View returns what the next frame shows.
func (app *Application) View() renderer.View {
	name := ""
	if app.path != "" {
		name = filepath.Base(app.path)
	}
	state, awaiting := app.compositionLabel()
	return renderer.View{
		Engine:   app.engine,
		Name:     name,
		Prefix:   app.prefix.Peek().String(),
		State:    state,
		Awaiting: awaiting,
		Defining: app.macros.Recording(),
		Message:  app.message,
		Error:    app.messageErr,
	}
}

// compositionLabel describes the controller state for the status line.
func (app *Application) compositionLabel() (string, bool) {
	switch app.controller.State() {
	case compose.AwaitingObject:
		req, _ := app.controller.Pending()
		label := fmt.Sprintf("%s[%s]", compose.AwaitingObject, req.Action().Name())
		if c := req.Containment(); c != compose.None {
			label = fmt.Sprintf("%s[%s %s]", compose.AwaitingObject, req.Action().Name(), c)
		}
		return label, true
	case compose.Repeating:
		r, _ := app.controller.Repeat()
		return fmt.Sprintf("%s[%s]", compose.Repeating, r.Key()), false
	default:
		return "", false
	}
}

func (app *Application) redraw() {
	app.renderer.Draw(app.View())
}

func (app *Application) setMessage(msg string, isErr bool) {
	app.message = msg
	app.messageErr = isErr
}

func (app *Application) clearMessage() {
	app.message = ""
	app.messageErr = false
}
