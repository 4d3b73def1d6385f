package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/dshills/composable/internal/compose"
	"github.com/dshills/composable/internal/dispatcher/execctx"
	"github.com/dshills/composable/internal/dispatcher/handler"
	"github.com/dshills/composable/internal/input"
	"github.com/dshills/composable/internal/input/key"
	"github.com/dshills/composable/internal/input/keymap"
	"github.com/dshills/composable/internal/input/macro"
	"github.com/dshills/composable/internal/motion"
)

// Keyboard macro commands.
const (
	CmdStartMacro      = "kmacro-start-macro"
	CmdEndMacro        = "kmacro-end-macro"
	CmdEndAndCallMacro = "kmacro-end-and-call-macro"
	CmdCycleMacroRing  = "kmacro-cycle-ring-next"
)

// errMacroStep stops playback at a key that failed. The message is
// already on the status line.
var errMacroStep = errors.New("keyboard macro step failed")

// macroRun is a playback requested by a command. It runs once the
// command that asked for it has returned.
type macroRun struct {
	events []key.Event
	count  int

	// rearm is the key that repeats the call afterwards.
	rearm key.Event
}

func (app *Application) registerMacroHandlers() {
	d := app.dispatcher
	d.RegisterFunc(CmdStartMacro, "Record keys as a keyboard macro", app.handleStartMacro)
	d.RegisterFunc(CmdEndMacro, "Finish the keyboard macro definition", app.handleEndMacro)
	d.RegisterFunc(CmdEndAndCallMacro, "Finish the definition or call the last macro", app.handleCallMacro)
	d.RegisterFunc(CmdCycleMacroRing, "Make the next older macro the last one", func(input.Action, *execctx.ExecutionContext) handler.Result {
		if !app.macros.Rotate() {
			return handler.NoOpWithMessage("Keyboard macro ring is empty")
		}
		return handler.SuccessWithMessage("Last macro: " + key.Sequence(app.macros.Last()).String())
	})
}

// handleStartMacro begins a definition. With C-u the keys are appended
// to the last macro.
func (app *Application) handleStartMacro(a input.Action, _ *execctx.ExecutionContext) handler.Result {
	if app.player.Playing() {
		return handler.NoOp()
	}
	appendLast := a.Arg.Universal()
	if err := app.macros.Start(appendLast); err != nil {
		return handler.Error(err)
	}
	app.log.Debug("macro definition started", "append", appendLast)
	if appendLast {
		return handler.SuccessWithMessage("Appending to keyboard macro...")
	}
	return handler.SuccessWithMessage("Defining keyboard macro...")
}

// handleEndMacro ends the definition, dropping the keys that invoked it
// along with their prefix argument. A numeric argument n calls the new
// macro n-1 more times; zero repeats it until a key fails.
func (app *Application) handleEndMacro(a input.Action, _ *execctx.ExecutionContext) handler.Result {
	if app.player.Playing() {
		return handler.NoOp()
	}
	events, err := app.macros.Stop(app.commandKeys)
	if err != nil {
		return handler.Error(err)
	}
	app.log.Debug("macro defined", "keys", len(events))
	switch n := a.Arg.Int(); {
	case !a.Arg.IsSet() || n == 1 || n < 0:
	case n == 0:
		app.macroRun = &macroRun{events: events, count: 0}
	default:
		app.macroRun = &macroRun{events: events, count: n - 1}
	}
	return handler.SuccessWithMessage("Keyboard macro defined")
}

// handleCallMacro ends a definition in progress and calls the last macro
// with the argument as its count. Afterwards the last key of the command
// calls it again.
func (app *Application) handleCallMacro(a input.Action, _ *execctx.ExecutionContext) handler.Result {
	if app.player.Playing() {
		return handler.NoOp()
	}
	if app.macros.Recording() {
		if _, err := app.macros.Stop(app.commandKeys); err != nil {
			return handler.Error(err)
		}
		return handler.SuccessWithMessage("Keyboard macro defined")
	}
	events := app.macros.Last()
	if len(events) == 0 {
		return handler.Error(macro.ErrEmpty)
	}
	app.macroRun = &macroRun{events: events, count: a.Arg.Int(), rearm: a.LastKey()}
	return handler.Success()
}

// recordKey captures ev while a macro is being defined.
func (app *Application) recordKey(ev key.Event) {
	if !app.player.Playing() {
		app.macros.Record(ev)
	}
}

// cancelDefinition abandons a definition when keyboard-quit runs outside
// a composition.
func (app *Application) cancelDefinition(a input.Action, state compose.State) {
	if a.Name != motion.KeyboardQuit || state != compose.Idle {
		return
	}
	if app.macros.Cancel() {
		app.log.Debug("macro definition cancelled")
		app.setMessage("Keyboard macro definition cancelled", false)
	}
}

// runMacro plays the pending macro run, if any, through the key
// handler. Playback stops at the first key that reports an error.
func (app *Application) runMacro() error {
	run := app.macroRun
	app.macroRun = nil
	if run == nil {
		return nil
	}

	n, err := app.player.Play(context.Background(), run.events, run.count, func(ev key.Event) error {
		if err := app.handleKey(ev); err != nil {
			return err
		}
		if app.messageErr {
			return errMacroStep
		}
		return nil
	})
	app.macroRun = nil
	app.log.Debug("macro played", "iterations", n, "error", err)

	switch {
	case errors.Is(err, ErrQuit):
		return err
	case errors.Is(err, errMacroStep):
		if run.count != 0 {
			app.screen.Beep()
		}
		return nil
	case errors.Is(err, context.Canceled):
		app.setMessage("Keyboard macro cancelled", true)
		return nil
	case err != nil:
		app.setMessage(err.Error(), true)
		return nil
	}

	if run.rearm != (key.Event{}) {
		app.armMacroRepeat(run)
		app.setMessage(fmt.Sprintf("(Type %s to repeat macro)", run.rearm), false)
	}
	return nil
}

// armMacroRepeat binds the key that called the macro to call it again.
func (app *Application) armMacroRepeat(run *macroRun) {
	var d keymap.Disposable
	d = app.keys.ArmOnce(run.rearm,
		func(arg input.PrefixArg) error {
			app.macroRepeat = nil
			app.macroRun = &macroRun{events: run.events, count: arg.Int(), rearm: run.rearm}
			return nil
		},
		func() {
			if app.macroRepeat == d {
				app.macroRepeat = nil
			}
		},
	)
	app.macroRepeat = d
}

// dropMacroRepeat disposes the macro repeat binding after any command
// other than the repeat itself or a prefix argument.
func (app *Application) dropMacroRepeat(name string) {
	if app.macroRepeat == nil || name == compose.CmdRepeat || input.IsPrefixCommand(name) {
		return
	}
	d := app.macroRepeat
	app.macroRepeat = nil
	d.Dispose()
}
