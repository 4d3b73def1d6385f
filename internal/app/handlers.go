package app

import (
	"github.com/dshills/composable/internal/compose"
	"github.com/dshills/composable/internal/dispatcher/execctx"
	"github.com/dshills/composable/internal/dispatcher/handler"
	"github.com/dshills/composable/internal/input"
)

// Session command names.
const (
	CmdSaveBuffer = "save-buffer"
	CmdQuit       = "save-buffers-kill-terminal"
)

// registerHandlers installs the commands that act on the session rather
// than on the buffer.
func (app *Application) registerHandlers() {
	d := app.dispatcher

	for _, name := range []string{input.CmdDigitArgument, input.CmdNegativeArgument, input.CmdUniversalArgument} {
		d.RegisterFunc(name, "Begin or extend a numeric prefix argument", app.handlePrefix)
	}

	d.RegisterFunc(compose.CmdRepeat, "Repeat the last composed object", app.handleRepeat)

	d.RegisterFunc(CmdSaveBuffer, "Save the buffer to its file", func(input.Action, *execctx.ExecutionContext) handler.Result {
		if !app.engine.Modified() {
			return handler.NoOpWithMessage("(No changes need to be saved)")
		}
		if err := app.Save(); err != nil {
			return handler.Error(err)
		}
		return handler.SuccessWithMessage("Wrote " + app.path)
	})

	d.RegisterFunc(CmdQuit, "Save the buffer and exit", app.handleQuit)

	app.registerMacroHandlers()
}

func (app *Application) handlePrefix(a input.Action, _ *execctx.ExecutionContext) handler.Result {
	if !input.ApplyPrefixCommand(&app.prefix, a) {
		return handler.NoOp()
	}
	return handler.Success()
}

// handleRepeat fires the armed repeat binding for the key that invoked it.
func (app *Application) handleRepeat(a input.Action, _ *execctx.ExecutionContext) handler.Result {
	fire, ok := app.keys.TakeTransient(a.LastKey())
	if !ok {
		return handler.NoOp()
	}
	if err := fire(a.Arg); err != nil {
		return handler.Error(err)
	}
	return handler.Success()
}

// handleQuit saves a modified file buffer and ends the session. A
// modified scratch buffer needs the command twice in a row.
func (app *Application) handleQuit(a input.Action, _ *execctx.ExecutionContext) handler.Result {
	if !app.engine.Modified() || app.engine.ReadOnly() {
		return handler.QuitResult()
	}
	if app.path != "" {
		if err := app.Save(); err != nil {
			return handler.Error(err)
		}
		return handler.QuitResult()
	}
	if app.lastCommand == a.Name {
		return handler.QuitResult()
	}
	return handler.NoOpWithMessage("Buffer modified; " + a.Keys.String() + " again to quit without saving")
}
