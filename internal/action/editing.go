package action

import (
	"strings"

	"github.com/dshills/composable/internal/dispatcher/execctx"
	"github.com/dshills/composable/internal/dispatcher/handler"
	"github.com/dshills/composable/internal/engine"
	"github.com/dshills/composable/internal/input"
)

// Editing command names.
const (
	SelfInsertCommand  = "self-insert-command"
	Newline            = "newline"
	DeleteChar         = "delete-char"
	DeleteBackwardChar = "delete-backward-char"
	Yank               = "yank"
	Undo               = "undo"
	Redo               = "redo"
)

// RegisterEditing installs the plain editing commands acting on e.
func RegisterEditing(r Registrar, e *engine.Engine) {
	r.RegisterFunc(SelfInsertCommand, "Insert the typed character ARG times", func(a input.Action, _ *execctx.ExecutionContext) handler.Result {
		k := a.LastKey()
		if !k.IsChar() {
			return handler.NoOp()
		}
		return result(insertRepeated(e, string(k.Rune), a.Arg))
	})
	r.RegisterFunc(Newline, "Insert ARG newlines", func(a input.Action, _ *execctx.ExecutionContext) handler.Result {
		return result(insertRepeated(e, "\n", a.Arg))
	})
	r.RegisterFunc(DeleteChar, "Delete ARG characters after point", func(a input.Action, _ *execctx.ExecutionContext) handler.Result {
		return result(deleteChars(e, a.Arg.Int()))
	})
	r.RegisterFunc(DeleteBackwardChar, "Delete ARG characters before point", func(a input.Action, _ *execctx.ExecutionContext) handler.Result {
		return result(deleteChars(e, -a.Arg.Int()))
	})
	r.RegisterFunc(Yank, "Insert the most recent kill", func(input.Action, *execctx.ExecutionContext) handler.Result {
		return result(e.Yank())
	})
	r.RegisterFunc(Undo, "Undo the last command", func(input.Action, *execctx.ExecutionContext) handler.Result {
		return result(e.Undo())
	})
	r.RegisterFunc(Redo, "Redo the last undone command", func(input.Action, *execctx.ExecutionContext) handler.Result {
		return result(e.Redo())
	})
}

func result(err error) handler.Result {
	if err != nil {
		return handler.Error(err)
	}
	return handler.Success()
}

func insertRepeated(e *engine.Engine, s string, arg input.PrefixArg) error {
	n := arg.Int()
	if n <= 0 {
		return nil
	}
	return e.InsertAtPoint(strings.Repeat(s, n))
}

// deleteChars deletes n characters after point, or -n before it.
func deleteChars(e *engine.Engine, n int) error {
	p := e.Point()
	end := max(0, min(p+n, e.Len()))
	if end == p {
		return nil
	}
	_, err := e.Delete(p, end)
	return err
}
