// Package handler defines how commands are implemented and what they
// report back.
package handler

import (
	"github.com/dshills/composable/internal/dispatcher/execctx"
	"github.com/dshills/composable/internal/input"
)

// Handler implements one named command. When several handlers share a
// name the highest priority one runs; a Lua command registered over a
// built-in one shadows it this way.
type Handler interface {
	Handle(action input.Action, ctx *execctx.ExecutionContext) Result
	Priority() int
}

// Func is a command as a plain function. It is a Handler of priority 0.
type Func func(action input.Action, ctx *execctx.ExecutionContext) Result

func (f Func) Handle(action input.Action, ctx *execctx.ExecutionContext) Result {
	if f == nil {
		return Errorf("handler: nil command function")
	}
	return f(action, ctx)
}

func (Func) Priority() int { return 0 }

type prioritized struct {
	Func
	priority int
}

func (p prioritized) Priority() int { return p.priority }

// WithPriority returns fn as a Handler of the given priority.
func WithPriority(fn Func, priority int) Handler {
	return prioritized{Func: fn, priority: priority}
}
