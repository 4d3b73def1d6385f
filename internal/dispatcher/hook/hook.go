package hook

import (
	"github.com/dshills/composable/internal/dispatcher/execctx"
	"github.com/dshills/composable/internal/dispatcher/handler"
	"github.com/dshills/composable/internal/input"
)

// Hook identifies a registered observer. Pre-dispatch hooks run from the
// highest priority down, post-dispatch hooks from the lowest up, so a
// hook's post half brackets everything its pre half saw.
type Hook interface {
	Name() string
	Priority() int
}

// PreDispatchHook sees every top level command before its handler. It
// may rewrite the action. Returning false stops the chain and skips the
// handler; a hook that consumed the command marks ctx handled.
type PreDispatchHook interface {
	Hook
	PreDispatch(action *input.Action, ctx *execctx.ExecutionContext) bool
}

// PostDispatchHook sees every top level command after it ran, including
// commands a pre-dispatch hook took over.
type PostDispatchHook interface {
	Hook
	PostDispatch(action *input.Action, ctx *execctx.ExecutionContext, result *handler.Result)
}

type named struct {
	name     string
	priority int
}

func (n named) Name() string  { return n.name }
func (n named) Priority() int { return n.priority }

// PreDispatchFunc is a PreDispatchHook backed by a function.
type PreDispatchFunc struct {
	named
	fn func(action *input.Action, ctx *execctx.ExecutionContext) bool
}

func NewPreDispatchFunc(name string, priority int, fn func(action *input.Action, ctx *execctx.ExecutionContext) bool) *PreDispatchFunc {
	return &PreDispatchFunc{named: named{name, priority}, fn: fn}
}

func (f *PreDispatchFunc) PreDispatch(action *input.Action, ctx *execctx.ExecutionContext) bool {
	return f.fn == nil || f.fn(action, ctx)
}

// PostDispatchFunc is a PostDispatchHook backed by a function.
type PostDispatchFunc struct {
	named
	fn func(action *input.Action, ctx *execctx.ExecutionContext, result *handler.Result)
}

func NewPostDispatchFunc(name string, priority int, fn func(action *input.Action, ctx *execctx.ExecutionContext, result *handler.Result)) *PostDispatchFunc {
	return &PostDispatchFunc{named: named{name, priority}, fn: fn}
}

func (f *PostDispatchFunc) PostDispatch(action *input.Action, ctx *execctx.ExecutionContext, result *handler.Result) {
	if f.fn != nil {
		f.fn(action, ctx, result)
	}
}
