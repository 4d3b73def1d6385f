// Package execctx provides the execution context for command handlers.
package execctx

import "time"

// ExecutionContext carries per-dispatch state shared by hooks and the
// handler of one command.
type ExecutionContext struct {
	// Depth is 0 for a top level dispatch and grows for each nested
	// Execute from inside a handler.
	Depth int

	// Hooked reports whether dispatch hooks run for this invocation.
	Hooked bool

	// StartTime is when the dispatch began.
	StartTime time.Time

	handled    bool
	handledErr error
	values     map[string]any
}

// New creates a top level execution context.
func New() *ExecutionContext {
	return &ExecutionContext{Hooked: true, StartTime: time.Now()}
}

// Nested creates the context for a command executed from within ctx.
// Nested commands never run hooks.
func (ctx *ExecutionContext) Nested() *ExecutionContext {
	depth := 0
	if ctx != nil {
		depth = ctx.Depth + 1
	}
	return &ExecutionContext{Depth: depth, StartTime: time.Now()}
}

// Handled marks the command as handled by a pre-dispatch hook that then
// cancels normal dispatch. err is the outcome; the dispatcher reports it
// instead of a plain cancellation.
func (ctx *ExecutionContext) Handled(err error) {
	ctx.handled = true
	ctx.handledErr = err
}

// WasHandled returns whether Handled was called and the recorded error.
func (ctx *ExecutionContext) WasHandled() (bool, error) {
	return ctx.handled, ctx.handledErr
}

// Set stores a value for later hooks.
func (ctx *ExecutionContext) Set(key string, value any) {
	if ctx.values == nil {
		ctx.values = make(map[string]any)
	}
	ctx.values[key] = value
}

// Get retrieves a stored value.
func (ctx *ExecutionContext) Get(key string) (any, bool) {
	v, ok := ctx.values[key]
	return v, ok
}

// Elapsed returns the time since the dispatch began.
func (ctx *ExecutionContext) Elapsed() time.Duration {
	return time.Since(ctx.StartTime)
}
