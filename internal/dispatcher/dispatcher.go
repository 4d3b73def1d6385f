package dispatcher

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/dshills/composable/internal/dispatcher/execctx"
	"github.com/dshills/composable/internal/dispatcher/handler"
	"github.com/dshills/composable/internal/dispatcher/hook"
	"github.com/dshills/composable/internal/input"
)

// Dispatcher routes commands to handlers and coordinates execution.
type Dispatcher struct {
	registry *Registry
	hooks    *hook.Manager
	config   Config
	metrics  *Metrics
	logger   *slog.Logger

	depth atomic.Int32
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger used for panics and failed commands.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithHookManager shares an existing hook manager.
func WithHookManager(m *hook.Manager) Option {
	return func(d *Dispatcher) {
		if m != nil {
			d.hooks = m
		}
	}
}

// New creates a new dispatcher with the given configuration.
func New(config Config, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		registry: NewRegistry(),
		hooks:    hook.NewManager(),
		config:   config,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if config.EnableMetrics {
		d.metrics = NewMetrics()
	}
	return d
}

// NewWithDefaults creates a new dispatcher with default configuration.
func NewWithDefaults() *Dispatcher {
	return New(DefaultConfig())
}

// Dispatch runs a top level command with hooks.
func (d *Dispatcher) Dispatch(action input.Action) handler.Result {
	if action.Name == "" {
		return handler.Error(ErrInvalidAction)
	}
	ctx := execctx.New()

	var result handler.Result
	handled := false
	if d.hooks.RunPreDispatch(&action, ctx) {
		result = d.run(action, ctx)
	} else if ok, err := ctx.WasHandled(); ok {
		handled = true
		if err != nil {
			result = handler.Error(err)
		} else {
			result = handler.Success()
		}
	} else {
		result = handler.CancelledWithMessage(ErrActionCancelled.Error())
	}

	d.hooks.RunPostDispatch(&action, ctx, &result)

	if d.metrics != nil {
		d.metrics.RecordDispatch(action.Name, ctx.Elapsed(), result.Status, handled)
	}
	if result.IsError() {
		d.logger.Warn("command failed", "command", action.Name, "error", result.Error)
	}
	return result
}

// Execute runs a command by name without hooks. It is meant for commands
// that invoke other commands.
func (d *Dispatcher) Execute(name string, arg input.PrefixArg) error {
	result := d.ExecuteAction(input.Action{Name: name, Arg: arg, Source: input.SourceAPI})
	if result.IsError() {
		return result.Error
	}
	return nil
}

// ExecuteAction runs an action without hooks and returns the full result.
func (d *Dispatcher) ExecuteAction(action input.Action) handler.Result {
	depth := d.depth.Add(1)
	defer d.depth.Add(-1)
	if d.config.MaxDepth > 0 && int(depth) > d.config.MaxDepth {
		return handler.Error(fmt.Errorf("%w: %s", ErrMaxDepth, action.Name))
	}

	ctx := &execctx.ExecutionContext{Depth: int(depth), StartTime: time.Now()}
	return d.run(action, ctx)
}

func (d *Dispatcher) run(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	h := d.registry.Get(action.Name)
	if h == nil {
		return handler.Error(fmt.Errorf("%w: %s", ErrNoHandler, action.Name))
	}
	if d.config.RecoverFromPanic {
		return d.executeWithRecovery(h, action, ctx)
	}
	return h.Handle(action, ctx)
}

// executeWithRecovery executes a handler with panic recovery.
func (d *Dispatcher) executeWithRecovery(h handler.Handler, action input.Action, ctx *execctx.ExecutionContext) (result handler.Result) {
	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, 4096)
			n := runtime.Stack(stack, false)
			d.logger.Error("handler panic", "command", action.Name, "panic", r, "stack", string(stack[:n]))

			result = handler.Error(fmt.Errorf("%w: %s: %v", ErrPanic, action.Name, r))
			if d.metrics != nil {
				d.metrics.RecordPanic(action.Name)
			}
		}
	}()
	return h.Handle(action, ctx)
}

// Register registers a handler under a command name.
func (d *Dispatcher) Register(name, description string, h handler.Handler) {
	d.registry.Register(name, description, h)
}

// RegisterFunc registers a handler function under a command name.
func (d *Dispatcher) RegisterFunc(name, description string, fn handler.Func) {
	d.registry.Register(name, description, fn)
}

// Unregister removes a command.
func (d *Dispatcher) Unregister(name string) {
	d.registry.Unregister(name)
}

// HasCommand reports whether a command is registered.
func (d *Dispatcher) HasCommand(name string) bool {
	return d.registry.Has(name)
}

// Registry returns the command registry.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Hooks returns the hook manager.
func (d *Dispatcher) Hooks() *hook.Manager {
	return d.hooks
}

// Metrics returns the metrics collector (nil if disabled).
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}

// Config returns the dispatcher configuration.
func (d *Dispatcher) Config() Config {
	return d.config
}
