package hook

import (
	"log/slog"

	"github.com/dshills/composable/internal/dispatcher/execctx"
	"github.com/dshills/composable/internal/dispatcher/handler"
	"github.com/dshills/composable/internal/input"
)

// Standard hook priorities.
const (
	PrioritySystem  = 2000 // Brackets everything else
	PriorityAudit   = 1000
	PriorityCompose = 500
	PriorityPlugin  = 100
)

// AuditHook logs every dispatched command.
type AuditHook struct {
	logger *slog.Logger
}

// NewAuditHook creates an audit hook writing to logger.
func NewAuditHook(logger *slog.Logger) *AuditHook {
	return &AuditHook{logger: logger}
}

// Name implements Hook.
func (h *AuditHook) Name() string { return "audit" }

// Priority implements Hook.
func (h *AuditHook) Priority() int { return PriorityAudit }

// PreDispatch logs the command being dispatched.
func (h *AuditHook) PreDispatch(action *input.Action, _ *execctx.ExecutionContext) bool {
	h.logger.Debug("dispatch start",
		"command", action.Name,
		"arg", action.Arg.String(),
		"keys", action.Keys.String(),
		"source", action.Source.String(),
	)
	return true
}

// PostDispatch logs the outcome.
func (h *AuditHook) PostDispatch(action *input.Action, ctx *execctx.ExecutionContext, result *handler.Result) {
	if result.Status == handler.StatusError {
		h.logger.Warn("dispatch failed",
			"command", action.Name,
			"error", result.Error,
		)
		return
	}
	h.logger.Debug("dispatch complete",
		"command", action.Name,
		"status", result.Status.String(),
		"elapsed", ctx.Elapsed(),
	)
}

// ScopeHook runs begin before and end after every command. Because
// post-hooks run for cancelled commands too, end always pairs with begin.
type ScopeHook struct {
	name  string
	begin func(action *input.Action)
	end   func(action *input.Action, result *handler.Result)
}

// NewScopeHook creates a scope hook at PrioritySystem.
func NewScopeHook(name string, begin func(*input.Action), end func(*input.Action, *handler.Result)) *ScopeHook {
	return &ScopeHook{name: name, begin: begin, end: end}
}

// Name implements Hook.
func (h *ScopeHook) Name() string { return h.name }

// Priority implements Hook.
func (h *ScopeHook) Priority() int { return PrioritySystem }

// PreDispatch implements PreDispatchHook.
func (h *ScopeHook) PreDispatch(action *input.Action, _ *execctx.ExecutionContext) bool {
	if h.begin != nil {
		h.begin(action)
	}
	return true
}

// PostDispatch implements PostDispatchHook.
func (h *ScopeHook) PostDispatch(action *input.Action, _ *execctx.ExecutionContext, result *handler.Result) {
	if h.end != nil {
		h.end(action, result)
	}
}
