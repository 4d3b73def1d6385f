// Package hook provides priority-ordered pre/post dispatch hooks for the
// dispatcher.
//
// Hooks intercept command dispatch for cross-cutting concerns: undo
// grouping, audit logging and command composition.
//
//   - PreDispatchHook: called before a command runs. It may rewrite the
//     action or cancel normal dispatch. A hook that cancels after handling
//     the command itself records the outcome with ExecutionContext.Handled.
//   - PostDispatchHook: called after every top level dispatch, including
//     cancelled ones, so observers see each command exactly once.
//
// # Priority System
//
// Pre-hooks run from highest to lowest priority; post-hooks run from
// lowest to highest, so the highest priority hook brackets the others:
//
//	PrioritySystem  = 2000  // command scope (undo grouping)
//	PriorityAudit   = 1000  // audit logging
//	PriorityCompose = 500   // composition controller
//	PriorityPlugin  = 100   // script hooks
//
// # Function Adapters
//
//	h := hook.NewPreDispatchFunc("my-hook", 100, func(a *input.Action, ctx *execctx.ExecutionContext) bool {
//	    return true // continue dispatch
//	})
package hook
