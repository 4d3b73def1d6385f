// Package dispatcher routes commands to handlers and coordinates execution.
//
// Every command the editor can run is registered by name. A key binding,
// a script or the composition controller names a command and the
// dispatcher runs it:
//
//  1. An ExecutionContext is created for the dispatch.
//  2. Pre-dispatch hooks run. They may rewrite the action, or cancel it
//     after handling it themselves (see execctx.ExecutionContext.Handled).
//  3. The handler is looked up and executed, with optional panic recovery.
//  4. Post-dispatch hooks run, for cancelled commands as well.
//  5. Metrics are recorded, if enabled.
//
// Execute runs a command from inside another command. It skips the hooks,
// so a hook can invoke motions and actions without re-entering itself.
package dispatcher
