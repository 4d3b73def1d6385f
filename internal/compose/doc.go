// Package compose implements action/object composition.
//
// A composable command wraps an action. Invoked with an active region it
// applies the action at once. Otherwise it records where it started,
// sets the mark there and waits: the next dispatched command is taken
// as the object. The controller intercepts that command through a
// pre-dispatch hook, runs it as a motion to establish a region, applies
// the action and puts point back where the composition began.
//
// While an object is awaited, prefix argument commands accumulate a
// numeric argument for the motion, and the begin and end delimiters
// restrict the region to the part before or after the start. Under a
// delimiter a motion with a directional counterpart in the pairing
// table is run both ways so the whole unit around the start is found
// before it is clipped.
//
// After a composition the key that chose the object is armed as a
// one-shot repeat binding: pressing it again replays the motion one
// unit further from where the last one ended and applies the action
// again. Any other command tears the binding down.
//
// The controller is owned by one editing session and is not safe for
// concurrent use.
package compose
