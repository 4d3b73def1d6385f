package dispatcher

import "errors"

var (
	// ErrNoHandler is an unknown command name. Key bindings to commands
	// a plugin never defined end here.
	ErrNoHandler = errors.New("dispatcher: no such command")

	ErrActionCancelled = errors.New("dispatcher: command cancelled by hook")
	ErrPanic           = errors.New("dispatcher: command panicked")
	ErrInvalidAction   = errors.New("dispatcher: command has no name")

	// ErrMaxDepth stops commands that keep invoking each other, such as a
	// Lua motion that calls itself.
	ErrMaxDepth = errors.New("dispatcher: command nesting too deep")
)
