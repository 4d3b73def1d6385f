package keymap

import "errors"

// Keymap errors.
var (
	// ErrEmptyCommand indicates a binding without a command.
	ErrEmptyCommand = errors.New("keymap: empty command")

	// ErrUnknownKeymap indicates a keymap name that was never registered.
	ErrUnknownKeymap = errors.New("keymap: unknown keymap")
)
