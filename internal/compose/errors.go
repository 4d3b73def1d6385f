package compose

import "errors"

var (
	// ErrEmptyName is returned when a pairing entry names no command.
	ErrEmptyName = errors.New("compose: empty command name")

	// ErrNilAction is returned when wrapping a nil action.
	ErrNilAction = errors.New("compose: nil action")
)
