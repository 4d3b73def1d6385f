package action

import "errors"

var (
	// ErrEmptyPrefix is returned when a comment prefix is blank.
	ErrEmptyPrefix = errors.New("action: comment prefix is empty")

	// ErrUnknownAction is returned when no action has the requested name.
	ErrUnknownAction = errors.New("action: unknown action")
)
