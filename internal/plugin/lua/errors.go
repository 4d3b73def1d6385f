package lua

import "errors"

var (
	ErrStateClosed = errors.New("lua: state is closed")

	// ErrExecutionTimeout is a script or command that ran past the
	// state's execution timeout.
	ErrExecutionTimeout = errors.New("lua: execution timeout")

	// ErrUnknownKind rejects compose.command kinds other than "motion"
	// and "action".
	ErrUnknownKind = errors.New("lua: unknown command kind")
)
