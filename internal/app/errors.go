package app

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrQuit ends the event loop normally. Commands request it through
	// a Quit result.
	ErrQuit = errors.New("quit requested")

	ErrAlreadyRunning = errors.New("application already running")

	// ErrNoFile is returned by save in a scratch buffer.
	ErrNoFile = errors.New("buffer has no file")
)

// OperationError is a failed file operation: open, save or reload of
// the buffer file or the configuration.
type OperationError struct {
	Op     string
	Target string
	Err    error
}

func NewOperationError(op, target string, err error) *OperationError {
	return &OperationError{Op: op, Target: target, Err: err}
}

func (e *OperationError) Error() string {
	msg := strings.TrimSpace(e.Op + " " + e.Target)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *OperationError) Unwrap() error { return e.Err }

// InitError names the bootstrap step that failed in New.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("initializing %s: %v", e.Component, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }
