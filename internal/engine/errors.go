package engine

import "errors"

var (
	ErrReadOnly = errors.New("engine: buffer is read-only")

	// ErrNoMark is returned by commands that need a mark, like
	// exchange-point-and-mark, before one was ever set.
	ErrNoMark = errors.New("engine: no mark set in this buffer")

	// ErrMarkInactive is returned by region commands when the mark is set
	// but not active.
	ErrMarkInactive = errors.New("engine: the mark is not active now")

	ErrKillRingEmpty = errors.New("engine: kill ring is empty")
)
