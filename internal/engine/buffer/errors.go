package buffer

import "errors"

// Errors returned by buffer operations.
var (
	ErrOffsetOutOfRange = errors.New("buffer: offset out of range")
	ErrRangeInvalid     = errors.New("buffer: invalid range")
	ErrReadOnly         = errors.New("buffer: buffer is read-only")
)
