package motion

import "errors"

// Errors returned by motions.
var (
	// ErrUnbalanced indicates a bracket or string has no partner.
	ErrUnbalanced = errors.New("motion: unbalanced parentheses")

	// ErrNoSymbol indicates no symbol at or after point.
	ErrNoSymbol = errors.New("motion: no symbol at point")

	// ErrNoURL indicates no URL on the current line.
	ErrNoURL = errors.New("motion: no URL at point")
)
