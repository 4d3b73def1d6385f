package macro

import "errors"

var (
	// ErrRecording is returned by Start while a macro is being defined.
	ErrRecording = errors.New("already defining keyboard macro")

	// ErrNotRecording is returned by Stop when no macro is being defined.
	ErrNotRecording = errors.New("not defining keyboard macro")

	// ErrEmpty is returned when a definition ends with no keys, or when
	// playback is asked for a macro that does not exist.
	ErrEmpty = errors.New("no keyboard macro defined")

	// ErrPlaying is returned by Play while another macro is playing.
	ErrPlaying = errors.New("keyboard macro already executing")

	// ErrLoopLimit is returned when an endless repeat reaches MaxLoops.
	ErrLoopLimit = errors.New("keyboard macro loop limit reached")
)
