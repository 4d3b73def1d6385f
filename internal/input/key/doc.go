// Package key provides key event types and Emacs-style key notation.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Key: identifies a special key, or KeyRune for characters
//   - Modifier: Ctrl, Meta and Shift
//   - Event: a single key press
//   - Sequence: a series of events bound to one command ("C-x C-u")
//
// # Key Notation
//
// Key specifications use the notation found in Emacs keymaps:
//
//   - Characters: "a", "A", ",", "{"
//   - Modifiers: "C-w", "M-;", "C-M-f", "M--"
//   - Named keys: "SPC", "TAB", "RET", "ESC", "DEL", "BS"
//   - Bracketed keys: "<up>", "<down>", "<home>", "<end>", "<next>", "<prior>"
//   - Sequences: "C-x C-u", "C-x TAB"
package key
