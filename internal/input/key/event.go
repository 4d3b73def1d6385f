package key

import "unicode"

// Event is one key press. Events compare with == and serve as map keys,
// so shift is folded into the rune for characters and never stored.
type Event struct {
	Key       Key
	Rune      rune // set for KeyRune
	Modifiers Modifier
}

// NewRuneEvent returns the event for typing r with mods held.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods.Without(ModShift)}
}

// NewSpecialEvent returns the event for a named key such as TAB.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods}
}

// IsChar reports whether e is an unmodified printable character, the
// keys self-insert-command consumes.
func (e Event) IsChar() bool {
	return e.Key == KeyRune && e.Rune != 0 && e.Modifiers == ModNone && unicode.IsPrint(e.Rune)
}

// Digit returns the value of a digit key whatever its modifiers, so "7"
// and "M-7" both give 7.
func (e Event) Digit() (int, bool) {
	if e.Key != KeyRune || e.Rune < '0' || e.Rune > '9' {
		return 0, false
	}
	return int(e.Rune - '0'), true
}

// String is the Emacs notation: "C-w", "M-;", "C-SPC".
func (e Event) String() string {
	switch {
	case e.Key != KeyRune:
		return e.Modifiers.Prefix() + e.Key.String()
	case e.Rune == ' ':
		return e.Modifiers.Prefix() + "SPC"
	}
	return e.Modifiers.Prefix() + string(e.Rune)
}
