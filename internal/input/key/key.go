package key

// Key represents a keyboard key.
// For character keys, use KeyRune and set the Rune field in Event.
type Key uint8

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// KeyRune is used for character keys (letters, digits, punctuation).
	// The character is stored in Event.Rune.
	KeyRune
)

var keyNames = map[Key]string{
	KeyNone:      "none",
	KeyEscape:    "ESC",
	KeyEnter:     "RET",
	KeyTab:       "TAB",
	KeyBackspace: "BS",
	KeyDelete:    "DEL",
	KeyHome:      "<home>",
	KeyEnd:       "<end>",
	KeyPageUp:    "<prior>",
	KeyPageDown:  "<next>",
	KeyUp:        "<up>",
	KeyDown:      "<down>",
	KeyLeft:      "<left>",
	KeyRight:     "<right>",
	KeyRune:      "rune",
}

// String returns the Emacs name for the key.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// IsSpecial returns true for every key except KeyNone and KeyRune.
func (k Key) IsSpecial() bool {
	return k != KeyNone && k != KeyRune
}

// lookupName maps a key name (without modifiers) to a Key.
// Names are matched case-sensitively, the way Emacs does.
func lookupName(name string) (Key, bool) {
	switch name {
	case "ESC", "<escape>":
		return KeyEscape, true
	case "RET", "<return>":
		return KeyEnter, true
	case "TAB", "<tab>":
		return KeyTab, true
	case "BS", "<backspace>":
		return KeyBackspace, true
	case "DEL", "<delete>":
		return KeyDelete, true
	case "<home>":
		return KeyHome, true
	case "<end>":
		return KeyEnd, true
	case "<prior>":
		return KeyPageUp, true
	case "<next>":
		return KeyPageDown, true
	case "<up>":
		return KeyUp, true
	case "<down>":
		return KeyDown, true
	case "<left>":
		return KeyLeft, true
	case "<right>":
		return KeyRight, true
	}
	return KeyNone, false
}
