package key

// Modifier is a set of modifier keys held with a key.
type Modifier uint8

const (
	ModNone Modifier = 0

	// ModShift only appears on special keys. For characters the shift is
	// already in the rune.
	ModShift Modifier = 1 << iota
	ModCtrl
	// ModMeta is Alt or Option, or a key typed after ESC.
	ModMeta
)

// emacsModifiers lists the Emacs modifier letters in the order they are
// written, as in "C-M-f".
var emacsModifiers = []struct {
	letter byte
	mod    Modifier
}{
	{'C', ModCtrl},
	{'M', ModMeta},
	{'S', ModShift},
}

func modifierFor(letter byte) (Modifier, bool) {
	for _, m := range emacsModifiers {
		if m.letter == letter {
			return m.mod, true
		}
	}
	return ModNone, false
}

func (m Modifier) Has(mod Modifier) bool { return m&mod != 0 }

func (m Modifier) With(mod Modifier) Modifier { return m | mod }

func (m Modifier) Without(mod Modifier) Modifier { return m &^ mod }

// Prefix returns the Emacs prefix for m, e.g. "C-M-".
func (m Modifier) Prefix() string {
	var b []byte
	for _, em := range emacsModifiers {
		if m.Has(em.mod) {
			b = append(b, em.letter, '-')
		}
	}
	return string(b)
}
