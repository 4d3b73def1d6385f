package backend

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/composable/internal/input/key"
)

var specialKeys = map[tcell.Key]key.Key{
	tcell.KeyEscape:     key.KeyEscape,
	tcell.KeyEnter:      key.KeyEnter,
	tcell.KeyTab:        key.KeyTab,
	tcell.KeyBackspace:  key.KeyBackspace,
	tcell.KeyBackspace2: key.KeyBackspace,
	tcell.KeyDelete:     key.KeyDelete,
	tcell.KeyHome:       key.KeyHome,
	tcell.KeyEnd:        key.KeyEnd,
	tcell.KeyPgUp:       key.KeyPageUp,
	tcell.KeyPgDn:       key.KeyPageDown,
	tcell.KeyUp:         key.KeyUp,
	tcell.KeyDown:       key.KeyDown,
	tcell.KeyLeft:       key.KeyLeft,
	tcell.KeyRight:      key.KeyRight,
}

// TranslateKey converts a tcell key event to Emacs key notation. Alt is
// reported as Meta. Control characters become C-<letter>.
func TranslateKey(ev *tcell.EventKey) (key.Event, bool) {
	mods := translateMods(ev.Modifiers())
	k := ev.Key()

	switch {
	case k == tcell.KeyRune:
		r := ev.Rune()
		if mods.Has(key.ModCtrl) {
			r = unicode.ToLower(r)
		}
		return key.NewRuneEvent(r, mods), true

	case k == tcell.KeyCtrlSpace:
		return key.NewRuneEvent(' ', mods.With(key.ModCtrl)), true

	case k == tcell.KeyCtrlUnderscore:
		return key.NewRuneEvent('_', mods.With(key.ModCtrl)), true
	}

	if sk, ok := specialKeys[k]; ok {
		if k < ' ' || k == tcell.KeyBackspace2 {
			// TAB, RET, BS and ESC share codes with C-i, C-m, C-h and C-[.
			mods = mods.Without(key.ModCtrl)
		}
		return key.NewSpecialEvent(sk, mods), true
	}

	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		r := 'a' + rune(k-tcell.KeyCtrlA)
		return key.NewRuneEvent(r, mods.With(key.ModCtrl)), true
	}
	return key.Event{}, false
}

func translateMods(m tcell.ModMask) key.Modifier {
	var out key.Modifier
	if m&tcell.ModCtrl != 0 {
		out = out.With(key.ModCtrl)
	}
	if m&(tcell.ModAlt|tcell.ModMeta) != 0 {
		out = out.With(key.ModMeta)
	}
	if m&tcell.ModShift != 0 {
		out = out.With(key.ModShift)
	}
	return out
}
