package action

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dshills/composable/internal/engine"
	"github.com/dshills/composable/internal/input"
)

type caseKind uint8

const (
	upper caseKind = iota
	lower
	title
)

func (k caseKind) caser() cases.Caser {
	switch k {
	case upper:
		return cases.Upper(language.Und)
	case lower:
		return cases.Lower(language.Und)
	default:
		return cases.Title(language.Und)
	}
}

func convertCase(k caseKind) Func {
	return func(e *engine.Engine, start, end int, _ input.PrefixArg) error {
		old := e.Slice(start, end)
		return replaceText(e, start, end, old, k.caser().String(old))
	}
}

// replaceText swaps old for repl at [start, end). When both have the
// same number of runes only the runes that differ are replaced, so
// markers inside the range keep their positions.
func replaceText(e *engine.Engine, start, end int, old, repl string) error {
	if old == repl {
		return nil
	}
	a, b := []rune(old), []rune(repl)
	if len(a) != len(b) {
		return e.Replace(start, end, repl)
	}
	for i := range a {
		if a[i] == b[i] {
			continue
		}
		if err := e.Replace(start+i, start+i+1, string(b[i])); err != nil {
			return err
		}
	}
	return nil
}
