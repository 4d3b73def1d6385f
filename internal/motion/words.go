package motion

import (
	"github.com/dshills/composable/internal/engine"
	"github.com/dshills/composable/internal/input"
)

func forwardWord(text []rune, pos, n int) int {
	times, fwd := count(n)
	ws := words(text)
	for ; times > 0; times-- {
		if fwd {
			pos = nextWordEnd(ws, pos, len(text))
		} else {
			pos = prevWordStart(ws, pos)
		}
	}
	return pos
}

func nextWordEnd(ws []span, pos, limit int) int {
	for _, w := range ws {
		if w.End > pos {
			return w.End
		}
	}
	return limit
}

func prevWordStart(ws []span, pos int) int {
	for i := len(ws) - 1; i >= 0; i-- {
		if ws[i].Start < pos {
			return ws[i].Start
		}
	}
	return 0
}

// markWord sets the mark ARG words from point, or from the mark when the
// region is active so that repeated calls extend it.
func markWord(e *engine.Engine, arg input.PrefixArg) error {
	from := e.Point()
	if e.MarkActive() {
		from = e.Mark()
	}
	e.SetMark(forwardWord(e.Buffer().Runes(), from, arg.Int()))
	return nil
}
