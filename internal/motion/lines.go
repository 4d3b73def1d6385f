package motion

import (
	"github.com/dshills/composable/internal/engine"
	"github.com/dshills/composable/internal/input"
)

// nextLine moves n lines keeping the column where the line is long enough.
func nextLine(text []rune, pos, n int) int {
	starts := lineStarts(text)
	li := lineIndex(starts, pos)
	col := pos - starts[li]
	target := li + n
	switch {
	case target < 0:
		return 0
	case target >= len(starts):
		return len(text)
	}
	return min(starts[target]+col, lineEnd(text, starts[target]))
}

// lineAt returns the start of the line n-1 lines from pos, clamped to the
// buffer.
func lineAt(text []rune, pos, n int) int {
	starts := lineStarts(text)
	target := lineIndex(starts, pos) + n - 1
	return starts[max(0, min(target, len(starts)-1))]
}

func endOfLine(text []rune, pos, n int) int {
	return lineEnd(text, lineAt(text, pos, n))
}

func beginningOfLine(text []rune, pos, n int) int {
	return lineAt(text, pos, n)
}

func backToIndentation(text []rune, pos, _ int) int {
	i := lineStart(text, pos)
	for i < len(text) && isBlank(text[i]) {
		i++
	}
	return i
}

// markLine marks whole lines including their newlines. Point goes to the
// start of the line and the mark ARG lines further. With an active
// region the count starts from the mark, so repeated calls extend it.
// A negative ARG marks the current line and the lines before it.
func markLine(e *engine.Engine, arg input.PrefixArg) error {
	text := e.Buffer().Runes()
	starts := lineStarts(text)
	at := func(i int) int {
		switch {
		case i < 0:
			return 0
		case i >= len(starts):
			return len(text)
		}
		return starts[i]
	}

	from := e.Point()
	if e.MarkActive() {
		from = e.Mark()
	}
	point := lineIndex(starts, e.Point())
	n := arg.Int()
	if n >= 0 {
		e.SetPoint(at(point))
		e.SetMark(at(lineIndex(starts, from) + n))
		return nil
	}
	e.SetPoint(at(point + 1))
	e.SetMark(at(lineIndex(starts, from) + n + 1))
	return nil
}
