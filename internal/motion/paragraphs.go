package motion

import (
	"github.com/dshills/composable/internal/engine"
	"github.com/dshills/composable/internal/input"
)

// Paragraphs are separated by blank lines. A paragraph ends at the start
// of the blank line following it and begins at the start of the blank
// line preceding it; the buffer edges bound the first and last.

func forwardParagraph(text []rune, pos, n int) int {
	times, fwd := count(n)
	for ; times > 0; times-- {
		if fwd {
			pos = nextParagraphEnd(text, pos)
		} else {
			pos = prevParagraphStart(text, pos)
		}
	}
	return pos
}

func nextParagraphEnd(text []rune, pos int) int {
	starts := lineStarts(text)
	for i := 1; i < len(starts); i++ {
		if starts[i] > pos && blankLine(text, starts[i]) && !blankLine(text, starts[i-1]) {
			return starts[i]
		}
	}
	return len(text)
}

func prevParagraphStart(text []rune, pos int) int {
	starts := lineStarts(text)
	for i := len(starts) - 2; i >= 0; i-- {
		if starts[i] < pos && blankLine(text, starts[i]) && !blankLine(text, starts[i+1]) {
			return starts[i]
		}
	}
	return 0
}

// markParagraph puts point at the start of the paragraph and the mark at
// its end. A non-empty active region is extended from the mark instead.
func markParagraph(e *engine.Engine, arg input.PrefixArg) error {
	text := e.Buffer().Runes()
	n := arg.Int()
	if e.MarkActive() && e.Mark() != e.Point() {
		e.SetMark(forwardParagraph(text, e.Mark(), n))
		return nil
	}
	mark := forwardParagraph(text, e.Point(), n)
	e.SetPoint(forwardParagraph(text, mark, -n))
	e.SetMark(mark)
	return nil
}
