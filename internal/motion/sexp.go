package motion

import (
	"unicode"

	"github.com/dshills/composable/internal/engine"
	"github.com/dshills/composable/internal/input"
)

var brackets = map[rune]rune{'(': ')', '[': ']', '{': '}'}

func isOpen(r rune) bool {
	_, ok := brackets[r]
	return ok
}

func isClose(r rune) bool {
	return r == ')' || r == ']' || r == '}'
}

// isAtom reports runes that make up a plain expression.
func isAtom(r rune) bool {
	return !unicode.IsSpace(r) && !isOpen(r) && !isClose(r) && r != '"'
}

// forwardSexp moves over n balanced expressions: a bracketed group, a
// string or a run of atom runes.
func forwardSexp(text []rune, pos, n int) (int, error) {
	times, fwd := count(n)
	var err error
	for ; times > 0 && err == nil; times-- {
		if fwd {
			pos, err = sexpEnd(text, pos)
		} else {
			pos, err = sexpStart(text, pos)
		}
	}
	return pos, err
}

func sexpEnd(text []rune, pos int) (int, error) {
	for pos < len(text) && unicode.IsSpace(text[pos]) {
		pos++
	}
	if pos == len(text) {
		return pos, nil
	}
	switch r := text[pos]; {
	case isOpen(r):
		end, ok := matchForward(text, pos)
		if !ok {
			return pos, ErrUnbalanced
		}
		return end, nil
	case isClose(r):
		return pos, ErrUnbalanced
	case r == '"':
		end := stringEnd(text, pos)
		if end < 0 {
			return pos, ErrUnbalanced
		}
		return end, nil
	}
	for pos < len(text) && isAtom(text[pos]) {
		pos++
	}
	return pos, nil
}

func sexpStart(text []rune, pos int) (int, error) {
	for pos > 0 && unicode.IsSpace(text[pos-1]) {
		pos--
	}
	if pos == 0 {
		return 0, nil
	}
	switch r := text[pos-1]; {
	case isClose(r):
		start, ok := matchBackward(text, pos-1)
		if !ok {
			return pos, ErrUnbalanced
		}
		return start, nil
	case isOpen(r):
		return pos, ErrUnbalanced
	case r == '"':
		start := stringStart(text, pos-1)
		if start < 0 {
			return pos, ErrUnbalanced
		}
		return start, nil
	}
	for pos > 0 && isAtom(text[pos-1]) {
		pos--
	}
	return pos, nil
}

// matchForward returns the offset after the bracket closing the one at
// open. Strings are skipped.
func matchForward(text []rune, open int) (int, bool) {
	depth := 0
	for i := open; i < len(text); i++ {
		switch r := text[i]; {
		case r == '"':
			end := stringEnd(text, i)
			if end < 0 {
				return 0, false
			}
			i = end - 1
		case isOpen(r):
			depth++
		case isClose(r):
			depth--
			if depth == 0 {
				return i + 1, true
			}
		}
	}
	return 0, false
}

// matchBackward returns the offset of the bracket opening the one at
// closeAt.
func matchBackward(text []rune, closeAt int) (int, bool) {
	depth := 0
	for i := closeAt; i >= 0; i-- {
		switch r := text[i]; {
		case r == '"' && !escaped(text, i):
			start := stringStart(text, i)
			if start < 0 {
				return 0, false
			}
			i = start
		case isClose(r):
			depth++
		case isOpen(r):
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// stringEnd returns the offset after the quote closing the string that
// opens at i, or -1.
func stringEnd(text []rune, i int) int {
	for j := i + 1; j < len(text); j++ {
		switch text[j] {
		case '\\':
			j++
		case '"':
			return j + 1
		}
	}
	return -1
}

// stringStart returns the offset of the quote opening the string that
// closes at i, or -1.
func stringStart(text []rune, i int) int {
	for j := i - 1; j >= 0; j-- {
		if text[j] == '"' && !escaped(text, j) {
			return j
		}
	}
	return -1
}

func escaped(text []rune, i int) bool {
	n := 0
	for j := i - 1; j >= 0 && text[j] == '\\'; j-- {
		n++
	}
	return n%2 == 1
}

// symbolAt returns the symbol touching pos, or the next one after it.
func symbolAt(text []rune, pos int) (span, bool) {
	pos = clamp(text, pos)
	start := pos
	for start > 0 && isSymbolRune(text[start-1]) {
		start--
	}
	if start == pos {
		for start < len(text) && !isSymbolRune(text[start]) {
			start++
		}
	}
	end := max(start, pos)
	for end < len(text) && isSymbolRune(text[end]) {
		end++
	}
	if start == end {
		return span{}, false
	}
	return span{Start: start, End: end}, true
}

// markSymbol marks the symbol at point. A larger ARG extends the region
// over further symbols; a negative ARG puts point at the end.
func markSymbol(e *engine.Engine, arg input.PrefixArg) error {
	text := e.Buffer().Runes()
	sp, ok := symbolAt(text, e.Point())
	if !ok {
		return ErrNoSymbol
	}
	times, fwd := count(arg.Int())
	for ; times > 1; times-- {
		i := sp.End
		for i < len(text) && !isSymbolRune(text[i]) {
			i++
		}
		if i == len(text) {
			break
		}
		for i < len(text) && isSymbolRune(text[i]) {
			i++
		}
		sp.End = i
	}
	markSpan(e, sp, fwd)
	return nil
}
