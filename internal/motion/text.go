package motion

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/dshills/composable/internal/engine/buffer"
)

// span is a rune range.
type span = buffer.Range

// segmenter is the shape of uniseg.FirstWordInString and
// uniseg.FirstSentenceInString.
type segmenter func(str string, state int) (segment, rest string, newState int)

// segments splits text with seg and returns rune ranges.
func segments(text []rune, seg segmenter) []span {
	s := string(text)
	var out []span
	pos, state := 0, -1
	for len(s) > 0 {
		var part string
		part, s, state = seg(s, state)
		n := utf8.RuneCountInString(part)
		out = append(out, span{Start: pos, End: pos + n})
		pos += n
	}
	return out
}

// words returns the word segments of text that contain a letter or digit.
func words(text []rune) []span {
	var out []span
	for _, sp := range segments(text, uniseg.FirstWordInString) {
		if hasWordRune(text[sp.Start:sp.End]) {
			out = append(out, sp)
		}
	}
	return out
}

// sentences returns sentence segments with surrounding whitespace trimmed.
func sentences(text []rune) []span {
	var out []span
	for _, sp := range segments(text, uniseg.FirstSentenceInString) {
		for sp.Start < sp.End && unicode.IsSpace(text[sp.Start]) {
			sp.Start++
		}
		for sp.End > sp.Start && unicode.IsSpace(text[sp.End-1]) {
			sp.End--
		}
		if sp.Start < sp.End {
			out = append(out, sp)
		}
	}
	return out
}

func hasWordRune(rs []rune) bool {
	for _, r := range rs {
		if isWordRune(r) {
			return true
		}
	}
	return false
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// isSymbolRune reports symbol constituents: word runes plus the
// punctuation identifiers are commonly built from.
func isSymbolRune(r rune) bool {
	if isWordRune(r) {
		return true
	}
	switch r {
	case '_', '-', '$', '*', '+', '!', '?', '<', '>', '=', '/', ':', '.':
		return true
	}
	return false
}

func isBlank(r rune) bool {
	return r == ' ' || r == '\t'
}

// lineStart returns the offset of the start of the line containing pos.
func lineStart(text []rune, pos int) int {
	pos = clamp(text, pos)
	for pos > 0 && text[pos-1] != '\n' {
		pos--
	}
	return pos
}

// lineEnd returns the offset of the newline ending the line at pos, or
// len(text).
func lineEnd(text []rune, pos int) int {
	pos = clamp(text, pos)
	for pos < len(text) && text[pos] != '\n' {
		pos++
	}
	return pos
}

// lineStarts returns the start offset of every line.
func lineStarts(text []rune) []int {
	starts := []int{0}
	for i, r := range text {
		if r == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// lineIndex returns the index into starts of the line containing pos.
func lineIndex(starts []int, pos int) int {
	lo, hi := 0, len(starts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if starts[mid] <= pos {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// blankLine reports whether the line starting at start holds only
// whitespace.
func blankLine(text []rune, start int) bool {
	for i := start; i < len(text) && text[i] != '\n'; i++ {
		if !unicode.IsSpace(text[i]) {
			return false
		}
	}
	return true
}

func clamp(text []rune, pos int) int {
	return max(0, min(pos, len(text)))
}

// count splits a prefix argument value into a repeat count and a
// direction flag.
func count(n int) (times int, forward bool) {
	if n < 0 {
		return -n, false
	}
	return n, true
}
