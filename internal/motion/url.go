package motion

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dshills/composable/internal/engine"
	"github.com/dshills/composable/internal/input"
)

var urlPattern = regexp.MustCompile(`(?:[A-Za-z][A-Za-z0-9+.-]*://|mailto:|www\.)[^\s<>"'()\[\]{}]+`)

// urlAt finds the URL on the line of pos that contains pos, or the first
// one after it.
func urlAt(text []rune, pos int) (span, bool) {
	ls, le := lineStart(text, pos), lineEnd(text, pos)
	line := string(text[ls:le])

	for _, m := range urlPattern.FindAllStringIndex(line, -1) {
		match := strings.TrimRight(line[m[0]:m[1]], ".,;:!?")
		start := ls + utf8.RuneCountInString(line[:m[0]])
		end := start + utf8.RuneCountInString(match)
		if end >= pos {
			return span{Start: start, End: end}, true
		}
	}
	return span{}, false
}

func markURL(e *engine.Engine, arg input.PrefixArg) error {
	sp, ok := urlAt(e.Buffer().Runes(), e.Point())
	if !ok {
		return ErrNoURL
	}
	markSpan(e, sp, arg.Direction() > 0)
	return nil
}
