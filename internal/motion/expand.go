package motion

import (
	"github.com/dshills/composable/internal/engine"
	"github.com/dshills/composable/internal/input"
)

// expandSpan returns the smallest unit that strictly contains cur. Units
// are tried from the innermost out: word, symbol, string contents and
// string, bracket contents and brackets, line, line with its newline,
// paragraph, buffer.
func expandSpan(text []rune, cur span) (span, bool) {
	var cands []span
	for _, w := range words(text) {
		if w.Start <= cur.Start && cur.End <= w.End {
			cands = append(cands, w)
			break
		}
	}
	if sym, ok := symbolAt(text, cur.Start); ok {
		cands = append(cands, sym)
	}
	cands = append(cands, enclosingStrings(text, cur)...)
	cands = append(cands, enclosingBrackets(text, cur)...)

	ls := lineStart(text, cur.Start)
	le := lineEnd(text, cur.Start)
	cands = append(cands, span{Start: ls, End: le})
	if le < len(text) {
		cands = append(cands, span{Start: ls, End: le + 1})
	}
	pend := nextParagraphEnd(text, cur.Start)
	cands = append(cands,
		span{Start: prevParagraphStart(text, pend), End: pend},
		span{Start: 0, End: len(text)},
	)

	best, found := span{}, false
	for _, c := range cands {
		if c.Start > cur.Start || c.End < cur.End || c.Len() <= cur.Len() {
			continue
		}
		if !found || c.Len() < best.Len() {
			best, found = c, true
		}
	}
	return best, found
}

// enclosingStrings returns the contents and the full extent of a string
// on the line of cur that encloses it.
func enclosingStrings(text []rune, cur span) []span {
	ls, le := lineStart(text, cur.Start), lineEnd(text, cur.Start)
	for i := ls; i < le; i++ {
		if text[i] != '"' {
			continue
		}
		end := stringEnd(text[:le], i)
		if end < 0 {
			return nil
		}
		if i < cur.Start && cur.End < end {
			return []span{{Start: i + 1, End: end - 1}, {Start: i, End: end}}
		}
		i = end - 1
	}
	return nil
}

// enclosingBrackets returns the contents and full extent of every
// bracket pair around cur, innermost first.
func enclosingBrackets(text []rune, cur span) []span {
	var out []span
	pos := cur.Start
	for {
		open, ok := unmatchedOpen(text, pos)
		if !ok {
			return out
		}
		end, ok := matchForward(text, open)
		if !ok {
			return out
		}
		if end >= cur.End {
			out = append(out, span{Start: open + 1, End: end - 1}, span{Start: open, End: end})
		}
		pos = open
	}
}

// unmatchedOpen finds the nearest opening bracket before pos that is not
// closed before pos.
func unmatchedOpen(text []rune, pos int) (int, bool) {
	depth := 0
	for i := pos - 1; i >= 0; i-- {
		switch r := text[i]; {
		case isClose(r):
			depth++
		case isOpen(r):
			if depth == 0 {
				return i, true
			}
			depth--
		}
	}
	return 0, false
}

// expandRegion grows the region ARG times to the next enclosing unit.
// Without an active region it starts from point.
func expandRegion(e *engine.Engine, arg input.PrefixArg) error {
	text := e.Buffer().Runes()
	cur := span{Start: e.Point(), End: e.Point()}
	if e.MarkActive() {
		cur = e.Selection().Range()
	}
	times, _ := count(arg.Int())
	for ; times > 0; times-- {
		next, ok := expandSpan(text, cur)
		if !ok {
			break
		}
		cur = next
	}
	markSpan(e, cur, true)
	return nil
}
