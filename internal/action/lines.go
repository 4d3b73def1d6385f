package action

import (
	"strings"

	"github.com/dshills/composable/internal/engine"
	"github.com/dshills/composable/internal/input"
)

// regionLines returns the start offsets of the lines touched by
// [start, end), last line first. A region ending at the start of a line
// does not include that line.
func regionLines(e *engine.Engine, start, end int) []int {
	buf := e.Buffer()
	if end > start && buf.LineStart(end) == end {
		end--
	}
	first, last := buf.LineOf(start), buf.LineOf(end)
	out := make([]int, 0, last-first+1)
	for l := last; l >= first; l-- {
		out = append(out, buf.OffsetOfLine(l))
	}
	return out
}

// indentation returns the offset of the first non-blank rune of the line
// at ls, and whether the line holds anything else.
func indentation(e *engine.Engine, ls int) (int, bool) {
	buf := e.Buffer()
	le := buf.LineEnd(ls)
	i := ls
	for i < le {
		r, _ := buf.RuneAt(i)
		if r != ' ' && r != '\t' {
			return i, true
		}
		i++
	}
	return i, false
}

// toggleComment comments every non-blank line of the region with prefix,
// or removes the prefix when all of them already carry it.
func toggleComment(prefix string) Func {
	return func(e *engine.Engine, start, end int, _ input.PrefixArg) error {
		if strings.TrimSpace(prefix) == "" {
			return ErrEmptyPrefix
		}
		lines := regionLines(e, start, end)
		commented := true
		found := false
		for _, ls := range lines {
			at, ok := indentation(e, ls)
			if !ok {
				continue
			}
			found = true
			if !strings.HasPrefix(e.Slice(at, e.Buffer().LineEnd(ls)), prefix) {
				commented = false
				break
			}
		}
		if !found {
			return nil
		}

		n := len([]rune(prefix))
		for _, ls := range lines {
			at, ok := indentation(e, ls)
			if !ok {
				continue
			}
			if !commented {
				if err := e.Insert(at, prefix+" "); err != nil {
					return err
				}
				continue
			}
			cut := at + n
			if r, ok := e.Buffer().RuneAt(cut); ok && r == ' ' {
				cut++
			}
			if _, err := e.Delete(at, cut); err != nil {
				return err
			}
		}
		return nil
	}
}

// indentRigidly shifts every non-blank line of the region by ARG indent
// levels. A negative ARG removes up to that much leading whitespace.
func indentRigidly(e *engine.Engine, start, end int, arg input.PrefixArg) error {
	cols := arg.Int() * e.IndentWidth()
	if cols == 0 {
		return nil
	}
	for _, ls := range regionLines(e, start, end) {
		at, ok := indentation(e, ls)
		if !ok {
			continue
		}
		if cols > 0 {
			if err := e.Insert(ls, strings.Repeat(" ", cols)); err != nil {
				return err
			}
			continue
		}
		cut := min(at, ls-cols)
		if cut == ls {
			continue
		}
		if _, err := e.Delete(ls, cut); err != nil {
			return err
		}
	}
	return nil
}
