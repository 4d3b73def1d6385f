package motion

import (
	"github.com/dshills/composable/internal/engine"
	"github.com/dshills/composable/internal/input"
)

// bufferFraction converts a numeric ARG of 0 to 10 into tenths of the
// buffer.
func bufferFraction(e *engine.Engine, arg input.PrefixArg) int {
	n := max(0, min(arg.Int(), 10))
	return e.Len() * n / 10
}

// beginningOfBuffer leaves the previous position on the mark ring unless
// a region is active, in which case it extends the region.
func beginningOfBuffer(e *engine.Engine, arg input.PrefixArg) error {
	if !e.MarkActive() {
		e.PushMark(e.Point(), false)
	}
	pos := 0
	if arg.IsSet() && !arg.Universal() {
		pos = bufferFraction(e, arg)
	}
	e.SetPoint(pos)
	return nil
}

func endOfBuffer(e *engine.Engine, arg input.PrefixArg) error {
	if !e.MarkActive() {
		e.PushMark(e.Point(), false)
	}
	pos := e.Len()
	if arg.IsSet() && !arg.Universal() {
		pos = e.Len() - bufferFraction(e, arg)
	}
	e.SetPoint(pos)
	return nil
}
