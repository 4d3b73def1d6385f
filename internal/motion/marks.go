package motion

import (
	"errors"

	"github.com/dshills/composable/internal/engine"
	"github.com/dshills/composable/internal/input"
)

// setMarkCommand sets and activates the mark at point. With C-u it jumps
// to the mark and pops the mark ring instead.
func setMarkCommand(e *engine.Engine, arg input.PrefixArg) error {
	if arg.Universal() {
		err := e.PopMark()
		if errors.Is(err, engine.ErrNoMark) {
			return nil
		}
		return err
	}
	e.SetMark(e.Point())
	return nil
}

func exchangePointAndMark(e *engine.Engine, _ input.PrefixArg) error {
	return e.ExchangePointAndMark()
}

// keyboardQuit deactivates the mark. As an object it selects nothing,
// which cancels a pending composition.
func keyboardQuit(e *engine.Engine, _ input.PrefixArg) error {
	e.DeactivateMark()
	return nil
}
