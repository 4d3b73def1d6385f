package compose

import "github.com/dshills/composable/internal/input"

// SelectActionName names the implicit action of mark mode.
const SelectActionName = "select"

// selectAction leaves the established region selected. Repeats of a
// mark mode composition re-push the existing mark so the region keeps
// growing from where it started.
type selectAction struct{}

func (selectAction) Name() string                          { return SelectActionName }
func (selectAction) Apply(int, int, input.PrefixArg) error { return nil }
func (selectAction) KeepsPoint() bool                      { return true }

// SetMarkMode turns interception of set-mark-command on or off.
func (c *Controller) SetMarkMode(on bool) {
	c.opts.MarkMode = on
}

// MarkMode reports whether set-mark-command is intercepted.
func (c *Controller) MarkMode() bool {
	return c.opts.MarkMode
}
