package compose

import (
	"fmt"

	"github.com/dshills/composable/internal/input"
	"github.com/dshills/composable/internal/input/key"
	"github.com/dshills/composable/internal/input/keymap"
)

// RepeatBinding replays the last composition one unit further each time
// its key is pressed.
type RepeatBinding struct {
	key       key.Event
	motion    string
	direction int
	action    Action
	prefix    input.PrefixArg
	expand    bool

	start      *anchor
	excursion  *anchor
	disposable keymap.Disposable
}

// Key returns the armed key.
func (r *RepeatBinding) Key() key.Event { return r.key }

// Motion returns the motion replayed on each press.
func (r *RepeatBinding) Motion() string { return r.motion }

// Direction returns the sign of the original motion argument.
func (r *RepeatBinding) Direction() int { return r.direction }

// Excursion returns where the last motion ended.
func (r *RepeatBinding) Excursion() int { return r.excursion.Pos() }

// Start returns where the composition began.
func (r *RepeatBinding) Start() int { return r.start.Pos() }

func (r *RepeatBinding) release() {
	r.start.Release()
	r.excursion.Release()
}

// arm installs r under its key. A binding replaced by a later ArmOnce
// for the same r does not release r.
func (c *Controller) arm(r *RepeatBinding) {
	c.repeat = r

	r.disposable = nil
	var d keymap.Disposable
	d = c.binder.ArmOnce(r.key,
		func(arg input.PrefixArg) error { return c.fire(r, arg) },
		func() {
			if r.disposable == d {
				c.expire(r)
			}
		},
	)
	r.disposable = d
	c.log.Debug("repeat armed", "key", r.key.String(), "motion", r.motion)
}

// expire runs when the binding is disposed from outside.
func (c *Controller) expire(r *RepeatBinding) {
	r.release()
	if c.repeat == r {
		c.repeat = nil
	}
}

// teardown disposes the live repeat binding and releases its anchors.
func (c *Controller) teardown(reason string) {
	r := c.repeat
	if r == nil {
		return
	}
	c.repeat = nil
	if r.disposable != nil {
		r.disposable.Dispose()
	}
	r.release()
	c.log.Debug("repeat disarmed", "key", r.key.String(), "reason", reason)
}

// fire replays motion and action once from the excursion anchor, then
// re-arms. A negative arg reverses the direction of the replay.
func (c *Controller) fire(r *RepeatBinding, arg input.PrefixArg) error {
	if c.repeat != r || !r.start.live() {
		return nil
	}
	h := c.host

	h.SetPoint(r.excursion.Pos())
	if r.expand {
		h.PushMark(h.Mark(), true)
	} else {
		h.SetMark(h.Point())
	}

	if err := h.Invoke(r.motion, input.Num(r.direction*arg.Direction())); err != nil {
		c.teardown("motion failed")
		return fmt.Errorf("compose: repeat %s: %w", r.motion, err)
	}
	r.excursion.Set(h.Point())

	s, e, ok := c.establish(r.start.Pos(), None)
	if !ok {
		h.DeactivateMark()
		c.teardown("no region")
		return nil
	}
	if err := r.action.Apply(s, e, r.prefix); err != nil {
		h.SetPoint(r.start.Pos())
		c.teardown("action failed")
		return fmt.Errorf("compose: repeat %s: %w", r.action.Name(), err)
	}
	if !keepsPoint(r.action) {
		h.SetPoint(r.start.Pos())
	}
	c.arm(r)
	return nil
}
