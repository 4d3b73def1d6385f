package compose

import (
	"fmt"
	"log/slog"

	"github.com/dshills/composable/internal/dispatcher/execctx"
	"github.com/dshills/composable/internal/dispatcher/handler"
	"github.com/dshills/composable/internal/dispatcher/hook"
	"github.com/dshills/composable/internal/input"
	"github.com/dshills/composable/internal/input/key"
	"github.com/dshills/composable/internal/input/keymap"
)

// Command names the controller reacts to.
const (
	// CmdRepeat is dispatched by the host when an armed repeat key is
	// pressed. It never tears the repeat binding down.
	CmdRepeat = "composable-repeat"

	// CmdSetMark is intercepted when mark mode is on.
	CmdSetMark = "set-mark-command"

	// DefaultObject is the object used when an action is invoked twice.
	DefaultObject = "mark-line"
)

// Action is a range operation supplied by the host.
type Action interface {
	Name() string
	Apply(start, end int, arg input.PrefixArg) error
}

// PointKeeper is implemented by actions that leave point where they put
// it instead of returning to the start of the composition.
type PointKeeper interface {
	KeepsPoint() bool
}

func keepsPoint(a Action) bool {
	k, ok := a.(PointKeeper)
	return ok && k.KeepsPoint()
}

// Host is the editor the controller drives.
type Host interface {
	Point() int
	SetPoint(pos int)
	MarkActive() bool
	Mark() int
	// SetMark sets the mark at pos and activates it.
	SetMark(pos int)
	PushMark(pos int, activate bool)
	DeactivateMark()
	NewMarker(pos int) Marker
	// Invoke runs a command without dispatch hooks.
	Invoke(name string, arg input.PrefixArg) error
}

// Binder installs one-shot key bindings.
type Binder interface {
	ArmOnce(k key.Event, fire keymap.FireFunc, onExpire func()) keymap.Disposable
}

// Indicator shows that an object is awaited.
type Indicator interface {
	EnterObjectMode()
	ExitObjectMode()
}

type nopIndicator struct{}

func (nopIndicator) EnterObjectMode() {}
func (nopIndicator) ExitObjectMode()  {}

// State is the composition state.
type State uint8

const (
	Idle State = iota
	AwaitingObject
	Repeating
)

// String returns the name of the state.
func (s State) String() string {
	switch s {
	case AwaitingObject:
		return "awaiting-object"
	case Repeating:
		return "repeating"
	default:
		return "idle"
	}
}

// Request is a composition waiting for its object.
type Request struct {
	action      Action
	start       *anchor
	prefix      input.PrefixArg
	containment Containment
	expand      bool
}

// Action returns the pending action.
func (r *Request) Action() Action { return r.action }

// Start returns where the composition began.
func (r *Request) Start() int { return r.start.Pos() }

// Prefix returns the argument the action was invoked with.
func (r *Request) Prefix() input.PrefixArg { return r.prefix }

// Containment returns the delimiter typed so far.
func (r *Request) Containment() Containment { return r.containment }

// Expand reports whether the composition came from set-mark-command.
func (r *Request) Expand() bool { return r.expand }

// Options configures a Controller.
type Options struct {
	// Repeat arms the object key after each composition.
	Repeat bool

	// MarkMode makes set-mark-command await an object to select.
	MarkMode bool

	// DefaultObject is used when an action is invoked twice and has no
	// default object of its own.
	DefaultObject string

	Logger *slog.Logger
}

// DefaultOptions returns repeat on, mark mode off and mark-line as the
// default object.
func DefaultOptions() Options {
	return Options{Repeat: true, DefaultObject: DefaultObject}
}

// Controller is the composition state machine of one session.
type Controller struct {
	host      Host
	binder    Binder
	indicator Indicator
	pairs     *PairingTable
	opts      Options
	log       *slog.Logger

	actions  map[string]Action // keyed by wrapper command name
	defaults map[string]string // action name to default object

	req    *Request
	repeat *RepeatBinding
}

// armedKey marks an execution context in which a repeat binding was
// armed, so the post-dispatch hook of that same command keeps it.
const armedKey = "compose.armed"

// New creates a controller. A nil pairing table means no pairs; a nil
// indicator shows nothing.
func New(host Host, binder Binder, indicator Indicator, pairs *PairingTable, opts Options) *Controller {
	if indicator == nil {
		indicator = nopIndicator{}
	}
	if pairs == nil {
		pairs = NewPairingTable()
	}
	if opts.DefaultObject == "" {
		opts.DefaultObject = DefaultObject
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		host:      host,
		binder:    binder,
		indicator: indicator,
		pairs:     pairs,
		opts:      opts,
		log:       logger.With("component", "compose"),
		actions:   make(map[string]Action),
		defaults:  make(map[string]string),
	}
}

// Pairs returns the pairing table.
func (c *Controller) Pairs() *PairingTable { return c.pairs }

// Options returns the current options.
func (c *Controller) Options() Options { return c.opts }

// SetOptions replaces the options. The logger is kept.
func (c *Controller) SetOptions(opts Options) {
	if opts.DefaultObject == "" {
		opts.DefaultObject = DefaultObject
	}
	opts.Logger = c.opts.Logger
	c.opts = opts
	if !opts.Repeat {
		c.teardown("repeat disabled")
	}
}

// SetDefaultObject sets the object used when action is invoked twice.
func (c *Controller) SetDefaultObject(action, motion string) {
	if motion == "" {
		delete(c.defaults, action)
		return
	}
	c.defaults[action] = motion
}

func (c *Controller) defaultObject(a Action) string {
	if m, ok := c.defaults[a.Name()]; ok {
		return m
	}
	return c.opts.DefaultObject
}

// State returns the composition state.
func (c *Controller) State() State {
	switch {
	case c.req != nil:
		return AwaitingObject
	case c.repeat != nil:
		return Repeating
	default:
		return Idle
	}
}

// Pending returns the live request, if any.
func (c *Controller) Pending() (*Request, bool) {
	return c.req, c.req != nil
}

// Repeat returns the live repeat binding, if any.
func (c *Controller) Repeat() (*RepeatBinding, bool) {
	return c.repeat, c.repeat != nil
}

// Start runs a composable action. With an active region the action is
// applied to it at once; otherwise the controller awaits an object.
func (c *Controller) Start(a Action, prefix input.PrefixArg) error {
	if a == nil {
		return ErrNilAction
	}
	if c.host.MarkActive() {
		c.teardown("region action")
		start, end := c.region()
		c.log.Debug("apply to region", "action", a.Name(), "start", start, "end", end)
		if err := a.Apply(start, end, prefix); err != nil {
			return fmt.Errorf("compose: %s: %w", a.Name(), err)
		}
		return nil
	}
	c.begin(a, prefix, false)
	return nil
}

// begin enters AwaitingObject with the mark set and active at point.
func (c *Controller) begin(a Action, prefix input.PrefixArg, expand bool) {
	c.cancel("restarted")
	c.teardown("composition started")

	p := c.host.Point()
	c.req = &Request{
		action: a,
		start:  newAnchor(c.host.NewMarker(p)),
		prefix: prefix,
		expand: expand,
	}
	c.host.SetMark(p)
	c.indicator.EnterObjectMode()
	c.log.Debug("awaiting object", "action", a.Name(), "start", p, "expand", expand)
}

// cancel leaves AwaitingObject without applying the action.
func (c *Controller) cancel(reason string) {
	req := c.req
	if req == nil {
		return
	}
	c.req = nil
	req.start.Release()
	c.indicator.ExitObjectMode()
	c.log.Debug("composition cancelled", "action", req.action.Name(), "reason", reason)
}

// Close drops any pending composition and repeat binding.
func (c *Controller) Close() {
	c.cancel("closed")
	c.teardown("closed")
}

func (c *Controller) region() (int, int) {
	m, p := c.host.Mark(), c.host.Point()
	return min(m, p), max(m, p)
}

// establish clips the region to containment around start and leaves it
// active. It reports false when no region is left to act on.
func (c *Controller) establish(start int, cont Containment) (int, int, bool) {
	h := c.host
	if !h.MarkActive() {
		return 0, 0, false
	}
	mark, point := cont.Clip(h.Mark(), h.Point(), start)
	if mark == point {
		return 0, 0, false
	}
	if mark != h.Mark() {
		h.SetMark(mark)
	}
	h.SetPoint(point)
	return min(mark, point), max(mark, point), true
}

// resolve completes the pending composition with motion as its object.
// trigger is the key that invoked the motion; it becomes the repeat key.
func (c *Controller) resolve(motion string, arg input.PrefixArg, trigger key.Event) error {
	req := c.req
	c.req = nil
	defer c.indicator.ExitObjectMode()
	defer func() { req.start.Release() }()

	h := c.host
	start := req.start.Pos()
	fail := func(err error) error {
		h.DeactivateMark()
		h.SetPoint(req.start.Pos())
		c.log.Warn("composition failed", "action", req.action.Name(), "motion", motion, "error", err)
		return fmt.Errorf("compose: %s %s: %w", req.action.Name(), motion, err)
	}

	if err := h.Invoke(motion, arg); err != nil {
		return fail(err)
	}
	// A paired motion that left the side containment keeps is replaced
	// by its counterpart, run from the start.
	if pair, ok := c.pairs.Pair(motion); ok && h.MarkActive() && req.containment.Discards(h.Point(), start) {
		h.SetPoint(start)
		if err := h.Invoke(pair, arg); err != nil {
			return fail(err)
		}
		motion = pair
	}
	excursion := newAnchor(h.NewMarker(h.Point()))
	defer func() { excursion.Release() }()

	s, e, ok := c.establish(start, req.containment)
	if !ok {
		h.DeactivateMark()
		c.log.Debug("composition cancelled", "action", req.action.Name(), "motion", motion, "reason", "no region")
		return nil
	}
	if err := req.action.Apply(s, e, req.prefix); err != nil {
		return fail(err)
	}
	if !keepsPoint(req.action) {
		h.SetPoint(req.start.Pos())
	}
	c.log.Debug("composition applied", "action", req.action.Name(), "motion", motion,
		"start", s, "end", e, "containment", req.containment.String())

	if c.opts.Repeat && trigger != (key.Event{}) {
		c.arm(&RepeatBinding{
			key:       trigger,
			motion:    motion,
			direction: arg.Direction(),
			action:    req.action,
			prefix:    req.prefix,
			expand:    req.expand,
			start:     req.start,
			excursion: excursion,
		})
		req.start, excursion = nil, nil
	}
	return nil
}

// Name implements hook.Hook.
func (c *Controller) Name() string { return "compose" }

// Priority implements hook.Hook.
func (c *Controller) Priority() int { return hook.PriorityCompose }

// PreDispatch takes the command following a composable command as its
// object. Prefix argument and delimiter commands pass through. The same
// composable command again selects the default object; a different one
// replaces the pending action.
func (c *Controller) PreDispatch(a *input.Action, ctx *execctx.ExecutionContext) bool {
	if c.req == nil {
		if c.opts.MarkMode && a.Name == CmdSetMark && !a.Arg.Universal() {
			c.begin(selectAction{}, a.Arg, true)
			ctx.Handled(nil)
			return false
		}
		return true
	}

	if input.IsPrefixCommand(a.Name) || IsDelimiterCommand(a.Name) {
		return true
	}

	motion := a.Name
	if c.IsComposable(a.Name) {
		if a.Name != WrapperName(c.req.action.Name()) {
			c.begin(c.actions[a.Name], a.Arg, false)
			ctx.Handled(nil)
			return false
		}
		motion = c.defaultObject(c.req.action)
	}
	ctx.Handled(c.resolve(motion, a.Arg, a.LastKey()))
	if c.repeat != nil {
		ctx.Set(armedKey, true)
	}
	return false
}

// PostDispatch tears the repeat binding down after any command other
// than a repeat or a prefix argument, and cancels a composition whose
// region was deactivated.
func (c *Controller) PostDispatch(a *input.Action, ctx *execctx.ExecutionContext, _ *handler.Result) {
	if armed, _ := ctx.Get(armedKey); armed == true {
		return
	}
	if c.req != nil && !c.host.MarkActive() {
		c.cancel("region deactivated")
	}
	if c.repeat == nil {
		return
	}
	if a.Name != CmdRepeat && !input.IsPrefixCommand(a.Name) {
		c.teardown(a.Name)
		return
	}
	if c.repeat.expand && !c.host.MarkActive() {
		c.teardown("region deactivated")
	}
}

// SetContainment records a delimiter for the pending composition.
func (c *Controller) SetContainment(cont Containment) bool {
	if c.req == nil {
		return false
	}
	c.req.containment = cont
	return true
}
