package compose

import (
	"github.com/stretchr/testify/require"

	"github.com/dshills/composable/internal/action"
	"github.com/dshills/composable/internal/dispatcher"
	"github.com/dshills/composable/internal/dispatcher/execctx"
	"github.com/dshills/composable/internal/dispatcher/handler"
	"github.com/dshills/composable/internal/dispatcher/hook"
	"github.com/dshills/composable/internal/engine"
	"github.com/dshills/composable/internal/input"
	"github.com/dshills/composable/internal/input/key"
	"github.com/dshills/composable/internal/input/keymap"
	"github.com/dshills/composable/internal/motion"
)

// engineHost drives an engine through a dispatcher.
type engineHost struct {
	*engine.Engine
	d *dispatcher.Dispatcher
}

func (h engineHost) NewMarker(pos int) Marker { return h.Engine.NewMarker(pos) }

func (h engineHost) Invoke(name string, arg input.PrefixArg) error {
	return h.d.Execute(name, arg)
}

// layerIndicator activates the object layer while an object is awaited.
type layerIndicator struct {
	keys          *keymap.Registry
	enters, exits int
}

func (i *layerIndicator) EnterObjectMode() {
	i.enters++
	_ = i.keys.Activate(keymap.ObjectLayer)
}

func (i *layerIndicator) ExitObjectMode() {
	i.exits++
	i.keys.Deactivate(keymap.ObjectLayer)
}

type harness struct {
	t      require.TestingT
	e      *engine.Engine
	d      *dispatcher.Dispatcher
	keys   *keymap.Registry
	c      *Controller
	ind    *layerIndicator
	prefix input.PrefixState
}

func newHarness(t require.TestingT, content string, opts Options) *harness {
	e := engine.New(engine.WithContent(content))
	d := dispatcher.New(dispatcher.DefaultConfig())
	keys := keymap.NewRegistry()
	require.NoError(t, keymap.LoadDefaults(keys))

	h := &harness{t: t, e: e, d: d, keys: keys, ind: &layerIndicator{keys: keys}}

	d.Hooks().Register(hook.NewScopeHook("undo-scope",
		func(a *input.Action) { e.BeginCommand(a.Name) },
		func(*input.Action, *handler.Result) { e.EndCommand() },
	))
	motion.Register(d, e)
	acts := action.Builtin(e, action.Options{})
	acts.Register(d)
	action.RegisterEditing(d, e)

	for _, name := range []string{input.CmdDigitArgument, input.CmdNegativeArgument, input.CmdUniversalArgument} {
		d.RegisterFunc(name, "", func(a input.Action, _ *execctx.ExecutionContext) handler.Result {
			input.ApplyPrefixCommand(&h.prefix, a)
			return handler.Success()
		})
	}
	d.RegisterFunc(CmdRepeat, "", func(a input.Action, _ *execctx.ExecutionContext) handler.Result {
		fire, ok := keys.TakeTransient(a.LastKey())
		if !ok {
			return handler.NoOp()
		}
		if err := fire(a.Arg); err != nil {
			return handler.Error(err)
		}
		return handler.Success()
	})

	h.c = New(engineHost{Engine: e, d: d}, keys, h.ind, NewDefaultPairingTable(), opts)
	h.c.Install(d, d.Hooks())
	for _, a := range acts.All() {
		require.NoError(t, h.c.Wrap(d, a, a.Description()))
	}
	return h
}

// press looks spec up the way the editor does: an armed repeat key
// first, then the active keymap layers.
func (h *harness) press(spec string) handler.Result {
	seq, err := key.ParseSequence(spec)
	require.NoError(h.t, err)

	act := input.Action{Keys: seq, Arg: h.prefix.Peek()}
	if tk, ok := h.keys.TransientKey(); ok && len(seq) == 1 && tk == seq[0] {
		act.Name = CmdRepeat
		act.Source = input.SourceTransient
	} else {
		name, m := h.keys.Resolve(seq)
		require.Equal(h.t, keymap.MatchFull, m, "key %s is not bound", spec)
		act.Name = name
	}

	res := h.d.Dispatch(act)
	if !input.IsPrefixCommand(act.Name) && !IsDelimiterCommand(act.Name) {
		h.prefix.Reset()
	}
	return res
}

func (h *harness) pressAll(specs ...string) {
	for _, s := range specs {
		res := h.press(s)
		require.False(h.t, res.IsError(), "%s: %v", s, res.Error)
	}
}
