package app

import (
	"log/slog"

	"github.com/atotto/clipboard"

	"github.com/dshills/composable/internal/action"
	"github.com/dshills/composable/internal/compose"
	"github.com/dshills/composable/internal/dispatcher"
	"github.com/dshills/composable/internal/dispatcher/handler"
	"github.com/dshills/composable/internal/engine"
	"github.com/dshills/composable/internal/input"
	"github.com/dshills/composable/internal/input/keymap"
	"github.com/dshills/composable/internal/motion"
)

// composeHost adapts the engine and dispatcher to compose.Host.
type composeHost struct {
	*engine.Engine
	d *dispatcher.Dispatcher
}

func (h composeHost) NewMarker(pos int) compose.Marker { return h.Engine.NewMarker(pos) }

func (h composeHost) Invoke(name string, arg input.PrefixArg) error {
	return h.d.Execute(name, arg)
}

// layerIndicator activates the object keymap while an object is awaited.
// The status line and cursor follow the controller state on redraw.
type layerIndicator struct {
	keys *keymap.Registry
	log  *slog.Logger
}

func (i layerIndicator) EnterObjectMode() {
	if err := i.keys.Activate(keymap.ObjectLayer); err != nil {
		i.log.Warn("activate object layer", "error", err)
	}
}

func (i layerIndicator) ExitObjectMode() {
	i.keys.Deactivate(keymap.ObjectLayer)
}

// systemClipboard writes killed and copied text to the OS clipboard.
type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return nil
	}
	return clipboard.WriteAll(text)
}

// pluginHost lets Lua scripts extend the session. Pairs, bindings and
// default objects defined by scripts are recorded so a configuration
// reload can put them back.
type pluginHost struct {
	app *Application

	pairs    [][2]string
	binds    [][3]string
	defaults map[string]string
}

// pluginPriority lets a script command shadow a built-in one of the same
// name.
const pluginPriority = 10

func newPluginHost(app *Application) *pluginHost {
	return &pluginHost{app: app, defaults: map[string]string{}}
}

func (h *pluginHost) Engine() *engine.Engine { return h.app.engine }

func (h *pluginHost) DefineMotion(name, description string, fn motion.Func) error {
	if name == "" {
		return compose.ErrEmptyName
	}
	h.app.dispatcher.Register(name, description, handler.WithPriority(motion.Handler(h.app.engine, fn), pluginPriority))
	return nil
}

func (h *pluginHost) DefineAction(name, description string, fn action.Func) error {
	if name == "" {
		return compose.ErrEmptyName
	}
	a := action.New(h.app.engine, name, description, fn, false)
	h.app.actions.Add(a)
	h.app.dispatcher.Register(name, description, handler.WithPriority(action.RegionHandler(a), pluginPriority))
	h.app.dispatcher.Unregister(compose.WrapperName(name))
	return h.app.controller.Wrap(h.app.dispatcher, a, description)
}

func (h *pluginHost) Pair(a, b string) error {
	if err := h.app.controller.Pairs().AddPair(a, b); err != nil {
		return err
	}
	h.pairs = append(h.pairs, [2]string{a, b})
	return nil
}

func (h *pluginHost) SetDefaultObject(action, motion string) {
	h.app.controller.SetDefaultObject(action, motion)
	h.defaults[action] = motion
}

func (h *pluginHost) Bind(layer, keys, command string) error {
	if err := h.app.keys.Bind(layer, keys, command); err != nil {
		return err
	}
	h.binds = append(h.binds, [3]string{layer, keys, command})
	return nil
}

// reapply restores everything scripts defined after the configuration
// replaced pairs, keymaps and default objects.
func (h *pluginHost) reapply() {
	for _, p := range h.pairs {
		if err := h.app.controller.Pairs().AddPair(p[0], p[1]); err != nil {
			h.app.log.Warn("restore plugin pair", "pair", p, "error", err)
		}
	}
	for _, b := range h.binds {
		if err := h.app.keys.Bind(b[0], b[1], b[2]); err != nil {
			h.app.log.Warn("restore plugin binding", "layer", b[0], "keys", b[1], "error", err)
		}
	}
	for a, m := range h.defaults {
		h.app.controller.SetDefaultObject(a, m)
	}
}
