// Package app wires the editor together: configuration, logging, the
// buffer engine, commands, keymaps, the composition controller, Lua
// plugins and the terminal frontend. It owns the event loop.
package app

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/dshills/composable/internal/action"
	"github.com/dshills/composable/internal/compose"
	"github.com/dshills/composable/internal/config"
	"github.com/dshills/composable/internal/config/watcher"
	"github.com/dshills/composable/internal/dispatcher"
	"github.com/dshills/composable/internal/dispatcher/handler"
	"github.com/dshills/composable/internal/dispatcher/hook"
	"github.com/dshills/composable/internal/engine"
	"github.com/dshills/composable/internal/input"
	"github.com/dshills/composable/internal/input/key"
	"github.com/dshills/composable/internal/input/keymap"
	"github.com/dshills/composable/internal/input/macro"
	"github.com/dshills/composable/internal/motion"
	"github.com/dshills/composable/internal/plugin/lua"
	"github.com/dshills/composable/internal/renderer"
	"github.com/dshills/composable/internal/renderer/backend"
)

// Terminal is the screen the application runs on.
type Terminal interface {
	renderer.Screen
	Init() error
	Shutdown()
	Beep()
	PollEvent() backend.Event
	Interrupt(data any) error
}

// Options configures the application.
type Options struct {
	// ConfigPath is the configuration file. Empty uses the per-user
	// file when it exists.
	ConfigPath string

	// File is the file to edit. Empty edits an unnamed scratch buffer.
	File string

	// LogLevel and LogFile override the [log] section when set.
	LogLevel string
	LogFile  string

	// ReadOnly opens the buffer read-only.
	ReadOnly bool

	// Watch reloads the configuration file when it changes.
	Watch bool

	// Terminal replaces the controlling terminal, mainly for tests.
	Terminal Terminal

	// Clipboard replaces the system clipboard.
	Clipboard action.Clipboard

	// Logger replaces the logger built from the configuration.
	Logger *slog.Logger
}

// Application is one editing session.
type Application struct {
	id         uuid.UUID
	opts       Options
	configPath string
	cfg        *config.Config

	log       *slog.Logger
	logCloser io.Closer

	engine     *engine.Engine
	path       string
	dispatcher *dispatcher.Dispatcher
	keys       *keymap.Registry
	actions    *action.Set
	controller *compose.Controller

	plugins    *lua.State
	pluginHost *pluginHost
	watcher    *watcher.Watcher

	screen   Terminal
	renderer *renderer.Renderer

	macros      *macro.Recorder
	player      *macro.Player
	macroRun    *macroRun
	macroRepeat keymap.Disposable

	prefix  input.PrefixState
	pending key.Sequence
	// commandKeys counts the keys typed for the command being resolved,
	// prefix argument included.
	commandKeys int
	message     string
	messageErr  bool
	lastCommand string

	running atomic.Bool
	closed  atomic.Bool
}

// New creates an application with the given options.
func New(opts Options) (*Application, error) {
	app := &Application{
		id:   uuid.New(),
		opts: opts,
	}
	if err := app.bootstrap(); err != nil {
		app.Close()
		return nil, err
	}
	return app, nil
}

// bootstrap initializes all components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Configuration
	cfg, path, err := LoadConfig(app.opts.ConfigPath)
	if err != nil {
		return &InitError{Component: "config", Err: err}
	}
	app.cfg, app.configPath = cfg, path
	if app.opts.LogLevel != "" {
		cfg.Log.Level = app.opts.LogLevel
	}
	if app.opts.LogFile != "" {
		cfg.Log.File = app.opts.LogFile
	}

	// 2. Logging
	if app.opts.Logger != nil {
		app.log = app.opts.Logger
		app.logCloser = nopCloser{}
	} else {
		app.log, app.logCloser, err = NewLogger(cfg.Log)
		if err != nil {
			return &InitError{Component: "logging", Err: err}
		}
	}
	app.log = app.log.With("session", app.id.String())
	app.log.Info("session starting", "config", app.configPath, "file", app.opts.File)

	// 3. Buffer
	if err := app.open(app.opts.File); err != nil {
		return &InitError{Component: "buffer", Err: err}
	}

	// 4. Dispatcher and its hooks
	app.dispatcher = dispatcher.New(dispatcher.DefaultConfig().WithMetrics(),
		dispatcher.WithLogger(app.log.With("component", "dispatcher")))
	hooks := app.dispatcher.Hooks()
	hooks.Register(hook.NewScopeHook("undo-scope",
		func(a *input.Action) { app.engine.BeginCommand(a.Name) },
		func(*input.Action, *handler.Result) { app.engine.EndCommand() },
	))
	hooks.Register(hook.NewAuditHook(app.log.With("component", "audit")))

	// 5. Keymaps
	app.keys = keymap.NewRegistry()
	if err := app.loadKeymaps(); err != nil {
		return &InitError{Component: "keymap", Err: err}
	}

	// 6. Commands
	motion.Register(app.dispatcher, app.engine)
	clip := app.opts.Clipboard
	if clip == nil {
		clip = systemClipboard{}
	}
	app.actions = action.Builtin(app.engine, action.Options{
		CommentPrefix: cfg.Compose.CommentPrefix,
		Clipboard:     clip,
		Logger:        app.log,
	})
	app.actions.Register(app.dispatcher)
	action.RegisterEditing(app.dispatcher, app.engine)
	app.macros = macro.NewRecorder(macro.DefaultRingSize)
	app.player = macro.NewPlayer()
	app.registerHandlers()

	// 7. Composition
	pairs, err := cfg.PairingTable()
	if err != nil {
		return &InitError{Component: "compose", Err: err}
	}
	opts := cfg.ComposeOptions()
	opts.Logger = app.log
	app.controller = compose.New(
		composeHost{Engine: app.engine, d: app.dispatcher},
		app.keys,
		layerIndicator{keys: app.keys, log: app.log},
		pairs,
		opts,
	)
	app.controller.Install(app.dispatcher, hooks)
	for _, a := range app.actions.All() {
		if err := app.controller.Wrap(app.dispatcher, a, a.Description()); err != nil {
			return &InitError{Component: "compose", Err: err}
		}
	}
	for a, m := range cfg.Compose.DefaultObjects {
		app.controller.SetDefaultObject(a, m)
	}

	// 8. Plugins
	app.pluginHost = newPluginHost(app)
	if cfg.Plugins.Enabled {
		app.plugins, err = lua.NewState(app.pluginHost, lua.WithLogger(app.log))
		if err != nil {
			return &InitError{Component: "plugins", Err: err}
		}
		if err := app.plugins.LoadFiles(cfg.Plugins.Paths...); err != nil {
			app.log.Warn("plugin load failed", "error", err)
			app.setMessage(err.Error(), true)
		}
	}

	// 9. Terminal
	app.screen = app.opts.Terminal
	if app.screen == nil {
		t, err := backend.NewTerminal()
		if err != nil {
			return &InitError{Component: "terminal", Err: err}
		}
		app.screen = t
	}
	app.renderer = renderer.New(app.screen, RendererOptions(cfg))

	// 10. Configuration watcher
	if app.opts.Watch && app.configPath != "" {
		app.watcher, err = watcher.New(app.onConfigChange, watcher.WithLogger(app.log))
		if err != nil {
			return &InitError{Component: "watcher", Err: err}
		}
		if err := app.watcher.Watch(app.configPath); err != nil {
			return &InitError{Component: "watcher", Err: err}
		}
	}
	return nil
}

// LoadConfig loads path, or the per-user configuration file when path is
// empty and that file exists. It returns the file actually read.
func LoadConfig(path string) (*config.Config, string, error) {
	if path == "" {
		if p := config.DefaultPath(); p != "" {
			if _, err := os.Stat(p); err == nil {
				path = p
			}
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// RendererOptions converts the indicator settings of cfg.
func RendererOptions(cfg *config.Config) renderer.Options {
	return renderer.Options{
		IndicatorColor:  tcell.GetColor(cfg.Compose.IndicatorColor),
		IndicatorCursor: backend.ParseCursorStyle(cfg.Compose.IndicatorCursor),
	}
}

// loadKeymaps installs the default keymaps and the configured bindings.
func (app *Application) loadKeymaps() error {
	if err := keymap.LoadDefaults(app.keys); err != nil {
		return err
	}
	return app.cfg.ApplyKeymaps(app.keys)
}

// open loads path into a new engine. A missing file gives an empty
// buffer that is created on save.
func (app *Application) open(path string) error {
	ed := app.cfg.Editor
	opts := []engine.Option{
		engine.WithIndentWidth(ed.IndentWidth),
		engine.WithKillRingSize(ed.KillRingSize),
		engine.WithMarkRingSize(ed.MarkRingSize),
		engine.WithMaxUndoEntries(ed.UndoLimit),
	}
	if app.opts.ReadOnly || ed.ReadOnly {
		opts = append(opts, engine.WithReadOnly())
	}
	if path == "" {
		app.engine = engine.New(opts...)
		return nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return NewOperationError("open", path, err)
	}
	f, err := os.Open(abs)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		app.engine = engine.New(opts...)
	case err != nil:
		return NewOperationError("open", abs, err)
	default:
		defer f.Close()
		app.engine, err = engine.NewFromReader(f, opts...)
		if err != nil {
			return NewOperationError("open", abs, err)
		}
	}
	app.path = abs
	return nil
}

// SessionID returns the identifier attached to every log record.
func (app *Application) SessionID() string { return app.id.String() }

// Engine returns the buffer being edited.
func (app *Application) Engine() *engine.Engine { return app.engine }

// Controller returns the composition controller.
func (app *Application) Controller() *compose.Controller { return app.controller }

// Keys returns the keymap registry.
func (app *Application) Keys() *keymap.Registry { return app.keys }

// Dispatcher returns the command dispatcher.
func (app *Application) Dispatcher() *dispatcher.Dispatcher { return app.dispatcher }

// Config returns the configuration in effect.
func (app *Application) Config() *config.Config { return app.cfg }

// Path returns the file being edited, empty for a scratch buffer.
func (app *Application) Path() string { return app.path }

// Message returns the message shown in the status line.
func (app *Application) Message() (string, bool) { return app.message, app.messageErr }

// usage summarizes the dispatcher metrics for the closing log record.
func (app *Application) usage() []any {
	if app.dispatcher == nil || app.dispatcher.Metrics() == nil {
		return nil
	}
	m := app.dispatcher.Metrics()
	snap := m.Snapshot()
	top := make([]string, 0, 5)
	for _, c := range m.TopCommands(5) {
		top = append(top, fmt.Sprintf("%s=%d", c.Name, c.DispatchCount))
	}
	return []any{
		"commands", snap.TotalDispatches,
		"errors", snap.TotalErrors,
		"objects", snap.TotalTakenOver,
		"avg", snap.AverageDuration,
		"top", top,
	}
}

// Close releases every component. It is safe to call more than once.
func (app *Application) Close() {
	if !app.closed.CompareAndSwap(false, true) {
		return
	}
	if app.watcher != nil {
		if err := app.watcher.Stop(); err != nil {
			app.log.Warn("stop watcher", "error", err)
		}
	}
	if app.controller != nil {
		app.controller.Close()
	}
	if app.plugins != nil {
		if err := app.plugins.Close(); err != nil {
			app.log.Warn("close plugins", "error", err)
		}
	}
	if app.log != nil {
		app.log.Info("session closed", app.usage()...)
	}
	if app.logCloser != nil {
		if err := app.logCloser.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "close log: %v\n", err)
		}
	}
}
