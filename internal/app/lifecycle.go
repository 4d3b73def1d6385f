package app

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dshills/composable/internal/config"
	"github.com/dshills/composable/internal/config/watcher"
)

// Save writes the buffer to its file through a temporary file in the
// same directory, keeping the mode of an existing file.
func (app *Application) Save() error {
	if app.path == "" {
		return ErrNoFile
	}
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(app.path); err == nil {
		mode = info.Mode().Perm()
	}

	dir := filepath.Dir(app.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(app.path)+".*")
	if err != nil {
		return NewOperationError("save", app.path, err)
	}
	tmpName := tmp.Name()
	fail := func(err error) error {
		tmp.Close()
		os.Remove(tmpName)
		return NewOperationError("save", app.path, err)
	}

	if _, err := app.engine.WriteTo(tmp); err != nil {
		return fail(err)
	}
	if err := tmp.Chmod(mode); err != nil {
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return NewOperationError("save", app.path, err)
	}
	if err := os.Rename(tmpName, app.path); err != nil {
		os.Remove(tmpName)
		return NewOperationError("save", app.path, err)
	}
	app.engine.MarkSaved()
	app.log.Info("buffer saved", "path", app.path, "runes", app.engine.Len())
	return nil
}

// reloadRequest is posted to the event loop when the configuration file
// changes.
type reloadRequest struct {
	path string
}

// onConfigChange runs on the watcher goroutine and hands the reload to
// the event loop.
func (app *Application) onConfigChange(ev watcher.Event) {
	if ev.Op == watcher.OpRemove {
		app.log.Warn("config file removed, keeping current settings", "path", ev.Path)
		return
	}
	if err := app.screen.Interrupt(reloadRequest{path: ev.Path}); err != nil {
		app.log.Warn("queue config reload", "error", err)
	}
}

// Reload reads the configuration file again and applies it. An invalid
// file leaves the current settings in place.
func (app *Application) Reload() error {
	if app.configPath == "" {
		return nil
	}
	cfg, err := config.Load(app.configPath)
	if err != nil {
		return NewOperationError("reload", app.configPath, err)
	}
	if err := app.applyConfig(cfg); err != nil {
		return NewOperationError("reload", app.configPath, err)
	}
	app.log.Info("configuration reloaded", "path", app.configPath)
	return nil
}

// applyConfig replaces the composition settings, pairs, keymaps and
// indicator of the running session. Buffer and log settings apply to
// the next session only.
func (app *Application) applyConfig(cfg *config.Config) error {
	pairs, err := cfg.PairingTable()
	if err != nil {
		return err
	}
	old := app.cfg
	app.cfg = cfg
	if err := app.loadKeymaps(); err != nil {
		app.cfg = old
		if rerr := app.loadKeymaps(); rerr != nil {
			app.log.Error("restore keymaps", "error", rerr)
		}
		return err
	}

	opts := cfg.ComposeOptions()
	opts.Logger = app.log
	app.controller.SetOptions(opts)

	table := app.controller.Pairs()
	for _, p := range table.Pairs() {
		table.Remove(p[0])
	}
	for _, p := range pairs.Pairs() {
		if err := table.AddPair(p[0], p[1]); err != nil {
			return err
		}
	}

	for a := range old.Compose.DefaultObjects {
		if _, ok := cfg.Compose.DefaultObjects[a]; !ok {
			app.controller.SetDefaultObject(a, "")
		}
	}
	for a, m := range cfg.Compose.DefaultObjects {
		app.controller.SetDefaultObject(a, m)
	}

	app.pluginHost.reapply()
	app.renderer.SetOptions(RendererOptions(cfg))
	return nil
}
