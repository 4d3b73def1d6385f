// Package watcher reports changes to the configuration file so a running
// session can reload it.
//
// Files are watched through their parent directory, so editors that save
// by writing a temporary file and renaming it still produce an event.
// Bursts of changes to one file are coalesced into a single event.
package watcher

import (
	"cmp"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long a file must stay quiet before its change
// is reported.
const DefaultDebounce = 100 * time.Millisecond

// Operation is what happened to a watched file.
type Operation int

const (
	OpWrite Operation = iota
	OpCreate
	// OpRemove covers deletion and renaming the file away.
	OpRemove
)

var opNames = [...]string{OpWrite: "write", OpCreate: "create", OpRemove: "remove"}

func (op Operation) String() string {
	if op >= 0 && int(op) < len(opNames) {
		return opNames[op]
	}
	return "unknown"
}

// Event is a change to one watched file.
type Event struct {
	Path string
	Op   Operation
	Time time.Time
}

// Handler receives events on the watcher goroutine.
type Handler func(Event)

// Watcher watches a set of files.
type Watcher struct {
	fs       *fsnotify.Watcher
	handle   Handler
	debounce time.Duration
	log      *slog.Logger

	mu    sync.RWMutex
	files map[string]bool
	// dirs counts the watched files per directory.
	dirs    map[string]int
	state   int
	done    chan struct{}
	stopped sync.WaitGroup

	pendingMu sync.Mutex
	pending   map[string]Event
}

const (
	idle = iota
	running
	closed
)

type Option func(*Watcher)

// WithDebounce sets the quiet period. Zero reports every event at once.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.log = l
		}
	}
}

// New creates a watcher that reports to h. Nothing is delivered before
// Start.
func New(h Handler, opts ...Option) (*Watcher, error) {
	if h == nil {
		return nil, fmt.Errorf("watcher: nil handler")
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watcher: %w", err)
	}
	w := &Watcher{
		fs:       fsw,
		handle:   h,
		debounce: DefaultDebounce,
		log:      slog.Default(),
		files:    make(map[string]bool),
		dirs:     make(map[string]int),
		done:     make(chan struct{}),
		pending:  make(map[string]Event),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.log = w.log.With("component", "config.watcher")
	return w, nil
}

// Watch adds path. The file does not have to exist yet.
func (w *Watcher) Watch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.files[abs] {
		return nil
	}
	dir := filepath.Dir(abs)
	if w.dirs[dir] == 0 {
		if err := w.fs.Add(dir); err != nil {
			return fmt.Errorf("watcher: watch %s: %w", dir, err)
		}
	}
	w.dirs[dir]++
	w.files[abs] = true
	return nil
}

// Unwatch removes path. Its directory is released with its last file.
func (w *Watcher) Unwatch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.files[abs] {
		return nil
	}
	delete(w.files, abs)
	dir := filepath.Dir(abs)
	if w.dirs[dir]--; w.dirs[dir] > 0 {
		return nil
	}
	delete(w.dirs, dir)
	return w.fs.Remove(dir)
}

// WatchedFiles returns the absolute paths being watched, sorted.
func (w *Watcher) WatchedFiles() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	files := make([]string, 0, len(w.files))
	for p := range w.files {
		files = append(files, p)
	}
	slices.Sort(files)
	return files
}

// Start begins delivering events. It does nothing once Stop was called.
func (w *Watcher) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != idle {
		return
	}
	w.state = running
	w.stopped.Add(1)
	go w.loop()
}

func (w *Watcher) IsRunning() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.state == running
}

// Stop ends delivery and closes the underlying watcher. Pending events
// are dropped.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.state == closed {
		w.mu.Unlock()
		return nil
	}
	w.state = closed
	close(w.done)
	w.mu.Unlock()

	w.stopped.Wait()
	return w.fs.Close()
}

func (w *Watcher) loop() {
	defer w.stopped.Done()

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			event, ok := w.translate(ev)
			if !ok {
				continue
			}
			if w.debounce == 0 {
				w.deliver(event)
				continue
			}
			w.queueEvent(event)
			timer.Reset(w.debounce)

		case <-timer.C:
			w.flush()

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", "error", err)
		}
	}
}

// translate keeps events on watched files.
func (w *Watcher) translate(ev fsnotify.Event) (Event, bool) {
	path, err := filepath.Abs(ev.Name)
	if err != nil {
		return Event{}, false
	}
	w.mu.RLock()
	watched := w.files[path]
	w.mu.RUnlock()
	if !watched {
		return Event{}, false
	}

	var op Operation
	switch {
	case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
		op = OpRemove
	case ev.Has(fsnotify.Create):
		op = OpCreate
	case ev.Has(fsnotify.Write):
		op = OpWrite
	default:
		return Event{}, false
	}
	return Event{Path: path, Op: op, Time: time.Now()}, true
}

// queueEvent merges event into the pending one for its path. A removal
// wins over writes and a creation survives the writes that follow it.
func (w *Watcher) queueEvent(event Event) {
	w.pendingMu.Lock()
	defer w.pendingMu.Unlock()

	if prev, ok := w.pending[event.Path]; ok && event.Op == OpWrite {
		event.Op = prev.Op
	}
	w.pending[event.Path] = event
}

func (w *Watcher) flush() {
	w.pendingMu.Lock()
	events := make([]Event, 0, len(w.pending))
	for _, ev := range w.pending {
		events = append(events, ev)
	}
	clear(w.pending)
	w.pendingMu.Unlock()

	slices.SortFunc(events, func(a, b Event) int { return cmp.Compare(a.Path, b.Path) })
	for _, ev := range events {
		w.deliver(ev)
	}
}

// deliver calls the handler, logging a panic instead of ending the loop.
func (w *Watcher) deliver(ev Event) {
	defer func() {
		if r := recover(); r != nil {
			w.log.Error("watch handler panicked", "path", ev.Path, "op", ev.Op.String(), "panic", r)
		}
	}()
	w.handle(ev)
}
