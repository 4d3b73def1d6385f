package lua

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// DefaultExecutionTimeout bounds each script load and each call into a
// script-defined command.
const DefaultExecutionTimeout = 2 * time.Second

// State is one sandboxed Lua runtime bound to a Host.
//
// gopher-lua's LState is not goroutine-safe. The mutex serializes calls
// from Go; Lua code itself always runs on the calling goroutine.
type State struct {
	L *lua.LState

	mu sync.Mutex

	host             Host
	executionTimeout time.Duration
	log              *slog.Logger

	closed bool
}

// StateOption configures a State.
type StateOption func(*State)

// WithExecutionTimeout bounds each script load and command call. A
// script stuck in a loop is interrupted and the state stays usable.
func WithExecutionTimeout(d time.Duration) StateOption {
	return func(s *State) {
		if d > 0 {
			s.executionTimeout = d
		}
	}
}

// WithLogger receives print output and script errors.
func WithLogger(l *slog.Logger) StateOption {
	return func(s *State) {
		if l != nil {
			s.log = l
		}
	}
}

// NewState creates a sandboxed Lua state whose compose and editor
// modules act on host.
func NewState(host Host, opts ...StateOption) (*State, error) {
	if host == nil {
		return nil, errors.New("lua: nil host")
	}
	s := &State{
		host:             host,
		executionTimeout: DefaultExecutionTimeout,
		log:              slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("component", "plugin.lua")

	s.L = lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(s.L)
	s.installSandbox()
	s.installAPI()
	return s, nil
}

// DoFile runs the script at path.
func (s *State) DoFile(path string) error {
	if err := s.exec(func() error { return s.L.DoFile(path) }); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	s.log.Debug("script loaded", "path", path)
	return nil
}

// DoString runs a chunk of Lua.
func (s *State) DoString(code string) error {
	return s.exec(func() error { return s.L.DoString(code) })
}

// LoadFiles runs each script in order. A failing script does not stop
// the others; the failures are joined.
func (s *State) LoadFiles(paths ...string) error {
	var errs []error
	for _, p := range paths {
		if err := s.DoFile(p); err != nil {
			s.log.Warn("script failed", "path", p, "error", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// call runs the function a script registered as command name.
func (s *State) call(name string, fn *lua.LFunction, args ...lua.LValue) error {
	err := s.exec(func() error {
		return s.L.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true}, args...)
	})
	if err != nil && !errors.Is(err, ErrStateClosed) {
		return fmt.Errorf("lua %s: %w", name, err)
	}
	return err
}

// exec runs fn holding the state, under the execution timeout. A Go
// panic inside the runtime comes back as an error.
func (s *State) exec(fn func() error) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStateClosed
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.executionTimeout)
	defer cancel()
	s.L.SetContext(ctx)
	defer s.L.RemoveContext()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	if err = fn(); err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrExecutionTimeout, err)
	}
	return err
}

// IsClosed reports whether Close has been called.
func (s *State) IsClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Close releases the Lua state. Commands defined by its scripts fail
// with ErrStateClosed afterwards.
func (s *State) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.L.Close()
	s.closed = true
	return nil
}
