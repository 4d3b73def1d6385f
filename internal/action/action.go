package action

import (
	"log/slog"
	"slices"

	"github.com/dshills/composable/internal/dispatcher/execctx"
	"github.com/dshills/composable/internal/dispatcher/handler"
	"github.com/dshills/composable/internal/engine"
	"github.com/dshills/composable/internal/input"
)

// Command names.
const (
	KillRegion               = "kill-region"
	CopyRegionAsKill         = "copy-region-as-kill"
	UpcaseRegion             = "upcase-region"
	DowncaseRegion           = "downcase-region"
	CapitalizeRegion         = "capitalize-region"
	CommentOrUncommentRegion = "comment-or-uncomment-region"
	IndentRigidly            = "indent-rigidly"
	DeleteRegion             = "delete-region"
	SelectRegion             = "select-region"
)

// Func applies an action to [start, end).
type Func func(e *engine.Engine, start, end int, arg input.PrefixArg) error

// Action is a named range operation bound to an engine.
type Action struct {
	name        string
	description string
	engine      *engine.Engine
	fn          Func
	keepsPoint  bool
}

// New creates an action. Actions that keep point leave the cursor and the
// region where they are; all others deactivate the region afterwards.
func New(e *engine.Engine, name, description string, fn Func, keepsPoint bool) *Action {
	return &Action{
		name:        name,
		description: description,
		engine:      e,
		fn:          fn,
		keepsPoint:  keepsPoint,
	}
}

// Name returns the command name of the action.
func (a *Action) Name() string { return a.name }

// Description returns the help text.
func (a *Action) Description() string { return a.description }

// KeepsPoint reports whether point should stay where the action left it.
func (a *Action) KeepsPoint() bool { return a.keepsPoint }

// Apply runs the action on [start, end).
func (a *Action) Apply(start, end int, arg input.PrefixArg) error {
	if start > end {
		start, end = end, start
	}
	if err := a.fn(a.engine, start, end, arg); err != nil {
		return err
	}
	if !a.keepsPoint {
		a.engine.DeactivateMark()
	}
	return nil
}

// Clipboard receives copied text.
type Clipboard interface {
	WriteAll(text string) error
}

// Options configures the builtin actions.
type Options struct {
	// CommentPrefix is the line comment marker toggled by
	// comment-or-uncomment-region.
	CommentPrefix string

	// Clipboard, when set, also receives killed and copied text.
	Clipboard Clipboard

	// Logger reports clipboard failures.
	Logger *slog.Logger
}

// DefaultCommentPrefix is used when Options.CommentPrefix is empty.
const DefaultCommentPrefix = "//"

// Set holds the builtin actions for one engine.
type Set struct {
	actions []*Action
}

// Builtin creates the builtin actions for e.
func Builtin(e *engine.Engine, opts Options) *Set {
	if opts.CommentPrefix == "" {
		opts.CommentPrefix = DefaultCommentPrefix
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	logger := opts.Logger.With("component", "action")

	toClipboard := func(text string) {
		if opts.Clipboard == nil || text == "" {
			return
		}
		if err := opts.Clipboard.WriteAll(text); err != nil {
			logger.Warn("clipboard write failed", "error", err)
		}
	}

	return &Set{actions: []*Action{
		New(e, KillRegion, "Kill the text between point and mark", func(e *engine.Engine, start, end int, _ input.PrefixArg) error {
			text, err := e.Kill(start, end)
			if err != nil {
				return err
			}
			toClipboard(text)
			return nil
		}, false),
		New(e, CopyRegionAsKill, "Save the region to the kill ring without deleting it", func(e *engine.Engine, start, end int, _ input.PrefixArg) error {
			toClipboard(e.CopyAsKill(start, end))
			return nil
		}, false),
		New(e, UpcaseRegion, "Convert the region to upper case", convertCase(upper), false),
		New(e, DowncaseRegion, "Convert the region to lower case", convertCase(lower), false),
		New(e, CapitalizeRegion, "Capitalize the words in the region", convertCase(title), false),
		New(e, CommentOrUncommentRegion, "Comment or uncomment the lines of the region", toggleComment(opts.CommentPrefix), false),
		New(e, IndentRigidly, "Indent the lines of the region by ARG levels", indentRigidly, false),
		New(e, DeleteRegion, "Delete the region without saving it", func(e *engine.Engine, start, end int, _ input.PrefixArg) error {
			_, err := e.Delete(start, end)
			return err
		}, false),
		New(e, SelectRegion, "Leave the region selected", func(*engine.Engine, int, int, input.PrefixArg) error {
			return nil
		}, true),
	}}
}

// All returns the actions in registration order.
func (s *Set) All() []*Action {
	return slices.Clone(s.actions)
}

// Get returns the action with the given name.
func (s *Set) Get(name string) (*Action, error) {
	for _, a := range s.actions {
		if a.name == name {
			return a, nil
		}
	}
	return nil, ErrUnknownAction
}

// Add appends an action, replacing one with the same name.
func (s *Set) Add(a *Action) {
	for i, old := range s.actions {
		if old.name == a.name {
			s.actions[i] = a
			return
		}
	}
	s.actions = append(s.actions, a)
}

// Registrar is the part of the dispatcher used to install commands.
type Registrar interface {
	RegisterFunc(name, description string, fn handler.Func)
}

// Register installs every action as a plain command acting on the active
// region.
func (s *Set) Register(r Registrar) {
	for _, a := range s.actions {
		r.RegisterFunc(a.name, a.description, RegionHandler(a))
	}
}

// RegionHandler runs a on the active region of its engine.
func RegionHandler(a *Action) handler.Func {
	return func(act input.Action, _ *execctx.ExecutionContext) handler.Result {
		sel, err := a.engine.Region()
		if err != nil {
			return handler.Error(err)
		}
		if err := a.Apply(sel.Start(), sel.End(), act.Arg); err != nil {
			return handler.Error(err)
		}
		return handler.Success()
	}
}
