package input

import "github.com/dshills/composable/internal/input/key"

// ActionSource indicates the origin of an action.
type ActionSource uint8

const (
	// SourceKeyboard indicates the action originated from a key binding.
	SourceKeyboard ActionSource = iota
	// SourceTransient indicates the action came from a one-shot binding.
	SourceTransient
	// SourcePlugin indicates the action originated from a plugin.
	SourcePlugin
	// SourceAPI indicates the action was invoked programmatically.
	SourceAPI
)

// String returns a string representation of the action source.
func (s ActionSource) String() string {
	switch s {
	case SourceKeyboard:
		return "keyboard"
	case SourceTransient:
		return "transient"
	case SourcePlugin:
		return "plugin"
	case SourceAPI:
		return "api"
	default:
		return "unknown"
	}
}

// Action is one dispatched command: a command name plus the prefix
// argument and keys that invoked it.
type Action struct {
	// Name is the command identifier (e.g. "forward-word", "composable-kill-region").
	Name string

	// Arg is the prefix argument typed before the command.
	Arg PrefixArg

	// Keys is the full key sequence that triggered the command, if any.
	Keys key.Sequence

	// Source indicates where this action originated.
	Source ActionSource
}

// NewAction creates a keyboard action with no prefix argument.
func NewAction(name string) Action {
	return Action{Name: name}
}

// WithArg returns a copy of the action with the given prefix argument.
func (a Action) WithArg(arg PrefixArg) Action {
	a.Arg = arg
	return a
}

// WithKeys returns a copy of the action with the triggering key sequence.
func (a Action) WithKeys(keys key.Sequence) Action {
	a.Keys = keys
	return a
}

// LastKey returns the final key of the triggering sequence. This is the
// key a repeat binding is armed under.
func (a Action) LastKey() key.Event {
	return a.Keys.Last()
}
