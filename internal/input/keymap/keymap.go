package keymap

import (
	"fmt"
	"sort"

	"github.com/dshills/composable/internal/input/key"
)

// Match describes how a key sequence relates to a keymap.
type Match uint8

const (
	// MatchNone means no binding starts with the sequence.
	MatchNone Match = iota
	// MatchPrefix means the sequence is a prefix of at least one binding.
	MatchPrefix
	// MatchFull means the sequence is bound to a command.
	MatchFull
)

// String returns a string representation of the match.
func (m Match) String() string {
	switch m {
	case MatchPrefix:
		return "prefix"
	case MatchFull:
		return "full"
	default:
		return "none"
	}
}

// Keymap holds key bindings for one layer.
type Keymap struct {
	// Name is the keymap identifier ("global", "object", ...).
	Name string

	bindings map[string]parsedBinding
}

// NewKeymap creates a new keymap with the given name.
func NewKeymap(name string) *Keymap {
	return &Keymap{
		Name:     name,
		bindings: make(map[string]parsedBinding),
	}
}

// Bind adds or replaces a binding. The key sequence is normalized, so
// "C-x  C-u" and "C-x C-u" name the same binding.
func (k *Keymap) Bind(keys, command string) error {
	return k.Add(Binding{Keys: keys, Command: command})
}

// Add adds or replaces a fully configured binding.
func (k *Keymap) Add(b Binding) error {
	if b.Command == "" {
		return fmt.Errorf("%w: %q", ErrEmptyCommand, b.Keys)
	}
	seq, err := key.ParseSequence(b.Keys)
	if err != nil {
		return fmt.Errorf("binding %q: %w", b.Keys, err)
	}
	b.Keys = seq.String()
	k.bindings[b.Keys] = parsedBinding{Binding: b, seq: seq}
	return nil
}

// Unbind removes the binding for keys. It returns false if none existed.
func (k *Keymap) Unbind(keys string) bool {
	seq, err := key.ParseSequence(keys)
	if err != nil {
		return false
	}
	if _, ok := k.bindings[seq.String()]; !ok {
		return false
	}
	delete(k.bindings, seq.String())
	return true
}

// Lookup matches seq against the keymap.
func (k *Keymap) Lookup(seq key.Sequence) (string, Match) {
	if b, ok := k.bindings[seq.String()]; ok {
		return b.Command, MatchFull
	}
	for _, b := range k.bindings {
		if len(b.seq) > len(seq) && b.seq.HasPrefix(seq) {
			return "", MatchPrefix
		}
	}
	return "", MatchNone
}

// Bindings returns all bindings sorted by key sequence.
func (k *Keymap) Bindings() []Binding {
	out := make([]Binding, 0, len(k.bindings))
	for _, b := range k.bindings {
		out = append(out, b.Binding)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Keys < out[j].Keys })
	return out
}

// Len returns the number of bindings.
func (k *Keymap) Len() int {
	return len(k.bindings)
}
