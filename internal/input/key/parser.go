package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Parse errors.
var (
	ErrEmptySpec   = errors.New("key: empty key specification")
	ErrInvalidSpec = errors.New("key: invalid key specification")
)

// Parse parses a single key in Emacs notation into an Event.
//
// Supported forms:
//   - Single character: "a", "A", ",", "-"
//   - With modifiers: "C-w", "M-;", "C-M-f", "M--", "C-SPC"
//   - Named keys: "SPC", "TAB", "RET", "ESC", "DEL", "BS", "<up>", "<home>"
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	var mods Modifier
	rest := spec
	for len(rest) > 2 && rest[1] == '-' {
		mod, ok := modifierFor(rest[0])
		if !ok {
			return Event{}, fmt.Errorf("%w: unknown modifier %q in %q", ErrInvalidSpec, rest[:2], spec)
		}
		mods = mods.With(mod)
		rest = rest[2:]
	}

	if rest == "SPC" {
		return NewRuneEvent(' ', mods), nil
	}
	if k, ok := lookupName(rest); ok {
		return NewSpecialEvent(k, mods), nil
	}
	if utf8.RuneCountInString(rest) == 1 {
		r, _ := utf8.DecodeRuneInString(rest)
		return NewRuneEvent(r, mods), nil
	}
	return Event{}, fmt.Errorf("%w: %q", ErrInvalidSpec, spec)
}

// MustParse is like Parse but panics on error. It is meant for
// package-level tables of default bindings.
func MustParse(spec string) Event {
	e, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return e
}

// ParseSequence parses a whitespace separated key sequence such as "C-x C-u".
func ParseSequence(spec string) (Sequence, error) {
	fields := strings.Fields(spec)
	if len(fields) == 0 {
		return nil, ErrEmptySpec
	}
	seq := make(Sequence, 0, len(fields))
	for _, f := range fields {
		e, err := Parse(f)
		if err != nil {
			return nil, err
		}
		seq = append(seq, e)
	}
	return seq, nil
}
