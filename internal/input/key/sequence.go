package key

import "strings"

// Sequence is a series of key events forming one binding.
// Examples: "C-x C-u", "C-x TAB".
type Sequence []Event

// String returns the sequence in Emacs notation.
func (s Sequence) String() string {
	parts := make([]string, len(s))
	for i, e := range s {
		parts[i] = e.String()
	}
	return strings.Join(parts, " ")
}

// Equals returns true if both sequences contain the same events.
func (s Sequence) Equals(other Sequence) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// HasPrefix returns true if prefix is a proper or improper prefix of s.
func (s Sequence) HasPrefix(prefix Sequence) bool {
	if len(prefix) > len(s) {
		return false
	}
	return Sequence(s[:len(prefix)]).Equals(prefix)
}

// Last returns the final event of the sequence, or the zero Event.
func (s Sequence) Last() Event {
	if len(s) == 0 {
		return Event{}
	}
	return s[len(s)-1]
}
