package keymap

import "github.com/dshills/composable/internal/input/key"

// Binding maps a key sequence in Emacs notation, such as "C-w" or
// "C-x C-u", to a command name. Description is shown by "composable
// keys"; bindings from configuration have none.
type Binding struct {
	Keys        string
	Command     string
	Description string
}

// parsedBinding keeps the sequence parsed once at Add.
type parsedBinding struct {
	Binding
	seq key.Sequence
}
