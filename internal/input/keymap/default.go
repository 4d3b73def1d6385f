package keymap

import "fmt"

// ObjectLayer is the layer activated while a composition awaits its object.
const ObjectLayer = "object"

// LoadDefaults registers the default global and object keymaps.
func LoadDefaults(r *Registry) error {
	for _, km := range []*Keymap{DefaultGlobalKeymap(), DefaultObjectKeymap()} {
		if err := r.Register(km); err != nil {
			return err
		}
	}
	return nil
}

// DefaultGlobalKeymap returns the Emacs-flavoured global bindings with the
// region commands replaced by their composable wrappers.
func DefaultGlobalKeymap() *Keymap {
	km := NewKeymap(GlobalLayer)
	mustAdd(km, []Binding{
		// Composable actions
		{Keys: "C-w", Command: "composable-kill-region", Description: "Kill object"},
		{Keys: "M-w", Command: "composable-copy-region-as-kill", Description: "Copy object"},
		{Keys: "M-;", Command: "composable-comment-or-uncomment-region", Description: "Toggle comment on object"},
		{Keys: "C-x C-u", Command: "composable-upcase-region", Description: "Upcase object"},
		{Keys: "C-x C-l", Command: "composable-downcase-region", Description: "Downcase object"},
		{Keys: "M-c", Command: "composable-capitalize-region", Description: "Capitalize object"},
		{Keys: "C-x TAB", Command: "composable-indent-rigidly", Description: "Indent object"},

		// Mark
		{Keys: "C-SPC", Command: "set-mark-command", Description: "Set mark"},
		{Keys: "C-g", Command: "keyboard-quit", Description: "Cancel"},
		{Keys: "C-x C-x", Command: "exchange-point-and-mark", Description: "Exchange point and mark"},

		// Motion
		{Keys: "C-f", Command: "forward-char"},
		{Keys: "C-b", Command: "backward-char"},
		{Keys: "<right>", Command: "forward-char"},
		{Keys: "<left>", Command: "backward-char"},
		{Keys: "M-f", Command: "forward-word"},
		{Keys: "M-b", Command: "backward-word"},
		{Keys: "C-n", Command: "next-line"},
		{Keys: "C-p", Command: "previous-line"},
		{Keys: "<down>", Command: "next-line"},
		{Keys: "<up>", Command: "previous-line"},
		{Keys: "C-e", Command: "end-of-line"},
		{Keys: "C-a", Command: "beginning-of-line"},
		{Keys: "<end>", Command: "end-of-line"},
		{Keys: "<home>", Command: "beginning-of-line"},
		{Keys: "M-m", Command: "back-to-indentation"},
		{Keys: "M-}", Command: "forward-paragraph"},
		{Keys: "M-{", Command: "backward-paragraph"},
		{Keys: "M-e", Command: "forward-sentence"},
		{Keys: "M-a", Command: "backward-sentence"},
		{Keys: "C-M-f", Command: "forward-sexp"},
		{Keys: "C-M-b", Command: "backward-sexp"},
		{Keys: "M-<", Command: "beginning-of-buffer"},
		{Keys: "M->", Command: "end-of-buffer"},
		{Keys: "M-h", Command: "mark-paragraph"},
		{Keys: "M-@", Command: "mark-word"},
		{Keys: "C-=", Command: "expand-region"},

		// Prefix arguments
		{Keys: "C-u", Command: "universal-argument"},
		{Keys: "M--", Command: "negative-argument"},

		// Editing
		{Keys: "RET", Command: "newline"},
		{Keys: "BS", Command: "delete-backward-char"},
		{Keys: "DEL", Command: "delete-char"},
		{Keys: "C-d", Command: "delete-char"},
		{Keys: "C-y", Command: "yank"},

		// Keyboard macros
		{Keys: "C-x (", Command: "kmacro-start-macro", Description: "Define keyboard macro"},
		{Keys: "C-x )", Command: "kmacro-end-macro", Description: "End macro definition"},
		{Keys: "C-x e", Command: "kmacro-end-and-call-macro", Description: "Call last macro"},
		{Keys: "C-x C-k C-n", Command: "kmacro-cycle-ring-next", Description: "Next macro in ring"},

		// Files
		{Keys: "C-x C-s", Command: "save-buffer", Description: "Save"},
		{Keys: "C-x C-c", Command: "save-buffers-kill-terminal", Description: "Quit"},
	})
	for d := '0'; d <= '9'; d++ {
		mustAdd(km, []Binding{{Keys: "M-" + string(d), Command: "digit-argument"}})
	}
	return km
}

// DefaultObjectKeymap returns the single-key object bindings used while a
// composition awaits its object.
func DefaultObjectKeymap() *Keymap {
	km := NewKeymap(ObjectLayer)
	mustAdd(km, []Binding{
		{Keys: "w", Command: "forward-word", Description: "Word forward"},
		{Keys: "b", Command: "backward-word", Description: "Word backward"},
		{Keys: "l", Command: "mark-line", Description: "Whole line"},
		{Keys: "n", Command: "next-line", Description: "Line down"},
		{Keys: "p", Command: "previous-line", Description: "Line up"},
		{Keys: "e", Command: "end-of-line", Description: "To end of line"},
		{Keys: "a", Command: "back-to-indentation", Description: "To indentation"},
		{Keys: "}", Command: "forward-paragraph", Description: "Paragraph forward"},
		{Keys: "{", Command: "backward-paragraph", Description: "Paragraph backward"},
		{Keys: "h", Command: "mark-paragraph", Description: "Whole paragraph"},
		{Keys: "E", Command: "forward-sentence", Description: "Sentence forward"},
		{Keys: "A", Command: "backward-sentence", Description: "Sentence backward"},
		{Keys: "f", Command: "forward-sexp", Description: "Expression forward"},
		{Keys: "F", Command: "backward-sexp", Description: "Expression backward"},
		{Keys: "s", Command: "mark-symbol", Description: "Whole symbol"},
		{Keys: "m", Command: "mark-word", Description: "Whole word"},
		{Keys: "u", Command: "mark-url", Description: "URL at point"},
		{Keys: "j", Command: "expand-region", Description: "Expand selection"},
		{Keys: "<", Command: "beginning-of-buffer", Description: "To buffer start"},
		{Keys: ">", Command: "end-of-buffer", Description: "To buffer end"},
		{Keys: ",", Command: "composable-begin-argument", Description: "Only before point"},
		{Keys: ".", Command: "composable-end-argument", Description: "Only after point"},
		{Keys: "-", Command: "negative-argument"},
		{Keys: "g", Command: "keyboard-quit", Description: "Cancel"},
	})
	for d := '0'; d <= '9'; d++ {
		mustAdd(km, []Binding{{Keys: string(d), Command: "digit-argument"}})
	}
	return km
}

func mustAdd(km *Keymap, bindings []Binding) {
	for _, b := range bindings {
		if err := km.Add(b); err != nil {
			panic(fmt.Sprintf("default keymap %s: %v", km.Name, err))
		}
	}
}
