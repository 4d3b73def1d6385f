package engine

// Defaults for the editor section of the configuration.
const (
	DefaultMarkRingSize   = 16
	DefaultKillRingSize   = 60
	DefaultMaxUndoEntries = 1000
	DefaultIndentWidth    = 4
)

// Option configures an Engine in New. Sizes below one keep the default.
type Option func(*Engine)

// WithContent is the initial buffer text. It is not recorded for undo.
func WithContent(content string) Option {
	return func(e *Engine) { e.initContent = content }
}

// WithReadOnly makes edits fail with ErrReadOnly. Point and mark still
// move, so compositions that only copy keep working.
func WithReadOnly() Option {
	return func(e *Engine) { e.readOnly = true }
}

func WithMarkRingSize(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.markRing = newMarkRing(n)
		}
	}
}

func WithKillRingSize(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.kills = NewKillRing(n)
		}
	}
}

// WithMaxUndoEntries caps the undo history, counted in command groups.
func WithMaxUndoEntries(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxUndo = n
		}
	}
}

// WithIndentWidth is the column step of indent-rigidly.
func WithIndentWidth(width int) Option {
	return func(e *Engine) {
		if width > 0 {
			e.indentWidth = width
		}
	}
}
