package dispatcher

// Config tunes a Dispatcher.
type Config struct {
	// EnableMetrics keeps per-command counts and timings, summarized when
	// the session closes.
	EnableMetrics bool

	// RecoverFromPanic turns a panicking handler into an error result so
	// a broken Lua command cannot take the session down.
	RecoverFromPanic bool

	// MaxDepth bounds Execute nesting. A composition runs a motion and an
	// action under the controller, and Lua commands may invoke others.
	// Zero means no limit.
	MaxDepth int
}

func DefaultConfig() Config {
	return Config{RecoverFromPanic: true, MaxDepth: 32}
}

func (c Config) WithMetrics() Config {
	c.EnableMetrics = true
	return c
}

func (c Config) WithMaxDepth(depth int) Config {
	c.MaxDepth = depth
	return c
}
