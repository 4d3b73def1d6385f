package buffer

// Option configures a Buffer at construction.
type Option func(*Buffer)

// WithReadOnly rejects every edit with ErrReadOnly. Markers can still be
// created and moved.
func WithReadOnly(on bool) Option {
	return func(b *Buffer) { b.readOnly = on }
}

// WithText starts the buffer holding s, unmodified.
func WithText(s string) Option {
	return func(b *Buffer) { b.text = []rune(s) }
}
