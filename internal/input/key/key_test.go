package key

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want Event
	}{
		{"a", NewRuneEvent('a', ModNone)},
		{"A", NewRuneEvent('A', ModNone)},
		{",", NewRuneEvent(',', ModNone)},
		{"-", NewRuneEvent('-', ModNone)},
		{"C-w", NewRuneEvent('w', ModCtrl)},
		{"M-;", NewRuneEvent(';', ModMeta)},
		{"M--", NewRuneEvent('-', ModMeta)},
		{"C-M-f", NewRuneEvent('f', ModCtrl|ModMeta)},
		{"C-SPC", NewRuneEvent(' ', ModCtrl)},
		{"SPC", NewRuneEvent(' ', ModNone)},
		{"TAB", NewSpecialEvent(KeyTab, ModNone)},
		{"RET", NewSpecialEvent(KeyEnter, ModNone)},
		{"S-TAB", NewSpecialEvent(KeyTab, ModShift)},
		{"<up>", NewSpecialEvent(KeyUp, ModNone)},
		{"  C-g ", NewRuneEvent('g', ModCtrl)},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := Parse(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("")
	assert.ErrorIs(t, err, ErrEmptySpec)

	_, err = Parse("X-a")
	assert.ErrorIs(t, err, ErrInvalidSpec)

	_, err = Parse("foo")
	assert.ErrorIs(t, err, ErrInvalidSpec)
}

func TestEventStringRoundTrip(t *testing.T) {
	for _, spec := range []string{"a", "C-w", "M-;", "M--", "C-M-f", "C-SPC", "TAB", "<home>", "S-TAB"} {
		e, err := Parse(spec)
		require.NoError(t, err)
		assert.Equal(t, spec, e.String())
	}
}

func TestShiftFoldedIntoRune(t *testing.T) {
	assert.Equal(t, NewRuneEvent('A', ModNone), NewRuneEvent('A', ModShift))
}

func TestEventDigit(t *testing.T) {
	d, ok := NewRuneEvent('7', ModMeta).Digit()
	assert.True(t, ok)
	assert.Equal(t, 7, d)

	_, ok = NewRuneEvent('x', ModNone).Digit()
	assert.False(t, ok)

	_, ok = NewSpecialEvent(KeyTab, ModNone).Digit()
	assert.False(t, ok)
}

func TestEventIsChar(t *testing.T) {
	assert.True(t, NewRuneEvent('w', ModNone).IsChar())
	assert.False(t, NewRuneEvent('w', ModCtrl).IsChar())
	assert.False(t, NewSpecialEvent(KeyEnter, ModNone).IsChar())
}

func TestParseSequence(t *testing.T) {
	seq, err := ParseSequence("C-x C-u")
	require.NoError(t, err)
	require.Len(t, seq, 2)
	assert.Equal(t, "C-x C-u", seq.String())
	assert.Equal(t, NewRuneEvent('u', ModCtrl), seq.Last())

	prefix, err := ParseSequence("C-x")
	require.NoError(t, err)
	assert.True(t, seq.HasPrefix(prefix))
	assert.False(t, prefix.HasPrefix(seq))
	assert.False(t, seq.Equals(prefix))

	_, err = ParseSequence("   ")
	assert.ErrorIs(t, err, ErrEmptySpec)
}
