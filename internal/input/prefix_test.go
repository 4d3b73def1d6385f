package input

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dshills/composable/internal/input/key"
)

func TestPrefixArgDefaults(t *testing.T) {
	p := NoArg()
	assert.False(t, p.IsSet())
	assert.Equal(t, 1, p.Int())
	assert.Equal(t, 1, p.Direction())
	assert.Equal(t, "", p.String())
}

func TestPrefixArgDirection(t *testing.T) {
	tests := []struct {
		arg  PrefixArg
		want int
	}{
		{Num(3), 1},
		{Num(-3), -1},
		{Num(0), 1},
		{NoArg(), 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.arg.Direction(), "arg %v", tt.arg)
	}
	assert.Equal(t, Num(-2), Num(-7).Scale(2))
}

func TestPrefixStateSequences(t *testing.T) {
	tests := []struct {
		name  string
		steps func(s *PrefixState)
		want  int
		str   string
	}{
		{"universal", func(s *PrefixState) { s.Universal() }, 4, "C-u 4"},
		{"universal twice", func(s *PrefixState) { s.Universal(); s.Universal() }, 16, "C-u 16"},
		{"digits", func(s *PrefixState) { s.Digit(1); s.Digit(2) }, 12, "12"},
		{"negative only", func(s *PrefixState) { s.Negate() }, -1, "-"},
		{"negative digit", func(s *PrefixState) { s.Negate(); s.Digit(3) }, -3, "-3"},
		{"negative digits", func(s *PrefixState) { s.Negate(); s.Digit(3); s.Digit(1) }, -31, "-31"},
		{"digits then negate", func(s *PrefixState) { s.Digit(5); s.Negate() }, -5, "-5"},
		{"universal then digit", func(s *PrefixState) { s.Universal(); s.Digit(7) }, 7, "7"},
		{"universal then negate", func(s *PrefixState) { s.Universal(); s.Negate() }, -1, "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s PrefixState
			tt.steps(&s)
			assert.True(t, s.Active())
			arg := s.Take()
			assert.Equal(t, tt.want, arg.Int())
			assert.Equal(t, tt.str, arg.String())
			assert.False(t, s.Active())
		})
	}
}

func TestPrefixStateDoubleNegateClears(t *testing.T) {
	var s PrefixState
	s.Negate()
	s.Negate()
	assert.False(t, s.Active())
}

func TestPrefixStateIgnoresBadDigit(t *testing.T) {
	var s PrefixState
	s.Digit(12)
	assert.False(t, s.Active())
}

func TestActionLastKey(t *testing.T) {
	seq, err := key.ParseSequence("C-x C-u")
	assert.NoError(t, err)

	a := NewAction("composable-upcase-region").WithKeys(seq).WithArg(Num(2))
	assert.Equal(t, key.NewRuneEvent('u', key.ModCtrl), a.LastKey())
	assert.Equal(t, 2, a.Arg.Int())
	assert.Equal(t, "keyboard", a.Source.String())
}

func TestApplyPrefixCommand(t *testing.T) {
	var s PrefixState
	digit := func(r rune, mods key.Modifier) Action {
		return NewAction(CmdDigitArgument).WithKeys(key.Sequence{key.NewRuneEvent(r, mods)})
	}

	assert.True(t, ApplyPrefixCommand(&s, NewAction(CmdNegativeArgument)))
	assert.True(t, ApplyPrefixCommand(&s, digit('4', key.ModMeta)))
	assert.True(t, ApplyPrefixCommand(&s, digit('2', key.ModNone)))
	assert.Equal(t, -42, s.Peek().Int())

	assert.False(t, ApplyPrefixCommand(&s, NewAction("forward-word")))
	assert.False(t, ApplyPrefixCommand(&s, NewAction(CmdDigitArgument)))
	assert.True(t, IsPrefixCommand(CmdUniversalArgument))
	assert.False(t, IsPrefixCommand("keyboard-quit"))
}

func TestPrefixArgUniversal(t *testing.T) {
	var s PrefixState
	s.Universal()
	assert.True(t, s.Peek().Universal())
	s.Digit(3)
	assert.False(t, s.Peek().Universal())
	assert.False(t, Num(4).Universal())
}
