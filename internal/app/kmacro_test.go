package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dshills/composable/internal/compose"
	"github.com/dshills/composable/internal/input/key"
)

func TestMacroReplaysComposition(t *testing.T) {
	s := newSession(t, "", Options{})
	s.setText("one two three four", 0)

	s.pressAll("C-x (")
	assert.True(t, s.app.View().Defining)
	msg, _ := s.app.Message()
	assert.Equal(t, "Defining keyboard macro...", msg)

	s.pressAll("C-w w", "C-x )")
	assert.False(t, s.app.View().Defining)
	assert.Equal(t, " two three four", s.app.Engine().Text())
	assert.Equal(t, "C-w w", s.lastMacro())

	s.pressAll("C-x e")
	assert.Equal(t, " three four", s.app.Engine().Text())
	msg, isErr := s.app.Message()
	assert.Equal(t, "(Type e to repeat macro)", msg)
	assert.False(t, isErr)

	s.pressAll("e")
	assert.Equal(t, " four", s.app.Engine().Text())

	// Any other command ends the repeat; e inserts again.
	s.pressAll("C-e", "e")
	assert.Equal(t, " foure", s.app.Engine().Text())
}

func TestMacroEndWithCount(t *testing.T) {
	s := newSession(t, "", Options{})
	s.setText("abcdef", 0)

	s.pressAll("C-x (", "C-f", "C-u 3 C-x )")
	assert.Equal(t, "C-f", s.lastMacro(), "the prefix argument is not part of the macro")
	assert.Equal(t, 3, s.app.Engine().Point())
}

func TestMacroCallWithCount(t *testing.T) {
	s := newSession(t, "", Options{})
	s.setText("abc", 0)

	s.pressAll("C-x (", "x C-f", "C-x )")
	assert.Equal(t, "xabc", s.app.Engine().Text())

	s.pressAll("C-u 2 C-x e")
	assert.Equal(t, "xaxbxc", s.app.Engine().Text())
	assert.Equal(t, 6, s.app.Engine().Point())
}

func TestMacroLoopsUntilError(t *testing.T) {
	s := newSession(t, "", Options{})
	s.setText("a b c)", 0)

	s.pressAll("C-x (", "C-M-f", "C-x )")
	assert.Equal(t, 1, s.app.Engine().Point())

	s.pressAll("C-u 0 C-x e")
	assert.Equal(t, 5, s.app.Engine().Point())
	msg, isErr := s.app.Message()
	assert.True(t, isErr)
	assert.Contains(t, msg, "unbalanced")
	assert.Equal(t, compose.Idle, s.app.Controller().State())
}

func TestMacroEndAndCallWhileDefining(t *testing.T) {
	s := newSession(t, "", Options{})
	s.setText("abc", 0)

	s.pressAll("C-x (", "C-f", "C-x e")
	assert.False(t, s.app.View().Defining)
	assert.Equal(t, "C-f", s.lastMacro())
	assert.Equal(t, 1, s.app.Engine().Point())

	s.pressAll("C-x e", "e")
	assert.Equal(t, 3, s.app.Engine().Point())
}

func TestMacroAppend(t *testing.T) {
	s := newSession(t, "", Options{})
	s.setText("abcdef", 0)

	s.pressAll("C-x (", "C-f", "C-x )")
	s.pressAll("C-u C-x (")
	msg, _ := s.app.Message()
	assert.Equal(t, "Appending to keyboard macro...", msg)
	s.pressAll("C-f", "C-x )")
	assert.Equal(t, "C-f C-f", s.lastMacro())
}

func TestMacroCancelledByKeyboardQuit(t *testing.T) {
	s := newSession(t, "", Options{})
	s.setText("one two", 0)

	s.pressAll("C-x (", "C-w")
	s.pressAll("C-g")
	assert.True(t, s.app.View().Defining, "C-g during a composition only cancels the composition")
	assert.Equal(t, compose.Idle, s.app.Controller().State())

	s.pressAll("C-g")
	assert.False(t, s.app.View().Defining)
	msg, _ := s.app.Message()
	assert.Equal(t, "Keyboard macro definition cancelled", msg)
	assert.Empty(t, s.lastMacro())
}

func TestMacroErrors(t *testing.T) {
	s := newSession(t, "", Options{})

	s.pressAll("C-x e")
	msg, isErr := s.app.Message()
	assert.True(t, isErr)
	assert.Equal(t, "no keyboard macro defined", msg)

	s.pressAll("C-x )")
	msg, isErr = s.app.Message()
	assert.True(t, isErr)
	assert.Equal(t, "not defining keyboard macro", msg)

	s.pressAll("C-x (", "C-x (")
	msg, isErr = s.app.Message()
	assert.True(t, isErr)
	assert.Equal(t, "already defining keyboard macro", msg)

	s.pressAll("C-g", "C-x (", "C-x )")
	msg, isErr = s.app.Message()
	assert.True(t, isErr, "an empty definition is discarded")
	assert.Equal(t, "no keyboard macro defined", msg)
}

func TestMacroRing(t *testing.T) {
	s := newSession(t, "", Options{})
	s.setText("abcdef", 0)

	s.pressAll("C-x C-k C-n")
	msg, _ := s.app.Message()
	assert.Equal(t, "Keyboard macro ring is empty", msg)

	s.pressAll("C-x (", "C-f", "C-x )")
	s.pressAll("C-x (", "C-e", "C-x )")
	assert.Equal(t, "C-e", s.lastMacro())

	s.pressAll("C-x C-k C-n")
	msg, _ = s.app.Message()
	assert.Equal(t, "Last macro: C-f", msg)
	assert.Equal(t, "C-f", s.lastMacro())
}

func (s *session) lastMacro() string {
	return key.Sequence(s.app.macros.Last()).String()
}
