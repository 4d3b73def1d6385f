package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngine(t *testing.T) {
	e := New(WithContent("Hello, World!"))
	assert.Equal(t, "Hello, World!", e.Text())
	assert.Equal(t, 13, e.Len())
	assert.Equal(t, 0, e.Point())
	assert.False(t, e.HasMark())
	assert.False(t, e.MarkActive())
	assert.False(t, e.Modified())
}

func TestNewFromReader(t *testing.T) {
	e, err := NewFromReader(strings.NewReader("line one\nline two\n"))
	require.NoError(t, err)
	assert.Equal(t, 18, e.Len())

	var sb strings.Builder
	n, err := e.WriteTo(&sb)
	require.NoError(t, err)
	assert.Equal(t, int64(18), n)
	assert.Equal(t, "line one\nline two\n", sb.String())

	_, err = NewFromReader(strings.NewReader("\xff\xfe"))
	assert.Error(t, err)
}

func TestPointFollowsEdits(t *testing.T) {
	e := New(WithContent("abcdef"))
	e.SetPoint(3)

	require.NoError(t, e.Insert(0, "xx"))
	assert.Equal(t, 5, e.Point())

	require.NoError(t, e.InsertAtPoint("!"))
	assert.Equal(t, 6, e.Point())
	assert.Equal(t, "xxabc!def", e.Text())

	_, err := e.Delete(4, 8)
	require.NoError(t, err)
	assert.Equal(t, 4, e.Point())

	e.SetPoint(100)
	assert.Equal(t, e.Len(), e.Point())
}

func TestSameLengthReplaceKeepsPoint(t *testing.T) {
	e := New(WithContent("hello world"))
	e.SetPoint(2)
	require.NoError(t, e.Replace(0, 5, "HELLO"))
	assert.Equal(t, 2, e.Point())
	assert.Equal(t, "HELLO world", e.Text())
}

func TestMarkAndRegion(t *testing.T) {
	e := New(WithContent("0123456789"))
	_, err := e.Region()
	assert.ErrorIs(t, err, ErrMarkInactive)
	assert.ErrorIs(t, e.ExchangePointAndMark(), ErrNoMark)

	e.SetPoint(7)
	e.SetMark(2)
	sel, err := e.Region()
	require.NoError(t, err)
	assert.Equal(t, 2, sel.Start())
	assert.Equal(t, 7, sel.End())
	assert.False(t, sel.IsBackward())

	require.NoError(t, e.ExchangePointAndMark())
	assert.Equal(t, 2, e.Point())
	assert.Equal(t, 7, e.Mark())

	e.DeactivateMark()
	assert.False(t, e.MarkActive())
	assert.True(t, e.HasMark())
	assert.True(t, e.ActivateMark())
	assert.True(t, e.MarkActive())
}

func TestMarkRing(t *testing.T) {
	e := New(WithContent("0123456789"), WithMarkRingSize(2))
	e.PushMark(1, false)
	e.PushMark(3, false)
	e.PushMark(5, false)
	e.PushMark(7, false)
	assert.Equal(t, 2, e.MarkRingLen())
	assert.Equal(t, 7, e.Mark())

	require.NoError(t, e.PopMark())
	assert.Equal(t, 7, e.Point())
	assert.Equal(t, 5, e.Mark())
	assert.Equal(t, 2, e.MarkRingLen())
}

func TestMarkFollowsEdits(t *testing.T) {
	e := New(WithContent("hello world"))
	e.SetMark(6)
	require.NoError(t, e.Insert(0, ">> "))
	assert.Equal(t, 9, e.Mark())
}

func TestKillAndYank(t *testing.T) {
	e := New(WithContent("one two three"))

	e.BeginCommand("kill")
	killed, err := e.Kill(0, 4)
	require.NoError(t, err)
	e.EndCommand()
	assert.Equal(t, "one ", killed)
	assert.Equal(t, "two three", e.Text())

	// Consecutive kill appends.
	e.BeginCommand("kill")
	_, err = e.Kill(0, 4)
	require.NoError(t, err)
	e.EndCommand()
	cur, ok := e.KillRing().Current()
	require.True(t, ok)
	assert.Equal(t, "one two ", cur)

	// An unrelated command breaks the chain.
	e.BeginCommand("forward-char")
	e.EndCommand()
	e.BeginCommand("kill")
	_, err = e.Kill(0, 2)
	require.NoError(t, err)
	e.EndCommand()
	assert.Equal(t, 2, e.KillRing().Len())

	e.SetPoint(e.Len())
	require.NoError(t, e.Yank())
	assert.Equal(t, "reeth", e.Text())
	assert.Equal(t, 3, e.Mark())
	assert.False(t, e.MarkActive())
}

func TestBackwardKillPrepends(t *testing.T) {
	e := New(WithContent("abc def ghi"))
	e.BeginCommand("kill")
	_, err := e.Kill(8, 11)
	require.NoError(t, err)
	e.EndCommand()

	e.BeginCommand("kill")
	_, err = e.Kill(4, 8)
	require.NoError(t, err)
	e.EndCommand()

	cur, _ := e.KillRing().Current()
	assert.Equal(t, "def ghi", cur)
}

func TestKillRegion(t *testing.T) {
	e := New(WithContent("hello world"))
	_, err := e.KillRegion()
	assert.ErrorIs(t, err, ErrMarkInactive)

	e.SetPoint(5)
	e.SetMark(11)
	text, err := e.KillRegion()
	require.NoError(t, err)
	assert.Equal(t, " world", text)
	assert.False(t, e.MarkActive())
}

func TestYankEmpty(t *testing.T) {
	e := New()
	assert.ErrorIs(t, e.Yank(), ErrKillRingEmpty)
}

func TestReadOnly(t *testing.T) {
	e := New(WithContent("abc"), WithReadOnly())
	assert.ErrorIs(t, e.Insert(0, "x"), ErrReadOnly)
	_, err := e.Kill(0, 1)
	assert.ErrorIs(t, err, ErrReadOnly)
	assert.Equal(t, "abc", e.Text())
	assert.Equal(t, 0, e.KillRing().Len())

	e.SetReadOnly(false)
	assert.NoError(t, e.Insert(0, "x"))
}

func TestUndoCommandGroup(t *testing.T) {
	e := New(WithContent("alpha beta gamma"))
	e.SetPoint(6)

	e.BeginCommand("composable-upcase-region")
	require.NoError(t, e.Replace(0, 5, "ALPHA"))
	require.NoError(t, e.Replace(6, 10, "BETA"))
	e.EndCommand()
	assert.Equal(t, "ALPHA BETA gamma", e.Text())
	assert.Equal(t, 1, e.UndoCount())

	require.NoError(t, e.Undo())
	assert.Equal(t, "alpha beta gamma", e.Text())
	assert.Equal(t, 6, e.Point())

	require.NoError(t, e.Redo())
	assert.Equal(t, "ALPHA BETA gamma", e.Text())
}

func TestKillRingRotate(t *testing.T) {
	k := NewKillRing(3)
	for _, s := range []string{"a", "b", "c", "d"} {
		k.Push(s)
	}
	assert.Equal(t, []string{"d", "c", "b"}, k.Entries())

	k.Rotate(1)
	cur, _ := k.Current()
	assert.Equal(t, "c", cur)
	k.Rotate(-2)
	cur, _ = k.Current()
	assert.Equal(t, "b", cur)
}

func TestKillRingSizeOption(t *testing.T) {
	e := New(WithContent("a b c"), WithKillRingSize(2), WithKillRingSize(0))
	for _, start := range []int{4, 2, 0} {
		e.BeginCommand("kill")
		_, err := e.Kill(start, start+1)
		require.NoError(t, err)
		e.EndCommand()
		e.BeginCommand("forward-char")
		e.EndCommand()
	}
	assert.Equal(t, 2, e.KillRing().Len())
	assert.Equal(t, []string{"a", "b"}, e.KillRing().Entries())
}

func TestCopyJoinsKillChain(t *testing.T) {
	e := New(WithContent("alpha beta gamma"))

	e.BeginCommand("copy")
	assert.Equal(t, "alpha", e.CopyAsKill(0, 5))
	e.EndCommand()

	e.BeginCommand("copy")
	e.CopyAsKill(5, 10)
	e.EndCommand()

	cur, _ := e.KillRing().Current()
	assert.Equal(t, "alpha beta", cur)
	assert.Equal(t, 1, e.KillRing().Len())
	assert.Equal(t, "alpha beta gamma", e.Text())
}
