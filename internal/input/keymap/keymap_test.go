package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/composable/internal/input"
	"github.com/dshills/composable/internal/input/key"
)

func seq(t *testing.T, spec string) key.Sequence {
	t.Helper()
	s, err := key.ParseSequence(spec)
	require.NoError(t, err)
	return s
}

func TestKeymapLookup(t *testing.T) {
	km := NewKeymap("test")
	require.NoError(t, km.Bind("C-x  C-u", "upcase"))
	require.NoError(t, km.Bind("C-w", "kill"))

	cmd, m := km.Lookup(seq(t, "C-w"))
	assert.Equal(t, MatchFull, m)
	assert.Equal(t, "kill", cmd)

	_, m = km.Lookup(seq(t, "C-x"))
	assert.Equal(t, MatchPrefix, m)

	cmd, m = km.Lookup(seq(t, "C-x C-u"))
	assert.Equal(t, MatchFull, m)
	assert.Equal(t, "upcase", cmd)

	_, m = km.Lookup(seq(t, "C-z"))
	assert.Equal(t, MatchNone, m)

	assert.True(t, km.Unbind("C-w"))
	assert.False(t, km.Unbind("C-w"))
	assert.Equal(t, 1, km.Len())
}

func TestKeymapAddErrors(t *testing.T) {
	km := NewKeymap("test")
	assert.ErrorIs(t, km.Bind("C-w", ""), ErrEmptyCommand)
	assert.ErrorIs(t, km.Bind("X-w", "kill"), key.ErrInvalidSpec)
}

func TestRegistryLayers(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, LoadDefaults(r))

	cmd, m := r.Resolve(seq(t, "w"))
	assert.Equal(t, MatchNone, m, "object keys are inactive by default")
	assert.Empty(t, cmd)

	require.NoError(t, r.Activate(ObjectLayer))
	assert.True(t, r.IsActive(ObjectLayer))

	cmd, m = r.Resolve(seq(t, "w"))
	assert.Equal(t, MatchFull, m)
	assert.Equal(t, "forward-word", cmd)

	// Global bindings remain reachable under the object layer.
	cmd, _ = r.Resolve(seq(t, "C-w"))
	assert.Equal(t, "composable-kill-region", cmd)

	r.Deactivate(ObjectLayer)
	_, m = r.Resolve(seq(t, "w"))
	assert.Equal(t, MatchNone, m)

	assert.ErrorIs(t, r.Activate("missing"), ErrUnknownKeymap)
}

func TestRegistryBindCreatesLayer(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Bind("custom", "z", "zap"))
	require.NoError(t, r.Activate("custom"))
	cmd, m := r.Resolve(seq(t, "z"))
	assert.Equal(t, MatchFull, m)
	assert.Equal(t, "zap", cmd)
	assert.Len(t, r.Keymaps(), 2)
}

func TestTransientFiresOnce(t *testing.T) {
	r := NewRegistry()
	w := key.NewRuneEvent('w', key.ModNone)

	expired := 0
	fired := 0
	r.ArmOnce(w, func(arg input.PrefixArg) error {
		fired++
		return nil
	}, func() { expired++ })

	got, ok := r.TransientKey()
	require.True(t, ok)
	assert.Equal(t, w, got)

	_, ok = r.TakeTransient(key.NewRuneEvent('x', key.ModNone))
	assert.False(t, ok)

	fire, ok := r.TakeTransient(w)
	require.True(t, ok)
	require.NoError(t, fire(input.NoArg()))
	assert.Equal(t, 1, fired)
	assert.Equal(t, 0, expired, "firing does not expire")

	_, ok = r.TakeTransient(w)
	assert.False(t, ok)
}

func TestTransientDispose(t *testing.T) {
	r := NewRegistry()
	w := key.NewRuneEvent('w', key.ModNone)
	expired := 0
	d := r.ArmOnce(w, func(input.PrefixArg) error { return nil }, func() { expired++ })

	d.Dispose()
	d.Dispose()
	assert.Equal(t, 1, expired)
	_, ok := r.TransientKey()
	assert.False(t, ok)
}

func TestArmOnceReplacesPrevious(t *testing.T) {
	r := NewRegistry()
	first := 0
	r.ArmOnce(key.NewRuneEvent('a', key.ModNone), func(input.PrefixArg) error { return nil }, func() { first++ })
	r.ArmOnce(key.NewRuneEvent('b', key.ModNone), func(input.PrefixArg) error { return nil }, nil)

	assert.Equal(t, 1, first)
	k, ok := r.TransientKey()
	require.True(t, ok)
	assert.Equal(t, 'b', k.Rune)
}

func TestDefaultKeymapsAreValid(t *testing.T) {
	g := DefaultGlobalKeymap()
	cmd, m := g.Lookup(seq(t, "M-7"))
	assert.Equal(t, MatchFull, m)
	assert.Equal(t, "digit-argument", cmd)

	o := DefaultObjectKeymap()
	cmd, _ = o.Lookup(seq(t, ","))
	assert.Equal(t, "composable-begin-argument", cmd)
	cmd, _ = o.Lookup(seq(t, "."))
	assert.Equal(t, "composable-end-argument", cmd)
}
