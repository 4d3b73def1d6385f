package macro

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/composable/internal/input/key"
)

func seq(t *testing.T, spec string) []key.Event {
	t.Helper()
	s, err := key.ParseSequence(spec)
	require.NoError(t, err)
	return s
}

func record(t *testing.T, r *Recorder, spec string) {
	t.Helper()
	for _, ev := range seq(t, spec) {
		r.Record(ev)
	}
}

func TestRecorderBasic(t *testing.T) {
	r := NewRecorder(DefaultRingSize)
	assert.False(t, r.Recording())
	assert.Nil(t, r.Last())

	record(t, r, "a")
	assert.Equal(t, 0, r.Len(), "keys outside a definition are ignored")

	require.NoError(t, r.Start(false))
	assert.True(t, r.Recording())
	assert.ErrorIs(t, r.Start(false), ErrRecording)

	record(t, r, "C-w w w C-x )")
	assert.Equal(t, 5, r.Len())

	got, err := r.Stop(2)
	require.NoError(t, err)
	assert.Equal(t, "C-w w w", key.Sequence(got).String())
	assert.Equal(t, got, r.Last())
	assert.False(t, r.Recording())

	_, err = r.Stop(0)
	assert.ErrorIs(t, err, ErrNotRecording)
}

func TestRecorderEmptyDefinitionDiscarded(t *testing.T) {
	r := NewRecorder(DefaultRingSize)
	require.NoError(t, r.Start(false))
	record(t, r, "C-x )")
	_, err := r.Stop(2)
	assert.ErrorIs(t, err, ErrEmpty)
	assert.Equal(t, 0, r.RingLen())
	assert.False(t, r.Recording())
}

func TestRecorderAppend(t *testing.T) {
	r := NewRecorder(DefaultRingSize)
	require.NoError(t, r.Start(true), "append with no macro starts empty")
	record(t, r, "a b")
	_, err := r.Stop(0)
	require.NoError(t, err)

	require.NoError(t, r.Start(true))
	assert.Equal(t, 2, r.Len())
	record(t, r, "c")
	_, err = r.Stop(0)
	require.NoError(t, err)

	assert.Equal(t, "a b c", key.Sequence(r.Last()).String())
	assert.Equal(t, 1, r.RingLen())
}

func TestRecorderCancel(t *testing.T) {
	r := NewRecorder(DefaultRingSize)
	assert.False(t, r.Cancel())

	require.NoError(t, r.Start(false))
	record(t, r, "x")
	assert.True(t, r.Cancel())
	assert.False(t, r.Recording())
	assert.Nil(t, r.Last())
}

func TestRecorderRing(t *testing.T) {
	r := NewRecorder(2)
	for _, spec := range []string{"a", "b", "c"} {
		require.NoError(t, r.Start(false))
		record(t, r, spec)
		_, err := r.Stop(0)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, r.RingLen())
	assert.Equal(t, "c", key.Sequence(r.Last()).String())

	assert.True(t, r.Rotate())
	assert.Equal(t, "b", key.Sequence(r.Last()).String())
	assert.True(t, r.Rotate())
	assert.Equal(t, "c", key.Sequence(r.Last()).String())

	single := NewRecorder(0)
	assert.False(t, single.Rotate())
}

func TestRecorderLastIsCopy(t *testing.T) {
	r := NewRecorder(DefaultRingSize)
	require.NoError(t, r.Start(false))
	record(t, r, "a b")
	_, err := r.Stop(0)
	require.NoError(t, err)

	last := r.Last()
	last[0] = key.NewRuneEvent('z', key.ModNone)
	assert.Equal(t, "a b", key.Sequence(r.Last()).String())
}

func TestRecorderConcurrent(t *testing.T) {
	r := NewRecorder(DefaultRingSize)
	require.NoError(t, r.Start(false))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Record(key.NewRuneEvent('x', key.ModNone))
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1000, r.Len())
}

func TestPlayerCount(t *testing.T) {
	p := NewPlayer()
	events := seq(t, "a b")

	tests := []struct {
		name  string
		count int
		want  int
	}{
		{"once", 1, 1},
		{"three", 3, 3},
		{"negative plays once", -2, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []key.Event
			n, err := p.Play(context.Background(), events, tt.count, func(ev key.Event) error {
				got = append(got, ev)
				return nil
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, n)
			assert.Len(t, got, 2*tt.want)
		})
	}
}

func TestPlayerEndlessStopsOnError(t *testing.T) {
	p := NewPlayer()
	stop := errors.New("search failed")
	keys := 0
	n, err := p.Play(context.Background(), seq(t, "a b"), 0, func(key.Event) error {
		keys++
		if keys == 7 {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 3, n)
}

func TestPlayerLoopLimit(t *testing.T) {
	p := NewPlayer()
	n, err := p.Play(context.Background(), seq(t, "a"), 0, func(key.Event) error { return nil })
	assert.ErrorIs(t, err, ErrLoopLimit)
	assert.Equal(t, MaxLoops, n)
}

func TestPlayerRejectsBadInput(t *testing.T) {
	p := NewPlayer()
	_, err := p.Play(context.Background(), nil, 1, func(key.Event) error { return nil })
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = p.Play(context.Background(), seq(t, "a"), 1, nil)
	assert.Error(t, err)
}

func TestPlayerNotReentrant(t *testing.T) {
	p := NewPlayer()
	events := seq(t, "a")
	var inner error
	_, err := p.Play(context.Background(), events, 1, func(key.Event) error {
		assert.True(t, p.Playing())
		_, inner = p.Play(context.Background(), events, 1, func(key.Event) error { return nil })
		return nil
	})
	require.NoError(t, err)
	assert.ErrorIs(t, inner, ErrPlaying)
	assert.False(t, p.Playing())
}

func TestPlayerCancel(t *testing.T) {
	p := NewPlayer()
	p.Cancel()

	keys := 0
	n, err := p.Play(context.Background(), seq(t, "a b c"), 5, func(key.Event) error {
		keys++
		if keys == 4 {
			p.Cancel()
		}
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, n)
	assert.Equal(t, 4, keys)
}

func TestPlayerContext(t *testing.T) {
	p := NewPlayer()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n, err := p.Play(ctx, seq(t, "a"), 1, func(key.Event) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, n)
}
