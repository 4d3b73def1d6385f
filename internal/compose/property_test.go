package compose

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func wordsGen() *rapid.Generator[[]string] {
	return rapid.SliceOfN(rapid.StringMatching(`[a-z]{2,6}`), 2, 8)
}

// insideWord draws an offset strictly inside one of the words of the
// space-joined text.
func insideWord(t *rapid.T, words []string) int {
	i := rapid.IntRange(0, len(words)-1).Draw(t, "word")
	start := 0
	for _, w := range words[:i] {
		start += len(w) + 1
	}
	return start + rapid.IntRange(1, len(words[i])-1).Draw(t, "offset")
}

func TestContainmentIsIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := rapid.SampledFrom([]Containment{None, Begin, End}).Draw(t, "containment")
		anchor := rapid.IntRange(0, 1000).Draw(t, "anchor")
		point := rapid.IntRange(0, 1000).Draw(t, "point")
		start := rapid.IntRange(0, 1000).Draw(t, "start")

		a1, p1 := c.Clip(anchor, point, start)
		a2, p2 := c.Clip(a1, p1, start)
		if a1 != a2 || p1 != p2 {
			t.Fatalf("clip not idempotent: (%d,%d) then (%d,%d)", a1, p1, a2, p2)
		}
	})
}

func TestClipKeepsOneSide(t *testing.T) {
	a, p := Begin.Clip(11, 6, 8)
	assert.Equal(t, []int{8, 6}, []int{a, p})
	a, p = End.Clip(11, 6, 8)
	assert.Equal(t, []int{11, 8}, []int{a, p})
	a, p = None.Clip(11, 6, 8)
	assert.Equal(t, []int{11, 6}, []int{a, p})
}

// TestPairedMotionsAgreeUnderContainment checks that a delimiter gives
// the same result whichever direction of a paired motion is used, and
// that the result lies on the delimited side of the start.
func TestPairedMotionsAgreeUnderContainment(t *testing.T) {
	pairs := [][2]string{{"w", "b"}, {"e", "a"}, {"n", "p"}}
	rapid.Check(t, func(t *rapid.T) {
		words := wordsGen().Draw(t, "words")
		text := strings.Join(words, " ")
		start := insideWord(t, words)
		keys := rapid.SampledFrom(pairs).Draw(t, "pair")
		delim := rapid.SampledFrom([]string{",", "."}).Draw(t, "delimiter")

		run := func(motionKey string) (string, int) {
			h := newHarness(t, text, DefaultOptions())
			h.e.SetPoint(start)
			h.pressAll("M-w", delim, motionKey)
			kill, ok := h.e.KillRing().Current()
			require.True(t, ok)
			return kill, h.e.Point()
		}
		k1, p1 := run(keys[0])
		k2, p2 := run(keys[1])
		if k1 != k2 {
			t.Fatalf("%s+%s copied %q, %s+%s copied %q", delim, keys[0], k1, delim, keys[1], k2)
		}
		if p1 != start || p2 != start {
			t.Fatalf("point not restored: %d %d, want %d", p1, p2, start)
		}
		inside := strings.HasSuffix(text[:start], k1)
		if delim == "." {
			inside = strings.HasPrefix(text[start:], k1)
		}
		if !inside {
			t.Fatalf("%s copied %q from the wrong side of %d", delim, k1, start)
		}
	})
}

// TestPointRestored checks that point returns to the start of the
// composition for actions that do not keep it.
func TestPointRestored(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		words := wordsGen().Draw(t, "words")
		text := strings.Join(words, " ")
		start := rapid.IntRange(0, len(text)).Draw(t, "start")
		actionKey := rapid.SampledFrom([]string{"M-w", "C-x C-u", "C-x C-l", "M-c"}).Draw(t, "action")
		motionKey := rapid.SampledFrom([]string{"w", "b", "e", "a", "s", "<", ">"}).Draw(t, "motion")

		h := newHarness(t, text, DefaultOptions())
		h.e.SetPoint(start)
		h.pressAll(actionKey, motionKey)
		if h.e.Point() != start {
			t.Fatalf("%s %s from %d left point at %d", actionKey, motionKey, start, h.e.Point())
		}
		if h.c.State() == AwaitingObject {
			t.Fatalf("composition still pending")
		}
	})
}

// TestRepeatEqualsLargerArgument checks that k repeats of a composed
// forward-word kill equal one kill over k+1 words.
func TestRepeatEqualsLargerArgument(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		words := wordsGen().Draw(t, "words")
		text := strings.Join(words, " ")
		first := rapid.IntRange(0, len(words)-1).Draw(t, "first")
		k := rapid.IntRange(0, len(words)-first-1).Draw(t, "repeats")
		start := 0
		for _, w := range words[:first] {
			start += len(w) + 1
		}

		repeated := newHarness(t, text, DefaultOptions())
		repeated.e.SetPoint(start)
		repeated.pressAll("C-w", "w")
		for range k {
			repeated.pressAll("w")
		}

		direct := newHarness(t, text, DefaultOptions())
		direct.e.SetPoint(start)
		direct.pressAll("C-w", strconv.Itoa(k+1), "w")

		if repeated.e.Text() != direct.e.Text() {
			t.Fatalf("after %d repeats %q, direct %q", k, repeated.e.Text(), direct.e.Text())
		}
		if repeated.e.Point() != start {
			t.Fatalf("point %d, want %d", repeated.e.Point(), start)
		}
	})
}
