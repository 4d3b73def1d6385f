package compose

import (
	"cmp"
	"slices"
	"sync"
)

// DefaultPairs are the directional opposites known at startup.
var DefaultPairs = [][2]string{
	{"forward-word", "backward-word"},
	{"next-line", "previous-line"},
	{"forward-paragraph", "backward-paragraph"},
	{"forward-sentence", "backward-sentence"},
	{"forward-sexp", "backward-sexp"},
	{"end-of-line", "back-to-indentation"},
}

// PairingTable maps a motion to its directional counterpart. The mapping
// is symmetric: Pair(a) == b implies Pair(b) == a.
type PairingTable struct {
	mu    sync.RWMutex
	pairs map[string]string
}

// NewPairingTable returns an empty table.
func NewPairingTable() *PairingTable {
	return &PairingTable{pairs: make(map[string]string)}
}

// NewDefaultPairingTable returns a table holding DefaultPairs.
func NewDefaultPairingTable() *PairingTable {
	t := NewPairingTable()
	for _, p := range DefaultPairs {
		_ = t.AddPair(p[0], p[1])
	}
	return t
}

// AddPair pairs a with b in both directions. Earlier pairings of either
// command are dropped.
func (t *PairingTable) AddPair(a, b string) error {
	if a == "" || b == "" {
		return ErrEmptyName
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.unpair(a)
	t.unpair(b)
	t.pairs[a] = b
	t.pairs[b] = a
	return nil
}

// Pair returns the counterpart of motion.
func (t *PairingTable) Pair(motion string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	p, ok := t.pairs[motion]
	return p, ok
}

// Remove drops motion and its counterpart.
func (t *PairingTable) Remove(motion string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.unpair(motion)
}

func (t *PairingTable) unpair(motion string) bool {
	p, ok := t.pairs[motion]
	if !ok {
		return false
	}
	delete(t.pairs, motion)
	delete(t.pairs, p)
	return true
}

// Len returns the number of pairs.
func (t *PairingTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	n := 0
	for a, b := range t.pairs {
		if a <= b {
			n++
		}
	}
	return n
}

// Pairs returns every pair once, sorted by the first name.
func (t *PairingTable) Pairs() [][2]string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([][2]string, 0, len(t.pairs)/2+1)
	for a, b := range t.pairs {
		if a <= b {
			out = append(out, [2]string{a, b})
		}
	}
	slices.SortFunc(out, func(x, y [2]string) int {
		return cmp.Compare(x[0], y[0])
	})
	return out
}
