package macro

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/dshills/composable/internal/input/key"
)

// MaxLoops bounds a playback with a zero count.
const MaxLoops = 10000

// Handler processes one replayed key event. An error stops playback.
type Handler func(ev key.Event) error

// Player replays macros.
type Player struct {
	mu      sync.Mutex
	playing atomic.Bool
	cancel  context.CancelFunc
}

// NewPlayer creates a player.
func NewPlayer() *Player {
	return &Player{}
}

// Play feeds events to h count times and returns the number of complete
// iterations. A count of zero repeats until h fails or MaxLoops
// iterations have run. Negative counts play once.
func (p *Player) Play(ctx context.Context, events []key.Event, count int, h Handler) (int, error) {
	if len(events) == 0 {
		return 0, ErrEmpty
	}
	if h == nil {
		return 0, fmt.Errorf("macro: nil handler")
	}
	endless := count == 0
	if count < 0 {
		count = 1
	}

	ctx, cancel := context.WithCancel(ctx)
	p.mu.Lock()
	if p.playing.Load() {
		p.mu.Unlock()
		cancel()
		return 0, ErrPlaying
	}
	p.cancel = cancel
	p.playing.Store(true)
	p.mu.Unlock()

	defer func() {
		cancel()
		p.playing.Store(false)
		p.mu.Lock()
		p.cancel = nil
		p.mu.Unlock()
	}()

	done := 0
	for endless || done < count {
		if endless && done >= MaxLoops {
			return done, ErrLoopLimit
		}
		for _, ev := range events {
			if err := ctx.Err(); err != nil {
				return done, err
			}
			if err := h(ev); err != nil {
				return done, err
			}
		}
		done++
	}
	return done, nil
}

// Playing reports whether a macro is being replayed.
func (p *Player) Playing() bool {
	return p.playing.Load()
}

// Cancel stops the playing macro before its next key. Safe to call from
// any goroutine, and when nothing is playing.
func (p *Player) Cancel() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		p.cancel()
	}
}
