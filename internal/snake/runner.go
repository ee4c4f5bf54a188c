package snake

import (
	"context"
	"sync"
	"time"
)

// Runner drives a Game from a periodic ticker and hands every resulting
// snapshot to a sink. Heading changes and resets may come from any goroutine.
type Runner struct {
	mu      sync.Mutex
	game    *Game
	publish func(Snapshot)
	restart chan struct{}
}

// NewRunner wraps game. publish is called from the Run goroutine and must not
// block for long; it delays the next tick.
func NewRunner(game *Game, publish func(Snapshot)) *Runner {
	return &Runner{
		game:    game,
		publish: publish,
		restart: make(chan struct{}, 1),
	}
}

// SetHeading is picked up by the next tick only.
func (r *Runner) SetHeading(d Direction) {
	r.mu.Lock()
	r.game.SetHeading(d)
	r.mu.Unlock()
}

// Reset restarts the game from its initial state and wakes a halted loop.
func (r *Runner) Reset() {
	r.mu.Lock()
	r.game.Reset()
	r.mu.Unlock()

	select {
	case r.restart <- struct{}{}:
	default:
	}
}

// Snapshot returns the current state without ticking.
func (r *Runner) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.game.Snapshot()
}

// Run ticks until ctx is done. The ticker period follows the level and the
// ticker is stopped while the game is over.
func (r *Runner) Run(ctx context.Context) error {
	r.mu.Lock()
	interval := r.game.Interval()
	halted := r.game.GameOver()
	first := r.game.Snapshot()
	r.mu.Unlock()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	if halted {
		ticker.Stop()
	}
	r.publish(first)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-r.restart:
			r.mu.Lock()
			interval = r.game.Interval()
			snap := r.game.Snapshot()
			r.mu.Unlock()

			ticker.Reset(interval)
			r.publish(snap)

		case <-ticker.C:
			r.mu.Lock()
			outcome := r.game.Tick()
			next := r.game.Interval()
			snap := r.game.Snapshot()
			r.mu.Unlock()

			switch {
			case outcome == Halted:
				ticker.Stop()
				continue
			case outcome == Collided:
				ticker.Stop()
			case next != interval:
				interval = next
				ticker.Reset(interval)
			}
			r.publish(snap)
		}
	}
}
