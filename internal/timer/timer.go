package timer

import (
	"errors"
	"sync"
	"time"

	"livemarket/internal/clock"
)

// Timer-level errors
var (
	ErrExpired   = errors.New("timer already expired")
	ErrCancelled = errors.New("timer cancelled")
)

// DefaultTick is the countdown check interval when none is configured
const DefaultTick = time.Second

// Scheduler arms deadline handles against an injectable clock. One scheduler is
// shared by all auctions; each Arm call owns its own goroutine.
type Scheduler struct {
	clk  clock.Clock
	tick time.Duration
}

// New creates a Scheduler. A non-positive tick falls back to DefaultTick.
func New(clk clock.Clock, tick time.Duration) *Scheduler {
	if tick <= 0 {
		tick = DefaultTick
	}
	return &Scheduler{clk: clk, tick: tick}
}

// Handle is a single armed countdown. It fires its expiry callback exactly once,
// the first time the clock passes the deadline, then self-disarms. All deadline
// mutations are serialized on the handle mutex, so an Extend racing the expiry
// tick either moves the deadline before the fire check or observes ErrExpired.
type Handle struct {
	mu        sync.Mutex
	clk       clock.Clock
	deadline  time.Time
	fired     bool
	cancelled bool
	onExpire  func()
	stop      chan struct{}
}

// Arm starts a countdown toward deadline and invokes onExpire exactly once when
// the clock passes it.
func (s *Scheduler) Arm(deadline time.Time, onExpire func()) *Handle {
	h := &Handle{
		clk:      s.clk,
		deadline: deadline,
		onExpire: onExpire,
		stop:     make(chan struct{}),
	}
	go h.run(s.tick)
	return h
}

func (h *Handle) run(tick time.Duration) {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-h.stop:
			return
		case <-ticker.C:
			if h.tryFire() {
				return
			}
		}
	}
}

// tryFire checks elapsed-vs-deadline under the handle mutex and fires at most
// once. Returns true when the handle is done (fired or cancelled).
func (h *Handle) tryFire() bool {
	h.mu.Lock()
	if h.fired || h.cancelled {
		h.mu.Unlock()
		return true
	}
	if h.clk.Now().Before(h.deadline) {
		h.mu.Unlock()
		return false
	}
	h.fired = true
	cb := h.onExpire
	h.mu.Unlock()

	if cb != nil {
		cb()
	}
	return true
}

// Remaining returns the duration until the deadline, clamped to zero once past
// or once the handle is disarmed.
func (h *Handle) Remaining() time.Duration {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.fired || h.cancelled {
		return 0
	}
	d := h.deadline.Sub(h.clk.Now())
	if d < 0 {
		return 0
	}
	return d
}

// Extend replaces the deadline atomically. The expiry check re-reads the
// deadline under the same mutex, so no duplicate or missed expiry is possible
// even when the extension lands on the tick the timer would have fired.
func (h *Handle) Extend(newDeadline time.Time) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.fired {
		return ErrExpired
	}
	if h.cancelled {
		return ErrCancelled
	}
	h.deadline = newDeadline
	return nil
}

// Cancel disarms the handle without firing. Cancelling a fired or already
// cancelled handle is a no-op.
func (h *Handle) Cancel() {
	h.mu.Lock()
	if h.fired || h.cancelled {
		h.mu.Unlock()
		return
	}
	h.cancelled = true
	h.mu.Unlock()
	close(h.stop)
}
