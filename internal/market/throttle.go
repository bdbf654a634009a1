package market

import (
	"context"
	"sync"
	"time"
)

// Throttle enforces a minimum delay between consecutive outbound requests.
// One instance is shared by every request the pipeline makes, across all
// servers, so pacing stays under a single global ceiling. It is an injected
// component rather than package state so tests can construct isolated
// throttles.
type Throttle struct {
	mu    sync.Mutex
	delay time.Duration
	last  time.Time // zero until the first Mark

	now func() time.Time
}

// NewThrottle creates a throttle with the given minimum inter-request delay.
func NewThrottle(delay time.Duration) *Throttle {
	return &Throttle{delay: delay, now: time.Now}
}

// RequiredDelay returns how long a caller must still wait before the next
// request may go out.
func (t *Throttle) RequiredDelay() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.last.IsZero() {
		return 0
	}
	remaining := t.delay - t.now().Sub(t.last)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Wait sleeps out the remaining delay, if any. The wait is cancellable.
func (t *Throttle) Wait(ctx context.Context) error {
	return sleepCtx(ctx, t.RequiredDelay())
}

// Mark records that a request was just issued.
func (t *Throttle) Mark() {
	t.mu.Lock()
	t.last = t.now()
	t.mu.Unlock()
}

// sleepCtx sleeps for d or until ctx is cancelled.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
