package http

import (
	"context"
	"sync"
	"time"

	"github.com/gronnmann/fiken-go/internal/constants"
)

// RateLimiter enforces the API's documented limits client-side: at most one
// request in flight and at most maxRequests request starts per sliding
// window. Without it, bursts of calls trip the server's 429 responses.
type RateLimiter struct {
	window      time.Duration
	maxRequests int

	// slot is the single-concurrency gate. Buffered with the concurrency
	// limit so Acquire can block on it with ctx cancellation.
	slot chan struct{}

	mu     sync.Mutex
	starts []time.Time
	now    func() time.Time
	sleep  func(ctx context.Context, d time.Duration) error
}

// NewRateLimiter creates a limiter with the API's default limits.
func NewRateLimiter() *RateLimiter {
	return newRateLimiter(constants.RateLimitWindow, constants.RateLimitMaxRequests, constants.RateLimitMaxConcurrent)
}

func newRateLimiter(window time.Duration, maxRequests, maxConcurrent int) *RateLimiter {
	return &RateLimiter{
		window:      window,
		maxRequests: maxRequests,
		slot:        make(chan struct{}, maxConcurrent),
		now:         time.Now,
		sleep:       sleepCtx,
	}
}

// Acquire blocks until the caller may start a request, or until ctx is
// done. On success the caller must Release when the request completes.
func (l *RateLimiter) Acquire(ctx context.Context) error {
	select {
	case l.slot <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}

	if err := l.waitForWindow(ctx); err != nil {
		<-l.slot

		return err
	}

	return nil
}

// Release frees the concurrency slot taken by Acquire.
func (l *RateLimiter) Release() {
	<-l.slot
}

// waitForWindow blocks until starting a request keeps the per-window count
// within the limit, then records the start.
func (l *RateLimiter) waitForWindow(ctx context.Context) error {
	for {
		l.mu.Lock()

		now := l.now()
		l.expire(now)

		if len(l.starts) < l.maxRequests {
			l.starts = append(l.starts, now)
			l.mu.Unlock()

			return nil
		}

		wait := l.starts[0].Add(l.window).Sub(now)
		l.mu.Unlock()

		if err := l.sleep(ctx, wait); err != nil {
			return err
		}
	}
}

// expire drops start timestamps that have left the window. The caller must
// hold mu.
func (l *RateLimiter) expire(now time.Time) {
	cutoff := now.Add(-l.window)

	idx := 0
	for idx < len(l.starts) && !l.starts[idx].After(cutoff) {
		idx++
	}

	l.starts = l.starts[idx:]
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
