package crawl

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer enforces the politeness delay between page fetches. It is a
// rate-limit measure only, not a correctness mechanism.
type Pacer interface {
	// Wait blocks until the next fetch is allowed.
	// Returns an error if the context is canceled during the wait.
	Wait(ctx context.Context) error
}

var _ Pacer = (*DelayPacer)(nil)

// DelayPacer spaces page fetches at least one delay apart using a token
// bucket with a burst of 1. The bucket starts full, so the first wait
// returns immediately.
type DelayPacer struct {
	limiter *rate.Limiter
}

// NewDelayPacer creates a pacer with the given inter-page delay.
// A non-positive delay disables pacing entirely.
func NewDelayPacer(delay time.Duration) *DelayPacer {
	limit := rate.Inf
	if delay > 0 {
		limit = rate.Every(delay)
	}
	return &DelayPacer{limiter: rate.NewLimiter(limit, 1)}
}

// Wait blocks until the rate limit allows the next fetch.
func (p *DelayPacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}
