package exec

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Throttle is a token-bucket limiter on order submissions.
type Throttle struct {
	limiter *rate.Limiter
}

// NewThrottle allows ordersPerSec sustained submissions with the given burst
// capacity. A non-positive burst defaults to the ceiling of the rate, so a
// full second of capacity is available at start.
func NewThrottle(ordersPerSec float64, burst int) *Throttle {
	if burst <= 0 {
		burst = int(ordersPerSec)
		if burst < 1 {
			burst = 1
		}
	}
	return &Throttle{limiter: rate.NewLimiter(rate.Limit(ordersPerSec), burst)}
}

// Allow reports whether n submissions may proceed right now.
func (t *Throttle) Allow(n int) bool {
	return t.limiter.AllowN(time.Now(), n)
}

// Wait blocks until n submissions may proceed or ctx is cancelled.
func (t *Throttle) Wait(ctx context.Context, n int) error {
	return t.limiter.WaitN(ctx, n)
}
