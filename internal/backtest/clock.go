package backtest

import (
	"context"
	"time"
)

// Clock paces a loop. Speed 1 is real-time; larger speeds compress sleeps
// for accelerated replays.
type Clock struct {
	Speed float64
}

// Now returns the wall-clock time.
func (c Clock) Now() time.Time { return time.Now() }

// Sleep waits for d scaled by the clock speed, or until ctx is cancelled.
func (c Clock) Sleep(ctx context.Context, d time.Duration) error {
	speed := c.Speed
	if speed <= 0 {
		speed = 1
	}
	scaled := time.Duration(float64(d) / speed)
	if scaled <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(scaled)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
