package backtest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockSpeedScalesSleep(t *testing.T) {
	c := Clock{Speed: 1000}
	start := time.Now()
	require.NoError(t, c.Sleep(context.Background(), time.Second))
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestClockSleepCancellable(t *testing.T) {
	c := Clock{Speed: 1}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, c.Sleep(ctx, time.Hour))
}

func TestClockZeroSpeedDefaultsToRealTime(t *testing.T) {
	c := Clock{}
	require.NoError(t, c.Sleep(context.Background(), time.Millisecond))
	assert.False(t, c.Now().IsZero())
}
