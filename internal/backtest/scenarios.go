package backtest

import (
	"iter"
	"math/rand"

	"github.com/quantbay/binarymm/internal/pricing"
)

// Tick is one external mid-price update for a market.
type Tick struct {
	MarketID string
	Mid      float64
}

// RandomWalk returns a lazy sequence of `steps` Gaussian mid-price moves for
// one market, bounded to [0.01, 0.99]. The same seed always produces the
// same sequence, so scenarios replay byte-for-byte.
func RandomWalk(marketID string, steps int, start, sigma float64, seed int64) iter.Seq[Tick] {
	return func(yield func(Tick) bool) {
		rng := rand.New(rand.NewSource(seed))
		mid := start
		for i := 0; i < steps; i++ {
			mid += rng.NormFloat64() * sigma
			mid = pricing.Clamp(mid, 0.01, 0.99)
			if !yield(Tick{MarketID: marketID, Mid: mid}) {
				return
			}
		}
	}
}

// Fixed returns a scenario that replays the given ticks in order. Useful for
// deterministic tests and hand-written scenarios.
func Fixed(ticks ...Tick) iter.Seq[Tick] {
	return func(yield func(Tick) bool) {
		for _, t := range ticks {
			if !yield(t) {
				return
			}
		}
	}
}
