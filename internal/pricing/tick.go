package pricing

import "math"

// tickEps compensates for floating round-off so that an exact multiple of the
// tick does not spuriously floor to the tick below (or ceil to the one above).
const tickEps = 1e-12

// Clamp bounds x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

// FloorToTick rounds price down to a multiple of tick, clamped to [0,1].
// A non-positive tick degrades to pure clamping with no rounding.
func FloorToTick(price, tick float64) float64 {
	if tick <= 0 {
		return Clamp(price, 0, 1)
	}
	return Clamp(math.Floor(price/tick+tickEps)*tick, 0, 1)
}

// CeilToTick rounds price up to a multiple of tick, clamped to [0,1].
func CeilToTick(price, tick float64) float64 {
	if tick <= 0 {
		return Clamp(price, 0, 1)
	}
	return Clamp(math.Ceil(price/tick-tickEps)*tick, 0, 1)
}

// NearestTick rounds price to the nearest multiple of tick (half to even),
// clamped to [0,1].
func NearestTick(price, tick float64) float64 {
	p := Clamp(price, 0, 1)
	if tick <= 0 {
		return p
	}
	return Clamp(math.RoundToEven(p/tick)*tick, 0, 1)
}
