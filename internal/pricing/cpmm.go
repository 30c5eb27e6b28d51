package pricing

import "math"

// CPMMImpliedBinary returns the implied YES probability from constant-product
// pool reserves: p_yes = x_no / (x_yes + x_no). Degenerate (non-positive
// total) reserves fall back to 0.5. This is a comparison helper, not a full
// AMM book.
func CPMMImpliedBinary(xYes, xNo float64) float64 {
	total := xYes + xNo
	if total <= 0 {
		return 0.5
	}
	return xNo / total
}

// CPMMTrade applies a naive buy of YES against the pool and returns the new
// reserves, floored at zero.
func CPMMTrade(xYes, xNo, buyYes float64) (float64, float64) {
	return math.Max(0, xYes+buyYes), math.Max(0, xNo-buyYes)
}
