package risk

import "math"

// DeltaBinary is the pseudo-delta of a binary position: the sensitivity of
// mark-to-market value to a small probability shift. Value is approximately
// positionYes * pYes, so d(value)/d(p) is just the position.
func DeltaBinary(positionYes float64) float64 {
	return positionYes
}

// PortfolioValueBinary marks a YES position to the current probability.
func PortfolioValueBinary(pYes, positionYes float64) float64 {
	return positionYes * pYes
}

// Entropy returns the Shannon entropy of a probability vector in nats.
// Non-positive components contribute nothing.
func Entropy(probs []float64) float64 {
	const eps = 1e-12
	var h float64
	for _, p := range probs {
		if p > 0 {
			h -= p * math.Log(math.Max(p, eps))
		}
	}
	return h
}
