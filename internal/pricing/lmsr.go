// Package pricing implements the cost-function pricing model, tick rounding,
// and inventory skew used by the quoting strategy.
package pricing

import (
	"fmt"
	"math"
)

// LMSR prices outcomes with the Logarithmic Market Scoring Rule:
//
//	C(q)  = b * log(sum_i exp(q_i / b))
//	p_i   = exp(q_i / b) / sum_j exp(q_j / b)
//
// The liquidity parameter b is strictly positive and fixed per instance;
// larger b flattens the price response to quantity changes.
type LMSR struct {
	b float64
}

// NewLMSR creates an LMSR model. A non-positive b is a contract violation and
// fails here rather than at pricing time.
func NewLMSR(b float64) (*LMSR, error) {
	if b <= 0 {
		return nil, fmt.Errorf("pricing: lmsr liquidity parameter must be positive, got %g", b)
	}
	return &LMSR{b: b}, nil
}

// B returns the liquidity parameter.
func (m *LMSR) B() float64 { return m.b }

// Prices returns the marginal probability for each outcome given outstanding
// quantities. The result sums to 1 and every component is in (0,1). An empty
// input returns an empty slice. The max exponent is subtracted before
// exponentiating; b may be small and quantities large, so the shift is what
// keeps exp from overflowing.
func (m *LMSR) Prices(quantities []float64) []float64 {
	if len(quantities) == 0 {
		return nil
	}
	scaled := make([]float64, len(quantities))
	maxScaled := math.Inf(-1)
	for i, q := range quantities {
		scaled[i] = q / m.b
		if scaled[i] > maxScaled {
			maxScaled = scaled[i]
		}
	}
	prices := make([]float64, len(scaled))
	var denom float64
	for i, x := range scaled {
		prices[i] = math.Exp(x - maxScaled)
		denom += prices[i]
	}
	for i := range prices {
		prices[i] /= denom
	}
	return prices
}

// Cost returns the LMSR cost function value for the given quantities, using
// the same max-shift for stability. An empty input costs 0.
func (m *LMSR) Cost(quantities []float64) float64 {
	if len(quantities) == 0 {
		return 0
	}
	maxScaled := math.Inf(-1)
	for _, q := range quantities {
		if x := q / m.b; x > maxScaled {
			maxScaled = x
		}
	}
	var sum float64
	for _, q := range quantities {
		sum += math.Exp(q/m.b - maxScaled)
	}
	return m.b * (maxScaled + math.Log(sum))
}

// PriceBinary is the binary convenience entry point: the YES probability for
// outstanding (qYes, qNo).
func (m *LMSR) PriceBinary(qYes, qNo float64) float64 {
	return m.Prices([]float64{qYes, qNo})[0]
}
