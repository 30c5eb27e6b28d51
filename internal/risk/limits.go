// Package risk provides pre-trade limit checks, exposure measures, and a
// max-loss kill switch for the live quoting loop.
package risk

// Limits are static per-session bounds checked before order placement.
type Limits struct {
	MaxNotional          float64
	PerMarketMaxPosition float64
}

// WithinNotional reports whether a proposed notional is inside the limit.
func (l Limits) WithinNotional(notional float64) bool {
	return notional <= l.MaxNotional
}

// WithinPosition reports whether a signed position is inside the per-market
// bound.
func (l Limits) WithinPosition(position float64) bool {
	if position < 0 {
		position = -position
	}
	return position <= l.PerMarketMaxPosition
}
