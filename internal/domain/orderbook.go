package domain

// BookLevel is a single price+quantity entry in an order book.
type BookLevel struct {
	Price float64 // probability price in [0,1]
	Qty   float64 // >= 0
}

// OrderBookSnapshot is a point-in-time view of a market's book. Bids and asks
// are ordered best first. When both sides are non-empty the best bid must be
// strictly below the best ask; a crossed book is a producer defect.
type OrderBookSnapshot struct {
	MarketID string
	Bids     []BookLevel
	Asks     []BookLevel
}

// Mid returns the midpoint of the best bid and ask. The second return is
// false when either side is empty; callers must handle absence explicitly
// rather than treating the price as zero.
func (s OrderBookSnapshot) Mid() (float64, bool) {
	if len(s.Bids) == 0 || len(s.Asks) == 0 {
		return 0, false
	}
	return (s.Bids[0].Price + s.Asks[0].Price) / 2, true
}

// Spread returns best ask minus best bid, with the same absence semantics as
// Mid.
func (s OrderBookSnapshot) Spread() (float64, bool) {
	if len(s.Bids) == 0 || len(s.Asks) == 0 {
		return 0, false
	}
	return s.Asks[0].Price - s.Bids[0].Price, true
}

// Crossed reports whether both sides are present and the best bid is at or
// above the best ask.
func (s OrderBookSnapshot) Crossed() bool {
	if len(s.Bids) == 0 || len(s.Asks) == 0 {
		return false
	}
	return s.Bids[0].Price >= s.Asks[0].Price
}

// Validate rejects snapshots that must never reach a strategy.
func (s OrderBookSnapshot) Validate() error {
	if s.Crossed() {
		return ErrCrossedBook
	}
	return nil
}
