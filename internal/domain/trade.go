package domain

// Trade is the immutable result of a successful match.
type Trade struct {
	OrderID  string
	MarketID string
	Outcome  string
	Side     OrderSide
	Qty      float64 // filled quantity
	Price    float64 // fill price
	Fee      float64 // >= 0, charged by the venue on filled notional
}

// SignedQty returns the filled quantity signed by side: positive for buys,
// negative for sells. Folding signed quantities into positions is the only
// way inventory is ever mutated.
func (t Trade) SignedQty() float64 {
	if t.Side == OrderSideSell {
		return -t.Qty
	}
	return t.Qty
}

// Notional returns the filled quantity times the fill price.
func (t Trade) Notional() float64 {
	return t.Qty * t.Price
}
