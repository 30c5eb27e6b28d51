package domain

// OrderSide indicates whether this is a buy or sell.
type OrderSide string

const (
	OrderSideBuy  OrderSide = "BUY"
	OrderSideSell OrderSide = "SELL"
)

// OrderType indicates how the order interacts with the book. The simulation
// core only exercises limit orders.
type OrderType string

const (
	OrderTypeLimit  OrderType = "LIMIT"
	OrderTypeMarket OrderType = "MARKET"
)

// Order is a single-use order submission. Created by a strategy, consumed
// once by a venue, never retained after matching.
type Order struct {
	ID       string
	MarketID string
	Outcome  string
	Side     OrderSide
	Qty      float64 // > 0; non-positive orders are skipped by venues
	Price    float64 // probability price in [0,1]
	Type     OrderType
}

// SignedQty returns the quantity with a sign applied by side: positive for
// buys, negative for sells.
func (o Order) SignedQty() float64 {
	if o.Side == OrderSideSell {
		return -o.Qty
	}
	return o.Qty
}

// Validate rejects orders a venue could never accept. Non-positive quantity
// is not an error here; venues skip those orders silently.
func (o Order) Validate() error {
	if o.MarketID == "" || o.Outcome == "" {
		return ErrInvalidOrder
	}
	if o.Side != OrderSideBuy && o.Side != OrderSideSell {
		return ErrInvalidOrder
	}
	if o.Price < 0 || o.Price > 1 {
		return ErrInvalidOrder
	}
	return nil
}
