package domain

import "time"

// MarketDataEvent wraps a book snapshot with its arrival time.
type MarketDataEvent struct {
	Book OrderBookSnapshot
	At   time.Time
}

// OrderEvent records an order submission.
type OrderEvent struct {
	Order Order
	At    time.Time
}

// TradeEvent records a fill.
type TradeEvent struct {
	Trade Trade
	At    time.Time
}
