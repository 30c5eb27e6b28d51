package domain

import "context"

// Venue is the capability contract the core consumes. The synthetic matching
// engine and any network adapter must satisfy the same semantics: PlaceOrders
// matches immediate-or-cancel against the snapshot the venue itself would
// return, and unfilled orders are discarded, never rested.
type Venue interface {
	// Name identifies the venue, e.g. "synthetic".
	Name() string

	// ListMarkets returns the markets tradable on this venue.
	ListMarkets(ctx context.Context) ([]Market, error)

	// GetOrderBook returns the current book snapshot for a market.
	GetOrderBook(ctx context.Context, marketID string) (OrderBookSnapshot, error)

	// PlaceOrders submits a batch of orders and returns the resulting trades.
	// Orders that do not cross yield no trade and no error.
	PlaceOrders(ctx context.Context, orders []Order) ([]Trade, error)

	// ComputeFee returns the venue fee for a filled notional.
	ComputeFee(notional float64) float64
}

// BookStreamer is the optional streaming capability of a venue: a push feed
// of book snapshots for subscribed markets.
type BookStreamer interface {
	// StreamBooks delivers snapshots to handler until ctx is cancelled.
	StreamBooks(ctx context.Context, marketIDs []string, handler func(OrderBookSnapshot)) error
}
