package bookws

import (
	"github.com/quantbay/binarymm/internal/domain"
)

// DecodeSnapshot converts wire levels into a domain snapshot, dropping
// levels with out-of-range prices or negative quantities.
func DecodeSnapshot(marketID string, bids, asks []levelEntry) domain.OrderBookSnapshot {
	snap := domain.OrderBookSnapshot{MarketID: marketID}
	for _, l := range bids {
		if validLevel(l) {
			snap.Bids = append(snap.Bids, domain.BookLevel{Price: l.Price, Qty: l.Qty})
		}
	}
	for _, l := range asks {
		if validLevel(l) {
			snap.Asks = append(snap.Asks, domain.BookLevel{Price: l.Price, Qty: l.Qty})
		}
	}
	return snap
}

func validLevel(l levelEntry) bool {
	return l.Price >= 0 && l.Price <= 1 && l.Qty >= 0
}
