package risk

import (
	"github.com/quantbay/binarymm/internal/domain"
)

// PnLTracker marks a single outcome's trading to market: cash moves on each
// fill (including fees) and the held quantity is valued at the current
// probability.
type PnLTracker struct {
	cash float64
	net  float64
}

// OnTrade folds a fill into cash and holdings.
func (p *PnLTracker) OnTrade(t domain.Trade) {
	if t.Side == domain.OrderSideBuy {
		p.cash -= t.Notional()
	} else {
		p.cash += t.Notional()
	}
	p.cash -= t.Fee
	p.net += t.SignedQty()
}

// Unrealized returns cash plus holdings marked at the given probability.
func (p *PnLTracker) Unrealized(pYes float64) float64 {
	return p.cash + p.net*pYes
}

// Net returns the tracked signed quantity.
func (p *PnLTracker) Net() float64 { return p.net }
