// Package state holds the in-memory session state: the market registry, the
// inventory ledger, and rolling book history.
package state

import (
	"time"

	"github.com/quantbay/binarymm/internal/domain"
)

// Store owns the per-session mutable state. It is created empty at session
// start and mutated only by the single control thread driving the session; a
// reset is a new Store.
type Store struct {
	markets   map[string]domain.Market
	Inventory *domain.Inventory

	orders []domain.OrderEvent
	trades []domain.TradeEvent
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{
		markets:   make(map[string]domain.Market),
		Inventory: domain.NewInventory(),
	}
}

// UpsertMarket registers or replaces a market definition.
func (s *Store) UpsertMarket(m domain.Market) {
	s.markets[m.ID] = m
}

// Market returns a registered market by ID.
func (s *Store) Market(id string) (domain.Market, bool) {
	m, ok := s.markets[id]
	return m, ok
}

// Markets returns all registered markets.
func (s *Store) Markets() []domain.Market {
	out := make([]domain.Market, 0, len(s.markets))
	for _, m := range s.markets {
		out = append(out, m)
	}
	return out
}

// RecordOrder journals a submitted order.
func (s *Store) RecordOrder(o domain.Order) {
	s.orders = append(s.orders, domain.OrderEvent{Order: o, At: time.Now()})
}

// RecordTrade folds a fill into the inventory and journals it.
func (s *Store) RecordTrade(t domain.Trade) {
	s.Inventory.Update(t)
	s.trades = append(s.trades, domain.TradeEvent{Trade: t, At: time.Now()})
}

// Orders returns the session order journal, oldest first.
func (s *Store) Orders() []domain.OrderEvent { return s.orders }

// Trades returns the session trade journal, oldest first.
func (s *Store) Trades() []domain.TradeEvent { return s.trades }
