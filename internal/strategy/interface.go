// Package strategy contains quoting strategies for binary prediction markets.
package strategy

import (
	"github.com/quantbay/binarymm/internal/domain"
)

// Strategy turns a book snapshot into a batch of orders. Inventory is passed
// in explicitly: a strategy reads the ledger, emits orders, and the caller
// folds the resulting fills back into the same ledger before the next quote.
// Quote itself never mutates the ledger or the snapshot.
type Strategy interface {
	Name() string
	Quote(book domain.OrderBookSnapshot, inv *domain.Inventory) []domain.Order
}

// Config holds the parameters shared by quoting strategies.
type Config struct {
	SpreadBps      float64 // total quoted spread in basis points
	InventoryAlpha float64 // skew sensitivity per unit of net YES inventory
	LMSRB          float64 // LMSR liquidity parameter
	QuoteSize      float64 // fixed order quantity per side
	TickSize       float64 // price increment quotes are rounded to
}
