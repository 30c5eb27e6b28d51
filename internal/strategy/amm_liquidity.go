package strategy

import (
	"github.com/quantbay/binarymm/internal/domain"
)

// AMMLiquidity is a placeholder for AMM-style liquidity provisioning. Pool
// parameter management happens outside the order book, so it emits no orders.
type AMMLiquidity struct{}

// NewAMMLiquidity creates the strategy.
func NewAMMLiquidity() *AMMLiquidity { return &AMMLiquidity{} }

// Name returns the strategy identifier.
func (s *AMMLiquidity) Name() string { return "amm_liquidity" }

// Quote emits no orders.
func (s *AMMLiquidity) Quote(_ domain.OrderBookSnapshot, _ *domain.Inventory) []domain.Order {
	return nil
}
