package strategy

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/quantbay/binarymm/internal/domain"
	"github.com/quantbay/binarymm/internal/pricing"
)

const (
	defaultSpreadBps = 100.0
	defaultLMSRB     = 100.0
	defaultQuoteSize = 10.0
	defaultTickSize  = 0.01
)

// BinaryMM is an inventory-aware two-sided quoter for binary markets. Each
// call produces one bid and one ask around an inventory-skewed probability,
// rounded away from the mid so a quote is never better than the model price.
type BinaryMM struct {
	cfg    Config
	model  *pricing.LMSR
	logger *slog.Logger
}

// NewBinaryMM creates the strategy, validating the LMSR parameter up front.
// Zero-valued config fields take defaults.
func NewBinaryMM(cfg Config, logger *slog.Logger) (*BinaryMM, error) {
	if cfg.SpreadBps <= 0 {
		cfg.SpreadBps = defaultSpreadBps
	}
	// Alpha zero is valid (no skew); only negative sensitivities are rejected.
	if cfg.InventoryAlpha < 0 {
		return nil, fmt.Errorf("strategy: inventory alpha must be non-negative, got %g", cfg.InventoryAlpha)
	}
	if cfg.LMSRB == 0 {
		cfg.LMSRB = defaultLMSRB
	}
	if cfg.QuoteSize <= 0 {
		cfg.QuoteSize = defaultQuoteSize
	}
	if cfg.TickSize <= 0 {
		cfg.TickSize = defaultTickSize
	}
	model, err := pricing.NewLMSR(cfg.LMSRB)
	if err != nil {
		return nil, err
	}
	return &BinaryMM{
		cfg:    cfg,
		model:  model,
		logger: logger.With(slog.String("strategy", "binary_mm")),
	}, nil
}

// Name returns the strategy identifier.
func (s *BinaryMM) Name() string { return "binary_mm" }

// Model exposes the strategy's pricing model.
func (s *BinaryMM) Model() *pricing.LMSR { return s.model }

// Quote returns a BUY and a SELL order for the YES outcome. The returned pair
// always satisfies bid < ask, including at the probability extremes where
// tick rounding would otherwise collapse the spread.
func (s *BinaryMM) Quote(book domain.OrderBookSnapshot, inv *domain.Inventory) []domain.Order {
	mid, ok := book.Mid()
	if !ok {
		// One-sided or empty book: quote around even odds.
		mid = 0.5
	}

	adj := pricing.SkewProbabilities(
		[]float64{mid, 1 - mid},
		inv.NetYes(book.MarketID),
		s.cfg.InventoryAlpha,
	)
	pYes := adj[0]

	// SpreadBps is the total spread; each side gets half of it.
	halfSpread := s.cfg.SpreadBps / 20000.0
	rawBid := pricing.Clamp(pYes-halfSpread, 0, 1)
	rawAsk := pricing.Clamp(pYes+halfSpread, 0, 1)

	// Round away from the mid: bid down, ask up.
	bid := pricing.FloorToTick(rawBid, s.cfg.TickSize)
	ask := pricing.CeilToTick(rawAsk, s.cfg.TickSize)

	// Tick collapse at the bounds: widen the side away from the bound.
	if bid >= ask {
		if bid >= 1.0 {
			bid = pricing.Clamp(bid-s.cfg.TickSize, 0, 1)
		} else {
			ask = pricing.Clamp(ask+s.cfg.TickSize, 0, 1)
		}
	}

	return []domain.Order{
		{
			ID:       uuid.New().String(),
			MarketID: book.MarketID,
			Outcome:  "YES",
			Side:     domain.OrderSideBuy,
			Qty:      s.cfg.QuoteSize,
			Price:    bid,
			Type:     domain.OrderTypeLimit,
		},
		{
			ID:       uuid.New().String(),
			MarketID: book.MarketID,
			Outcome:  "YES",
			Side:     domain.OrderSideSell,
			Qty:      s.cfg.QuoteSize,
			Price:    ask,
			Type:     domain.OrderTypeLimit,
		},
	}
}
