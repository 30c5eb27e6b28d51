// Package synthetic implements the Venue contract against a synthetic
// one-level book per market. It is the matching engine used by backtests and
// the drop-in stand-in for a network venue adapter.
package synthetic

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/quantbay/binarymm/internal/domain"
	"github.com/quantbay/binarymm/internal/pricing"
)

const defaultDepth = 100.0

// Venue holds a current mid price per market and synthesizes a one-level
// book around it. Orders match immediate-or-cancel against that book; there
// is no resting order state.
type Venue struct {
	name   string
	feeBps float64
	depth  float64
	logger *slog.Logger

	markets map[string]domain.Market
	mids    map[string]float64

	streamMu  sync.Mutex
	streamers []streamer
}

type streamer struct {
	marketIDs map[string]struct{}
	handler   func(domain.OrderBookSnapshot)
}

var (
	_ domain.Venue        = (*Venue)(nil)
	_ domain.BookStreamer = (*Venue)(nil)
)

// Option configures a Venue.
type Option func(*Venue)

// WithDepth sets the synthetic quantity quoted on each side.
func WithDepth(depth float64) Option {
	return func(v *Venue) {
		if depth > 0 {
			v.depth = depth
		}
	}
}

// New creates a synthetic venue charging feeBps on filled notional.
func New(name string, feeBps float64, logger *slog.Logger, opts ...Option) *Venue {
	if name == "" {
		name = "synthetic"
	}
	v := &Venue{
		name:    name,
		feeBps:  feeBps,
		depth:   defaultDepth,
		logger:  logger.With(slog.String("component", "synthetic_venue")),
		markets: make(map[string]domain.Market),
		mids:    make(map[string]float64),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Name identifies the venue.
func (v *Venue) Name() string { return v.name }

// AddMarket registers a market and its starting mid price.
func (v *Venue) AddMarket(m domain.Market, initialMid float64) {
	v.markets[m.ID] = m
	v.mids[m.ID] = pricing.Clamp(initialMid, 0, 1)
}

// MovePrice overwrites a market's mid, clamped to [0,1]. Only the scenario
// runner calls this; strategies see price moves through snapshots. Active
// StreamBooks subscribers receive the resulting snapshot synchronously.
func (v *Venue) MovePrice(marketID string, newMid float64) {
	v.mids[marketID] = pricing.Clamp(newMid, 0, 1)
	v.notifyStreamers(marketID)
}

// StreamBooks pushes a snapshot to handler after every price move on the
// subscribed markets, blocking until ctx is cancelled. Delivery is
// synchronous with MovePrice; slow handlers slow the mover.
func (v *Venue) StreamBooks(ctx context.Context, marketIDs []string, handler func(domain.OrderBookSnapshot)) error {
	ids := make(map[string]struct{}, len(marketIDs))
	for _, id := range marketIDs {
		ids[id] = struct{}{}
	}
	s := streamer{marketIDs: ids, handler: handler}

	v.streamMu.Lock()
	v.streamers = append(v.streamers, s)
	idx := len(v.streamers) - 1
	v.streamMu.Unlock()

	<-ctx.Done()

	v.streamMu.Lock()
	v.streamers[idx].handler = nil
	v.streamMu.Unlock()
	return ctx.Err()
}

func (v *Venue) notifyStreamers(marketID string) {
	v.streamMu.Lock()
	streamers := make([]streamer, len(v.streamers))
	copy(streamers, v.streamers)
	v.streamMu.Unlock()

	for _, s := range streamers {
		if s.handler == nil {
			continue
		}
		if _, ok := s.marketIDs[marketID]; !ok {
			continue
		}
		if snap, err := v.GetOrderBook(context.Background(), marketID); err == nil {
			s.handler(snap)
		}
	}
}

// ListMarkets returns the registered markets.
func (v *Venue) ListMarkets(_ context.Context) ([]domain.Market, error) {
	out := make([]domain.Market, 0, len(v.markets))
	for _, m := range v.markets {
		out = append(out, m)
	}
	return out, nil
}

// GetOrderBook synthesizes a one-level book one tick either side of the
// current mid. Both sides are always populated; synthetic liquidity never
// empties.
func (v *Venue) GetOrderBook(_ context.Context, marketID string) (domain.OrderBookSnapshot, error) {
	mid, ok := v.mids[marketID]
	if !ok {
		return domain.OrderBookSnapshot{}, fmt.Errorf("synthetic: %q: %w", marketID, domain.ErrMarketNotFound)
	}
	tick := 0.01
	if m, ok := v.markets[marketID]; ok && m.TickSize > 0 {
		tick = m.TickSize
	}
	return domain.OrderBookSnapshot{
		MarketID: marketID,
		Bids:     []domain.BookLevel{{Price: pricing.Clamp(mid-tick, 0, 1), Qty: v.depth}},
		Asks:     []domain.BookLevel{{Price: pricing.Clamp(mid+tick, 0, 1), Qty: v.depth}},
	}, nil
}

// PlaceOrders matches each order independently against a fresh snapshot of
// the static book. Two orders in the same batch can both fill the same level
// without depleting it; that simplification is part of the contract and
// changing it would change backtest results. Non-crossing orders yield no
// trade, and non-positive quantities are skipped.
func (v *Venue) PlaceOrders(ctx context.Context, orders []domain.Order) ([]domain.Trade, error) {
	var trades []domain.Trade
	for _, o := range orders {
		if o.Qty <= 0 {
			continue
		}
		book, err := v.GetOrderBook(ctx, o.MarketID)
		if err != nil {
			return trades, err
		}
		var level domain.BookLevel
		switch o.Side {
		case domain.OrderSideBuy:
			level = book.Asks[0]
			if o.Price < level.Price {
				continue
			}
		case domain.OrderSideSell:
			level = book.Bids[0]
			if o.Price > level.Price {
				continue
			}
		default:
			continue
		}
		qty := min(o.Qty, level.Qty)
		trade := domain.Trade{
			OrderID:  o.ID,
			MarketID: o.MarketID,
			Outcome:  o.Outcome,
			Side:     o.Side,
			Qty:      qty,
			Price:    level.Price,
			Fee:      v.ComputeFee(qty * level.Price),
		}
		trades = append(trades, trade)
		v.logger.Debug("order filled",
			slog.String("market_id", o.MarketID),
			slog.String("side", string(o.Side)),
			slog.Float64("qty", qty),
			slog.Float64("price", level.Price),
		)
	}
	return trades, nil
}

// ComputeFee returns feeBps/10000 of the notional.
func (v *Venue) ComputeFee(notional float64) float64 {
	return notional * (v.feeBps / 10000.0)
}
