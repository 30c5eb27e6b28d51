// Package backtest drives a quoting strategy through a scenario of external
// mid-price updates against the synthetic venue.
package backtest

import (
	"context"
	"fmt"
	"iter"
	"log/slog"

	"github.com/quantbay/binarymm/internal/domain"
	"github.com/quantbay/binarymm/internal/platform/synthetic"
	"github.com/quantbay/binarymm/internal/state"
	"github.com/quantbay/binarymm/internal/strategy"
)

// Result summarizes one scenario pass.
type Result struct {
	Ticks  int
	Orders int
	Trades []domain.Trade
	Fees   float64
}

// Runner closes the pricing-quoting-matching-inventory loop: for each tick it
// moves the venue price, snapshots the book, quotes, matches, and folds the
// fills back into the session inventory. The scenario is consumed exactly
// once, front to back, on a single control thread.
type Runner struct {
	store  *state.Store
	venue  *synthetic.Venue
	strat  strategy.Strategy
	logger *slog.Logger
}

// NewRunner creates a runner over the given session state and venue.
func NewRunner(store *state.Store, venue *synthetic.Venue, strat strategy.Strategy, logger *slog.Logger) *Runner {
	return &Runner{
		store:  store,
		venue:  venue,
		strat:  strat,
		logger: logger.With(slog.String("component", "backtest_runner")),
	}
}

// Run processes the scenario tick by tick. Each tick completes fully before
// the next begins; there is no look-ahead and no reordering.
func (r *Runner) Run(ctx context.Context, scenario iter.Seq[Tick]) (Result, error) {
	var res Result
	for tick := range scenario {
		r.venue.MovePrice(tick.MarketID, tick.Mid)

		book, err := r.venue.GetOrderBook(ctx, tick.MarketID)
		if err != nil {
			return res, fmt.Errorf("backtest: snapshot %s: %w", tick.MarketID, err)
		}

		orders := r.strat.Quote(book, r.store.Inventory)
		trades, err := r.venue.PlaceOrders(ctx, orders)
		if err != nil {
			return res, fmt.Errorf("backtest: place orders: %w", err)
		}

		for _, o := range orders {
			r.store.RecordOrder(o)
		}
		for _, t := range trades {
			r.store.RecordTrade(t)
			res.Fees += t.Fee
		}
		res.Ticks++
		res.Orders += len(orders)
		res.Trades = append(res.Trades, trades...)

		r.logger.Debug("tick processed",
			slog.String("market_id", tick.MarketID),
			slog.Float64("mid", tick.Mid),
			slog.Int("orders", len(orders)),
			slog.Int("trades", len(trades)),
			slog.Float64("net_yes", r.store.Inventory.NetYes(tick.MarketID)),
		)
	}
	return res, nil
}
