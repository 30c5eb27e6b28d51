package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/quantbay/binarymm/internal/backtest"
	"github.com/quantbay/binarymm/internal/domain"
	"github.com/quantbay/binarymm/internal/feed"
	"github.com/quantbay/binarymm/internal/metrics"
	"github.com/quantbay/binarymm/internal/risk"
	"github.com/quantbay/binarymm/internal/state"
)

// BacktestMode replays a seeded random walk through the full quoting loop
// and logs the session summary.
func (a *App) BacktestMode(ctx context.Context, deps *Dependencies) error {
	a.logger.InfoContext(ctx, "starting backtest",
		slog.String("market_id", deps.Market.ID),
		slog.Int("steps", a.cfg.Scenario.Steps),
		slog.Int64("seed", a.cfg.Scenario.Seed),
	)

	runner := backtest.NewRunner(deps.Store, deps.Venue, deps.Strategy, a.logger)
	scenario := backtest.RandomWalk(
		deps.Market.ID,
		a.cfg.Scenario.Steps,
		a.cfg.Scenario.StartMid,
		a.cfg.Scenario.Sigma,
		a.cfg.Scenario.Seed,
	)

	res, err := runner.Run(ctx, scenario)
	if err != nil {
		return fmt.Errorf("app: backtest: %w", err)
	}

	a.logger.InfoContext(ctx, "backtest finished",
		slog.Int("ticks", res.Ticks),
		slog.Int("orders", res.Orders),
		slog.Int("trades", len(res.Trades)),
		slog.Float64("fees", res.Fees),
		slog.Float64("net_yes", deps.Store.Inventory.NetYes(deps.Market.ID)),
	)
	return nil
}

// LiveMode runs the paced quoting loop against the venue, with optional
// streamed snapshots, risk gating, and Prometheus metrics.
func (a *App) LiveMode(ctx context.Context, deps *Dependencies) error {
	a.logger.InfoContext(ctx, "starting live mode",
		slog.String("market_id", deps.Market.ID),
		slog.String("venue", deps.Venue.Name()),
	)

	g, ctx := errgroup.WithContext(ctx)

	if addr := a.cfg.Metrics.ListenAddr; addr != "" {
		g.Go(func() error {
			return metrics.Serve(ctx, addr)
		})
	}

	// Snapshots streamed from a feed replace polling the venue book.
	books := state.NewRollingBook(deps.Market.ID, 0)
	var bookMu sync.Mutex
	if wsURL := a.cfg.Feed.WsURL; wsURL != "" {
		bookFeed := feed.NewBookFeed(wsURL, []string{deps.Market.ID}, func(_ context.Context, snap domain.OrderBookSnapshot) {
			bookMu.Lock()
			books.Push(snap)
			bookMu.Unlock()
		}, a.logger)
		g.Go(func() error {
			return bookFeed.Run(ctx)
		})
		a.closers = append(a.closers, bookFeed.Close)
	}

	g.Go(func() error {
		return a.quoteLoop(ctx, deps, books, &bookMu)
	})

	return g.Wait()
}

// quoteLoop is the live counterpart of the backtest runner: snapshot, quote,
// risk-gate, route, fold fills, mark to market. One iteration per interval.
func (a *App) quoteLoop(ctx context.Context, deps *Dependencies, books *state.RollingBook, bookMu *sync.Mutex) error {
	clock := backtest.Clock{Speed: a.cfg.Live.Speed}
	interval := time.Duration(a.cfg.Live.IntervalMS) * time.Millisecond
	var pnl risk.PnLTracker

	for {
		book, err := a.currentBook(ctx, deps, books, bookMu)
		if err != nil {
			return err
		}

		orders := deps.Strategy.Quote(book, deps.Store.Inventory)
		allowed := a.gateOrders(ctx, deps, orders)

		trades, err := deps.Router.Route(ctx, allowed)
		if err != nil {
			return fmt.Errorf("app: route orders: %w", err)
		}
		for _, o := range allowed {
			deps.Store.RecordOrder(o)
		}
		metrics.OrdersRouted.Add(float64(len(allowed)))

		for _, t := range trades {
			deps.Store.RecordTrade(t)
			pnl.OnTrade(t)
			metrics.TradesFilled.Inc()
			metrics.FeesPaid.Add(t.Fee)
			metrics.NetPosition.WithLabelValues(t.MarketID, t.Outcome).
				Set(deps.Store.Inventory.Net(t.MarketID, t.Outcome))
		}

		mark, ok := book.Mid()
		if !ok {
			mark = 0.5
		}
		if deps.KillSwitch.Check(pnl.Unrealized(mark)) {
			a.logger.ErrorContext(ctx, "kill switch triggered, halting quoting",
				slog.Float64("unrealized_pnl", pnl.Unrealized(mark)),
			)
			return domain.ErrKillSwitch
		}

		if err := clock.Sleep(ctx, interval); err != nil {
			return err
		}
	}
}

// currentBook prefers the latest streamed snapshot and falls back to asking
// the venue directly.
func (a *App) currentBook(ctx context.Context, deps *Dependencies, books *state.RollingBook, bookMu *sync.Mutex) (domain.OrderBookSnapshot, error) {
	bookMu.Lock()
	snap, ok := books.Last()
	bookMu.Unlock()
	if ok {
		return snap, nil
	}
	book, err := deps.Venue.GetOrderBook(ctx, deps.Market.ID)
	if err != nil {
		return domain.OrderBookSnapshot{}, fmt.Errorf("app: snapshot: %w", err)
	}
	return book, nil
}

// gateOrders drops orders that would breach notional or position limits.
func (a *App) gateOrders(ctx context.Context, deps *Dependencies, orders []domain.Order) []domain.Order {
	allowed := orders[:0:0]
	for _, o := range orders {
		if !deps.Limits.WithinNotional(o.Qty * o.Price) {
			a.logger.WarnContext(ctx, "order exceeds notional limit, dropped",
				slog.String("order_id", o.ID),
				slog.Float64("notional", o.Qty*o.Price),
			)
			continue
		}
		projected := deps.Store.Inventory.Net(o.MarketID, o.Outcome) + o.SignedQty()
		if !deps.Limits.WithinPosition(projected) {
			a.logger.WarnContext(ctx, "order exceeds position limit, dropped",
				slog.String("order_id", o.ID),
				slog.Float64("projected_position", projected),
			)
			continue
		}
		allowed = append(allowed, o)
	}
	return allowed
}
