package backtest

import (
	"context"
	"iter"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantbay/binarymm/internal/domain"
	"github.com/quantbay/binarymm/internal/platform/synthetic"
	"github.com/quantbay/binarymm/internal/state"
	"github.com/quantbay/binarymm/internal/strategy"
)

const testMarketID = "EVT-2026"

func newSession(t *testing.T, cfg strategy.Config) (*state.Store, *synthetic.Venue, *Runner) {
	t.Helper()
	store := state.NewStore()
	venue := synthetic.New("synthetic", 0, slog.Default())
	m := domain.NewBinaryMarket(testMarketID, "EVT", 0.01)
	venue.AddMarket(m, 0.5)
	store.UpsertMarket(m)

	strat, err := strategy.NewBinaryMM(cfg, slog.Default())
	require.NoError(t, err)
	return store, venue, NewRunner(store, venue, strat, slog.Default())
}

func TestSingleTickQuotesStraddleNewMid(t *testing.T) {
	store, venue, runner := newSession(t, strategy.Config{SpreadBps: 100, InventoryAlpha: 0, QuoteSize: 10})

	res, err := runner.Run(context.Background(), Fixed(Tick{MarketID: testMarketID, Mid: 0.55}))
	require.NoError(t, err)

	assert.Equal(t, 1, res.Ticks)
	assert.Equal(t, 2, res.Orders)

	// The new book straddles 0.55, so the quotes must too.
	book, err := venue.GetOrderBook(context.Background(), testMarketID)
	require.NoError(t, err)
	mid, ok := book.Mid()
	require.True(t, ok)
	assert.InDelta(t, 0.55, mid, 1e-12)

	// With a 100 bps spread neither side reaches the synthetic level one tick
	// away from the mid, so at most one trade per side; here, none.
	assert.LessOrEqual(t, len(res.Trades), 2)
	assert.Equal(t, 0.0, store.Inventory.NetYes(testMarketID))

	// Both quotes land in the session journal even when nothing fills, and
	// they straddle the new mid strictly: bid below 0.55, ask above.
	require.Len(t, store.Orders(), 2)
	assert.Len(t, store.Trades(), len(res.Trades))
	for _, ev := range store.Orders() {
		switch ev.Order.Side {
		case domain.OrderSideBuy:
			assert.Less(t, ev.Order.Price, 0.55)
		case domain.OrderSideSell:
			assert.Greater(t, ev.Order.Price, 0.55)
		}
	}
}

func TestSkewedQuotesCrossAndReduceInventory(t *testing.T) {
	store, _, runner := newSession(t, strategy.Config{SpreadBps: 100, InventoryAlpha: 0.002, QuoteSize: 10})

	// A heavy long skews both quotes far enough down that the ask crosses the
	// synthetic bid and the position is sold down.
	store.Inventory.Update(domain.Trade{
		MarketID: testMarketID, Outcome: "YES",
		Side: domain.OrderSideBuy, Qty: 100, Price: 0.5,
	})

	res, err := runner.Run(context.Background(), Fixed(Tick{MarketID: testMarketID, Mid: 0.5}))
	require.NoError(t, err)

	require.Len(t, res.Trades, 1)
	assert.Equal(t, domain.OrderSideSell, res.Trades[0].Side)
	assert.InDelta(t, 90.0, store.Inventory.NetYes(testMarketID), 1e-9)
}

func TestInventoryFeedsBackIntoNextQuote(t *testing.T) {
	store, _, runner := newSession(t, strategy.Config{SpreadBps: 100, InventoryAlpha: 0.002, QuoteSize: 10})
	store.Inventory.Update(domain.Trade{
		MarketID: testMarketID, Outcome: "YES",
		Side: domain.OrderSideBuy, Qty: 100, Price: 0.5,
	})

	// Each tick sells ten lots, so the skew shrinks tick over tick until the
	// quotes stop crossing.
	res, err := runner.Run(context.Background(), Fixed(
		Tick{MarketID: testMarketID, Mid: 0.5},
		Tick{MarketID: testMarketID, Mid: 0.5},
		Tick{MarketID: testMarketID, Mid: 0.5},
	))
	require.NoError(t, err)

	require.Len(t, res.Trades, 3)
	assert.InDelta(t, 70.0, store.Inventory.NetYes(testMarketID), 1e-9)
}

func TestRandomWalkDeterministic(t *testing.T) {
	a := collect(RandomWalk(testMarketID, 50, 0.5, 0.03, 42))
	b := collect(RandomWalk(testMarketID, 50, 0.5, 0.03, 42))
	require.Equal(t, a, b)
	require.Len(t, a, 50)
	for _, tick := range a {
		assert.GreaterOrEqual(t, tick.Mid, 0.01)
		assert.LessOrEqual(t, tick.Mid, 0.99)
	}

	c := collect(RandomWalk(testMarketID, 50, 0.5, 0.03, 43))
	assert.NotEqual(t, a, c)
}

func TestScenarioReplayReproducible(t *testing.T) {
	run := func() (Result, float64) {
		store, _, runner := newSession(t, strategy.Config{SpreadBps: 100, InventoryAlpha: 0.002, QuoteSize: 10})
		res, err := runner.Run(context.Background(), RandomWalk(testMarketID, 50, 0.5, 0.03, 42))
		require.NoError(t, err)
		return res, store.Inventory.NetYes(testMarketID)
	}

	first, firstNet := run()
	second, secondNet := run()

	assert.Equal(t, first.Ticks, second.Ticks)
	assert.Equal(t, first.Orders, second.Orders)
	assert.Equal(t, firstNet, secondNet)
	require.Len(t, second.Trades, len(first.Trades))
	for i := range first.Trades {
		// Order IDs are fresh per run; everything economic must match.
		assert.Equal(t, first.Trades[i].Side, second.Trades[i].Side)
		assert.Equal(t, first.Trades[i].Qty, second.Trades[i].Qty)
		assert.Equal(t, first.Trades[i].Price, second.Trades[i].Price)
		assert.Equal(t, first.Trades[i].Fee, second.Trades[i].Fee)
	}
}

func collect(seq iter.Seq[Tick]) []Tick {
	var out []Tick
	seq(func(t Tick) bool {
		out = append(out, t)
		return true
	})
	return out
}
