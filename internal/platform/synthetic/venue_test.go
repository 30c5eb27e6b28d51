package synthetic

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantbay/binarymm/internal/domain"
)

func newTestVenue(t *testing.T, feeBps float64) *Venue {
	t.Helper()
	v := New("synthetic", feeBps, slog.Default())
	v.AddMarket(domain.NewBinaryMarket("EVT-1", "EVT", 0.01), 0.5)
	return v
}

func TestGetOrderBookStraddlesMid(t *testing.T) {
	v := newTestVenue(t, 0)
	ctx := context.Background()

	book, err := v.GetOrderBook(ctx, "EVT-1")
	require.NoError(t, err)
	require.Len(t, book.Bids, 1)
	require.Len(t, book.Asks, 1)
	assert.InDelta(t, 0.49, book.Bids[0].Price, 1e-12)
	assert.InDelta(t, 0.51, book.Asks[0].Price, 1e-12)
	assert.False(t, book.Crossed())

	mid, ok := book.Mid()
	require.True(t, ok)
	assert.InDelta(t, 0.5, mid, 1e-12)
}

func TestGetOrderBookUnknownMarket(t *testing.T) {
	v := newTestVenue(t, 0)
	_, err := v.GetOrderBook(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrMarketNotFound)
}

func TestGetOrderBookClampsAtBounds(t *testing.T) {
	v := newTestVenue(t, 0)
	ctx := context.Background()

	v.MovePrice("EVT-1", 0.001)
	book, err := v.GetOrderBook(ctx, "EVT-1")
	require.NoError(t, err)
	assert.Equal(t, 0.0, book.Bids[0].Price)

	v.MovePrice("EVT-1", 1.5)
	book, err = v.GetOrderBook(ctx, "EVT-1")
	require.NoError(t, err)
	assert.Equal(t, 1.0, book.Asks[0].Price)
}

func TestPlaceOrdersBuyCrosses(t *testing.T) {
	v := newTestVenue(t, 0)
	ctx := context.Background()

	trades, err := v.PlaceOrders(ctx, []domain.Order{{
		ID:       "o1",
		MarketID: "EVT-1",
		Outcome:  "YES",
		Side:     domain.OrderSideBuy,
		Qty:      10,
		Price:    0.51,
		Type:     domain.OrderTypeLimit,
	}})
	require.NoError(t, err)
	require.Len(t, trades, 1)
	assert.Equal(t, "o1", trades[0].OrderID)
	assert.Equal(t, 10.0, trades[0].Qty)
	assert.InDelta(t, 0.51, trades[0].Price, 1e-12)
	assert.Equal(t, 0.0, trades[0].Fee)
}

func TestPlaceOrdersNonCrossingDropped(t *testing.T) {
	v := newTestVenue(t, 0)
	ctx := context.Background()

	trades, err := v.PlaceOrders(ctx, []domain.Order{
		{ID: "b", MarketID: "EVT-1", Outcome: "YES", Side: domain.OrderSideBuy, Qty: 10, Price: 0.50},
		{ID: "s", MarketID: "EVT-1", Outcome: "YES", Side: domain.OrderSideSell, Qty: 10, Price: 0.50},
	})
	require.NoError(t, err)
	assert.Empty(t, trades)
}

func TestPlaceOrdersSellCrosses(t *testing.T) {
	v := newTestVenue(t, 0)
	ctx := context.Background()

	trades, err := v.PlaceOrders(ctx, []domain.Order{{
		ID: "s1", MarketID: "EVT-1", Outcome: "YES",
		Side: domain.OrderSideSell, Qty: 30, Price: 0.49,
	}})
	require.NoError(t, err)
	require.Len(t, trades, 1)
	assert.Equal(t, domain.OrderSideSell, trades[0].Side)
	assert.InDelta(t, 0.49, trades[0].Price, 1e-12)
}

func TestPlaceOrdersCapsAtLevelQty(t *testing.T) {
	v := New("synthetic", 0, slog.Default(), WithDepth(25))
	v.AddMarket(domain.NewBinaryMarket("EVT-1", "EVT", 0.01), 0.5)

	trades, err := v.PlaceOrders(context.Background(), []domain.Order{{
		ID: "o", MarketID: "EVT-1", Outcome: "YES",
		Side: domain.OrderSideBuy, Qty: 100, Price: 1.0,
	}})
	require.NoError(t, err)
	require.Len(t, trades, 1)
	assert.Equal(t, 25.0, trades[0].Qty)
}

func TestPlaceOrdersSkipsNonPositiveQty(t *testing.T) {
	v := newTestVenue(t, 0)

	trades, err := v.PlaceOrders(context.Background(), []domain.Order{
		{ID: "z", MarketID: "EVT-1", Outcome: "YES", Side: domain.OrderSideBuy, Qty: 0, Price: 1.0},
		{ID: "n", MarketID: "EVT-1", Outcome: "YES", Side: domain.OrderSideBuy, Qty: -5, Price: 1.0},
	})
	require.NoError(t, err)
	assert.Empty(t, trades)
}

func TestPlaceOrdersChargesFee(t *testing.T) {
	v := newTestVenue(t, 50) // 0.5%

	trades, err := v.PlaceOrders(context.Background(), []domain.Order{{
		ID: "o", MarketID: "EVT-1", Outcome: "YES",
		Side: domain.OrderSideBuy, Qty: 10, Price: 0.51,
	}})
	require.NoError(t, err)
	require.Len(t, trades, 1)
	assert.InDelta(t, 10*0.51*0.005, trades[0].Fee, 1e-12)
}

func TestBatchOrdersDoNotDepleteLevels(t *testing.T) {
	// Two buys in one batch both fill the same static ask level; the book is
	// re-synthesized per order, never consumed.
	v := New("synthetic", 0, slog.Default(), WithDepth(10))
	v.AddMarket(domain.NewBinaryMarket("EVT-1", "EVT", 0.01), 0.5)

	trades, err := v.PlaceOrders(context.Background(), []domain.Order{
		{ID: "a", MarketID: "EVT-1", Outcome: "YES", Side: domain.OrderSideBuy, Qty: 10, Price: 0.51},
		{ID: "b", MarketID: "EVT-1", Outcome: "YES", Side: domain.OrderSideBuy, Qty: 10, Price: 0.51},
	})
	require.NoError(t, err)
	require.Len(t, trades, 2)
	assert.Equal(t, trades[0].Qty, trades[1].Qty)
	assert.Equal(t, trades[0].Price, trades[1].Price)
}

func TestComputeFee(t *testing.T) {
	v := New("synthetic", 25, slog.Default())
	assert.InDelta(t, 0.25, v.ComputeFee(100), 1e-12)
	assert.Equal(t, 0.0, v.ComputeFee(0))
}

func TestListMarkets(t *testing.T) {
	v := newTestVenue(t, 0)
	markets, err := v.ListMarkets(context.Background())
	require.NoError(t, err)
	require.Len(t, markets, 1)
	assert.Equal(t, "EVT-1", markets[0].ID)
	assert.True(t, markets[0].IsBinary())
}

func TestStreamBooksDeliversOnPriceMove(t *testing.T) {
	v := newTestVenue(t, 0)
	ctx, cancel := context.WithCancel(context.Background())

	got := make(chan domain.OrderBookSnapshot, 1)
	streamErr := make(chan error, 1)
	go func() {
		streamErr <- v.StreamBooks(ctx, []string{"EVT-1"}, func(snap domain.OrderBookSnapshot) {
			select {
			case got <- snap:
			default:
			}
		})
	}()

	// The subscriber registers asynchronously; keep moving until it sees one.
	var snap domain.OrderBookSnapshot
	require.Eventually(t, func() bool {
		v.MovePrice("EVT-1", 0.6)
		select {
		case snap = <-got:
			return true
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)

	mid, ok := snap.Mid()
	require.True(t, ok)
	assert.InDelta(t, 0.6, mid, 1e-9)

	cancel()
	assert.ErrorIs(t, <-streamErr, context.Canceled)
}

func TestStreamBooksIgnoresOtherMarkets(t *testing.T) {
	v := newTestVenue(t, 0)
	v.AddMarket(domain.NewBinaryMarket("EVT-2", "EVT2", 0.01), 0.5)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	delivered := make(chan string, 8)
	go func() {
		_ = v.StreamBooks(ctx, []string{"EVT-2"}, func(snap domain.OrderBookSnapshot) {
			delivered <- snap.MarketID
		})
	}()

	require.Eventually(t, func() bool {
		v.MovePrice("EVT-1", 0.7)
		v.MovePrice("EVT-2", 0.4)
		select {
		case id := <-delivered:
			assert.Equal(t, "EVT-2", id)
			return true
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)
}
