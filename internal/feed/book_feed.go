// Package feed delivers streamed book snapshots into the quoting loop.
package feed

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/quantbay/binarymm/internal/domain"
	"github.com/quantbay/binarymm/internal/platform/bookws"
)

// reconnectDelay is the pause between reconnect attempts.
const reconnectDelay = 2 * time.Second

// SnapshotHandler receives each streamed snapshot.
type SnapshotHandler func(ctx context.Context, snap domain.OrderBookSnapshot)

// BookFeed subscribes to a WebSocket snapshot endpoint for a set of markets
// and invokes the handler on every snapshot. It reconnects on disconnect.
type BookFeed struct {
	wsURL     string
	marketIDs []string
	onBook    SnapshotHandler
	logger    *slog.Logger
	closeOnce sync.Once
	done      chan struct{}
}

// NewBookFeed creates a feed for the given markets.
func NewBookFeed(wsURL string, marketIDs []string, onBook SnapshotHandler, logger *slog.Logger) *BookFeed {
	return &BookFeed{
		wsURL:     wsURL,
		marketIDs: marketIDs,
		onBook:    onBook,
		logger:    logger.With(slog.String("component", "book_feed")),
		done:      make(chan struct{}),
	}
}

// Run connects and streams until ctx is cancelled or Close is called,
// reconnecting on disconnect.
func (f *BookFeed) Run(ctx context.Context) error {
	if len(f.marketIDs) == 0 {
		f.logger.Info("no markets to subscribe, exiting")
		return nil
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-f.done:
			return nil
		default:
		}
		err := f.runConnection(ctx)
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		f.logger.Warn("book feed disconnected, reconnecting", slog.String("error", err.Error()))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-f.done:
			return nil
		case <-time.After(reconnectDelay):
		}
	}
}

func (f *BookFeed) runConnection(ctx context.Context) error {
	client := bookws.NewClient(f.wsURL)
	defer client.Close()

	client.OnSnapshot(func(snap domain.OrderBookSnapshot) {
		if f.onBook != nil {
			f.onBook(ctx, snap)
		}
	})

	if err := client.Connect(ctx); err != nil {
		return err
	}
	if err := client.Subscribe(ctx, f.marketIDs); err != nil {
		return err
	}
	f.logger.Info("book feed subscribed", slog.Int("markets", len(f.marketIDs)))

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-f.done:
		return nil
	case <-client.Lost():
		return domain.ErrWSDisconnect
	}
}

// Close stops the feed.
func (f *BookFeed) Close() {
	f.closeOnce.Do(func() { close(f.done) })
}
