// Package exec routes orders to a venue and throttles submission.
package exec

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/quantbay/binarymm/internal/domain"
)

// Router submits orders to a single venue, optionally gated by a throttle.
type Router struct {
	venue    domain.Venue
	throttle *Throttle
	logger   *slog.Logger
}

// NewRouter creates a router. throttle may be nil, in which case submissions
// are never delayed.
func NewRouter(venue domain.Venue, throttle *Throttle, logger *slog.Logger) *Router {
	return &Router{
		venue:    venue,
		throttle: throttle,
		logger:   logger.With(slog.String("component", "router")),
	}
}

// Route submits the batch to the venue and returns the resulting trades.
// When a throttle is configured, Route waits for capacity first; a cancelled
// context aborts the wait.
func (r *Router) Route(ctx context.Context, orders []domain.Order) ([]domain.Trade, error) {
	if len(orders) == 0 {
		return nil, nil
	}
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, fmt.Errorf("exec: order %s: %w", o.ID, err)
		}
	}
	if r.throttle != nil {
		if err := r.throttle.Wait(ctx, len(orders)); err != nil {
			return nil, err
		}
	}
	trades, err := r.venue.PlaceOrders(ctx, orders)
	if err != nil {
		return trades, err
	}
	r.logger.Debug("orders routed",
		slog.String("venue", r.venue.Name()),
		slog.Int("orders", len(orders)),
		slog.Int("trades", len(trades)),
	)
	return trades, nil
}
