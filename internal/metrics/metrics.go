// Package metrics exposes Prometheus instrumentation for the quoting loop.
package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// OrdersRouted counts orders submitted to a venue.
	OrdersRouted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "binarymm_orders_routed_total",
		Help: "Total orders routed to a venue.",
	})

	// TradesFilled counts fills returned by a venue.
	TradesFilled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "binarymm_trades_filled_total",
		Help: "Total trades filled.",
	})

	// FeesPaid accumulates venue fees on filled notional.
	FeesPaid = promauto.NewCounter(prometheus.CounterOpts{
		Name: "binarymm_fees_paid_total",
		Help: "Total venue fees paid.",
	})

	// NetPosition tracks the signed inventory per market and outcome.
	NetPosition = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "binarymm_net_position",
		Help: "Signed net position per market and outcome.",
	}, []string{"market_id", "outcome"})
)

// Serve exposes /metrics on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}
