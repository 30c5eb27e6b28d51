package app

import (
	"fmt"
	"log/slog"

	"github.com/quantbay/binarymm/internal/config"
	"github.com/quantbay/binarymm/internal/domain"
	"github.com/quantbay/binarymm/internal/exec"
	"github.com/quantbay/binarymm/internal/platform/synthetic"
	"github.com/quantbay/binarymm/internal/risk"
	"github.com/quantbay/binarymm/internal/state"
	"github.com/quantbay/binarymm/internal/strategy"
)

// Dependencies holds everything a mode needs to run.
type Dependencies struct {
	Store      *state.Store
	Venue      *synthetic.Venue
	Strategy   strategy.Strategy
	Router     *exec.Router
	Limits     risk.Limits
	KillSwitch *risk.KillSwitch
	Market     domain.Market
}

// Wire builds the session from configuration: a market registered on the
// synthetic venue, the configured strategy, and the throttled router.
func Wire(cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	store := state.NewStore()
	venue := synthetic.New(cfg.Venue.Name, cfg.Venue.FeeBps, logger, synthetic.WithDepth(cfg.Venue.Depth))

	market := domain.NewBinaryMarket(cfg.Market.ID, cfg.Market.Symbol, cfg.Market.TickSize)
	market.Venue = venue.Name()
	venue.AddMarket(market, cfg.Venue.InitialMid)
	store.UpsertMarket(market)

	strat, err := buildStrategy(cfg, logger)
	if err != nil {
		return nil, err
	}

	throttle := exec.NewThrottle(cfg.Exec.OrdersPerSec, cfg.Exec.Burst)
	router := exec.NewRouter(venue, throttle, logger)

	return &Dependencies{
		Store:    store,
		Venue:    venue,
		Strategy: strat,
		Router:   router,
		Limits: risk.Limits{
			MaxNotional:          cfg.Risk.MaxNotional,
			PerMarketMaxPosition: cfg.Risk.PerMarketMaxPosition,
		},
		KillSwitch: risk.NewKillSwitch(cfg.Risk.MaxLoss),
		Market:     market,
	}, nil
}

func buildStrategy(cfg *config.Config, logger *slog.Logger) (strategy.Strategy, error) {
	switch cfg.Strategy.Name {
	case "", "binary_mm":
		return strategy.NewBinaryMM(strategy.Config{
			SpreadBps:      cfg.Strategy.SpreadBps,
			InventoryAlpha: cfg.Strategy.InventoryAlpha,
			LMSRB:          cfg.Strategy.LMSRB,
			QuoteSize:      cfg.Strategy.QuoteSize,
			TickSize:       cfg.Market.TickSize,
		}, logger)
	case "amm_liquidity":
		return strategy.NewAMMLiquidity(), nil
	default:
		return nil, fmt.Errorf("app: unknown strategy %q", cfg.Strategy.Name)
	}
}
