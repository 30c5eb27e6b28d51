// Package config defines the top-level configuration for the market-making
// simulator and provides validation helpers.
package config

import (
	"fmt"
	"strings"
)

// Config is the root configuration structure. Fields are populated from a
// TOML file and then optionally overridden by BINARYMM_* environment
// variables.
type Config struct {
	Mode     string         `toml:"mode"`
	LogLevel string         `toml:"log_level"`
	Market   MarketConfig   `toml:"market"`
	Strategy StrategyConfig `toml:"strategy"`
	Venue    VenueConfig    `toml:"venue"`
	Scenario ScenarioConfig `toml:"scenario"`
	Live     LiveConfig     `toml:"live"`
	Risk     RiskConfig     `toml:"risk"`
	Exec     ExecConfig     `toml:"exec"`
	Feed     FeedConfig     `toml:"feed"`
	Metrics  MetricsConfig  `toml:"metrics"`
}

// MarketConfig describes the simulated market.
type MarketConfig struct {
	ID       string  `toml:"id"`
	Symbol   string  `toml:"symbol"`
	TickSize float64 `toml:"tick_size"`
}

// StrategyConfig holds quoting strategy parameters.
type StrategyConfig struct {
	Name           string  `toml:"name"`
	SpreadBps      float64 `toml:"spread_bps"`
	InventoryAlpha float64 `toml:"inventory_alpha"`
	LMSRB          float64 `toml:"lmsr_b"`
	QuoteSize      float64 `toml:"quote_size"`
}

// VenueConfig holds synthetic venue parameters.
type VenueConfig struct {
	Name       string  `toml:"name"`
	FeeBps     float64 `toml:"fee_bps"`
	Depth      float64 `toml:"depth"`
	InitialMid float64 `toml:"initial_mid"`
}

// ScenarioConfig parameterizes the backtest random walk.
type ScenarioConfig struct {
	Steps    int     `toml:"steps"`
	StartMid float64 `toml:"start_mid"`
	Sigma    float64 `toml:"sigma"`
	Seed     int64   `toml:"seed"`
}

// LiveConfig paces the live quoting loop.
type LiveConfig struct {
	IntervalMS int     `toml:"interval_ms"`
	Speed      float64 `toml:"speed"`
}

// RiskConfig bounds the live loop.
type RiskConfig struct {
	MaxNotional          float64 `toml:"max_notional"`
	PerMarketMaxPosition float64 `toml:"per_market_max_position"`
	MaxLoss              float64 `toml:"max_loss"`
}

// ExecConfig throttles order submission.
type ExecConfig struct {
	OrdersPerSec float64 `toml:"orders_per_sec"`
	Burst        int     `toml:"burst"`
}

// FeedConfig points at an optional streaming snapshot endpoint.
type FeedConfig struct {
	WsURL string `toml:"ws_url"`
}

// MetricsConfig exposes Prometheus metrics when a listen address is set.
type MetricsConfig struct {
	ListenAddr string `toml:"listen_addr"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Mode:     "backtest",
		LogLevel: "info",
		Market: MarketConfig{
			ID:       "YES_2026_EVENT",
			Symbol:   "EVT-YES",
			TickSize: 0.01,
		},
		Strategy: StrategyConfig{
			Name:           "binary_mm",
			SpreadBps:      100,
			InventoryAlpha: 0.002,
			LMSRB:          100,
			QuoteSize:      10,
		},
		Venue: VenueConfig{
			Name:       "synthetic",
			FeeBps:     0,
			Depth:      100,
			InitialMid: 0.5,
		},
		Scenario: ScenarioConfig{
			Steps:    50,
			StartMid: 0.5,
			Sigma:    0.03,
			Seed:     42,
		},
		Live: LiveConfig{
			IntervalMS: 500,
			Speed:      1,
		},
		Risk: RiskConfig{
			MaxNotional:          1000,
			PerMarketMaxPosition: 200,
			MaxLoss:              250,
		},
		Exec: ExecConfig{
			OrdersPerSec: 10,
			Burst:        10,
		},
	}
}

// Validate checks the configuration for contradictions. It is called by the
// entry point after Load.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Mode) {
	case "backtest", "live":
	default:
		return fmt.Errorf("config: unsupported mode %q", c.Mode)
	}
	if c.Market.ID == "" {
		return fmt.Errorf("config: market id is required")
	}
	if c.Market.TickSize <= 0 {
		return fmt.Errorf("config: market tick_size must be positive, got %g", c.Market.TickSize)
	}
	if c.Strategy.SpreadBps <= 0 {
		return fmt.Errorf("config: strategy spread_bps must be positive, got %g", c.Strategy.SpreadBps)
	}
	if c.Strategy.InventoryAlpha < 0 {
		return fmt.Errorf("config: strategy inventory_alpha must be non-negative, got %g", c.Strategy.InventoryAlpha)
	}
	if c.Strategy.LMSRB <= 0 {
		return fmt.Errorf("config: strategy lmsr_b must be positive, got %g", c.Strategy.LMSRB)
	}
	if c.Strategy.QuoteSize <= 0 {
		return fmt.Errorf("config: strategy quote_size must be positive, got %g", c.Strategy.QuoteSize)
	}
	if c.Venue.FeeBps < 0 {
		return fmt.Errorf("config: venue fee_bps must be non-negative, got %g", c.Venue.FeeBps)
	}
	if c.Venue.Depth <= 0 {
		return fmt.Errorf("config: venue depth must be positive, got %g", c.Venue.Depth)
	}
	if c.Venue.InitialMid < 0 || c.Venue.InitialMid > 1 {
		return fmt.Errorf("config: venue initial_mid must be in [0,1], got %g", c.Venue.InitialMid)
	}
	if c.Scenario.Steps <= 0 {
		return fmt.Errorf("config: scenario steps must be positive, got %d", c.Scenario.Steps)
	}
	if c.Scenario.Sigma < 0 {
		return fmt.Errorf("config: scenario sigma must be non-negative, got %g", c.Scenario.Sigma)
	}
	if c.Scenario.StartMid < 0 || c.Scenario.StartMid > 1 {
		return fmt.Errorf("config: scenario start_mid must be in [0,1], got %g", c.Scenario.StartMid)
	}
	if c.Exec.OrdersPerSec <= 0 {
		return fmt.Errorf("config: exec orders_per_sec must be positive, got %g", c.Exec.OrdersPerSec)
	}
	if c.Live.IntervalMS <= 0 {
		return fmt.Errorf("config: live interval_ms must be positive, got %d", c.Live.IntervalMS)
	}
	return nil
}
