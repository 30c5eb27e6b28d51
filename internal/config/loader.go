package config

import (
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Load reads a TOML configuration file at path, merges it on top of the
// built-in defaults, applies BINARYMM_* environment variable overrides, and
// returns the final Config. The returned Config has NOT been validated; the
// caller should invoke Config.Validate() after Load. An empty path skips the
// file and uses defaults plus overrides.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, err
		}
	}

	// Load .env file if present (silently ignore if missing).
	_ = godotenv.Load()

	applyEnvOverrides(&cfg)

	return &cfg, nil
}

// applyEnvOverrides reads well-known BINARYMM_* environment variables and
// overwrites the corresponding Config fields when a variable is set. This
// lets operators tweak a run without touching the TOML file.
func applyEnvOverrides(cfg *Config) {
	setStr(&cfg.Mode, "BINARYMM_MODE")
	setStr(&cfg.LogLevel, "BINARYMM_LOG_LEVEL")

	setStr(&cfg.Market.ID, "BINARYMM_MARKET_ID")
	setStr(&cfg.Market.Symbol, "BINARYMM_MARKET_SYMBOL")
	setFloat(&cfg.Market.TickSize, "BINARYMM_MARKET_TICK_SIZE")

	setStr(&cfg.Strategy.Name, "BINARYMM_STRATEGY_NAME")
	setFloat(&cfg.Strategy.SpreadBps, "BINARYMM_STRATEGY_SPREAD_BPS")
	setFloat(&cfg.Strategy.InventoryAlpha, "BINARYMM_STRATEGY_INVENTORY_ALPHA")
	setFloat(&cfg.Strategy.LMSRB, "BINARYMM_STRATEGY_LMSR_B")
	setFloat(&cfg.Strategy.QuoteSize, "BINARYMM_STRATEGY_QUOTE_SIZE")

	setStr(&cfg.Venue.Name, "BINARYMM_VENUE_NAME")
	setFloat(&cfg.Venue.FeeBps, "BINARYMM_VENUE_FEE_BPS")
	setFloat(&cfg.Venue.Depth, "BINARYMM_VENUE_DEPTH")
	setFloat(&cfg.Venue.InitialMid, "BINARYMM_VENUE_INITIAL_MID")

	setInt(&cfg.Scenario.Steps, "BINARYMM_SCENARIO_STEPS")
	setFloat(&cfg.Scenario.StartMid, "BINARYMM_SCENARIO_START_MID")
	setFloat(&cfg.Scenario.Sigma, "BINARYMM_SCENARIO_SIGMA")
	setInt64(&cfg.Scenario.Seed, "BINARYMM_SCENARIO_SEED")

	setInt(&cfg.Live.IntervalMS, "BINARYMM_LIVE_INTERVAL_MS")
	setFloat(&cfg.Live.Speed, "BINARYMM_LIVE_SPEED")

	setFloat(&cfg.Risk.MaxNotional, "BINARYMM_RISK_MAX_NOTIONAL")
	setFloat(&cfg.Risk.PerMarketMaxPosition, "BINARYMM_RISK_PER_MARKET_MAX_POSITION")
	setFloat(&cfg.Risk.MaxLoss, "BINARYMM_RISK_MAX_LOSS")

	setFloat(&cfg.Exec.OrdersPerSec, "BINARYMM_EXEC_ORDERS_PER_SEC")
	setInt(&cfg.Exec.Burst, "BINARYMM_EXEC_BURST")

	setStr(&cfg.Feed.WsURL, "BINARYMM_FEED_WS_URL")
	setStr(&cfg.Metrics.ListenAddr, "BINARYMM_METRICS_LISTEN_ADDR")
}

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setInt64(dst *int64, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			*dst = n
		}
	}
}

func setFloat(dst *float64, key string) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}
