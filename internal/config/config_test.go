package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Db: DbConfig{
			Username: "test",
			Password: "test",
			Address:  "mongodb://localhost:27017",
			DbName:   "test",
		},
		Queue: QueueConfig{
			User:          "test",
			Password:      "test",
			URL:           "localhost:5672",
			Exchange:      "economy_events",
			MaxRetryTimes: 5,
			RetryInterval: 500 * time.Millisecond,
		},
		Metrics: MetricsConfig{
			Host: "0.0.0.0",
			Port: 2112,
		},
		Poller: PollerConfig{
			ControlPollingInterval:   30 * time.Second,
			ValuationPollingInterval: 1 * time.Minute,
			EpochSettlementInterval:  1 * time.Hour,
			TerritoryBatchLimit:      100,
		},
		Economy: EconomyConfig{
			ControlThresholdPct: 50,
			ContestThresholdPct: 10,
			AnnualRateBps:       1000,
			BaseFeeBps:          250,
			BaseTaxBps:          200,
			TaxBurnBps:          3000,
			FlowBps:             100,

			FeeSplitDAOPct:       50,
			FeeSplitTerritoryPct: 20,
			FeeSplitFactionPct:   10,
			FeeSplitBurnPct:      20,

			RevenueDAOBps:  2000,
			RevenueBurnBps: 1000,

			TreasuryOperationalWeight: 20,
			TreasuryDevelopmentWeight: 30,
			TreasuryMarketingWeight:   15,
			TreasuryCommunityWeight:   15,
			TreasuryReserveWeight:     20,
		},
	}
}

func TestConfigValidate(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		require.NoError(t, validConfig().Validate())
	})

	t.Run("missing db username", func(t *testing.T) {
		cfg := validConfig()
		cfg.Db.Username = ""
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db username")
	})

	t.Run("non-mongodb address", func(t *testing.T) {
		cfg := validConfig()
		cfg.Db.Address = "postgres://localhost:5432"
		require.Error(t, cfg.Validate())
	})

	t.Run("missing queue exchange", func(t *testing.T) {
		cfg := validConfig()
		cfg.Queue.Exchange = ""
		require.Error(t, cfg.Validate())
	})

	t.Run("invalid metrics host", func(t *testing.T) {
		cfg := validConfig()
		cfg.Metrics.Host = "not-an-ip"
		require.Error(t, cfg.Validate())
	})

	t.Run("unset metrics port falls back to default", func(t *testing.T) {
		cfg := validConfig()
		cfg.Metrics.Port = 0
		require.NoError(t, cfg.Validate())
		assert.Equal(t, defaultMetricsPort, cfg.Metrics.GetMetricsPort())
	})
}

func TestPollerConfigValidate(t *testing.T) {
	t.Run("control polling interval not set - should error", func(t *testing.T) {
		cfg := validConfig()
		cfg.Poller.ControlPollingInterval = 0
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "control-polling-interval must be positive")
	})

	t.Run("epoch settlement interval not set - should use default", func(t *testing.T) {
		cfg := validConfig()
		cfg.Poller.EpochSettlementInterval = 0
		require.NoError(t, cfg.Validate())
		assert.Equal(t, defaultEpochSettlementInterval, cfg.Poller.EpochSettlementInterval)
	})

	t.Run("territory batch limit not set - should error", func(t *testing.T) {
		cfg := validConfig()
		cfg.Poller.TerritoryBatchLimit = 0
		require.Error(t, cfg.Validate())
	})
}

func TestEconomyConfigValidate(t *testing.T) {
	t.Run("threshold above 100 percent", func(t *testing.T) {
		cfg := validConfig()
		cfg.Economy.ControlThresholdPct = 101
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "control-threshold-pct")
	})

	t.Run("bps field above 10000", func(t *testing.T) {
		cfg := validConfig()
		cfg.Economy.AnnualRateBps = 10_001
		require.Error(t, cfg.Validate())
	})

	t.Run("fee split above 100 percent combined", func(t *testing.T) {
		cfg := validConfig()
		cfg.Economy.FeeSplitDAOPct = 80
		require.Error(t, cfg.Validate())
	})

	t.Run("dao plus burn above 100 percent", func(t *testing.T) {
		cfg := validConfig()
		cfg.Economy.RevenueDAOBps = 6000
		cfg.Economy.RevenueBurnBps = 6000
		require.Error(t, cfg.Validate())
	})

	t.Run("anti-monopoly target above 10000", func(t *testing.T) {
		cfg := validConfig()
		cfg.Economy.AntiMonopolyTargetBps = 10_001
		require.Error(t, cfg.Validate())
	})

	t.Run("params fall back to core defaults", func(t *testing.T) {
		cfg := validConfig()
		p := cfg.Economy.Params()
		assert.Equal(t, uint64(7*24*3600), p.MinStakePeriodSeconds)
		assert.Equal(t, uint64(365*24*3600), p.MaxStakePeriodSeconds)
	})

	t.Run("configured stake periods override defaults", func(t *testing.T) {
		cfg := validConfig()
		cfg.Economy.MinStakePeriod = 24 * time.Hour
		cfg.Economy.MaxStakePeriod = 30 * 24 * time.Hour
		p := cfg.Economy.Params()
		assert.Equal(t, uint64(24*3600), p.MinStakePeriodSeconds)
		assert.Equal(t, uint64(30*24*3600), p.MaxStakePeriodSeconds)
	})
}
