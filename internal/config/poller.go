package config

import (
	"errors"
	"time"
)

const defaultEpochSettlementInterval = 1 * time.Hour

type PollerConfig struct {
	ControlPollingInterval   time.Duration `mapstructure:"control-polling-interval"`
	ValuationPollingInterval time.Duration `mapstructure:"valuation-polling-interval"`
	EpochSettlementInterval  time.Duration `mapstructure:"epoch-settlement-interval"`
	TerritoryBatchLimit      uint64        `mapstructure:"territory-batch-limit"`
}

func (cfg *PollerConfig) Validate() error {
	if cfg.ControlPollingInterval <= 0 {
		return errors.New("control-polling-interval must be positive")
	}

	if cfg.ValuationPollingInterval <= 0 {
		return errors.New("valuation-polling-interval must be positive")
	}

	if cfg.EpochSettlementInterval <= 0 {
		cfg.EpochSettlementInterval = defaultEpochSettlementInterval
	}

	if cfg.TerritoryBatchLimit == 0 {
		return errors.New("territory-batch-limit must be positive")
	}

	return nil
}
