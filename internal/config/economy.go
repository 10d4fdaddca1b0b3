package config

import (
	"fmt"
	"time"

	sdkmath "cosmossdk.io/math"

	"github.com/undercity-labs/faction-economy/internal/economy"
)

// EconomyConfig is the boundary where percentage inputs are range-checked;
// the calculation core assumes its bps inputs are already <= 10000.
type EconomyConfig struct {
	ControlThresholdPct uint64 `mapstructure:"control-threshold-pct"`
	ContestThresholdPct uint64 `mapstructure:"contest-threshold-pct"`

	AnnualRateBps uint64 `mapstructure:"annual-rate-bps"`
	BaseFeeBps    uint64 `mapstructure:"base-fee-bps"`
	BaseTaxBps    uint64 `mapstructure:"base-tax-bps"`
	TaxBurnBps    uint64 `mapstructure:"tax-burn-bps"`
	FlowBps       uint64 `mapstructure:"flow-bps"`

	FeeSplitDAOPct       uint64 `mapstructure:"fee-split-dao-pct"`
	FeeSplitTerritoryPct uint64 `mapstructure:"fee-split-territory-pct"`
	FeeSplitFactionPct   uint64 `mapstructure:"fee-split-faction-pct"`
	FeeSplitBurnPct      uint64 `mapstructure:"fee-split-burn-pct"`

	RevenueDAOBps  uint64 `mapstructure:"revenue-dao-bps"`
	RevenueBurnBps uint64 `mapstructure:"revenue-burn-bps"`

	// AntiMonopolyTargetBps caps a dominant faction's revenue share; zero
	// disables the adjustment.
	AntiMonopolyTargetBps uint64 `mapstructure:"anti-monopoly-target-bps"`

	TreasuryOperationalWeight uint64 `mapstructure:"treasury-operational-weight"`
	TreasuryDevelopmentWeight uint64 `mapstructure:"treasury-development-weight"`
	TreasuryMarketingWeight   uint64 `mapstructure:"treasury-marketing-weight"`
	TreasuryCommunityWeight   uint64 `mapstructure:"treasury-community-weight"`
	TreasuryReserveWeight     uint64 `mapstructure:"treasury-reserve-weight"`

	MinStakePeriod time.Duration `mapstructure:"min-stake-period"`
	MaxStakePeriod time.Duration `mapstructure:"max-stake-period"`
	MaxPenaltyBps  uint64        `mapstructure:"max-penalty-bps"`
	MinPenaltyBps  uint64        `mapstructure:"min-penalty-bps"`

	MinFee              uint64 `mapstructure:"min-fee"`
	MinimumDistribution uint64 `mapstructure:"minimum-distribution"`
	ResourceUnitValue   uint64 `mapstructure:"resource-unit-value"`
	MinConnectionStr    uint64 `mapstructure:"min-connection-strength"`
}

func (cfg *EconomyConfig) Validate() error {
	pctFields := map[string]uint64{
		"control-threshold-pct": cfg.ControlThresholdPct,
		"contest-threshold-pct": cfg.ContestThresholdPct,
	}
	for name, v := range pctFields {
		if v > 100 {
			return fmt.Errorf("%s must not exceed 100", name)
		}
	}

	bpsFields := map[string]uint64{
		"annual-rate-bps":          cfg.AnnualRateBps,
		"base-fee-bps":             cfg.BaseFeeBps,
		"base-tax-bps":             cfg.BaseTaxBps,
		"tax-burn-bps":             cfg.TaxBurnBps,
		"flow-bps":                 cfg.FlowBps,
		"revenue-dao-bps":          cfg.RevenueDAOBps,
		"revenue-burn-bps":         cfg.RevenueBurnBps,
		"anti-monopoly-target-bps": cfg.AntiMonopolyTargetBps,
		"max-penalty-bps":          cfg.MaxPenaltyBps,
		"min-penalty-bps":          cfg.MinPenaltyBps,
	}
	for name, v := range bpsFields {
		if v > economy.BpsDenominator {
			return fmt.Errorf("%s must not exceed %d", name, economy.BpsDenominator)
		}
	}

	if cfg.RevenueDAOBps+cfg.RevenueBurnBps > economy.BpsDenominator {
		return fmt.Errorf("revenue dao and burn shares must not exceed 100%% combined")
	}

	splitSum := cfg.FeeSplitDAOPct + cfg.FeeSplitTerritoryPct + cfg.FeeSplitFactionPct + cfg.FeeSplitBurnPct
	if splitSum > 100 {
		return fmt.Errorf("fee split percentages must not exceed 100 combined, got %d", splitSum)
	}

	if cfg.MinConnectionStr > 100 {
		return fmt.Errorf("min-connection-strength must not exceed 100")
	}

	if err := cfg.Params().Validate(); err != nil {
		return err
	}

	return nil
}

// Params materializes the immutable core parameter set, falling back to the
// core defaults for unset fields.
func (cfg *EconomyConfig) Params() economy.Params {
	p := economy.DefaultParams()

	if cfg.MinStakePeriod > 0 {
		p.MinStakePeriodSeconds = uint64(cfg.MinStakePeriod / time.Second)
	}
	if cfg.MaxStakePeriod > 0 {
		p.MaxStakePeriodSeconds = uint64(cfg.MaxStakePeriod / time.Second)
	}
	if cfg.MaxPenaltyBps > 0 {
		p.MaxPenaltyBps = cfg.MaxPenaltyBps
	}
	if cfg.MinPenaltyBps > 0 {
		p.MinPenaltyBps = cfg.MinPenaltyBps
	}
	if cfg.MinFee > 0 {
		p.MinFee = sdkmath.NewIntFromUint64(cfg.MinFee)
	}
	if cfg.MinimumDistribution > 0 {
		p.MinimumDistribution = sdkmath.NewIntFromUint64(cfg.MinimumDistribution)
	}
	if cfg.ResourceUnitValue > 0 {
		p.ResourceUnitValue = sdkmath.NewIntFromUint64(cfg.ResourceUnitValue)
	}

	return p
}

// FeeSplit returns the configured marketplace fee split.
func (cfg *EconomyConfig) FeeSplit() economy.FeeSplit {
	return economy.FeeSplit{
		DAOPct:       cfg.FeeSplitDAOPct,
		TerritoryPct: cfg.FeeSplitTerritoryPct,
		FactionPct:   cfg.FeeSplitFactionPct,
		BurnPct:      cfg.FeeSplitBurnPct,
	}
}

// TreasuryWeights returns the configured treasury split weights.
func (cfg *EconomyConfig) TreasuryWeights() economy.TreasuryWeights {
	return economy.TreasuryWeights{
		Operational: cfg.TreasuryOperationalWeight,
		Development: cfg.TreasuryDevelopmentWeight,
		Marketing:   cfg.TreasuryMarketingWeight,
		Community:   cfg.TreasuryCommunityWeight,
		Reserve:     cfg.TreasuryReserveWeight,
	}
}
