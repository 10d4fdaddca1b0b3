package economy

import (
	sdkmath "cosmossdk.io/math"
)

const (
	// BpsDenominator is the basis-point scale: 10000 bps = 100%.
	BpsDenominator = 10000

	// Precision is the fixed-point scale used for multipliers returned by
	// CalculateStakePeriodMultiplier and applied inside CalculateStakingReward.
	Precision = 1_000_000

	// SecondsInYear is the annualization divisor for staking rewards.
	SecondsInYear = 31_536_000
)

// Params carries the economic constants that are not per-call inputs. It is
// immutable once constructed; every calculation is fully determined by the
// (snapshot, Params) pair passed in, there is no module-level mutable state.
type Params struct {
	// Stake period multiplier curve. Below MinStakePeriodSeconds the
	// multiplier is flat 1x; it ramps linearly to 2x at MaxStakePeriodSeconds.
	MinStakePeriodSeconds uint64
	MaxStakePeriodSeconds uint64

	// MaxMultiplier caps the faction-boosted period multiplier,
	// Precision-scaled.
	MaxMultiplier uint64

	// Emergency withdrawal penalty curve, in bps. MaxPenaltyBps applies at
	// timeStaked=0 and decays linearly to MinPenaltyBps at the original
	// lock period.
	MaxPenaltyBps uint64
	MinPenaltyBps uint64

	// MinFee is the floor applied to marketplace fees and transaction taxes.
	MinFee sdkmath.Int

	// MinimumDistribution is the guaranteed revenue share for every faction
	// with nonzero influence.
	MinimumDistribution sdkmath.Int

	// ResourceUnitValue is the token value of one accrued resource unit in
	// the block-accrual territory valuation.
	ResourceUnitValue sdkmath.Int
}

// DefaultParams returns the production defaults. Callers override individual
// fields through config.
func DefaultParams() Params {
	return Params{
		MinStakePeriodSeconds: 7 * 24 * 3600,
		MaxStakePeriodSeconds: 365 * 24 * 3600,
		MaxMultiplier:         3 * Precision,
		MaxPenaltyBps:         5000,
		MinPenaltyBps:         1000,
		MinFee:                sdkmath.NewInt(1000),
		MinimumDistribution:   sdkmath.NewInt(10_000),
		ResourceUnitValue:     sdkmath.NewInt(1),
	}
}

func (p Params) Validate() error {
	if p.MinStakePeriodSeconds >= p.MaxStakePeriodSeconds {
		return ErrInvalidPeriodBounds
	}
	if p.MinPenaltyBps > p.MaxPenaltyBps || p.MaxPenaltyBps > BpsDenominator {
		return ErrInvalidPenaltyBounds
	}
	if p.MaxMultiplier < Precision {
		return ErrInvalidMaxMultiplier
	}
	if p.MinFee.IsNil() || p.MinFee.IsNegative() {
		return ErrInvalidMinFee
	}
	if p.MinimumDistribution.IsNil() || p.MinimumDistribution.IsNegative() {
		return ErrInvalidMinimumDistribution
	}
	if p.ResourceUnitValue.IsNil() || p.ResourceUnitValue.IsNegative() {
		return ErrInvalidResourceUnitValue
	}
	return nil
}
