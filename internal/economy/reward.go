package economy

import (
	sdkmath "cosmossdk.io/math"
)

// CalculateStakingReward computes the time-decayed staking reward for a single
// stake. The annualized reward is prorated over the staking duration, then a
// territory multiplier of min(2x, 1 + territoryValue/10000) and a faction
// multiplier of (100+factionBonusPct)/100 are applied, in that order. All
// arithmetic is integer fixed-point; degenerate inputs yield zero.
func CalculateStakingReward(
	amount sdkmath.Int,
	durationSeconds uint64,
	territoryValue sdkmath.Int,
	annualRateBps uint64,
	factionBonusPct uint64,
) sdkmath.Int {
	if amount.IsNil() || amount.IsZero() || durationSeconds == 0 {
		return sdkmath.ZeroInt()
	}

	annualReward := amount.MulRaw(int64(annualRateBps)).QuoRaw(BpsDenominator)
	reward := annualReward.MulRaw(int64(durationSeconds)).QuoRaw(SecondsInYear)

	// Territory multiplier, Precision-scaled and capped at 2x. Contested
	// territories arrive here with an already penalized value, so the cap is
	// the only clamp needed.
	multiplier := sdkmath.NewInt(Precision)
	if !territoryValue.IsNil() {
		multiplier = multiplier.Add(territoryValue.MulRaw(Precision).QuoRaw(BpsDenominator))
	}
	maxTerritoryMultiplier := sdkmath.NewInt(2 * Precision)
	if multiplier.GT(maxTerritoryMultiplier) {
		multiplier = maxTerritoryMultiplier
	}
	reward = reward.Mul(multiplier).QuoRaw(Precision)

	return reward.MulRaw(int64(100 + factionBonusPct)).QuoRaw(100)
}

// CalculateStakePeriodMultiplier returns the Precision-scaled lock period
// multiplier. Periods below the minimum earn a flat 1x; between the minimum
// and maximum the multiplier ramps linearly from 1x to 2x and clamps at 2x
// beyond the maximum. The faction bonus scales the result, capped at
// Params.MaxMultiplier.
func CalculateStakePeriodMultiplier(p Params, periodSeconds, factionBonusPct uint64) uint64 {
	var base uint64
	switch {
	case periodSeconds < p.MinStakePeriodSeconds:
		base = Precision
	case periodSeconds >= p.MaxStakePeriodSeconds:
		base = 2 * Precision
	default:
		elapsed := periodSeconds - p.MinStakePeriodSeconds
		window := p.MaxStakePeriodSeconds - p.MinStakePeriodSeconds
		base = Precision + Precision*elapsed/window
	}

	multiplier := base * (100 + factionBonusPct) / 100
	if multiplier > p.MaxMultiplier {
		multiplier = p.MaxMultiplier
	}
	return multiplier
}

// CalculateEmergencyWithdrawalPenalty returns the penalty in bps for
// withdrawing before the original lock period has elapsed. The penalty decays
// linearly from Params.MaxPenaltyBps at timeStaked=0 down to
// Params.MinPenaltyBps at the full period; fully vested stakes pay nothing.
func CalculateEmergencyWithdrawalPenalty(p Params, originalPeriod, timeStaked uint64) uint64 {
	if timeStaked >= originalPeriod {
		return 0
	}
	decay := (p.MaxPenaltyBps - p.MinPenaltyBps) * timeStaked / originalPeriod
	return p.MaxPenaltyBps - decay
}
