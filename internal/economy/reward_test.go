package economy

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateStakingReward(t *testing.T) {
	t.Run("zero amount earns nothing", func(t *testing.T) {
		reward := CalculateStakingReward(sdkmath.ZeroInt(), SecondsInYear, sdkmath.NewInt(5000), 1000, 10)
		assert.True(t, reward.IsZero())
	})

	t.Run("zero duration earns nothing", func(t *testing.T) {
		reward := CalculateStakingReward(sdkmath.NewInt(1_000_000), 0, sdkmath.NewInt(5000), 1000, 10)
		assert.True(t, reward.IsZero())
	})

	t.Run("full year at 10% with neutral multipliers", func(t *testing.T) {
		reward := CalculateStakingReward(sdkmath.NewInt(1_000_000), SecondsInYear, sdkmath.ZeroInt(), 1000, 0)
		assert.Equal(t, sdkmath.NewInt(100_000), reward)
	})

	t.Run("territory value scales the reward", func(t *testing.T) {
		// territoryValue 5000 -> 1.5x multiplier
		reward := CalculateStakingReward(sdkmath.NewInt(1_000_000), SecondsInYear, sdkmath.NewInt(5000), 1000, 0)
		assert.Equal(t, sdkmath.NewInt(150_000), reward)
	})

	t.Run("territory multiplier caps at 2x", func(t *testing.T) {
		capped := CalculateStakingReward(sdkmath.NewInt(1_000_000), SecondsInYear, sdkmath.NewInt(10_000), 1000, 0)
		beyond := CalculateStakingReward(sdkmath.NewInt(1_000_000), SecondsInYear, sdkmath.NewInt(1_000_000), 1000, 0)
		assert.Equal(t, sdkmath.NewInt(200_000), capped)
		assert.Equal(t, capped, beyond)
	})

	t.Run("faction bonus applies after territory multiplier", func(t *testing.T) {
		reward := CalculateStakingReward(sdkmath.NewInt(1_000_000), SecondsInYear, sdkmath.NewInt(5000), 1000, 10)
		assert.Equal(t, sdkmath.NewInt(165_000), reward)
	})

	t.Run("half year prorates linearly", func(t *testing.T) {
		reward := CalculateStakingReward(sdkmath.NewInt(1_000_000), SecondsInYear/2, sdkmath.ZeroInt(), 1000, 0)
		assert.Equal(t, sdkmath.NewInt(50_000), reward)
	})
}

func TestCalculateStakePeriodMultiplier(t *testing.T) {
	p := DefaultParams()

	tests := []struct {
		name     string
		period   uint64
		bonusPct uint64
		want     uint64
	}{
		{
			name:   "below minimum period is flat 1x",
			period: p.MinStakePeriodSeconds - 1,
			want:   Precision,
		},
		{
			name:   "at minimum period is 1x",
			period: p.MinStakePeriodSeconds,
			want:   Precision,
		},
		{
			name:   "at maximum period is 2x",
			period: p.MaxStakePeriodSeconds,
			want:   2 * Precision,
		},
		{
			name:   "beyond maximum clamps at 2x",
			period: p.MaxStakePeriodSeconds * 3,
			want:   2 * Precision,
		},
		{
			name:   "midpoint interpolates to 1.5x",
			period: p.MinStakePeriodSeconds + (p.MaxStakePeriodSeconds-p.MinStakePeriodSeconds)/2,
			want:   Precision + Precision/2,
		},
		{
			name:     "faction bonus scales the result",
			period:   p.MaxStakePeriodSeconds,
			bonusPct: 20,
			want:     2 * Precision * 120 / 100,
		},
		{
			name:     "capped at max multiplier",
			period:   p.MaxStakePeriodSeconds,
			bonusPct: 90,
			want:     p.MaxMultiplier,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateStakePeriodMultiplier(p, tt.period, tt.bonusPct))
		})
	}
}

func TestCalculateEmergencyWithdrawalPenalty(t *testing.T) {
	p := DefaultParams()
	const period = uint64(100 * 24 * 3600)

	t.Run("fully vested pays nothing", func(t *testing.T) {
		assert.Zero(t, CalculateEmergencyWithdrawalPenalty(p, period, period))
		assert.Zero(t, CalculateEmergencyWithdrawalPenalty(p, period, period+1))
	})

	t.Run("immediate withdrawal pays max penalty", func(t *testing.T) {
		assert.Equal(t, p.MaxPenaltyBps, CalculateEmergencyWithdrawalPenalty(p, period, 0))
	})

	t.Run("half vested pays the midpoint", func(t *testing.T) {
		want := p.MaxPenaltyBps - (p.MaxPenaltyBps-p.MinPenaltyBps)/2
		assert.Equal(t, want, CalculateEmergencyWithdrawalPenalty(p, period, period/2))
	})

	t.Run("penalty never increases with time staked", func(t *testing.T) {
		prev := CalculateEmergencyWithdrawalPenalty(p, period, 0)
		for staked := uint64(0); staked <= period; staked += period / 20 {
			penalty := CalculateEmergencyWithdrawalPenalty(p, period, staked)
			require.LessOrEqual(t, penalty, prev)
			prev = penalty
		}
	})
}
