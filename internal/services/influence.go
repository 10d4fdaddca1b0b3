package services

import (
	sdkmath "cosmossdk.io/math"

	"github.com/undercity-labs/faction-economy/internal/db/model"
	"github.com/undercity-labs/faction-economy/internal/economy"
	"github.com/undercity-labs/faction-economy/internal/types"
)

// DeriveFactionInfluence computes each faction's influence for a revenue epoch
// from the territories it controls: the sum of controlled-territory revenue
// values, boosted by its economic activity and territory share. Index 0
// (FactionNone) stays zero so faction ids index directly into the result.
//
// Membership counts and market dominance live on the game platform, not in
// this ledger, so those two boost inputs are zero here.
func DeriveFactionInfluence(territories []model.TerritoryDocument, now int64) []sdkmath.Int {
	influence := make([]sdkmath.Int, types.FactionCount)
	for i := range influence {
		influence[i] = sdkmath.ZeroInt()
	}

	var activity [types.FactionCount]uint64
	var controlled [types.FactionCount]uint64
	for i := range territories {
		t := &territories[i]
		f := t.ControllingFaction
		if f == uint8(types.FactionNone) || f >= types.FactionCount {
			continue
		}

		influence[f] = influence[f].Add(territoryRevenueValue(t, now))
		activity[f] += t.EconomicActivity
		controlled[f]++
	}

	if len(territories) == 0 {
		return influence
	}
	for f := range influence {
		if influence[f].IsZero() {
			continue
		}
		territoryControlBps := controlled[f] * economy.BpsDenominator / uint64(len(territories))
		influence[f] = economy.CalculateFactionRevenueBoost(
			influence[f],
			0,
			activity[f],
			territoryControlBps,
			0,
		)
	}

	return influence
}

// EpochRevenue is the total economic output of an epoch: the sum of every
// territory's revenue value, controlled or not.
func EpochRevenue(territories []model.TerritoryDocument, now int64) sdkmath.Int {
	total := sdkmath.ZeroInt()
	for i := range territories {
		total = total.Add(territoryRevenueValue(&territories[i], now))
	}
	return total
}

func territoryRevenueValue(t *model.TerritoryDocument, now int64) sdkmath.Int {
	var controlDuration uint64
	if t.ControllingFaction != uint8(types.FactionNone) && now > t.ControlChangedAt {
		controlDuration = uint64(now - t.ControlChangedAt)
	}
	return economy.CalculateTerritoryRevenueValue(
		sdkmath.NewIntFromUint64(t.BaseValue),
		t.EconomicActivity,
		controlDuration,
		t.Contested,
	)
}
