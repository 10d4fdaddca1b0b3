package economy

import (
	sdkmath "cosmossdk.io/math"

	"github.com/undercity-labs/faction-economy/internal/types"
)

// ControlResult is the outcome of resolving a territory's controlling faction
// from a stake snapshot.
type ControlResult struct {
	Faction types.FactionID
	// SharePct is the leading faction's share of the total stake in whole
	// percent (0-100). It is reported even when the leader is below the
	// control threshold.
	SharePct   uint64
	HasControl bool
}

// ContestedStatus is the outcome of contest detection over a stake snapshot.
type ContestedStatus struct {
	Contested  bool
	Dominant   types.FactionID
	Challenger types.FactionID
}

// CalculateControllingFaction picks the faction with the maximum stake (lowest
// index wins ties) and grants control only when its share of the total meets
// controlThresholdPct (whole percent). Below the threshold no faction controls
// the territory, but the leader's share is still reported.
//
// Control must always be recomputed from a fresh snapshot after every stake
// mutation; incremental updates of a cached result are how stale-control bugs
// happen.
func CalculateControllingFaction(
	stakes []sdkmath.Int,
	total sdkmath.Int,
	controlThresholdPct uint64,
) ControlResult {
	if total.IsNil() || !total.IsPositive() {
		return ControlResult{Faction: types.FactionNone}
	}

	leader := 0
	leaderStake := sdkmath.ZeroInt()
	for i, stake := range stakes {
		if stake.IsNil() {
			continue
		}
		if stake.GT(leaderStake) {
			leader = i
			leaderStake = stake
		}
	}

	sharePct := leaderStake.MulRaw(100).Quo(total).Uint64()
	if sharePct < controlThresholdPct {
		return ControlResult{
			Faction:  types.FactionNone,
			SharePct: sharePct,
		}
	}

	return ControlResult{
		Faction:    types.FactionID(leader),
		SharePct:   sharePct,
		HasControl: true,
	}
}

// EvaluateContestedStatus finds the dominant and challenger factions (ties
// broken by lowest index) and flags the territory as contested when the gap
// between their shares is below contestThresholdPct (whole percent), or when
// the dominant faction holds less than half of the total stake.
func EvaluateContestedStatus(
	stakes []sdkmath.Int,
	total sdkmath.Int,
	contestThresholdPct uint64,
) ContestedStatus {
	if total.IsNil() || !total.IsPositive() {
		return ContestedStatus{}
	}

	dominant, challenger := -1, -1
	dominantStake := sdkmath.ZeroInt()
	challengerStake := sdkmath.ZeroInt()
	for i, stake := range stakes {
		if stake.IsNil() {
			continue
		}
		switch {
		case dominant == -1 || stake.GT(dominantStake):
			challenger, challengerStake = dominant, dominantStake
			dominant, dominantStake = i, stake
		case challenger == -1 || stake.GT(challengerStake):
			challenger, challengerStake = i, stake
		}
	}
	if dominant == -1 {
		return ContestedStatus{}
	}
	if challenger == -1 {
		challenger = dominant
		challengerStake = sdkmath.ZeroInt()
	}

	dominantShare := dominantStake.MulRaw(100).Quo(total).Uint64()
	challengerShare := challengerStake.MulRaw(100).Quo(total).Uint64()

	contested := dominantShare-challengerShare < contestThresholdPct ||
		dominantShare < 50

	return ContestedStatus{
		Contested:  contested,
		Dominant:   types.FactionID(dominant),
		Challenger: types.FactionID(challenger),
	}
}
