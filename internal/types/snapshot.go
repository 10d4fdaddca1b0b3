package types

import (
	sdkmath "cosmossdk.io/math"
)

// StakeSnapshot is the per-territory view of active stake grouped by faction.
// Index 0 (FactionNone) is always zero in practice but kept so faction ids
// index directly into FactionStakes.
type StakeSnapshot struct {
	TerritoryID   string
	FactionStakes [FactionCount]uint64
	TotalStaked   uint64
}

// Amounts widens the per-faction stakes to arbitrary precision for the
// calculation core.
func (s *StakeSnapshot) Amounts() []sdkmath.Int {
	amounts := make([]sdkmath.Int, FactionCount)
	for i, amt := range s.FactionStakes {
		amounts[i] = sdkmath.NewIntFromUint64(amt)
	}
	return amounts
}

func (s *StakeSnapshot) Total() sdkmath.Int {
	return sdkmath.NewIntFromUint64(s.TotalStaked)
}
