package economy

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/undercity-labs/faction-economy/internal/types"
)

// 1e18 base units, the scale marketplace prices arrive in.
func tokens(n int64) sdkmath.Int {
	return sdkmath.NewInt(n).Mul(sdkmath.NewInt(1e18))
}

func TestAdjustFeeByTerritory(t *testing.T) {
	tests := []struct {
		name        string
		territoryID string
		seller      types.FactionID
		controlling types.FactionID
		want        uint64
	}{
		{"no territory", "", types.FactionCriminal, types.FactionCriminal, 250},
		{"uncontrolled territory", "t-1", types.FactionCriminal, types.FactionNone, 250},
		{"seller controls the turf", "t-1", types.FactionCriminal, types.FactionCriminal, 175},
		{"rival turf pays full rate", "t-1", types.FactionCriminal, types.FactionVigilante, 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AdjustFeeByTerritory(250, tt.territoryID, tt.seller, tt.controlling))
		})
	}
}

func TestCalculateMarketplaceFee(t *testing.T) {
	p := DefaultParams()
	split := FeeSplit{DAOPct: 50, TerritoryPct: 20, FactionPct: 10, BurnPct: 20}

	t.Run("absent recipients redirect to the DAO", func(t *testing.T) {
		totalFee, dist := CalculateMarketplaceFee(
			p, tokens(100), 250, types.FactionNone, "", types.FactionNone, split,
		)

		require.Equal(t, sdkmath.NewInt(25).Mul(sdkmath.NewInt(1e17)), totalFee) // 2.5e18
		assert.Equal(t, tokens(2), dist.DAOTreasuryAmount)
		assert.True(t, dist.TerritoryControllerAmount.IsZero())
		assert.True(t, dist.SellerFactionAmount.IsZero())
		assert.Equal(t, sdkmath.NewInt(5).Mul(sdkmath.NewInt(1e17)), dist.BurnAmount)
		assert.Equal(t, totalFee, dist.Total())
	})

	t.Run("all recipients present", func(t *testing.T) {
		totalFee, dist := CalculateMarketplaceFee(
			p, tokens(100), 250, types.FactionCriminal, "t-1", types.FactionVigilante, split,
		)

		assert.Equal(t, totalFee.MulRaw(50).QuoRaw(100), dist.DAOTreasuryAmount)
		assert.Equal(t, totalFee.MulRaw(20).QuoRaw(100), dist.TerritoryControllerAmount)
		assert.Equal(t, totalFee.MulRaw(10).QuoRaw(100), dist.SellerFactionAmount)
		assert.Equal(t, totalFee.MulRaw(20).QuoRaw(100), dist.BurnAmount)
		assert.Equal(t, totalFee, dist.Total())
	})

	t.Run("controller discount applies to own-turf sales", func(t *testing.T) {
		totalFee, _ := CalculateMarketplaceFee(
			p, tokens(100), 250, types.FactionCriminal, "t-1", types.FactionCriminal, split,
		)
		// 250 bps * 70% = 175 bps
		assert.Equal(t, tokens(100).MulRaw(175).QuoRaw(BpsDenominator), totalFee)
	})

	t.Run("fee floors at the minimum", func(t *testing.T) {
		totalFee, dist := CalculateMarketplaceFee(
			p, sdkmath.NewInt(10), 250, types.FactionNone, "", types.FactionNone, split,
		)
		assert.Equal(t, p.MinFee, totalFee)
		assert.Equal(t, totalFee, dist.Total())
	})

	t.Run("integer remainder lands in the DAO share", func(t *testing.T) {
		// fee of 1003 split 33/33/33/0 leaves a remainder of 1 plus the
		// uncovered 1% -> all in the DAO bucket
		oddSplit := FeeSplit{DAOPct: 33, TerritoryPct: 33, FactionPct: 33, BurnPct: 0}
		totalFee, dist := CalculateMarketplaceFee(
			p, sdkmath.NewInt(40_120), 250, types.FactionCriminal, "t-1", types.FactionVigilante, oddSplit,
		)
		require.Equal(t, sdkmath.NewInt(1003), totalFee)
		assert.Equal(t, totalFee, dist.Total())
		assert.Equal(t, sdkmath.NewInt(330), dist.TerritoryControllerAmount)
		assert.Equal(t, sdkmath.NewInt(330), dist.SellerFactionAmount)
		assert.Equal(t, sdkmath.NewInt(343), dist.DAOTreasuryAmount)
	})
}

func TestCalculateTransactionTax(t *testing.T) {
	p := DefaultParams()

	t.Run("zero amount is tax free", func(t *testing.T) {
		assert.True(t, CalculateTransactionTax(p, sdkmath.ZeroInt(), types.FactionCriminal, types.FactionCriminal, 200).IsZero())
	})

	t.Run("intra-faction transfers pay half", func(t *testing.T) {
		tax := CalculateTransactionTax(p, tokens(100), types.FactionCriminal, types.FactionCriminal, 200)
		assert.Equal(t, tokens(1), tax)
	})

	t.Run("cross-faction transfers pay 1.5x", func(t *testing.T) {
		tax := CalculateTransactionTax(p, tokens(100), types.FactionCriminal, types.FactionVigilante, 200)
		assert.Equal(t, tokens(3), tax)
	})

	t.Run("unaffiliated side pays the base rate", func(t *testing.T) {
		tax := CalculateTransactionTax(p, tokens(100), types.FactionNone, types.FactionVigilante, 200)
		assert.Equal(t, tokens(2), tax)
	})

	t.Run("nonzero amounts floor at the minimum fee", func(t *testing.T) {
		tax := CalculateTransactionTax(p, sdkmath.NewInt(10), types.FactionNone, types.FactionNone, 200)
		assert.Equal(t, p.MinFee, tax)
	})
}

func TestDistributeTax(t *testing.T) {
	t.Run("two factions split the pool evenly", func(t *testing.T) {
		dist := DistributeTax(tokens(100), 3000, types.FactionLawEnforcement, types.FactionCriminal)

		assert.Equal(t, tokens(30), dist.Burn)
		assert.Equal(t, tokens(21), dist.DAO)
		// 24.5e18 each
		half := sdkmath.NewInt(245).Mul(sdkmath.NewInt(1e17))
		assert.Equal(t, half, dist.PerFaction[types.FactionLawEnforcement])
		assert.Equal(t, half, dist.PerFaction[types.FactionCriminal])
		assert.True(t, dist.PerFaction[types.FactionVigilante].IsZero())
		assertTaxConserved(t, tokens(100), dist)
	})

	t.Run("same faction keeps the whole pool", func(t *testing.T) {
		dist := DistributeTax(tokens(100), 3000, types.FactionVigilante, types.FactionVigilante)

		assert.Equal(t, tokens(49), dist.PerFaction[types.FactionVigilante])
		assertTaxConserved(t, tokens(100), dist)
	})

	t.Run("no factions sends the remainder to the DAO", func(t *testing.T) {
		dist := DistributeTax(tokens(100), 3000, types.FactionNone, types.FactionNone)

		assert.Equal(t, tokens(70), dist.DAO)
		for _, share := range dist.PerFaction {
			assert.True(t, share.IsZero())
		}
		assertTaxConserved(t, tokens(100), dist)
	})

	t.Run("single affiliated side takes the faction pool", func(t *testing.T) {
		dist := DistributeTax(tokens(100), 3000, types.FactionCriminal, types.FactionNone)

		assert.Equal(t, tokens(49), dist.PerFaction[types.FactionCriminal])
		assertTaxConserved(t, tokens(100), dist)
	})

	t.Run("odd pool remainder stays with the sender", func(t *testing.T) {
		dist := DistributeTax(sdkmath.NewInt(101), 0, types.FactionLawEnforcement, types.FactionCriminal)

		// pool = 101 - 30 = 71; receiver gets 35, sender 36
		assert.Equal(t, sdkmath.NewInt(36), dist.PerFaction[types.FactionLawEnforcement])
		assert.Equal(t, sdkmath.NewInt(35), dist.PerFaction[types.FactionCriminal])
		assertTaxConserved(t, sdkmath.NewInt(101), dist)
	})
}

func assertTaxConserved(t *testing.T, tax sdkmath.Int, dist TaxDistribution) {
	t.Helper()
	sum := dist.Burn.Add(dist.DAO)
	for _, share := range dist.PerFaction {
		sum = sum.Add(share)
	}
	require.Equal(t, tax, sum)
}
