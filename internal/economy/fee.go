package economy

import (
	sdkmath "cosmossdk.io/math"

	"github.com/undercity-labs/faction-economy/internal/types"
)

// FeeDistribution is the stakeholder split of a marketplace fee. The four
// fields always sum exactly to the fee they were computed from; integer
// division remainders land in DAOTreasuryAmount.
type FeeDistribution struct {
	DAOTreasuryAmount         sdkmath.Int
	TerritoryControllerAmount sdkmath.Int
	SellerFactionAmount       sdkmath.Int
	BurnAmount                sdkmath.Int
}

// Total returns the sum of all four fields.
func (d FeeDistribution) Total() sdkmath.Int {
	return d.DAOTreasuryAmount.
		Add(d.TerritoryControllerAmount).
		Add(d.SellerFactionAmount).
		Add(d.BurnAmount)
}

// FeeSplit configures the stakeholder split of a marketplace fee in whole
// percent. The caller validates that the four shares sum to at most 100.
type FeeSplit struct {
	DAOPct       uint64
	TerritoryPct uint64
	FactionPct   uint64
	BurnPct      uint64
}

// TaxDistribution is the split of a transaction tax. Burn plus DAO plus all
// faction entries always sum exactly to the tax.
type TaxDistribution struct {
	Burn       sdkmath.Int
	DAO        sdkmath.Int
	PerFaction [types.FactionCount]sdkmath.Int
}

// AdjustFeeByTerritory applies the controlling-faction discount to a base fee
// rate: sellers trading in a territory held by their own faction pay 70% of
// the base rate. Sales outside any territory, or in uncontrolled territory,
// are unaffected.
func AdjustFeeByTerritory(
	baseFeeBps uint64,
	territoryID string,
	sellerFaction, controllingFaction types.FactionID,
) uint64 {
	if territoryID == "" || !controllingFaction.IsSet() {
		return baseFeeBps
	}
	if sellerFaction == controllingFaction {
		return baseFeeBps * 70 / 100
	}
	return baseFeeBps
}

// CalculateMarketplaceFee computes the total marketplace fee for a sale and
// its stakeholder split. The fee rate is territory-adjusted, floored at
// Params.MinFee, and distributed per the split percentages. Shares whose
// recipient is absent (no controlling faction, seller without a faction) are
// redirected to the DAO treasury, as is the rounding remainder, so the
// distribution always sums exactly to the returned fee.
func CalculateMarketplaceFee(
	p Params,
	price sdkmath.Int,
	baseFeeBps uint64,
	sellerFaction types.FactionID,
	territoryID string,
	controllingFaction types.FactionID,
	split FeeSplit,
) (sdkmath.Int, FeeDistribution) {
	adjustedBps := AdjustFeeByTerritory(baseFeeBps, territoryID, sellerFaction, controllingFaction)

	totalFee := price.MulRaw(int64(adjustedBps)).QuoRaw(BpsDenominator)
	if totalFee.LT(p.MinFee) {
		totalFee = p.MinFee
	}

	dist := FeeDistribution{
		DAOTreasuryAmount:         totalFee.MulRaw(int64(split.DAOPct)).QuoRaw(100),
		TerritoryControllerAmount: sdkmath.ZeroInt(),
		SellerFactionAmount:       sdkmath.ZeroInt(),
		BurnAmount:                totalFee.MulRaw(int64(split.BurnPct)).QuoRaw(100),
	}

	territoryShare := totalFee.MulRaw(int64(split.TerritoryPct)).QuoRaw(100)
	if territoryID != "" && controllingFaction.IsSet() {
		dist.TerritoryControllerAmount = territoryShare
	} else {
		dist.DAOTreasuryAmount = dist.DAOTreasuryAmount.Add(territoryShare)
	}

	factionShare := totalFee.MulRaw(int64(split.FactionPct)).QuoRaw(100)
	if sellerFaction.IsSet() {
		dist.SellerFactionAmount = factionShare
	} else {
		dist.DAOTreasuryAmount = dist.DAOTreasuryAmount.Add(factionShare)
	}

	remainder := totalFee.Sub(dist.Total())
	dist.DAOTreasuryAmount = dist.DAOTreasuryAmount.Add(remainder)

	return totalFee, dist
}

// CalculateTransactionTax computes the tax on a token transfer. Transfers
// inside one faction pay half the base rate; transfers across two factions
// pay 1.5x; transfers with an unaffiliated party pay the base rate. Nonzero
// amounts are floored at Params.MinFee.
func CalculateTransactionTax(
	p Params,
	amount sdkmath.Int,
	senderFaction, receiverFaction types.FactionID,
	baseTaxBps uint64,
) sdkmath.Int {
	if amount.IsNil() || amount.IsZero() {
		return sdkmath.ZeroInt()
	}

	tax := amount.MulRaw(int64(baseTaxBps)).QuoRaw(BpsDenominator)
	if senderFaction.IsSet() && receiverFaction.IsSet() {
		if senderFaction == receiverFaction {
			tax = tax.MulRaw(50).QuoRaw(100)
		} else {
			tax = tax.MulRaw(150).QuoRaw(100)
		}
	}

	if tax.LT(p.MinFee) {
		tax = p.MinFee
	}
	return tax
}

// DistributeTax splits a collected tax between burn, the DAO treasury, and
// the factions party to the transfer. After the burn cut, the DAO takes 30%
// of the remainder and the factions involved split the other 70% half and
// half (both halves to one faction when sender and receiver share it). With
// no faction on either side the full remainder goes to the DAO.
func DistributeTax(
	taxAmount sdkmath.Int,
	burnBps uint64,
	senderFaction, receiverFaction types.FactionID,
) TaxDistribution {
	dist := TaxDistribution{
		Burn: taxAmount.MulRaw(int64(burnBps)).QuoRaw(BpsDenominator),
		DAO:  sdkmath.ZeroInt(),
	}
	for i := range dist.PerFaction {
		dist.PerFaction[i] = sdkmath.ZeroInt()
	}

	remaining := taxAmount.Sub(dist.Burn)
	if !senderFaction.IsSet() && !receiverFaction.IsSet() {
		dist.DAO = remaining
		return dist
	}

	dist.DAO = remaining.MulRaw(30).QuoRaw(100)
	pool := remaining.Sub(dist.DAO)

	switch {
	case senderFaction == receiverFaction:
		dist.PerFaction[senderFaction] = pool
	case senderFaction.IsSet() && receiverFaction.IsSet():
		half := pool.QuoRaw(2)
		dist.PerFaction[receiverFaction] = half
		// odd-amount remainder stays with the sender's faction
		dist.PerFaction[senderFaction] = pool.Sub(half)
	case senderFaction.IsSet():
		dist.PerFaction[senderFaction] = pool
	default:
		dist.PerFaction[receiverFaction] = pool
	}
	return dist
}
