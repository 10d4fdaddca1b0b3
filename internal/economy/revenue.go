package economy

import (
	sdkmath "cosmossdk.io/math"
)

// RevenueDistribution is the split of a revenue epoch across factions, the
// DAO, and burn. All fields sum exactly to the distributed total; the rounding
// remainder goes to the faction with the single highest influence.
type RevenueDistribution struct {
	PerFaction []sdkmath.Int
	DAO        sdkmath.Int
	Burn       sdkmath.Int
}

// Total returns DAO + Burn + all faction shares.
func (d RevenueDistribution) Total() sdkmath.Int {
	total := d.DAO.Add(d.Burn)
	for _, share := range d.PerFaction {
		total = total.Add(share)
	}
	return total
}

// TreasuryWeights configures the five-way treasury split.
type TreasuryWeights struct {
	Operational uint64
	Development uint64
	Marketing   uint64
	Community   uint64
	Reserve     uint64
}

// TreasuryAllocation is a treasury deposit split by weight. The fields sum
// exactly to the allocated total; the remainder goes to reserve.
type TreasuryAllocation struct {
	Operational sdkmath.Int
	Development sdkmath.Int
	Marketing   sdkmath.Int
	Community   sdkmath.Int
	Reserve     sdkmath.Int
}

// Total returns the sum of all five buckets.
func (a TreasuryAllocation) Total() sdkmath.Int {
	return a.Operational.
		Add(a.Development).
		Add(a.Marketing).
		Add(a.Community).
		Add(a.Reserve)
}

// CalculateRevenueDistribution splits a revenue epoch between the DAO, burn,
// and the factions. Faction shares are proportional to influence; with no
// influence anywhere the pool is split equally across all slots (the unused
// index 0 included). Every faction with nonzero influence is guaranteed at
// least Params.MinimumDistribution, funded by proportionally reducing shares
// above the guarantee - the pool itself is never grown. The output always
// sums exactly to totalRevenue.
func CalculateRevenueDistribution(
	p Params,
	totalRevenue sdkmath.Int,
	influence []sdkmath.Int,
	daoPctBps, burnPctBps uint64,
) RevenueDistribution {
	dist := RevenueDistribution{
		PerFaction: zeroShares(len(influence)),
		DAO:        sdkmath.ZeroInt(),
		Burn:       sdkmath.ZeroInt(),
	}
	if totalRevenue.IsNil() || totalRevenue.IsZero() || len(influence) == 0 {
		return dist
	}

	dist.DAO = totalRevenue.MulRaw(int64(daoPctBps)).QuoRaw(BpsDenominator)
	dist.Burn = totalRevenue.MulRaw(int64(burnPctBps)).QuoRaw(BpsDenominator)
	pool := totalRevenue.Sub(dist.DAO).Sub(dist.Burn)

	totalInfluence := sdkmath.ZeroInt()
	for _, inf := range influence {
		if !inf.IsNil() {
			totalInfluence = totalInfluence.Add(inf)
		}
	}

	if totalInfluence.IsZero() {
		n := int64(len(influence))
		equal := pool.QuoRaw(n)
		for i := range dist.PerFaction {
			dist.PerFaction[i] = equal
		}
		dist.PerFaction[topShareIndex(influence)] = equal.Add(pool.Sub(equal.MulRaw(n)))
		return dist
	}

	for i, inf := range influence {
		if inf.IsNil() || inf.IsZero() {
			continue
		}
		dist.PerFaction[i] = pool.Mul(inf).Quo(totalInfluence)
	}

	applyMinimumGuarantee(dist.PerFaction, influence, p.MinimumDistribution)

	distributed := sdkmath.ZeroInt()
	for _, share := range dist.PerFaction {
		distributed = distributed.Add(share)
	}
	top := topShareIndex(influence)
	dist.PerFaction[top] = dist.PerFaction[top].Add(pool.Sub(distributed))

	return dist
}

// applyMinimumGuarantee raises every underfunded share (nonzero influence,
// share below the guarantee) toward the minimum, funded exclusively by
// proportional cuts of the shares above the minimum. Cuts are taken first so
// the exact funded amount is redistributed and the total is untouched.
func applyMinimumGuarantee(shares, influence []sdkmath.Int, minimum sdkmath.Int) {
	if minimum.IsNil() || minimum.IsZero() {
		return
	}

	deficitTotal := sdkmath.ZeroInt()
	surplusTotal := sdkmath.ZeroInt()
	for i, share := range shares {
		switch {
		case influence[i].IsNil() || influence[i].IsZero():
		case share.LT(minimum):
			deficitTotal = deficitTotal.Add(minimum.Sub(share))
		case share.GT(minimum):
			surplusTotal = surplusTotal.Add(share.Sub(minimum))
		}
	}
	if deficitTotal.IsZero() || surplusTotal.IsZero() {
		return
	}

	take := sdkmath.MinInt(deficitTotal, surplusTotal)

	eligible := func(i int) bool {
		return !influence[i].IsNil() && !influence[i].IsZero()
	}

	// Cut the surplus shares proportionally to their excess above the
	// minimum. Proportional floors can leave a few units short, so the
	// residual is collected one unit at a time from shares still above the
	// minimum; total capacity covers it by construction.
	cut := sdkmath.ZeroInt()
	for i, share := range shares {
		if !eligible(i) || !share.GT(minimum) {
			continue
		}
		slice := take.Mul(share.Sub(minimum)).Quo(surplusTotal)
		shares[i] = share.Sub(slice)
		cut = cut.Add(slice)
	}
	for !cut.Equal(take) {
		progressed := false
		for i, share := range shares {
			if cut.Equal(take) {
				break
			}
			if eligible(i) && share.GT(minimum) {
				shares[i] = share.Sub(sdkmath.OneInt())
				cut = cut.Add(sdkmath.OneInt())
				progressed = true
			}
		}
		if !progressed {
			break
		}
	}

	// Raise the underfunded shares. When the surplus fully covers the
	// deficit every guaranteed share lands exactly on the minimum;
	// otherwise the funded amount is spread proportionally with a
	// unit-level settlement of the floor residue.
	if take.Equal(deficitTotal) {
		for i, share := range shares {
			if eligible(i) && share.LT(minimum) {
				shares[i] = minimum
			}
		}
		return
	}

	given := sdkmath.ZeroInt()
	for i, share := range shares {
		if !eligible(i) || !share.LT(minimum) {
			continue
		}
		add := take.Mul(minimum.Sub(share)).Quo(deficitTotal)
		shares[i] = share.Add(add)
		given = given.Add(add)
	}
	for !given.Equal(take) {
		progressed := false
		for i, share := range shares {
			if given.Equal(take) {
				break
			}
			if eligible(i) && share.LT(minimum) {
				shares[i] = share.Add(sdkmath.OneInt())
				given = given.Add(sdkmath.OneInt())
				progressed = true
			}
		}
		if !progressed {
			break
		}
	}
}

// CalculateStakingRewardsDistribution splits a reward pool across stakes
// proportionally to their amounts. Zero-amount stakes earn nothing; the
// rounding remainder goes to the largest stake (first index on ties).
func CalculateStakingRewardsDistribution(
	totalRewards sdkmath.Int,
	stakes []sdkmath.Int,
	totalStaked sdkmath.Int,
) ([]sdkmath.Int, error) {
	if len(stakes) == 0 {
		return nil, ErrNoStakes
	}

	rewards := zeroShares(len(stakes))
	if totalRewards.IsNil() || totalRewards.IsZero() ||
		totalStaked.IsNil() || !totalStaked.IsPositive() {
		return rewards, nil
	}

	distributed := sdkmath.ZeroInt()
	for i, stake := range stakes {
		if stake.IsNil() || stake.IsZero() {
			continue
		}
		rewards[i] = totalRewards.Mul(stake).Quo(totalStaked)
		distributed = distributed.Add(rewards[i])
	}

	top := topShareIndex(stakes)
	rewards[top] = rewards[top].Add(totalRewards.Sub(distributed))
	return rewards, nil
}

// CalculateTreasuryAllocation splits a treasury deposit across the five
// buckets proportionally to their weights. All-zero weights are a caller
// error; the rounding remainder goes to reserve.
func CalculateTreasuryAllocation(
	total sdkmath.Int,
	weights TreasuryWeights,
) (TreasuryAllocation, error) {
	weightSum := weights.Operational + weights.Development + weights.Marketing +
		weights.Community + weights.Reserve
	if weightSum == 0 {
		return TreasuryAllocation{}, ErrZeroWeights
	}

	byWeight := func(w uint64) sdkmath.Int {
		return total.MulRaw(int64(w)).QuoRaw(int64(weightSum))
	}
	alloc := TreasuryAllocation{
		Operational: byWeight(weights.Operational),
		Development: byWeight(weights.Development),
		Marketing:   byWeight(weights.Marketing),
		Community:   byWeight(weights.Community),
		Reserve:     byWeight(weights.Reserve),
	}
	alloc.Reserve = alloc.Reserve.Add(total.Sub(alloc.Total()))
	return alloc, nil
}

// CalculateFactionRevenueBoost grows a faction's base revenue by capped
// bonuses for membership, activity, territory control, and market dominance.
// The combined boost is hard-capped at 50%.
func CalculateFactionRevenueBoost(
	baseRevenue sdkmath.Int,
	memberCount, activity uint64,
	territoryControlBps, marketDominanceBps uint64,
) sdkmath.Int {
	if baseRevenue.IsNil() || baseRevenue.IsZero() {
		return sdkmath.ZeroInt()
	}

	memberBoost := cappedBoost(memberCount, 100, 1000)
	activityBoost := cappedBoost(activity, 15, 1500)
	territoryBoost := territoryControlBps / 2
	if territoryBoost > 1500 {
		territoryBoost = 1500
	}
	marketBoost := marketDominanceBps / 3
	if marketBoost > 1000 {
		marketBoost = 1000
	}

	totalBoost := memberBoost + activityBoost + territoryBoost + marketBoost
	if totalBoost > 5000 {
		totalBoost = 5000
	}

	return baseRevenue.Add(baseRevenue.MulRaw(int64(totalBoost)).QuoRaw(BpsDenominator))
}

// CalculateDynamicRevenueSharing gives every faction a guaranteed base cut of
// the revenue, then splits what is left proportionally to contributions
// (equally when nobody contributed). The remainder-of-remainder goes to the
// top contributor. baseSplitBps times the faction count must not exceed 100%.
func CalculateDynamicRevenueSharing(
	totalRevenue sdkmath.Int,
	contributions []sdkmath.Int,
	baseSplitBps uint64,
) ([]sdkmath.Int, error) {
	n := len(contributions)
	if n == 0 {
		return nil, ErrNoFactions
	}
	if baseSplitBps*uint64(n) > BpsDenominator {
		return nil, ErrBaseSplitTooLarge
	}

	baseAmount := totalRevenue.MulRaw(int64(baseSplitBps)).QuoRaw(BpsDenominator)
	shares := make([]sdkmath.Int, n)
	for i := range shares {
		shares[i] = baseAmount
	}
	pool := totalRevenue.Sub(baseAmount.MulRaw(int64(n)))

	totalContribution := sdkmath.ZeroInt()
	for _, c := range contributions {
		if !c.IsNil() {
			totalContribution = totalContribution.Add(c)
		}
	}

	distributed := sdkmath.ZeroInt()
	if totalContribution.IsZero() {
		equal := pool.QuoRaw(int64(n))
		for i := range shares {
			shares[i] = shares[i].Add(equal)
			distributed = distributed.Add(equal)
		}
	} else {
		for i, c := range contributions {
			if c.IsNil() || c.IsZero() {
				continue
			}
			cut := pool.Mul(c).Quo(totalContribution)
			shares[i] = shares[i].Add(cut)
			distributed = distributed.Add(cut)
		}
	}

	top := topShareIndex(contributions)
	shares[top] = shares[top].Add(pool.Sub(distributed))
	return shares, nil
}

// CalculateAntiMonopolyAdjustment caps the dominant share of a pool at
// targetFactorBps of the total, redistributing the excess to the other
// entries proportionally to their existing shares. A dominance factor at or
// below the target, or an empty non-dominant side, leaves the shares alone.
// The pool total is preserved exactly; redistribution slack goes to the
// largest non-dominant share.
func CalculateAntiMonopolyAdjustment(
	shares []sdkmath.Int,
	dominanceFactorBps, targetFactorBps uint64,
) []sdkmath.Int {
	adjusted := make([]sdkmath.Int, len(shares))
	for i, share := range shares {
		if share.IsNil() {
			adjusted[i] = sdkmath.ZeroInt()
		} else {
			adjusted[i] = share
		}
	}
	if dominanceFactorBps <= targetFactorBps || len(shares) == 0 {
		return adjusted
	}

	dominant := topShareIndex(adjusted)
	total := sdkmath.ZeroInt()
	for _, share := range adjusted {
		total = total.Add(share)
	}
	othersTotal := total.Sub(adjusted[dominant])
	if othersTotal.IsZero() {
		return adjusted
	}

	targetAmount := total.MulRaw(int64(targetFactorBps)).QuoRaw(BpsDenominator)
	excess := adjusted[dominant].Sub(targetAmount)
	if !excess.IsPositive() {
		return adjusted
	}

	largestOther := -1
	for i, share := range adjusted {
		if i == dominant {
			continue
		}
		if largestOther == -1 || share.GT(adjusted[largestOther]) {
			largestOther = i
		}
	}

	redistributed := sdkmath.ZeroInt()
	for i, share := range adjusted {
		if i == dominant {
			continue
		}
		gain := excess.Mul(share).Quo(othersTotal)
		adjusted[i] = share.Add(gain)
		redistributed = redistributed.Add(gain)
	}
	adjusted[dominant] = targetAmount
	adjusted[largestOther] = adjusted[largestOther].Add(excess.Sub(redistributed))

	return adjusted
}

// cappedBoost is count*perUnit bps, capped. The comparison runs before the
// multiplication so huge counts cannot overflow.
func cappedBoost(count, perUnitBps, capBps uint64) uint64 {
	if count > capBps/perUnitBps {
		return capBps
	}
	return count * perUnitBps
}

func zeroShares(n int) []sdkmath.Int {
	shares := make([]sdkmath.Int, n)
	for i := range shares {
		shares[i] = sdkmath.ZeroInt()
	}
	return shares
}

// topShareIndex returns the index of the largest value, first index on ties.
func topShareIndex(values []sdkmath.Int) int {
	top := 0
	topValue := sdkmath.ZeroInt()
	for i, v := range values {
		if v.IsNil() {
			continue
		}
		if v.GT(topValue) {
			top = i
			topValue = v
		}
	}
	return top
}
