package economy

import (
	"math/big"

	sdkmath "cosmossdk.io/math"

	"github.com/undercity-labs/faction-economy/internal/types"
)

// Zone premium applied on top of a territory's base value, in bps.
// NoGo zones trade at a risk premium: low security means unchecked resource
// extraction.
func zonePremiumBps(zone types.ZoneType) int64 {
	switch zone {
	case types.ZoneHighSecurity:
		return 2000
	case types.ZoneNoGo:
		return 3500
	default:
		return 0
	}
}

// Base transaction tax per zone, in bps.
func zoneBaseTaxBps(zone types.ZoneType) uint64 {
	switch zone {
	case types.ZoneHighSecurity:
		return 500
	case types.ZoneMediumSecurity:
		return 300
	case types.ZoneNoGo:
		return 100
	default:
		return 0
	}
}

// CalculateTerritoryValue computes the block-accrual valuation of a territory:
// the base value plus the zone premium, plus resources accrued since the last
// update valued at Params.ResourceUnitValue per unit. Contested territories
// lose 20% of the pre-penalty total.
func CalculateTerritoryValue(
	p Params,
	baseValue sdkmath.Int,
	zone types.ZoneType,
	resourceRate sdkmath.Int,
	contested bool,
	lastUpdateBlock, currentBlock uint64,
) sdkmath.Int {
	if baseValue.IsNil() {
		baseValue = sdkmath.ZeroInt()
	}
	value := baseValue.Add(baseValue.MulRaw(zonePremiumBps(zone)).QuoRaw(BpsDenominator))

	if !resourceRate.IsNil() && currentBlock > lastUpdateBlock {
		blocks := currentBlock - lastUpdateBlock
		accrued := resourceRate.MulRaw(int64(blocks)).Mul(p.ResourceUnitValue)
		value = value.Add(accrued)
	}

	if contested {
		value = value.MulRaw(8000).QuoRaw(BpsDenominator)
	}
	return value
}

// CalculateTerritoryRevenueValue is the valuation used by the revenue boost
// path. It is deliberately kept separate from CalculateTerritoryValue: the two
// formulas carry different contested penalties (30% here vs 20% there) and
// serve different consumers. The bonus is multiplicative on the base value:
// economic activity adds up to 100%, control duration adds up to 50% on a
// square-root curve.
func CalculateTerritoryRevenueValue(
	baseValue sdkmath.Int,
	economicActivity uint64,
	controlDurationSeconds uint64,
	contested bool,
) sdkmath.Int {
	if baseValue.IsNil() {
		return sdkmath.ZeroInt()
	}

	activityBonus := uint64(10000)
	if economicActivity < 1000 {
		activityBonus = economicActivity * 10
	}
	durationBonus := uint64(5000)
	if root := isqrt(controlDurationSeconds); root < 500 {
		durationBonus = root * 10
	}

	multiplier := int64(BpsDenominator + activityBonus + durationBonus)
	value := baseValue.MulRaw(multiplier).QuoRaw(BpsDenominator)

	if contested {
		value = value.MulRaw(7000).QuoRaw(BpsDenominator)
	}
	return value
}

// CalculateTerritoryTaxRate derives the transaction tax rate for a territory
// from the zone base rate, the controlling faction's policy multiplier, and a
// 1.3x contest surcharge.
func CalculateTerritoryTaxRate(
	zone types.ZoneType,
	controllingFaction types.FactionID,
	contested bool,
) uint64 {
	rate := zoneBaseTaxBps(zone)

	switch controllingFaction {
	case types.FactionLawEnforcement:
		rate = rate * 120 / 100
	case types.FactionCriminal:
		rate = rate * 50 / 100
	case types.FactionVigilante:
		rate = rate * 80 / 100
	}

	if contested {
		rate = rate * 130 / 100
	}
	return rate
}

// CalculateTerritoryConnection scores the connection strength between two
// territories on a 0-100 scale. Distance dominates; a shared border and a
// matching zone type strengthen the link, while a HighSecurity/NoGo pairing
// weakens it. Scores beyond the distance horizon yield no connection.
func CalculateTerritoryConnection(
	distanceScore uint64,
	hasBorder bool,
	zoneA, zoneB types.ZoneType,
) uint64 {
	if distanceScore > 100 {
		return 0
	}

	strength := int64(100 - distanceScore)
	if hasBorder {
		strength += 50
	}
	if zoneA == zoneB {
		strength += 20
	} else if zoneA.Incompatible(zoneB) {
		strength -= 30
	}

	if strength < 0 {
		return 0
	}
	if strength > 100 {
		return 100
	}
	return uint64(strength)
}

// ConnectionGraph is an adjacency view over a symmetric strength matrix.
// Strengths[i][k] holds the strength of the edge Adjacency[i][k].
type ConnectionGraph struct {
	Adjacency [][]int
	Strengths [][]uint64
}

// MapTerritoryConnections filters a symmetric strength matrix down to the
// edges at or above minStrength. Self edges are never included.
func MapTerritoryConnections(strengthMatrix [][]uint64, minStrength uint64) ConnectionGraph {
	n := len(strengthMatrix)
	graph := ConnectionGraph{
		Adjacency: make([][]int, n),
		Strengths: make([][]uint64, n),
	}
	for i := range strengthMatrix {
		for j, strength := range strengthMatrix[i] {
			if i == j || strength < minStrength {
				continue
			}
			graph.Adjacency[i] = append(graph.Adjacency[i], j)
			graph.Strengths[i] = append(graph.Strengths[i], strength)
		}
	}
	return graph
}

// CalculateResourceFlow computes the net resource flow per territory across
// the connection graph. Every directed edge a->b moves
// rates[a]*strength(a,b)*flowBps/10000 from a to b; the per-territory net may
// be negative (net exporter) or positive (net importer), and the sum over any
// connected component is zero by construction.
func CalculateResourceFlow(
	rates []sdkmath.Int,
	graph ConnectionGraph,
	flowBps uint64,
) []sdkmath.Int {
	netFlow := make([]sdkmath.Int, len(rates))
	for i := range netFlow {
		netFlow[i] = sdkmath.ZeroInt()
	}

	for a, neighbors := range graph.Adjacency {
		if a >= len(rates) || rates[a].IsNil() {
			continue
		}
		for k, b := range neighbors {
			if b >= len(rates) {
				continue
			}
			outflow := rates[a].
				MulRaw(int64(graph.Strengths[a][k])).
				MulRaw(int64(flowBps)).
				QuoRaw(BpsDenominator)
			netFlow[a] = netFlow[a].Sub(outflow)
			netFlow[b] = netFlow[b].Add(outflow)
		}
	}
	return netFlow
}

func isqrt(n uint64) uint64 {
	return new(big.Int).Sqrt(new(big.Int).SetUint64(n)).Uint64()
}
