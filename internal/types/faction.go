package types

import "fmt"

// FactionID identifies one of the three in-world factions. The zero value
// means "no faction" and is a valid state for unaffiliated actors and
// uncontrolled territories.
type FactionID uint8

const (
	FactionNone FactionID = iota
	FactionLawEnforcement
	FactionCriminal
	FactionVigilante

	// FactionCount is the number of faction slots including the unused
	// FactionNone index. Per-faction arrays are sized with it so that a
	// FactionID can index them directly.
	FactionCount = 4
)

func (f FactionID) String() string {
	switch f {
	case FactionNone:
		return "NONE"
	case FactionLawEnforcement:
		return "LAW_ENFORCEMENT"
	case FactionCriminal:
		return "CRIMINAL"
	case FactionVigilante:
		return "VIGILANTE"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint8(f))
	}
}

// IsSet reports whether the id refers to an actual faction.
func (f FactionID) IsSet() bool {
	return f != FactionNone && f.Valid()
}

func (f FactionID) Valid() bool {
	return f < FactionCount
}

// ParseFactionID converts a stored faction index back into a FactionID.
func ParseFactionID(raw uint8) (FactionID, error) {
	f := FactionID(raw)
	if !f.Valid() {
		return FactionNone, fmt.Errorf("invalid faction id: %d", raw)
	}
	return f, nil
}
