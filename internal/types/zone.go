package types

import "fmt"

// ZoneType classifies the security profile of a territory. It drives the
// valuation premium and the base tax rate tables in the economy package.
type ZoneType string

const (
	ZoneHighSecurity   ZoneType = "HIGH_SECURITY"
	ZoneMediumSecurity ZoneType = "MEDIUM_SECURITY"
	ZoneNoGo           ZoneType = "NO_GO"
)

func (z ZoneType) String() string {
	return string(z)
}

func (z ZoneType) Valid() bool {
	switch z {
	case ZoneHighSecurity, ZoneMediumSecurity, ZoneNoGo:
		return true
	default:
		return false
	}
}

// Incompatible reports whether two zone types clash for the purpose of
// inter-territory connections. Only the HighSecurity/NoGo pairing clashes.
func (z ZoneType) Incompatible(other ZoneType) bool {
	return (z == ZoneHighSecurity && other == ZoneNoGo) ||
		(z == ZoneNoGo && other == ZoneHighSecurity)
}

func ParseZoneType(raw string) (ZoneType, error) {
	z := ZoneType(raw)
	if !z.Valid() {
		return "", fmt.Errorf("invalid zone type: %q", raw)
	}
	return z, nil
}
