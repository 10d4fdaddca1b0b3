package economy

import "errors"

var (
	ErrNoStakes                   = errors.New("stakes must not be empty")
	ErrNoFactions                 = errors.New("factions must not be empty")
	ErrZeroWeights                = errors.New("at least one treasury weight must be nonzero")
	ErrBaseSplitTooLarge          = errors.New("base split times faction count exceeds 100%")
	ErrInvalidPeriodBounds        = errors.New("min stake period must be below max stake period")
	ErrInvalidPenaltyBounds       = errors.New("penalty bounds must satisfy min <= max <= 10000 bps")
	ErrInvalidMaxMultiplier       = errors.New("max multiplier must be at least 1x")
	ErrInvalidMinFee              = errors.New("min fee must be a non-negative amount")
	ErrInvalidMinimumDistribution = errors.New("minimum distribution must be a non-negative amount")
	ErrInvalidResourceUnitValue   = errors.New("resource unit value must be a non-negative amount")
)
