package testutil

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"github.com/undercity-labs/faction-economy/internal/db/model"
	"github.com/undercity-labs/faction-economy/internal/types"
)

// RandomStakeDocument returns an active stake in the given territory with
// field values inside the ranges the engine expects.
func RandomStakeDocument(territoryID string) *model.StakeDocument {
	now := time.Now().Unix()
	return &model.StakeDocument{
		ID:                 uuid.New().String(),
		Owner:              gofakeit.Username(),
		TerritoryID:        territoryID,
		FactionID:          uint8(gofakeit.Number(1, types.FactionCount-1)),
		Amount:             uint64(gofakeit.Number(1_000, 1_000_000_000)),
		StartTime:          now - int64(gofakeit.Number(0, 90*24*3600)),
		LastClaimTime:      now,
		Active:             true,
		OriginalLockPeriod: uint64(gofakeit.Number(7*24*3600, 365*24*3600)),
	}
}

// RandomTerritoryDocument returns an uncontrolled territory on a random grid
// cell.
func RandomTerritoryDocument() *model.TerritoryDocument {
	zones := []types.ZoneType{
		types.ZoneHighSecurity,
		types.ZoneMediumSecurity,
		types.ZoneNoGo,
	}
	return &model.TerritoryDocument{
		ID:              uuid.New().String(),
		Name:            gofakeit.City(),
		ZoneType:        zones[gofakeit.Number(0, len(zones)-1)].String(),
		GridX:           int64(gofakeit.Number(0, 50)),
		GridY:           int64(gofakeit.Number(0, 50)),
		BaseValue:       uint64(gofakeit.Number(1_000, 10_000_000)),
		ResourceRate:    uint64(gofakeit.Number(0, 1_000)),
		LastUpdateBlock: uint64(time.Now().Unix()),
	}
}
