package db

import (
	"context"

	"github.com/undercity-labs/faction-economy/internal/db/model"
	"github.com/undercity-labs/faction-economy/internal/types"
)

type DbInterface interface {
	Ping(ctx context.Context) error

	SaveNewStake(ctx context.Context, stakeDoc *model.StakeDocument) error
	GetStakeByID(ctx context.Context, stakeID string) (*model.StakeDocument, error)
	UpdateStakeClaimTime(ctx context.Context, stakeID string, claimTime int64) error
	ReduceStakeAmount(ctx context.Context, stakeID string, newAmount uint64) error
	DeactivateStake(ctx context.Context, stakeID string) error
	GetActiveStakesByTerritory(ctx context.Context, territoryID string, limit uint64) ([]model.StakeDocument, error)
	GetStakeSnapshot(ctx context.Context, territoryID string) (*types.StakeSnapshot, error)
	GetTotalActiveStake(ctx context.Context) (uint64, error)
	GetFactionStakeTotals(ctx context.Context) ([types.FactionCount]uint64, error)

	UpsertTerritory(ctx context.Context, territoryDoc *model.TerritoryDocument) error
	GetTerritory(ctx context.Context, territoryID string) (*model.TerritoryDocument, error)
	GetTerritories(ctx context.Context, lastID string, limit uint64) ([]model.TerritoryDocument, error)
	UpdateTerritoryControl(ctx context.Context, territoryID string, controllingFaction uint8, controlSharePct uint64, contested bool, resolvedAt int64) error
	UpdateTerritoryValuation(ctx context.Context, territoryID string, value uint64, netResourceFlow int64, lastUpdateBlock uint64) error
	UpdateTerritoryActivity(ctx context.Context, territoryID string, economicActivity uint64) error
	CountContestedTerritories(ctx context.Context) (int64, error)

	CreditTreasury(ctx context.Context, treasuryID string, amount uint64) error
	CreditTreasuryBuckets(ctx context.Context, treasuryID string, operational, development, marketing, community, reserve uint64) error
	GetTreasury(ctx context.Context, treasuryID string) (*model.TreasuryDocument, error)

	SaveRevenueEpoch(ctx context.Context, epochDoc *model.RevenueEpochDocument) error
	GetLatestRevenueEpoch(ctx context.Context) (*model.RevenueEpochDocument, error)
}
