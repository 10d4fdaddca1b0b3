package db

import (
	"context"
	"time"

	"github.com/undercity-labs/faction-economy/internal/db/model"
	"github.com/undercity-labs/faction-economy/internal/observability/metrics"
	"github.com/undercity-labs/faction-economy/internal/types"
)

type DbWithMetrics struct {
	db DbInterface
}

func NewDbWithMetrics(db DbInterface) *DbWithMetrics {
	return &DbWithMetrics{db: db}
}

func (d *DbWithMetrics) Ping(ctx context.Context) error {
	return d.db.Ping(ctx)
}

func (d *DbWithMetrics) SaveNewStake(ctx context.Context, stakeDoc *model.StakeDocument) error {
	return d.run("SaveNewStake", func() error {
		return d.db.SaveNewStake(ctx, stakeDoc)
	})
}

func (d *DbWithMetrics) GetStakeByID(ctx context.Context, stakeID string) (result *model.StakeDocument, err error) {
	//nolint:errcheck
	d.run("GetStakeByID", func() error {
		result, err = d.db.GetStakeByID(ctx, stakeID)
		return err
	})
	return
}

func (d *DbWithMetrics) UpdateStakeClaimTime(ctx context.Context, stakeID string, claimTime int64) error {
	return d.run("UpdateStakeClaimTime", func() error {
		return d.db.UpdateStakeClaimTime(ctx, stakeID, claimTime)
	})
}

func (d *DbWithMetrics) ReduceStakeAmount(ctx context.Context, stakeID string, newAmount uint64) error {
	return d.run("ReduceStakeAmount", func() error {
		return d.db.ReduceStakeAmount(ctx, stakeID, newAmount)
	})
}

func (d *DbWithMetrics) DeactivateStake(ctx context.Context, stakeID string) error {
	return d.run("DeactivateStake", func() error {
		return d.db.DeactivateStake(ctx, stakeID)
	})
}

func (d *DbWithMetrics) GetActiveStakesByTerritory(ctx context.Context, territoryID string, limit uint64) (result []model.StakeDocument, err error) {
	//nolint:errcheck
	d.run("GetActiveStakesByTerritory", func() error {
		result, err = d.db.GetActiveStakesByTerritory(ctx, territoryID, limit)
		return err
	})
	return
}

func (d *DbWithMetrics) GetStakeSnapshot(ctx context.Context, territoryID string) (result *types.StakeSnapshot, err error) {
	//nolint:errcheck
	d.run("GetStakeSnapshot", func() error {
		result, err = d.db.GetStakeSnapshot(ctx, territoryID)
		return err
	})
	return
}

func (d *DbWithMetrics) GetTotalActiveStake(ctx context.Context) (result uint64, err error) {
	//nolint:errcheck
	d.run("GetTotalActiveStake", func() error {
		result, err = d.db.GetTotalActiveStake(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) GetFactionStakeTotals(ctx context.Context) (result [types.FactionCount]uint64, err error) {
	//nolint:errcheck
	d.run("GetFactionStakeTotals", func() error {
		result, err = d.db.GetFactionStakeTotals(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) UpsertTerritory(ctx context.Context, territoryDoc *model.TerritoryDocument) error {
	return d.run("UpsertTerritory", func() error {
		return d.db.UpsertTerritory(ctx, territoryDoc)
	})
}

func (d *DbWithMetrics) GetTerritory(ctx context.Context, territoryID string) (result *model.TerritoryDocument, err error) {
	//nolint:errcheck
	d.run("GetTerritory", func() error {
		result, err = d.db.GetTerritory(ctx, territoryID)
		return err
	})
	return
}

func (d *DbWithMetrics) GetTerritories(ctx context.Context, lastID string, limit uint64) (result []model.TerritoryDocument, err error) {
	//nolint:errcheck
	d.run("GetTerritories", func() error {
		result, err = d.db.GetTerritories(ctx, lastID, limit)
		return err
	})
	return
}

func (d *DbWithMetrics) UpdateTerritoryControl(ctx context.Context, territoryID string, controllingFaction uint8, controlSharePct uint64, contested bool, resolvedAt int64) error {
	return d.run("UpdateTerritoryControl", func() error {
		return d.db.UpdateTerritoryControl(ctx, territoryID, controllingFaction, controlSharePct, contested, resolvedAt)
	})
}

func (d *DbWithMetrics) UpdateTerritoryValuation(ctx context.Context, territoryID string, value uint64, netResourceFlow int64, lastUpdateBlock uint64) error {
	return d.run("UpdateTerritoryValuation", func() error {
		return d.db.UpdateTerritoryValuation(ctx, territoryID, value, netResourceFlow, lastUpdateBlock)
	})
}

func (d *DbWithMetrics) UpdateTerritoryActivity(ctx context.Context, territoryID string, economicActivity uint64) error {
	return d.run("UpdateTerritoryActivity", func() error {
		return d.db.UpdateTerritoryActivity(ctx, territoryID, economicActivity)
	})
}

func (d *DbWithMetrics) CountContestedTerritories(ctx context.Context) (result int64, err error) {
	//nolint:errcheck
	d.run("CountContestedTerritories", func() error {
		result, err = d.db.CountContestedTerritories(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) CreditTreasury(ctx context.Context, treasuryID string, amount uint64) error {
	return d.run("CreditTreasury", func() error {
		return d.db.CreditTreasury(ctx, treasuryID, amount)
	})
}

func (d *DbWithMetrics) CreditTreasuryBuckets(ctx context.Context, treasuryID string, operational, development, marketing, community, reserve uint64) error {
	return d.run("CreditTreasuryBuckets", func() error {
		return d.db.CreditTreasuryBuckets(ctx, treasuryID, operational, development, marketing, community, reserve)
	})
}

func (d *DbWithMetrics) GetTreasury(ctx context.Context, treasuryID string) (result *model.TreasuryDocument, err error) {
	//nolint:errcheck
	d.run("GetTreasury", func() error {
		result, err = d.db.GetTreasury(ctx, treasuryID)
		return err
	})
	return
}

func (d *DbWithMetrics) SaveRevenueEpoch(ctx context.Context, epochDoc *model.RevenueEpochDocument) error {
	return d.run("SaveRevenueEpoch", func() error {
		return d.db.SaveRevenueEpoch(ctx, epochDoc)
	})
}

func (d *DbWithMetrics) GetLatestRevenueEpoch(ctx context.Context) (result *model.RevenueEpochDocument, err error) {
	//nolint:errcheck
	d.run("GetLatestRevenueEpoch", func() error {
		result, err = d.db.GetLatestRevenueEpoch(ctx)
		return err
	})
	return
}

// run is private method that executes passed lambda function and send metrics data with spent time, method name
// and an error if any. It returns the error from the lambda function for convenience
func (d *DbWithMetrics) run(method string, f func() error) error {
	startTime := time.Now()
	err := f()
	duration := time.Since(startTime)

	metrics.RecordDbLatency(duration, method, err != nil)
	return err
}
