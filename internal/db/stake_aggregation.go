package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/undercity-labs/faction-economy/internal/db/model"
	"github.com/undercity-labs/faction-economy/internal/types"
)

// GetStakeSnapshot groups a territory's active stake by faction using a
// MongoDB aggregation pipeline. This is much more efficient than loading all
// stakes into memory.
func (db *Database) GetStakeSnapshot(ctx context.Context, territoryID string) (*types.StakeSnapshot, error) {
	collection := db.collection(model.StakeCollection)

	pipeline := bson.A{
		// Match only active stakes in this territory
		bson.M{
			"$match": bson.M{
				"territory_id": territoryID,
				"active":       true,
			},
		},
		// Group by faction to sum staked amounts
		bson.M{
			"$group": bson.M{
				"_id":          "$faction_id",
				"total_staked": bson.M{"$sum": "$amount"},
			},
		},
	}

	cursor, err := collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		FactionID   uint8  `bson:"_id"`
		TotalStaked uint64 `bson:"total_staked"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	snapshot := &types.StakeSnapshot{TerritoryID: territoryID}
	for _, row := range rows {
		if row.FactionID >= types.FactionCount {
			continue
		}
		snapshot.FactionStakes[row.FactionID] += row.TotalStaked
		snapshot.TotalStaked += row.TotalStaked
	}

	return snapshot, nil
}

// GetTotalActiveStake sums active stake across all territories.
func (db *Database) GetTotalActiveStake(ctx context.Context) (uint64, error) {
	collection := db.collection(model.StakeCollection)

	pipeline := bson.A{
		bson.M{
			"$match": bson.M{
				"active": true,
			},
		},
		bson.M{
			"$group": bson.M{
				"_id":          nil,
				"total_staked": bson.M{"$sum": "$amount"},
			},
		},
	}

	cursor, err := collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var totalStaked uint64
	if cursor.Next(ctx) {
		var result struct {
			TotalStaked uint64 `bson:"total_staked"`
		}
		if err := cursor.Decode(&result); err != nil {
			return 0, err
		}
		totalStaked = result.TotalStaked
	}

	return totalStaked, nil
}

// GetFactionStakeTotals sums active stake per faction across all territories.
// Used to derive faction influence for revenue settlement.
func (db *Database) GetFactionStakeTotals(ctx context.Context) ([types.FactionCount]uint64, error) {
	var totals [types.FactionCount]uint64

	collection := db.collection(model.StakeCollection)

	pipeline := bson.A{
		bson.M{
			"$match": bson.M{
				"active": true,
			},
		},
		bson.M{
			"$group": bson.M{
				"_id":          "$faction_id",
				"total_staked": bson.M{"$sum": "$amount"},
			},
		},
	}

	cursor, err := collection.Aggregate(ctx, pipeline)
	if err != nil {
		return totals, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		FactionID   uint8  `bson:"_id"`
		TotalStaked uint64 `bson:"total_staked"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return totals, err
	}

	for _, row := range rows {
		if row.FactionID >= types.FactionCount {
			continue
		}
		totals[row.FactionID] += row.TotalStaked
	}

	return totals, nil
}
