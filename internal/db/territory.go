package db

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/undercity-labs/faction-economy/internal/db/model"
)

func (db *Database) UpsertTerritory(ctx context.Context, territoryDoc *model.TerritoryDocument) error {
	collection := db.collection(model.TerritoryCollection)

	filter := bson.M{"_id": territoryDoc.ID}
	update := bson.M{"$set": territoryDoc}

	_, err := collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (db *Database) GetTerritory(ctx context.Context, territoryID string) (*model.TerritoryDocument, error) {
	filter := bson.M{"_id": territoryID}
	res := db.collection(model.TerritoryCollection).FindOne(ctx, filter)

	var territoryDoc model.TerritoryDocument
	if err := res.Decode(&territoryDoc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     territoryID,
				Message: "territory not found",
			}
		}
		return nil, err
	}

	return &territoryDoc, nil
}

// GetTerritories pages through territories in _id order. Pass an empty lastID
// for the first page; subsequent pages resume after the previous page's last
// document.
func (db *Database) GetTerritories(ctx context.Context, lastID string, limit uint64) ([]model.TerritoryDocument, error) {
	filter := bson.M{}
	if lastID != "" {
		filter["_id"] = bson.M{"$gt": lastID}
	}

	opts := options.Find().
		SetSort(bson.M{"_id": 1}).
		SetLimit(int64(limit))
	cursor, err := db.collection(model.TerritoryCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find territories: %w", err)
	}
	defer cursor.Close(ctx)

	var territories []model.TerritoryDocument
	if err = cursor.All(ctx, &territories); err != nil {
		return nil, err
	}

	return territories, nil
}

// UpdateTerritoryControl writes the outcome of a control resolution. The
// control_changed_at timestamp only moves when the controlling faction
// actually changes hands.
func (db *Database) UpdateTerritoryControl(
	ctx context.Context,
	territoryID string,
	controllingFaction uint8,
	controlSharePct uint64,
	contested bool,
	resolvedAt int64,
) error {
	collection := db.collection(model.TerritoryCollection)

	// First pass: record a handover timestamp only if the faction differs.
	handoverFilter := bson.M{
		"_id":                 territoryID,
		"controlling_faction": bson.M{"$ne": controllingFaction},
	}
	handoverUpdate := bson.M{"$set": bson.M{"control_changed_at": resolvedAt}}
	if _, err := collection.UpdateOne(ctx, handoverFilter, handoverUpdate); err != nil {
		return err
	}

	filter := bson.M{"_id": territoryID}
	update := bson.M{
		"$set": bson.M{
			"controlling_faction": controllingFaction,
			"control_share_pct":   controlSharePct,
			"contested":           contested,
		},
	}

	res := collection.FindOneAndUpdate(ctx, filter, update)
	if res.Err() != nil {
		if errors.Is(res.Err(), mongo.ErrNoDocuments) {
			return &NotFoundError{
				Key:     territoryID,
				Message: "territory not found",
			}
		}
		return res.Err()
	}
	return nil
}

func (db *Database) UpdateTerritoryValuation(
	ctx context.Context,
	territoryID string,
	value uint64,
	netResourceFlow int64,
	lastUpdateBlock uint64,
) error {
	filter := bson.M{"_id": territoryID}
	update := bson.M{
		"$set": bson.M{
			"value":             value,
			"net_resource_flow": netResourceFlow,
			"last_update_block": lastUpdateBlock,
		},
	}

	res := db.collection(model.TerritoryCollection).FindOneAndUpdate(ctx, filter, update)
	if res.Err() != nil {
		if errors.Is(res.Err(), mongo.ErrNoDocuments) {
			return &NotFoundError{
				Key:     territoryID,
				Message: "territory not found",
			}
		}
		return res.Err()
	}
	return nil
}

func (db *Database) UpdateTerritoryActivity(ctx context.Context, territoryID string, economicActivity uint64) error {
	filter := bson.M{"_id": territoryID}
	update := bson.M{"$set": bson.M{"economic_activity": economicActivity}}

	res := db.collection(model.TerritoryCollection).FindOneAndUpdate(ctx, filter, update)
	if res.Err() != nil {
		if errors.Is(res.Err(), mongo.ErrNoDocuments) {
			return &NotFoundError{
				Key:     territoryID,
				Message: "territory not found",
			}
		}
		return res.Err()
	}
	return nil
}

// CountContestedTerritories backs the contested territories gauge.
func (db *Database) CountContestedTerritories(ctx context.Context) (int64, error) {
	filter := bson.M{"contested": true}
	return db.collection(model.TerritoryCollection).CountDocuments(ctx, filter)
}
