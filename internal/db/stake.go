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

func (db *Database) SaveNewStake(ctx context.Context, stakeDoc *model.StakeDocument) error {
	_, err := db.collection(model.StakeCollection).InsertOne(ctx, stakeDoc)
	if err != nil {
		var writeErr mongo.WriteException
		if errors.As(err, &writeErr) {
			for _, e := range writeErr.WriteErrors {
				if mongo.IsDuplicateKeyError(e) {
					return &DuplicateKeyError{
						Key:     stakeDoc.ID,
						Message: "stake already exists",
					}
				}
			}
		}
		return err
	}
	return nil
}

func (db *Database) GetStakeByID(ctx context.Context, stakeID string) (*model.StakeDocument, error) {
	filter := bson.M{"_id": stakeID}
	res := db.collection(model.StakeCollection).FindOne(ctx, filter)

	var stakeDoc model.StakeDocument
	if err := res.Decode(&stakeDoc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     stakeID,
				Message: "stake not found",
			}
		}
		return nil, err
	}

	return &stakeDoc, nil
}

// UpdateStakeClaimTime records a reward claim. Claims against inactive stakes
// are rejected so rewards cannot accrue past a full unstake.
func (db *Database) UpdateStakeClaimTime(ctx context.Context, stakeID string, claimTime int64) error {
	filter := bson.M{"_id": stakeID, "active": true}
	update := bson.M{"$set": bson.M{"last_claim_time": claimTime}}

	res := db.collection(model.StakeCollection).FindOneAndUpdate(ctx, filter, update)
	if res.Err() != nil {
		if errors.Is(res.Err(), mongo.ErrNoDocuments) {
			return &NotFoundError{
				Key:     stakeID,
				Message: "stake not found or not active",
			}
		}
		return res.Err()
	}
	return nil
}

// ReduceStakeAmount applies a partial unstake. The filter requires the current
// amount to exceed the new one, which both validates the request and makes
// concurrent reductions safe.
func (db *Database) ReduceStakeAmount(ctx context.Context, stakeID string, newAmount uint64) error {
	filter := bson.M{
		"_id":    stakeID,
		"active": true,
		"amount": bson.M{"$gt": newAmount},
	}
	update := bson.M{"$set": bson.M{"amount": newAmount}}

	res := db.collection(model.StakeCollection).FindOneAndUpdate(ctx, filter, update)
	if res.Err() != nil {
		if errors.Is(res.Err(), mongo.ErrNoDocuments) {
			return &NotFoundError{
				Key:     stakeID,
				Message: "stake not found, not active, or amount not reduced",
			}
		}
		return res.Err()
	}
	return nil
}

// DeactivateStake flips a stake to inactive on full unstake. The document is
// kept for the audit trail.
func (db *Database) DeactivateStake(ctx context.Context, stakeID string) error {
	filter := bson.M{"_id": stakeID, "active": true}
	update := bson.M{"$set": bson.M{"active": false}}

	res := db.collection(model.StakeCollection).FindOneAndUpdate(ctx, filter, update)
	if res.Err() != nil {
		if errors.Is(res.Err(), mongo.ErrNoDocuments) {
			return &NotFoundError{
				Key:     stakeID,
				Message: "stake not found or already inactive",
			}
		}
		return res.Err()
	}
	return nil
}

func (db *Database) GetActiveStakesByTerritory(ctx context.Context, territoryID string, limit uint64) ([]model.StakeDocument, error) {
	filter := bson.M{"territory_id": territoryID, "active": true}

	opts := options.Find().SetLimit(int64(limit))
	cursor, err := db.collection(model.StakeCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find active stakes for territory %s: %w", territoryID, err)
	}
	defer cursor.Close(ctx)

	var stakes []model.StakeDocument
	if err = cursor.All(ctx, &stakes); err != nil {
		return nil, err
	}

	return stakes, nil
}
