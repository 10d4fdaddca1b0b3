package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/undercity-labs/faction-economy/internal/db/model"
)

// CreditTreasury adds amount to a treasury balance, creating the document on
// first credit. Balances are monotonically increasing from this service's
// perspective; spending happens elsewhere.
func (db *Database) CreditTreasury(ctx context.Context, treasuryID string, amount uint64) error {
	filter := bson.M{"_id": treasuryID}
	update := bson.M{"$inc": bson.M{"balance": amount}}

	_, err := db.collection(model.TreasuryCollection).
		UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// CreditTreasuryBuckets credits the DAO treasury's earmarked buckets alongside
// the headline balance.
func (db *Database) CreditTreasuryBuckets(
	ctx context.Context,
	treasuryID string,
	operational, development, marketing, community, reserve uint64,
) error {
	total := operational + development + marketing + community + reserve

	filter := bson.M{"_id": treasuryID}
	update := bson.M{
		"$inc": bson.M{
			"balance":     total,
			"operational": operational,
			"development": development,
			"marketing":   marketing,
			"community":   community,
			"reserve":     reserve,
		},
	}

	_, err := db.collection(model.TreasuryCollection).
		UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (db *Database) GetTreasury(ctx context.Context, treasuryID string) (*model.TreasuryDocument, error) {
	filter := bson.M{"_id": treasuryID}
	res := db.collection(model.TreasuryCollection).FindOne(ctx, filter)

	var treasuryDoc model.TreasuryDocument
	if err := res.Decode(&treasuryDoc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     treasuryID,
				Message: "treasury not found",
			}
		}
		return nil, err
	}

	return &treasuryDoc, nil
}
