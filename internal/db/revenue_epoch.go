package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/undercity-labs/faction-economy/internal/db/model"
)

func (db *Database) SaveRevenueEpoch(ctx context.Context, epochDoc *model.RevenueEpochDocument) error {
	_, err := db.collection(model.RevenueEpochCollection).InsertOne(ctx, epochDoc)
	if err != nil {
		var writeErr mongo.WriteException
		if errors.As(err, &writeErr) {
			for _, e := range writeErr.WriteErrors {
				if mongo.IsDuplicateKeyError(e) {
					return &DuplicateKeyError{
						Key:     epochDoc.ID,
						Message: "revenue epoch already settled",
					}
				}
			}
		}
		return err
	}
	return nil
}

func (db *Database) GetLatestRevenueEpoch(ctx context.Context) (*model.RevenueEpochDocument, error) {
	opts := options.FindOne().SetSort(bson.M{"settled_at": -1})
	res := db.collection(model.RevenueEpochCollection).FindOne(ctx, bson.M{}, opts)

	var epochDoc model.RevenueEpochDocument
	if err := res.Decode(&epochDoc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     model.RevenueEpochCollection,
				Message: "no revenue epoch settled yet",
			}
		}
		return nil, err
	}

	return &epochDoc, nil
}
