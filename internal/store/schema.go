package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/VladPetriv/finance_tracker/internal/models"
	"github.com/VladPetriv/finance_tracker/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// namespaceExistsCode is returned by MongoDB when the collection is already created.
const namespaceExistsCode = 48

var categoryValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": bson.A{"_id", "name"},
		"properties": bson.M{
			"_id":  bson.M{"bsonType": "string"},
			"name": bson.M{"bsonType": "string"},
		},
	},
}

var transactionValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": bson.A{"_id", "title", "amount", "type", "date"},
		"properties": bson.M{
			"_id":      bson.M{"bsonType": "string"},
			"title":    bson.M{"bsonType": "string"},
			"amount":   bson.M{"bsonType": bson.A{"decimal", "double", "int", "long"}},
			"type":     bson.M{"enum": transactionTypes()},
			"category": bson.M{"bsonType": "string"},
			"date":     bson.M{"bsonType": "date"},
		},
	},
}

func transactionTypes() bson.A {
	types := make(bson.A, 0, len(models.TransactionTypes))
	for _, t := range models.TransactionTypes {
		types = append(types, string(t))
	}

	return types
}

// EnsureSchema creates the collections with their validators.
// Validators of already existing collections are replaced.
func EnsureSchema(ctx context.Context, db *database.MongoDB) error {
	collections := []struct {
		name      string
		validator bson.M
	}{
		{name: collectionCategory, validator: categoryValidator},
		{name: collectionTransaction, validator: transactionValidator},
	}

	for _, c := range collections {
		err := db.DB.CreateCollection(ctx, c.name, options.CreateCollection().SetValidator(c.validator))
		if err == nil {
			continue
		}

		var commandErr mongo.CommandError
		if !errors.As(err, &commandErr) || commandErr.Code != namespaceExistsCode {
			return fmt.Errorf("create %s collection: %w", c.name, err)
		}

		err = db.DB.RunCommand(ctx, bson.D{
			{Key: "collMod", Value: c.name},
			{Key: "validator", Value: c.validator},
		}).Err()
		if err != nil {
			return fmt.Errorf("update %s collection validator: %w", c.name, err)
		}
	}

	return nil
}
