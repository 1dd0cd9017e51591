package store

import (
	"context"

	"github.com/VladPetriv/finance_tracker/internal/models"
	"github.com/VladPetriv/finance_tracker/internal/service"
	"github.com/VladPetriv/finance_tracker/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
)

type transactionStore struct {
	*database.MongoDB
}

var _ service.TransactionStore = (*transactionStore)(nil)

const collectionTransaction = "transactions"

// NewTransaction returns new instance of transactions store.
func NewTransaction(db *database.MongoDB) *transactionStore {
	return &transactionStore{
		db,
	}
}

func (t transactionStore) Create(ctx context.Context, transaction *models.Transaction) error {
	_, err := t.DB.Collection(collectionTransaction).InsertOne(ctx, transaction)
	return wrapError(err)
}

func (t transactionStore) List(ctx context.Context) ([]models.Transaction, error) {
	cursor, err := t.DB.Collection(collectionTransaction).Find(ctx, bson.M{})
	if err != nil {
		return nil, wrapError(err)
	}

	transactions := make([]models.Transaction, 0)
	if err := cursor.All(ctx, &transactions); err != nil {
		return nil, wrapError(err)
	}

	return transactions, nil
}

func (t transactionStore) Delete(ctx context.Context, transactionID string) (bool, error) {
	result, err := t.DB.Collection(collectionTransaction).DeleteOne(ctx, bson.M{"_id": transactionID})
	if err != nil {
		return false, wrapError(err)
	}

	return result.DeletedCount > 0, nil
}
