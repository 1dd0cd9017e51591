package store

import (
	"context"
	"errors"

	"github.com/VladPetriv/finance_tracker/internal/models"
	"github.com/VladPetriv/finance_tracker/internal/service"
	"github.com/VladPetriv/finance_tracker/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type categoryStore struct {
	*database.MongoDB
}

var _ service.CategoryStore = (*categoryStore)(nil)

const collectionCategory = "categories"

// NewCategory returns a new instance of the category store.
func NewCategory(db *database.MongoDB) *categoryStore {
	return &categoryStore{
		db,
	}
}

func (c categoryStore) Create(ctx context.Context, category *models.Category) error {
	_, err := c.DB.Collection(collectionCategory).InsertOne(ctx, category)
	return wrapError(err)
}

func (c categoryStore) List(ctx context.Context) ([]models.Category, error) {
	cursor, err := c.DB.Collection(collectionCategory).Find(ctx, bson.M{})
	if err != nil {
		return nil, wrapError(err)
	}

	categories := make([]models.Category, 0)
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, wrapError(err)
	}

	return categories, nil
}

func (c categoryStore) Get(ctx context.Context, filter service.GetCategoryFilter) (*models.Category, error) {
	var category models.Category

	err := c.DB.Collection(collectionCategory).FindOne(ctx, bson.M{"_id": filter.ID}).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}

		return nil, wrapError(err)
	}

	return &category, nil
}
