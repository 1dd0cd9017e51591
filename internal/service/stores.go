package service

import (
	"context"

	"github.com/VladPetriv/finance_tracker/internal/models"
)

// Stores represents all stores.
type Stores struct {
	Category    CategoryStore
	Transaction TransactionStore
}

// CategoryStore provides functionality for work with categories store.
//
//go:generate mockery --dir . --name CategoryStore --output ./mocks
type CategoryStore interface {
	// Create creates new category in store.
	Create(ctx context.Context, category *models.Category) error
	// List returns a list of all categories from store.
	List(ctx context.Context) ([]models.Category, error)
	// Get returns a category by filter, nil if nothing matched.
	Get(ctx context.Context, filter GetCategoryFilter) (*models.Category, error)
}

// GetCategoryFilter represents a filters for CategoryStore.Get method.
type GetCategoryFilter struct {
	ID string
}

// TransactionStore provides functionality for work with transactions store.
//
//go:generate mockery --dir . --name TransactionStore --output ./mocks
type TransactionStore interface {
	// Create creates a new transaction.
	Create(ctx context.Context, transaction *models.Transaction) error
	// List returns all transactions from store, category references are not resolved.
	List(ctx context.Context) ([]models.Transaction, error)
	// Delete deletes transaction by its id and reports whether anything was deleted.
	Delete(ctx context.Context, transactionID string) (bool, error)
}
