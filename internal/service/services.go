package service

import (
	"context"
	"time"

	"github.com/VladPetriv/finance_tracker/internal/models"
	"github.com/VladPetriv/finance_tracker/pkg/money"
)

// Services contains all services.
type Services struct {
	Category    CategoryService
	Transaction TransactionService
}

// CategoryService provides functionality for work with categories.
//
//go:generate mockery --dir . --name CategoryService --output ./mocks
type CategoryService interface {
	// CreateCategory creates a new category, duplicate names are allowed.
	CreateCategory(ctx context.Context, opts CreateCategoryOptions) (*models.Category, error)
	// ListCategories returns all categories.
	ListCategories(ctx context.Context) ([]models.Category, error)
}

// CreateCategoryOptions represents input options for CategoryService.CreateCategory method.
type CreateCategoryOptions struct {
	Name string
}

// TransactionService provides functionality for work with transactions.
//
//go:generate mockery --dir . --name TransactionService --output ./mocks
type TransactionService interface {
	// CreateTransaction validates and stores a new transaction.
	CreateTransaction(ctx context.Context, opts CreateTransactionOptions) (*models.Transaction, error)
	// ListTransactions returns all transactions with their categories resolved.
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
	// DeleteTransaction deletes a transaction by id.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// CreateTransactionOptions represents input options for TransactionService.CreateTransaction method.
// Nil Amount means the amount was not provided.
type CreateTransactionOptions struct {
	Title      string
	Amount     *money.Money
	Type       models.TransactionType
	CategoryID string
	Date       *time.Time
}
