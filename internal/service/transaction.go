package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/VladPetriv/finance_tracker/internal/models"
	"github.com/VladPetriv/finance_tracker/pkg/logger"
	"github.com/VladPetriv/finance_tracker/pkg/worker"
	"github.com/google/uuid"
)

const defaultResolveWorkers = 4

type transactionService struct {
	logger         *logger.Logger
	stores         Stores
	resolveWorkers int
	now            func() time.Time
}

var _ TransactionService = (*transactionService)(nil)

// TransactionOptions represents input options for new instance of transaction service.
type TransactionOptions struct {
	Logger *logger.Logger
	Stores Stores
	// ResolveWorkers is the number of concurrent category lookups per list call.
	ResolveWorkers int
	// Now is used to set the default transaction date, time.Now when nil.
	Now func() time.Time
}

// NewTransaction returns new instance of transaction service.
func NewTransaction(opts *TransactionOptions) *transactionService {
	resolveWorkers := opts.ResolveWorkers
	if resolveWorkers < 1 {
		resolveWorkers = defaultResolveWorkers
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &transactionService{
		logger:         opts.Logger,
		stores:         opts.Stores,
		resolveWorkers: resolveWorkers,
		now:            now,
	}
}

func (t transactionService) CreateTransaction(ctx context.Context, opts CreateTransactionOptions) (*models.Transaction, error) {
	logger := t.logger.With().Str("name", "transactionService.CreateTransaction").Logger()
	logger.Debug().Any("opts", opts).Msg("got args")

	err := validateCreateTransactionOptions(&opts)
	if err != nil {
		logger.Info().Err(err).Msg("invalid transaction")
		return nil, err
	}

	date := t.now().UTC()
	if opts.Date != nil {
		date = opts.Date.UTC()
	}

	transaction := &models.Transaction{
		ID:         uuid.NewString(),
		Title:      opts.Title,
		Amount:     *opts.Amount,
		Type:       opts.Type,
		CategoryID: opts.CategoryID,
		Date:       date.Truncate(time.Millisecond),
	}

	err = t.stores.Transaction.Create(ctx, transaction)
	if err != nil {
		logger.Error().Err(err).Msg("create transaction in store")
		return nil, fmt.Errorf("create transaction in store: %w", err)
	}

	if transaction.HasCategory() {
		// The transaction is already stored, so a failed lookup leaves the category unresolved.
		category, err := t.stores.Category.Get(ctx, GetCategoryFilter{ID: transaction.CategoryID})
		if err != nil {
			logger.Warn().Err(err).Msg("get category of created transaction")
		}

		transaction.Category = category
	}

	logger.Info().Any("transaction", transaction).Msg("transaction created")
	return transaction, nil
}

// validateCreateTransactionOptions checks opts and brings the category reference to the canonical uuid form.
func validateCreateTransactionOptions(opts *CreateTransactionOptions) error {
	if strings.TrimSpace(opts.Title) == "" {
		return ErrTransactionTitleRequired
	}
	if opts.Amount == nil {
		return ErrTransactionAmountRequired
	}
	if !opts.Amount.FitsDecimal128() {
		return ErrInvalidAmount
	}
	if opts.Type == "" {
		return ErrTransactionTypeRequired
	}
	if !opts.Type.IsValid() {
		return ErrInvalidTransactionType
	}
	if opts.CategoryID != "" {
		categoryID, err := uuid.Parse(opts.CategoryID)
		if err != nil {
			return ErrInvalidCategoryID
		}

		opts.CategoryID = categoryID.String()
	}

	return nil
}

func (t transactionService) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	logger := t.logger.With().Str("name", "transactionService.ListTransactions").Logger()

	transactions, err := t.stores.Transaction.List(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("list transactions from store")
		return nil, fmt.Errorf("list transactions from store: %w", err)
	}
	if len(transactions) == 0 {
		logger.Debug().Msg("no transactions found")
		return []models.Transaction{}, nil
	}

	categories, err := t.resolveCategories(ctx, transactions)
	if err != nil {
		logger.Error().Err(err).Msg("resolve transaction categories")
		return nil, fmt.Errorf("resolve transaction categories: %w", err)
	}

	for i := range transactions {
		// Unresolved references stay nil.
		transactions[i].Category = categories[transactions[i].CategoryID]
	}

	logger.Debug().
		Int("transactions", len(transactions)).
		Int("categories", len(categories)).
		Msg("got transactions from store")
	return transactions, nil
}

// resolveCategories looks up every distinct category reference concurrently.
// Returned map contains only references that point to an existing category.
func (t transactionService) resolveCategories(ctx context.Context, transactions []models.Transaction) (map[string]*models.Category, error) {
	var (
		mu         sync.Mutex
		categories = make(map[string]*models.Category)
	)

	pool := worker.NewPool(t.logger, t.resolveWorkers, func(ctx context.Context, categoryID string, _ struct{}) error {
		category, err := t.stores.Category.Get(ctx, GetCategoryFilter{ID: categoryID})
		if err != nil {
			return fmt.Errorf("get category from store: %w", err)
		}
		if category == nil {
			return nil
		}

		mu.Lock()
		categories[categoryID] = category
		mu.Unlock()

		return nil
	})

	poolCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	pool.Start(poolCtx)

	queued := make(map[string]struct{})
	for _, transaction := range transactions {
		if !transaction.HasCategory() {
			continue
		}
		if _, ok := queued[transaction.CategoryID]; ok {
			continue
		}
		queued[transaction.CategoryID] = struct{}{}

		if !pool.AddJob(poolCtx, transaction.CategoryID, struct{}{}) {
			break
		}
	}

	// Every job is done once Stop returns, so the workers no longer read poolCtx.
	err := pool.Stop()
	if err != nil {
		return nil, err
	}

	return categories, nil
}

func (t transactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	logger := t.logger.With().Str("name", "transactionService.DeleteTransaction").Logger()
	logger.Debug().Str("transactionID", transactionID).Msg("got args")

	parsedID, err := uuid.Parse(transactionID)
	if err != nil {
		logger.Info().Msg("invalid transaction id")
		return ErrInvalidTransactionID
	}
	transactionID = parsedID.String()

	deleted, err := t.stores.Transaction.Delete(ctx, transactionID)
	if err != nil {
		logger.Error().Err(err).Msg("delete transaction from store")
		return fmt.Errorf("delete transaction from store: %w", err)
	}
	if !deleted {
		logger.Info().Msg("transaction not found")
		return ErrTransactionNotFound
	}

	logger.Info().Str("transactionID", transactionID).Msg("transaction deleted")
	return nil
}
