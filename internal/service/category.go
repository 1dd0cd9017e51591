package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/VladPetriv/finance_tracker/internal/models"
	"github.com/VladPetriv/finance_tracker/pkg/logger"
	"github.com/google/uuid"
)

type categoryService struct {
	logger        *logger.Logger
	categoryStore CategoryStore
}

var _ CategoryService = (*categoryService)(nil)

// NewCategory returns new instance of category service.
func NewCategory(logger *logger.Logger, categoryStore CategoryStore) *categoryService {
	return &categoryService{
		logger:        logger,
		categoryStore: categoryStore,
	}
}

func (c categoryService) CreateCategory(ctx context.Context, opts CreateCategoryOptions) (*models.Category, error) {
	logger := c.logger.With().Str("name", "categoryService.CreateCategory").Logger()
	logger.Debug().Any("opts", opts).Msg("got args")

	name := strings.TrimSpace(opts.Name)
	if name == "" {
		logger.Info().Msg("category name is empty")
		return nil, ErrCategoryNameRequired
	}

	category := &models.Category{
		ID:   uuid.NewString(),
		Name: name,
	}

	err := c.categoryStore.Create(ctx, category)
	if err != nil {
		logger.Error().Err(err).Msg("create category in store")
		return nil, fmt.Errorf("create category in store: %w", err)
	}

	logger.Info().Any("category", category).Msg("category created")
	return category, nil
}

func (c categoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	logger := c.logger.With().Str("name", "categoryService.ListCategories").Logger()

	categories, err := c.categoryStore.List(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("list categories from store")
		return nil, fmt.Errorf("list categories from store: %w", err)
	}
	if categories == nil {
		categories = []models.Category{}
	}

	logger.Debug().Int("count", len(categories)).Msg("got categories from store")
	return categories, nil
}
