package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/VladPetriv/finance_tracker/internal/models"
	"github.com/VladPetriv/finance_tracker/internal/service"
	"github.com/VladPetriv/finance_tracker/internal/service/mocks"
	"github.com/VladPetriv/finance_tracker/pkg/errs"
	"github.com/VladPetriv/finance_tracker/pkg/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCategory_CreateCategory(t *testing.T) {
	t.Parallel()

	ctx := context.TODO() //nolint: forbidigo

	testCases := []struct {
		name          string
		mock          func(categoryStore *mocks.CategoryStore)
		args          service.CreateCategoryOptions
		expectedName  string
		expectedError error
	}{
		{
			name: "positive: category created",
			mock: func(categoryStore *mocks.CategoryStore) {
				categoryStore.On("Create", ctx, mock.MatchedBy(func(category *models.Category) bool {
					_, err := uuid.Parse(category.ID)
					return err == nil && category.Name == "Food"
				})).Return(nil)
			},
			args:         service.CreateCategoryOptions{Name: "Food"},
			expectedName: "Food",
		},
		{
			name: "positive: surrounding spaces trimmed",
			mock: func(categoryStore *mocks.CategoryStore) {
				categoryStore.On("Create", ctx, mock.AnythingOfType("*models.Category")).Return(nil)
			},
			args:         service.CreateCategoryOptions{Name: "  Rent "},
			expectedName: "Rent",
		},
		{
			name:          "negative: empty name",
			mock:          func(*mocks.CategoryStore) {},
			args:          service.CreateCategoryOptions{Name: "   "},
			expectedError: service.ErrCategoryNameRequired,
		},
		{
			name: "negative: got an error while create category",
			mock: func(categoryStore *mocks.CategoryStore) {
				categoryStore.On("Create", ctx, mock.AnythingOfType("*models.Category")).
					Return(errs.Persistence(fmt.Errorf("some error")))
			},
			args:          service.CreateCategoryOptions{Name: "Food"},
			expectedError: fmt.Errorf("create category in store: %w", errs.Persistence(fmt.Errorf("some error"))),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			categoryStoreMock := mocks.NewCategoryStore(t)
			tc.mock(categoryStoreMock)

			categoryService := service.NewCategory(logger.New(logger.LoggergerOptions{LogLevel: "debug"}), categoryStoreMock)

			got, err := categoryService.CreateCategory(ctx, tc.args)
			if tc.expectedError != nil {
				assert.Equal(t, tc.expectedError, err)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expectedName, got.Name)
			assert.NotEmpty(t, got.ID)
		})
	}
}

func TestCategory_CreateCategoryDuplicateNames(t *testing.T) {
	t.Parallel()

	ctx := context.TODO() //nolint: forbidigo

	categoryStoreMock := mocks.NewCategoryStore(t)
	categoryStoreMock.On("Create", ctx, mock.AnythingOfType("*models.Category")).Return(nil).Twice()

	categoryService := service.NewCategory(logger.New(logger.LoggergerOptions{LogLevel: "debug"}), categoryStoreMock)

	first, err := categoryService.CreateCategory(ctx, service.CreateCategoryOptions{Name: "Food"})
	require.NoError(t, err)
	second, err := categoryService.CreateCategory(ctx, service.CreateCategoryOptions{Name: "Food"})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestCategory_ListCategories(t *testing.T) {
	t.Parallel()

	ctx := context.TODO() //nolint: forbidigo
	categories := []models.Category{
		{ID: uuid.NewString(), Name: "Food"},
		{ID: uuid.NewString(), Name: "Salary"},
	}

	testCases := []struct {
		name          string
		mock          func(categoryStore *mocks.CategoryStore)
		expected      []models.Category
		expectedError bool
	}{
		{
			name: "positive: returned all categories",
			mock: func(categoryStore *mocks.CategoryStore) {
				categoryStore.On("List", ctx).Return(categories, nil)
			},
			expected: categories,
		},
		{
			name: "positive: empty store returns empty slice",
			mock: func(categoryStore *mocks.CategoryStore) {
				categoryStore.On("List", ctx).Return(nil, nil)
			},
			expected: []models.Category{},
		},
		{
			name: "negative: got an error while list categories",
			mock: func(categoryStore *mocks.CategoryStore) {
				categoryStore.On("List", ctx).Return(nil, errs.Persistence(fmt.Errorf("some error")))
			},
			expectedError: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			categoryStoreMock := mocks.NewCategoryStore(t)
			tc.mock(categoryStoreMock)

			categoryService := service.NewCategory(logger.New(logger.LoggergerOptions{LogLevel: "debug"}), categoryStoreMock)

			got, err := categoryService.ListCategories(ctx)
			if tc.expectedError {
				assert.Error(t, err)
				assert.True(t, errs.Is(err, errs.KindPersistence))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}
