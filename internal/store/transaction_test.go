package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/VladPetriv/finance_tracker/internal/models"
	"github.com/VladPetriv/finance_tracker/internal/store"
	"github.com/VladPetriv/finance_tracker/pkg/errs"
	"github.com/VladPetriv/finance_tracker/pkg/money"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestTransaction_CreateAndList(t *testing.T) {
	t.Parallel()

	ctx := context.TODO() //nolint: forbidigo
	date := time.Date(2024, time.March, 1, 12, 30, 0, 0, time.UTC)

	amount, err := money.NewFromString("12.50")
	require.NoError(t, err)

	testCases := []struct {
		desc  string
		input models.Transaction
	}{
		{
			desc: "positive: transaction with category reference",
			input: models.Transaction{
				ID:         uuid.NewString(),
				Title:      "Lunch",
				Amount:     amount,
				Type:       models.TransactionTypeExpense,
				CategoryID: uuid.NewString(),
				Date:       date,
			},
		},
		{
			desc: "positive: transaction without category reference",
			input: models.Transaction{
				ID:     uuid.NewString(),
				Title:  "Salary",
				Amount: money.NewFromInt(-1000),
				Type:   models.TransactionTypeIncome,
				Date:   date,
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			db := createTestDB(t)
			transactionStore := store.NewTransaction(db)

			err := transactionStore.Create(ctx, &tc.input)
			require.NoError(t, err)

			got, err := transactionStore.List(ctx)
			require.NoError(t, err)
			require.Len(t, got, 1)

			assert.Equal(t, tc.input.ID, got[0].ID)
			assert.Equal(t, tc.input.Title, got[0].Title)
			assert.Equal(t, tc.input.Type, got[0].Type)
			assert.Equal(t, tc.input.CategoryID, got[0].CategoryID)
			assert.True(t, tc.input.Amount.Equal(got[0].Amount), "expected %s, got %s", tc.input.Amount, got[0].Amount)
			assert.True(t, tc.input.Date.Equal(got[0].Date))
			assert.Nil(t, got[0].Category)

			// Absent reference must not be stored as an empty string.
			raw, err := db.DB.Collection("transactions").FindOne(ctx, bson.M{"_id": tc.input.ID}).Raw()
			require.NoError(t, err)
			_, lookupErr := raw.LookupErr("category")
			assert.Equal(t, tc.input.HasCategory(), lookupErr == nil)
		})
	}
}

func TestTransaction_CreateRejectedByValidator(t *testing.T) {
	t.Parallel()

	ctx := context.TODO() //nolint: forbidigo
	transactionStore := store.NewTransaction(createTestDB(t))

	err := transactionStore.Create(ctx, &models.Transaction{
		ID:     uuid.NewString(),
		Title:  "Lunch",
		Amount: money.NewFromInt(1),
		Type:   "transfer",
		Date:   time.Now(),
	})
	assert.Error(t, err)
	assert.True(t, errs.Is(err, errs.KindValidation))

	got, err := transactionStore.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTransaction_Delete(t *testing.T) {
	t.Parallel()

	ctx := context.TODO() //nolint: forbidigo
	transactionID := uuid.NewString()

	testCases := []struct {
		desc     string
		input    string
		expected bool
		left     int
	}{
		{
			desc:     "positive: transaction deleted",
			input:    transactionID,
			expected: true,
			left:     0,
		},
		{
			desc:     "negative: transaction not deleted because of not existed id",
			input:    uuid.NewString(),
			expected: false,
			left:     1,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			transactionStore := store.NewTransaction(createTestDB(t))

			err := transactionStore.Create(ctx, &models.Transaction{
				ID:     transactionID,
				Title:  "Lunch",
				Amount: money.NewFromInt(10),
				Type:   models.TransactionTypeExpense,
				Date:   time.Now(),
			})
			require.NoError(t, err)

			deleted, err := transactionStore.Delete(ctx, tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, deleted)

			got, err := transactionStore.List(ctx)
			require.NoError(t, err)
			assert.Len(t, got, tc.left)
		})
	}
}

func TestEnsureSchema_Idempotent(t *testing.T) {
	t.Parallel()

	db := createTestDB(t)

	// createTestDB already applied the schema once.
	err := store.EnsureSchema(context.TODO(), db) //nolint: forbidigo
	assert.NoError(t, err)
}
