package models

import (
	"time"

	"github.com/VladPetriv/finance_tracker/pkg/money"
)

// Transaction represents a single income or expense event.
type Transaction struct {
	ID     string          `bson:"_id" json:"id"`
	Title  string          `bson:"title" json:"title"`
	Amount money.Money     `bson:"amount" json:"amount"`
	Type   TransactionType `bson:"type" json:"type"`
	// CategoryID is a raw reference to a category, its existence is never checked on write.
	CategoryID string `bson:"category,omitempty" json:"categoryId,omitempty"`
	// Category is filled only when the reference was resolved.
	Category *Category `bson:"-" json:"category"`
	Date     time.Time `bson:"date" json:"date"`
}

// HasCategory reports whether the transaction references a category.
func (t Transaction) HasCategory() bool {
	return t.CategoryID != ""
}

// TransactionType represents the type of a transaction, which can be either income or expense.
type TransactionType string

const (
	// TransactionTypeIncome represents an income transaction.
	TransactionTypeIncome TransactionType = "income"
	// TransactionTypeExpense represents an expense transaction.
	TransactionTypeExpense TransactionType = "expense"
)

// TransactionTypes lists all allowed transaction types.
var TransactionTypes = []TransactionType{TransactionTypeIncome, TransactionTypeExpense}

// IsValid checks if the type is one of the allowed transaction types.
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}
