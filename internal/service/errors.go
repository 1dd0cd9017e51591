package service

import "github.com/VladPetriv/finance_tracker/pkg/errs"

var (
	// ErrTransactionNotFound happens when there is no transaction with the given id.
	ErrTransactionNotFound = errs.NewNotFound("transaction not found")

	// ErrCategoryNameRequired happens when category name is empty.
	ErrCategoryNameRequired = errs.NewValidation("category validation failed: name is required")
	// ErrTransactionTitleRequired happens when transaction title is empty.
	ErrTransactionTitleRequired = errs.NewValidation("transaction validation failed: title is required")
	// ErrTransactionAmountRequired happens when transaction amount was not provided.
	ErrTransactionAmountRequired = errs.NewValidation("transaction validation failed: amount is required")
	// ErrInvalidAmount happens when transaction amount has too many digits or is too large to be stored.
	ErrInvalidAmount = errs.NewValidation("transaction validation failed: amount is out of range")
	// ErrTransactionTypeRequired happens when transaction type is empty.
	ErrTransactionTypeRequired = errs.NewValidation("transaction validation failed: type is required")
	// ErrInvalidTransactionType happens when transaction type is not income or expense.
	ErrInvalidTransactionType = errs.NewValidation("transaction validation failed: type must be one of income, expense")
	// ErrInvalidCategoryID happens when category reference is not a valid identifier.
	ErrInvalidCategoryID = errs.NewValidation("transaction validation failed: category is not a valid identifier")
	// ErrInvalidTransactionID happens when transaction id is not a valid identifier.
	ErrInvalidTransactionID = errs.NewValidation("transaction id is not a valid identifier")
)
