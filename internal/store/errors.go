package store

import (
	"errors"

	"github.com/VladPetriv/finance_tracker/pkg/errs"
	"go.mongodb.org/mongo-driver/mongo"
)

// documentValidationFailureCode is returned by MongoDB when a write violates the collection validator.
const documentValidationFailureCode = 121

// wrapError tags err with the kind the service layer reports to clients.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var serverErr mongo.ServerError
	if errors.As(err, &serverErr) && serverErr.HasErrorCode(documentValidationFailureCode) {
		return errs.Wrap(errs.KindValidation, err)
	}

	return errs.Persistence(err)
}
