package errs

import "errors"

// Kind represents a category of an expected error.
type Kind string

const (
	// KindValidation represents an error caused by invalid input.
	KindValidation Kind = "validation"
	// KindNotFound represents an error caused by a missing entity.
	KindNotFound Kind = "not_found"
	// KindPersistence represents an error returned by the backing store.
	KindPersistence Kind = "persistence"
)

// Err represents a custom error type with a message.
type Err struct { //nolint:errname
	Kind    Kind   `json:"-"`
	Message string `json:"message"`
	err     error
}

var _ error = (*Err)(nil)

// New creates a new custom error with the given message.
func New(message string) *Err {
	return &Err{Message: message}
}

// NewValidation creates a new validation error with the given message.
func NewValidation(message string) *Err {
	return &Err{Kind: KindValidation, Message: message}
}

// NewNotFound creates a new not found error with the given message.
func NewNotFound(message string) *Err {
	return &Err{Kind: KindNotFound, Message: message}
}

// Wrap wraps err into a custom error of the given kind, keeping its message.
// Returns nil if err is nil.
func Wrap(kind Kind, err error) error {
	if err == nil {
		return nil
	}

	return &Err{Kind: kind, Message: err.Error(), err: err}
}

// Persistence wraps err into a persistence error.
func Persistence(err error) error {
	return Wrap(KindPersistence, err)
}

func (e *Err) Error() string {
	return e.Message
}

func (e *Err) Unwrap() error {
	return e.err
}

// IsExpected checks if the given error is of custom Err type.
func IsExpected(err error) bool {
	var e *Err
	return errors.As(err, &e)
}

// KindOf returns the kind of the first Err found in the chain of err.
// Returns an empty kind for errors that are not of Err type.
func KindOf(err error) Kind {
	var e *Err
	if !errors.As(err, &e) {
		return ""
	}

	return e.Kind
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
