package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// Ledger business-rule errors. Each one is a caller-input error detected
// before any write; none of them is retryable.
var (
	// ErrInvalidAmount indicates a non-positive amount was supplied to a movement operation.
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrSameAccount indicates a transfer was requested between identical accounts.
	ErrSameAccount = errors.New("transfer requires two different accounts")

	// ErrAccountNotFound indicates a referenced account id does not resolve.
	ErrAccountNotFound = errors.New("account not found")

	// ErrCategoryMismatch indicates the referenced category does not exist or has
	// the wrong income/expense polarity for the requested operation.
	ErrCategoryMismatch = errors.New("category missing or of wrong type")
)

// AppError wraps a lower-level failure (typically storage) with a code and message.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
