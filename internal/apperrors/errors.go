package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrStorage indicates that the underlying store failed. Callers may treat
// this as retryable; the core never retries on its own.
var ErrStorage = errors.New("storage error")

// NewValidationError wraps a message with the ErrValidation sentinel.
func NewValidationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

// NewNotFoundError wraps a message with the ErrNotFound sentinel.
func NewNotFoundError(msg string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, msg)
}

// NewStorageError wraps a store failure, keeping the underlying cause
// inspectable via errors.Is/As.
func NewStorageError(msg string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorage, msg, err)
}

// RateNotFoundError reports that neither a direct nor a reverse exchange rate
// exists for a currency pair. It unwraps to ErrNotFound so callers can branch
// on "need to add a rate" vs "bad request" while still seeing the pair.
type RateNotFoundError struct {
	FromCurrencyCode string
	ToCurrencyCode   string
}

// NewRateNotFoundError builds a RateNotFoundError for the given pair.
func NewRateNotFoundError(fromCurrencyCode, toCurrencyCode string) *RateNotFoundError {
	return &RateNotFoundError{
		FromCurrencyCode: fromCurrencyCode,
		ToCurrencyCode:   toCurrencyCode,
	}
}

func (e *RateNotFoundError) Error() string {
	return fmt.Sprintf("no exchange rate found for currency pair %s to %s", e.FromCurrencyCode, e.ToCurrencyCode)
}

func (e *RateNotFoundError) Unwrap() error {
	return ErrNotFound
}
