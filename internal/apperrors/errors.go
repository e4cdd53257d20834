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

// ErrInvalidInput indicates a conversion amount that is not a finite non-negative number.
// It always matches ErrValidation as well.
var ErrInvalidInput = fmt.Errorf("%w: invalid input", ErrValidation)

// ErrTransport indicates the remote rate service could not be reached, timed out or
// answered with a non-success status.
var ErrTransport = errors.New("rate service transport error")

// ErrMalformedResponse indicates the remote rate service answered with a payload
// missing expected fields.
var ErrMalformedResponse = errors.New("malformed rate service response")

// ErrNoDataInRange indicates a well-formed historical response with no entries.
var ErrNoDataInRange = errors.New("no data in range")

// ErrPersistence indicates a cache or history write failed.
var ErrPersistence = errors.New("persistence error")

// ErrRateUnavailable is the single user-visible condition raised when neither a fresh
// nor a cached rate exists for the selected pair.
var ErrRateUnavailable = errors.New("rate unavailable")

// ErrSessionNotFound indicates the user has no open conversion session.
var ErrSessionNotFound = fmt.Errorf("%w: no open session", ErrNotFound)

// AppError carries an HTTP-ish status code alongside a wrapped cause.
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

// NewAppError builds an AppError with the given code, message and cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewValidationError returns an AppError that matches ErrValidation.
func NewValidationError(message string) *AppError {
	return &AppError{Code: 400, Message: message, Err: ErrValidation}
}

// NewNotFoundError returns an AppError that matches ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
