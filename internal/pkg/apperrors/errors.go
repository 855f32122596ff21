package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Storage errors
	ErrConnectionFailed    = errors.New("database connection failed")
	ErrQueryFailed         = errors.New("database query failed")
	ErrDuplicateIdentifier = errors.New("identifier already exists")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// BatchError describes a batch write that stopped partway. Records before
// Inserted were written and remain in place.
type BatchError struct {
	Collection string
	Inserted   int
	Total      int
	Err        error
}

// Error implements error interface
func (e *BatchError) Error() string {
	return fmt.Sprintf("batch insert into %s failed after %d of %d records: %v",
		e.Collection, e.Inserted, e.Total, e.Err)
}

// Unwrap implements errors.Unwrap interface
func (e *BatchError) Unwrap() error {
	return e.Err
}

// NewBatchError wraps err with the progress of a batch write
func NewBatchError(collection string, inserted, total int, err error) *BatchError {
	return &BatchError{
		Collection: collection,
		Inserted:   inserted,
		Total:      total,
		Err:        err,
	}
}

// InsertedBefore returns how many records a failed batch had written, or 0
// when err carries no batch progress.
func InsertedBefore(err error) int {
	var batchErr *BatchError
	if errors.As(err, &batchErr) {
		return batchErr.Inserted
	}
	return 0
}

// NewBadRequestError creates a new custom error for a bad request parameter
func NewBadRequestError(field, message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
		Details: map[string]interface{}{"field": field},
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
