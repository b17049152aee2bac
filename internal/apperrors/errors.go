package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the operation would break a reference held by another resource.
var ErrConflict = errors.New("resource is referenced by other resources")

// ErrUnauthorized indicates missing, invalid or revoked credentials.
var ErrUnauthorized = errors.New("unauthorized")

// AppError carries a status hint and a client-safe message on top of a sentinel
// or an underlying cause. errors.Is sees through it via Unwrap.
type AppError struct {
	Code    int
	Message string
	Field   string
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

// NewAppError wraps err with a status code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError returns an AppError matching ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// NewValidationError returns an AppError matching ErrValidation.
func NewValidationError(message string) *AppError {
	return &AppError{Code: http.StatusUnprocessableEntity, Message: message, Err: ErrValidation}
}

// NewConflictError returns an AppError matching ErrConflict.
func NewConflictError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message, Err: ErrConflict}
}

// NewDuplicateError returns an AppError matching ErrDuplicate.
func NewDuplicateError(message string) *AppError {
	return &AppError{Code: http.StatusUnprocessableEntity, Message: message, Err: ErrDuplicate}
}

// NewFieldValidationError returns a validation AppError attributed to a single
// request field.
func NewFieldValidationError(field, message string) *AppError {
	return &AppError{Code: http.StatusUnprocessableEntity, Message: message, Field: field, Err: ErrValidation}
}

// NewFieldDuplicateError returns a duplicate AppError attributed to a single
// request field.
func NewFieldDuplicateError(field, message string) *AppError {
	return &AppError{Code: http.StatusUnprocessableEntity, Message: message, Field: field, Err: ErrDuplicate}
}
