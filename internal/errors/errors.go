// Package errors provides custom error types for the Posada API.
// All service-layer errors should use AppError to ensure consistent
// error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid username or password", StatusCode: http.StatusUnauthorized}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Catalog errors.
var (
	ErrItemNotFound    = &AppError{Code: "ITEM_NOT_FOUND", Message: "Item not found", StatusCode: http.StatusNotFound}
	ErrInvalidPrice    = &AppError{Code: "INVALID_PRICE", Message: "Price must be a non-negative number", StatusCode: http.StatusBadRequest}
	ErrInvalidCategory = &AppError{Code: "INVALID_CATEGORY", Message: "Category must be one of food, drink, dessert, other", StatusCode: http.StatusBadRequest}
	ErrImageTooLarge   = &AppError{Code: "IMAGE_TOO_LARGE", Message: "Image exceeds the maximum allowed size", StatusCode: http.StatusRequestEntityTooLarge}
	ErrInvalidImage    = &AppError{Code: "INVALID_IMAGE", Message: "Uploaded file is not an image", StatusCode: http.StatusBadRequest}
)

// Transaction errors.
var (
	ErrTransactionNotFound = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", StatusCode: http.StatusNotFound}
)

// Persistence errors. PersistDegraded is deliberately non-fatal: the
// in-memory state remains authoritative for the session even when a flush
// to the store fails, so callers warn rather than abort.
var (
	ErrPersistDegraded = &AppError{Code: "PERSIST_DEGRADED", Message: "Changes saved in memory but could not be persisted; they may not survive a restart", StatusCode: http.StatusOK}
)

// Reset errors.
var (
	ErrResetNotConfirmed = &AppError{Code: "RESET_NOT_CONFIRMED", Message: "Reset requires explicit confirmation", StatusCode: http.StatusBadRequest}
)
