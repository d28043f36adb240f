// Package errors provides the application error taxonomy.
// Service and core errors are AppErrors so handlers can render a
// consistent body without leaking internal details to clients.
package errors

import (
	stderrors "errors"
	"net/http"
)

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

// Is reports whether target is an AppError with the same code, so a wrapped
// or re-messaged copy still matches its sentinel.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !stderrors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

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

// Trigger authentication errors.
var (
	ErrUnauthorized = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Valuation errors. The messages are part of the contract and are shown
// to callers verbatim.
var (
	ErrInvalidPrincipal     = &AppError{Code: "INVALID_PRINCIPAL", Message: "Initial investment must be positive", StatusCode: http.StatusBadRequest}
	ErrRateBelowFloor       = &AppError{Code: "RATE_BELOW_FLOOR", Message: "Annual return rate cannot be less than -100%", StatusCode: http.StatusBadRequest}
	ErrFutureInvestmentDate = &AppError{Code: "FUTURE_INVESTMENT_DATE", Message: "Investment date cannot be in the future", StatusCode: http.StatusBadRequest}
)

// Holding errors.
var (
	ErrHoldingNotFound    = &AppError{Code: "HOLDING_NOT_FOUND", Message: "Holding not found", StatusCode: http.StatusNotFound}
	ErrInvalidHoldingKind = &AppError{Code: "INVALID_HOLDING_KIND", Message: "Holding kind must be MARKET_TRACKED or FIXED_RATE", StatusCode: http.StatusBadRequest}
	ErrKindImmutable      = &AppError{Code: "KIND_IMMUTABLE", Message: "Holding kind cannot be changed; delete and recreate the holding", StatusCode: http.StatusConflict}
	ErrNegativeQuantity   = &AppError{Code: "NEGATIVE_QUANTITY", Message: "Quantity cannot be negative", StatusCode: http.StatusBadRequest}
	ErrMissingDetail      = &AppError{Code: "MISSING_DETAIL", Message: "Holding is missing its kind-specific detail", StatusCode: http.StatusBadRequest}
)

// Snapshot errors.
var (
	ErrSnapshotNotFound = &AppError{Code: "SNAPSHOT_NOT_FOUND", Message: "No portfolio snapshot recorded yet", StatusCode: http.StatusNotFound}
)
