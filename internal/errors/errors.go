// Package errors provides custom error types for the Arsenal API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, optional client-facing details
// and an optional internal error.
type AppError struct {
	Code       string         `json:"code"`
	Message    string         `json:"message"`
	Details    map[string]any `json:"details,omitempty"`
	StatusCode int            `json:"-"`
	Internal   error          `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is reports whether target is an AppError with the same code, so that
// errors.Is(err, ErrAssetNotFound) matches copies made by Wrap/WithMessage.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		Details:    sentinel.Details,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		Details:    sentinel.Details,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// WithDetails creates a new AppError carrying structured details for the client.
func WithDetails(sentinel *AppError, details map[string]any) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		Details:    details,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// InsufficientQuantity returns an INSUFFICIENT_QUANTITY error reporting the
// quantity that was available before the rejected mutation.
func InsufficientQuantity(available int64) *AppError {
	return WithDetails(ErrInsufficientQuantity, map[string]any{"available": available})
}

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
	ErrForbidden          = &AppError{Code: "FORBIDDEN", Message: "Access denied", StatusCode: http.StatusForbidden}
	ErrNoBaseAssigned     = &AppError{Code: "NO_BASE_ASSIGNED", Message: "No base assigned to this user", StatusCode: http.StatusForbidden}
	ErrAccountLocked      = &AppError{Code: "ACCOUNT_LOCKED", Message: "Account is temporarily locked", StatusCode: http.StatusLocked}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrUserNotFound  = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateUser = &AppError{Code: "DUPLICATE_USER", Message: "A user with this username or email already exists", StatusCode: http.StatusConflict}
)

// Base and asset directory errors.
var (
	ErrBaseNotFound   = &AppError{Code: "BASE_NOT_FOUND", Message: "Base not found", StatusCode: http.StatusNotFound}
	ErrDuplicateBase  = &AppError{Code: "DUPLICATE_BASE", Message: "A base with this name already exists", StatusCode: http.StatusConflict}
	ErrAssetNotFound  = &AppError{Code: "ASSET_NOT_FOUND", Message: "Asset not found in this base", StatusCode: http.StatusNotFound}
	ErrDuplicateAsset = &AppError{Code: "DUPLICATE_ASSET", Message: "This asset already exists at the base", StatusCode: http.StatusConflict}
)

// Ledger and transaction errors.
var (
	ErrInsufficientQuantity = &AppError{Code: "INSUFFICIENT_QUANTITY", Message: "Insufficient quantity", StatusCode: http.StatusBadRequest}
	ErrSameBaseTransfer     = &AppError{Code: "SAME_BASE_TRANSFER", Message: "Cannot transfer to the same base", StatusCode: http.StatusBadRequest}
	ErrDuplicateTransaction = &AppError{Code: "DUPLICATE_TRANSACTION", Message: "A transaction with this reference has already been processed", StatusCode: http.StatusConflict}
	ErrPurchaseNotFound     = &AppError{Code: "PURCHASE_NOT_FOUND", Message: "Purchase not found", StatusCode: http.StatusNotFound}
	ErrTransferNotFound     = &AppError{Code: "TRANSFER_NOT_FOUND", Message: "Transfer not found", StatusCode: http.StatusNotFound}
	ErrAssignmentNotFound   = &AppError{Code: "ASSIGNMENT_NOT_FOUND", Message: "Assignment not found", StatusCode: http.StatusNotFound}
	ErrAssignmentReturned   = &AppError{Code: "ASSIGNMENT_ALREADY_RETURNED", Message: "Assignment already returned", StatusCode: http.StatusConflict}
)
