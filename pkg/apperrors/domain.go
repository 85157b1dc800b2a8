package apperrors

import (
	"fmt"
	"net/http"
)

// =========================================================================
// Factories for storage-facing failures
// =========================================================================

// ErrNotFound is the 404 for a record kind, e.g. ErrNotFound("portfolio", "Portfolio item", err).
func ErrNotFound(domain, kind string, err error) *AppError {
	return Wrap(err, CodeNotFound, domain, kind+" not found", http.StatusNotFound)
}

func ErrAlreadyExists(domain, message string, err error) *AppError {
	return Wrap(err, CodeAlreadyExists, domain, message, http.StatusConflict)
}

// FailedTo is the opaque 500 for a storage call, e.g. FailedTo("orders", "create order", err)
// carries the message "Failed to create order".
func FailedTo(domain, action string, err error) *AppError {
	return Wrap(err, CodeDatabaseError, domain, fmt.Sprintf("Failed to %s", action), http.StatusInternalServerError)
}

// ErrInvalidStatus rejects a status outside the closed set for its kind.
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// =========================================================================
// Request-shape errors
// =========================================================================

var (
	ErrInvalidID          = New(CodeBadRequest, "request", "Invalid ID format", http.StatusBadRequest)
	ErrInvalidRequestBody = New(CodeBadRequest, "request", "Invalid request body", http.StatusBadRequest)
	ErrStorageUnavailable = New(CodeUnavailable, "system", "Storage unavailable", http.StatusServiceUnavailable)
)
