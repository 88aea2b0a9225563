package api

import (
	"errors"
	"net/http"

	"github.com/tasktrack/api/internal/service/auth"
	"github.com/tasktrack/api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Credential failures and duplicate registrations both answer 400,
	// matching the public API contract.
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, store.ErrUsernameExists):
		return http.StatusBadRequest

	// Token failures
	case errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken):
		return http.StatusForbidden

	// Not found errors
	case errors.Is(err, store.ErrTaskNotFound),
		errors.Is(err, store.ErrUserNotFound):
		return http.StatusNotFound

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, store.ErrUsernameExists):
		return "User already exists!"

	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid username or password"

	case errors.Is(err, auth.ErrMissingToken):
		return "Access Denied!"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken):
		return "Invalid Token!"

	case errors.Is(err, store.ErrTaskNotFound):
		return "Task not found!"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	default:
		return "An unexpected error occurred"
	}
}
