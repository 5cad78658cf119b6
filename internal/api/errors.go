package api

import (
	"errors"
	"net/http"

	"github.com/handover-labs/handover/internal/service"
	"github.com/handover-labs/handover/internal/service/auth"
	"github.com/handover-labs/handover/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes based on
// the error type. This prevents leaking internal error types or messages
// to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, service.ErrWrongPassword):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, service.ErrNotItemOwner),
		errors.Is(err, service.ErrWrongRecipient):
		return http.StatusForbidden

	// Malformed transfer capabilities are a bad request, not a session
	// problem; ErrWrongTokenType covers a session token pasted into the
	// redeem URL.
	case errors.Is(err, auth.ErrInvalidTransferToken),
		errors.Is(err, auth.ErrExpiredTransferToken),
		errors.Is(err, auth.ErrWrongTokenType):
		return http.StatusBadRequest

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate),
		errors.Is(err, service.ErrAlreadyOwned):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message based
// on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, service.ErrWrongPassword):
		return "Wrong password"

	case errors.Is(err, service.ErrNotItemOwner):
		return "Item does not belong to this user"

	case errors.Is(err, service.ErrWrongRecipient):
		return "Transfer token names another recipient"

	case errors.Is(err, service.ErrAlreadyOwned):
		return "User already owns this item"

	case errors.Is(err, auth.ErrExpiredTransferToken):
		return "Transfer token has expired"

	case errors.Is(err, auth.ErrInvalidTransferToken),
		errors.Is(err, auth.ErrWrongTokenType):
		return "Transfer token is invalid"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrItemNotFound):
		return "Item not found"

	case errors.Is(err, store.ErrUsernameExists):
		return "User already exists"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	default:
		return "An unexpected error occurred"
	}
}

// HandleServiceError writes the response for an error escaping a service
// call: the mapped status code and the safe message. Every protected
// handler funnels its service failures through here.
func HandleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	respondServiceError(w, r, status, message, err)
}
