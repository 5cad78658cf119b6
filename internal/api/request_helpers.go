package api

import (
	"errors"
	"net/http"

	"github.com/handover-labs/handover/internal/api/middleware"
	"github.com/handover-labs/handover/internal/api/shared"
	"github.com/handover-labs/handover/internal/domain"
)

// decodeAndValidate decodes the request body into req and runs schema
// validation. On failure it writes the error response and returns false;
// handlers short-circuit before any business logic runs.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := shared.DecodeJSON(r, req); err != nil {
		if errors.Is(err, shared.ErrUnknownField) {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Unknown field in request body")
			return false
		}
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return false
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithFieldErrors(
			w,
			r,
			http.StatusBadRequest,
			"Validation error",
			shared.FieldErrorsFromValidation(err),
		)
		return false
	}

	return true
}

// authenticatedUser extracts the user placed in the context by the
// authentication middleware. A missing user means a protected route was
// wired without the middleware; the request is rejected rather than served
// unauthenticated.
func authenticatedUser(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	user, ok := middleware.GetUser(r)
	if !ok || user == nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return nil, false
	}
	return user, true
}

// respondServiceError writes a sanitized error response, logging the raw
// error server-side only.
func respondServiceError(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	message string,
	err error,
) {
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
