package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/handover-labs/handover/internal/service"
	"github.com/handover-labs/handover/internal/service/auth"
	"github.com/handover-labs/handover/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid session token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"expired session token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"wrong password", service.ErrWrongPassword, http.StatusUnauthorized},
		{"not item owner", service.ErrNotItemOwner, http.StatusForbidden},
		{"wrong recipient", service.ErrWrongRecipient, http.StatusForbidden},
		{"invalid transfer token", auth.ErrInvalidTransferToken, http.StatusBadRequest},
		{"expired transfer token", auth.ErrExpiredTransferToken, http.StatusBadRequest},
		{"wrong token type", auth.ErrWrongTokenType, http.StatusBadRequest},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"item not found", store.ErrItemNotFound, http.StatusNotFound},
		{"username exists", store.ErrUsernameExists, http.StatusConflict},
		{"already owned", service.ErrAlreadyOwned, http.StatusConflict},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
		{"wrapped sentinel", errors.Join(errors.New("context"), store.ErrItemNotFound), http.StatusNotFound},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want string
	}{
		{"nil error", nil, "An unexpected error occurred"},
		{"wrong password", service.ErrWrongPassword, "Wrong password"},
		{"not item owner", service.ErrNotItemOwner, "Item does not belong to this user"},
		{"wrong recipient", service.ErrWrongRecipient, "Transfer token names another recipient"},
		{"already owned", service.ErrAlreadyOwned, "User already owns this item"},
		{"expired transfer token", auth.ErrExpiredTransferToken, "Transfer token has expired"},
		{"invalid transfer token", auth.ErrInvalidTransferToken, "Transfer token is invalid"},
		{"user not found", store.ErrUserNotFound, "User not found"},
		{"item not found", store.ErrItemNotFound, "Item not found"},
		{"username exists", store.ErrUsernameExists, "User already exists"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, GetSafeErrorMessage(tc.err))
		})
	}

	t.Run("internal details never leak", func(t *testing.T) {
		t.Parallel()
		err := errors.New("pq: connection to 10.0.0.5 refused")
		assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(err))
	})
}
