package api

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handover-labs/handover/internal/api/shared"
	"github.com/handover-labs/handover/internal/domain"
	"github.com/handover-labs/handover/internal/service"
	"github.com/handover-labs/handover/internal/store"
)

func TestRegisterHandler(t *testing.T) {
	t.Parallel()

	t.Run("success returns 201 with empty inventory", func(t *testing.T) {
		t.Parallel()
		handler := NewAuthHandler(&mockUserService{
			RegisterFn: func(ctx context.Context, username, password string) (*domain.User, error) {
				return &domain.User{ID: 7, Username: username}, nil
			},
		}, slog.Default())

		req := httptest.NewRequest(
			http.MethodPost,
			"/api/v1/users/register",
			strings.NewReader(`{"username":"alice","password":"s3cret"}`),
		)
		rec := httptest.NewRecorder()
		handler.Register(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp RegisterResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, int64(7), resp.User.ID)
		assert.Equal(t, "alice", resp.User.Username)
		assert.NotNil(t, resp.User.Items)
		assert.Empty(t, resp.User.Items)
	})

	t.Run("duplicate username returns 409", func(t *testing.T) {
		t.Parallel()
		handler := NewAuthHandler(&mockUserService{
			RegisterFn: func(ctx context.Context, username, password string) (*domain.User, error) {
				return nil, store.ErrUsernameExists
			},
		}, slog.Default())

		req := httptest.NewRequest(
			http.MethodPost,
			"/api/v1/users/register",
			strings.NewReader(`{"username":"alice","password":"s3cret"}`),
		)
		rec := httptest.NewRecorder()
		handler.Register(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "User already exists", errorMessage(t, rec))
	})

	t.Run("validation failures report each missing field", func(t *testing.T) {
		t.Parallel()
		handler := NewAuthHandler(&mockUserService{
			RegisterFn: func(ctx context.Context, username, password string) (*domain.User, error) {
				t.Error("service should not be called for invalid input")
				return nil, nil
			},
		}, slog.Default())

		req := httptest.NewRequest(
			http.MethodPost,
			"/api/v1/users/register",
			strings.NewReader(`{}`),
		)
		rec := httptest.NewRecorder()
		handler.Register(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp shared.ErrorResponse
		decodeBody(t, rec, &resp)
		require.Len(t, resp.Fields, 2)
		fields := []string{resp.Fields[0].Field, resp.Fields[1].Field}
		assert.Contains(t, fields, "username")
		assert.Contains(t, fields, "password")
	})

	t.Run("unknown field is rejected", func(t *testing.T) {
		t.Parallel()
		handler := NewAuthHandler(&mockUserService{}, slog.Default())

		req := httptest.NewRequest(
			http.MethodPost,
			"/api/v1/users/register",
			strings.NewReader(`{"username":"alice","password":"s3cret","admin":true}`),
		)
		rec := httptest.NewRecorder()
		handler.Register(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Unknown field in request body", errorMessage(t, rec))
	})

	t.Run("malformed body is rejected", func(t *testing.T) {
		t.Parallel()
		handler := NewAuthHandler(&mockUserService{}, slog.Default())

		req := httptest.NewRequest(
			http.MethodPost,
			"/api/v1/users/register",
			strings.NewReader(`{"username": `),
		)
		rec := httptest.NewRecorder()
		handler.Register(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLoginHandler(t *testing.T) {
	t.Parallel()

	loginRequest := func() *http.Request {
		return httptest.NewRequest(
			http.MethodPost,
			"/api/v1/users/login",
			strings.NewReader(`{"username":"alice","password":"s3cret"}`),
		)
	}

	t.Run("success returns the session token", func(t *testing.T) {
		t.Parallel()
		handler := NewAuthHandler(&mockUserService{
			LoginFn: func(ctx context.Context, username, password string) (string, error) {
				return "signed-session-token", nil
			},
		}, slog.Default())

		rec := httptest.NewRecorder()
		handler.Login(rec, loginRequest())

		require.Equal(t, http.StatusOK, rec.Code)

		var resp LoginResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, "signed-session-token", resp.User.SessionToken)
	})

	t.Run("unknown user returns 404", func(t *testing.T) {
		t.Parallel()
		handler := NewAuthHandler(&mockUserService{
			LoginFn: func(ctx context.Context, username, password string) (string, error) {
				return "", store.ErrUserNotFound
			},
		}, slog.Default())

		rec := httptest.NewRecorder()
		handler.Login(rec, loginRequest())

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "User not found", errorMessage(t, rec))
	})

	t.Run("wrong password returns 401", func(t *testing.T) {
		t.Parallel()
		handler := NewAuthHandler(&mockUserService{
			LoginFn: func(ctx context.Context, username, password string) (string, error) {
				return "", service.ErrWrongPassword
			},
		}, slog.Default())

		rec := httptest.NewRecorder()
		handler.Login(rec, loginRequest())

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Wrong password", errorMessage(t, rec))
	})
}
