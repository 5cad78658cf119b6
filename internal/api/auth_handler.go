package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/handover-labs/handover/internal/api/shared"
	"github.com/handover-labs/handover/internal/service"
	"github.com/handover-labs/handover/internal/store"
)

// AuthHandler handles registration and login requests.
type AuthHandler struct {
	userService service.UserService
	logger      *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(userService service.UserService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		logger:      logger.With("component", "auth_handler"),
	}
}

// Register handles POST /api/v1/users/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.userService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			shared.RespondWithError(w, r, http.StatusConflict, "User already exists")
			return
		}
		h.logger.Error("failed to register user", "error", err, "username", req.Username)
		respondServiceError(w, r, http.StatusInternalServerError, "Failed to create user", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, RegisterResponse{
		User: RegisteredUser{
			ID:       user.ID,
			Username: user.Username,
			Items:    []ItemPayload{},
		},
	})
}

// Login handles POST /api/v1/users/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	token, err := h.userService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			shared.RespondWithError(w, r, http.StatusNotFound, "User not found")
		case errors.Is(err, service.ErrWrongPassword):
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Wrong password")
		default:
			h.logger.Error("failed to log in user", "error", err, "username", req.Username)
			respondServiceError(w, r, http.StatusInternalServerError, "Failed to authenticate user", err)
		}
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		User: SessionPayload{SessionToken: token},
	})
}
