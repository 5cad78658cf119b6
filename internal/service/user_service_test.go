package service

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handover-labs/handover/internal/domain"
	"github.com/handover-labs/handover/internal/mocks"
	"github.com/handover-labs/handover/internal/service/auth"
	"github.com/handover-labs/handover/internal/store"
)

func newUserService(t *testing.T, users *mocks.MockUserStore) *UserServiceImpl {
	t.Helper()
	hasher := auth.NewBcryptHasher()
	svc := NewUserService(
		users,
		auth.RequireTestTokenService(t),
		hasher,
		hasher,
		nil,
		slog.Default(),
	)
	svc.runTx = noopTxRunner
	return svc
}

func TestRegister(t *testing.T) {
	t.Parallel()

	t.Run("success stores a digest, not the password", func(t *testing.T) {
		t.Parallel()
		users := mocks.NewMockUserStore()
		svc := newUserService(t, users)

		user, err := svc.Register(context.Background(), "alice", "s3cret-password")
		require.NoError(t, err)

		assert.NotZero(t, user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.Empty(t, user.Password)
		assert.NotEmpty(t, user.HashedPassword)
		assert.NotEqual(t, "s3cret-password", user.HashedPassword)
	})

	t.Run("duplicate username", func(t *testing.T) {
		t.Parallel()
		users := mocks.NewMockUserStore()
		svc := newUserService(t, users)
		ctx := context.Background()

		_, err := svc.Register(ctx, "alice", "s3cret-password")
		require.NoError(t, err)

		_, err = svc.Register(ctx, "alice", "another-password")
		assert.ErrorIs(t, err, store.ErrUsernameExists)
	})

	t.Run("invalid input never reaches the store", func(t *testing.T) {
		t.Parallel()
		users := mocks.NewMockUserStore()
		users.CreateFn = func(ctx context.Context, user *domain.User) error {
			t.Error("store should not be called for invalid input")
			return nil
		}
		svc := newUserService(t, users)

		_, err := svc.Register(context.Background(), "", "s3cret-password")
		assert.ErrorIs(t, err, domain.ErrEmptyUsername)

		_, err = svc.Register(context.Background(), "alice", "")
		assert.ErrorIs(t, err, domain.ErrEmptyPassword)
	})

	t.Run("store failure is wrapped", func(t *testing.T) {
		t.Parallel()
		users := mocks.NewMockUserStore()
		storeErr := errors.New("connection reset")
		users.CreateFn = func(ctx context.Context, user *domain.User) error {
			return storeErr
		}
		svc := newUserService(t, users)

		_, err := svc.Register(context.Background(), "alice", "s3cret-password")
		assert.ErrorIs(t, err, storeErr)
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()

	register := func(t *testing.T) (*UserServiceImpl, *mocks.MockUserStore) {
		t.Helper()
		users := mocks.NewMockUserStore()
		svc := newUserService(t, users)
		_, err := svc.Register(context.Background(), "alice", "s3cret-password")
		require.NoError(t, err)
		return svc, users
	}

	t.Run("valid credentials yield a session token", func(t *testing.T) {
		t.Parallel()
		svc, _ := register(t)
		ctx := context.Background()

		token, err := svc.Login(ctx, "alice", "s3cret-password")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		// The token asserts alice's identity.
		claims, err := svc.tokenService.ValidateSessionToken(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, "alice", claims.Username)
	})

	t.Run("unknown username", func(t *testing.T) {
		t.Parallel()
		svc, _ := register(t)

		_, err := svc.Login(context.Background(), "mallory", "s3cret-password")
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		svc, _ := register(t)

		_, err := svc.Login(context.Background(), "alice", "wrong-password")
		assert.ErrorIs(t, err, ErrWrongPassword)
	})
}

func TestGetByUsername(t *testing.T) {
	t.Parallel()

	users := mocks.NewMockUserStore()
	svc := newUserService(t, users)
	ctx := context.Background()

	created, err := svc.Register(ctx, "alice", "s3cret-password")
	require.NoError(t, err)

	found, err := svc.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = svc.GetByUsername(ctx, "mallory")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}
