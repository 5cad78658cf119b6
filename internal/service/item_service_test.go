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
	"github.com/handover-labs/handover/internal/store"
)

func TestCreateItem(t *testing.T) {
	t.Parallel()
	owner := &domain.User{ID: 1, Username: "alice"}

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		svc := NewItemService(mocks.NewMockItemStore(), slog.Default())

		item, err := svc.CreateItem(context.Background(), owner, "vorpal sword")
		require.NoError(t, err)
		assert.NotZero(t, item.ID)
		assert.Equal(t, "vorpal sword", item.Name)
		assert.Equal(t, owner.ID, item.OwnerID)
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()
		svc := NewItemService(mocks.NewMockItemStore(), slog.Default())

		_, err := svc.CreateItem(context.Background(), owner, "")
		assert.ErrorIs(t, err, domain.ErrEmptyItemName)
	})

	t.Run("store failure is wrapped", func(t *testing.T) {
		t.Parallel()
		items := mocks.NewMockItemStore()
		storeErr := errors.New("connection reset")
		items.CreateFn = func(ctx context.Context, item *domain.Item) error {
			return storeErr
		}
		svc := NewItemService(items, slog.Default())

		_, err := svc.CreateItem(context.Background(), owner, "vorpal sword")
		assert.ErrorIs(t, err, storeErr)
	})
}

func TestListItems(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	alice := &domain.User{ID: 1, Username: "alice"}
	bob := &domain.User{ID: 2, Username: "bob"}

	items := mocks.NewMockItemStore()
	svc := NewItemService(items, slog.Default())

	_, err := svc.CreateItem(ctx, alice, "sword")
	require.NoError(t, err)
	_, err = svc.CreateItem(ctx, alice, "shield")
	require.NoError(t, err)
	_, err = svc.CreateItem(ctx, bob, "lantern")
	require.NoError(t, err)

	aliceItems, err := svc.ListItems(ctx, alice)
	require.NoError(t, err)
	assert.Len(t, aliceItems, 2)
	for _, item := range aliceItems {
		assert.Equal(t, alice.ID, item.OwnerID)
	}

	// A user with no items gets an empty list, not nil.
	carol := &domain.User{ID: 3, Username: "carol"}
	carolItems, err := svc.ListItems(ctx, carol)
	require.NoError(t, err)
	assert.NotNil(t, carolItems)
	assert.Empty(t, carolItems)
}

func TestDeleteItem(t *testing.T) {
	t.Parallel()

	setup := func(t *testing.T) (*ItemServiceImpl, *domain.Item) {
		t.Helper()
		svc := NewItemService(mocks.NewMockItemStore(), slog.Default())
		item, err := svc.CreateItem(context.Background(), &domain.User{ID: 1}, "sword")
		require.NoError(t, err)
		return svc, item
	}

	t.Run("owner deletes their item", func(t *testing.T) {
		t.Parallel()
		svc, item := setup(t)
		ctx := context.Background()

		deleted, err := svc.DeleteItem(ctx, &domain.User{ID: 1}, item.ID)
		require.NoError(t, err)
		assert.Equal(t, item.ID, deleted.ID)

		remaining, err := svc.ListItems(ctx, &domain.User{ID: 1})
		require.NoError(t, err)
		assert.Empty(t, remaining)
	})

	t.Run("missing item", func(t *testing.T) {
		t.Parallel()
		svc, _ := setup(t)

		_, err := svc.DeleteItem(context.Background(), &domain.User{ID: 1}, 9999)
		assert.ErrorIs(t, err, store.ErrItemNotFound)
	})

	t.Run("non-owner may not delete", func(t *testing.T) {
		t.Parallel()
		svc, item := setup(t)
		ctx := context.Background()

		_, err := svc.DeleteItem(ctx, &domain.User{ID: 2}, item.ID)
		assert.ErrorIs(t, err, ErrNotItemOwner)

		// The item survives the failed attempt.
		_, err = svc.itemStore.GetByID(ctx, item.ID)
		assert.NoError(t, err)
	})
}
