package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/handover-labs/handover/internal/domain"
	"github.com/handover-labs/handover/internal/store"
)

// ItemService provides item management for authenticated users.
type ItemService interface {
	// ListItems returns all items currently owned by the user.
	ListItems(ctx context.Context, owner *domain.User) ([]*domain.Item, error)

	// CreateItem creates a new item owned by the user.
	CreateItem(ctx context.Context, owner *domain.User, name string) (*domain.Item, error)

	// DeleteItem deletes the item with the given ID.
	// Returns store.ErrItemNotFound if the item does not exist and
	// ErrNotItemOwner if the user does not own it.
	DeleteItem(ctx context.Context, user *domain.User, itemID int64) (*domain.Item, error)
}

// ItemServiceImpl implements the ItemService interface.
type ItemServiceImpl struct {
	itemStore store.ItemStore
	logger    *slog.Logger
}

// Ensure ItemServiceImpl implements ItemService interface
var _ ItemService = (*ItemServiceImpl)(nil)

// NewItemService creates a new ItemService.
func NewItemService(itemStore store.ItemStore, logger *slog.Logger) *ItemServiceImpl {
	return &ItemServiceImpl{
		itemStore: itemStore,
		logger:    logger.With("component", "item_service"),
	}
}

// ListItems returns all items currently owned by the user.
func (s *ItemServiceImpl) ListItems(
	ctx context.Context,
	owner *domain.User,
) ([]*domain.Item, error) {
	items, err := s.itemStore.ListByOwner(ctx, owner.ID)
	if err != nil {
		s.logger.Error("failed to list items",
			"error", err,
			"user_id", owner.ID)
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

// CreateItem creates a new item owned by the user.
func (s *ItemServiceImpl) CreateItem(
	ctx context.Context,
	owner *domain.User,
	name string,
) (*domain.Item, error) {
	item, err := domain.NewItem(name, owner.ID)
	if err != nil {
		s.logger.Warn("invalid item data",
			"error", err,
			"user_id", owner.ID)
		return nil, err
	}

	if err := s.itemStore.Create(ctx, item); err != nil {
		s.logger.Error("failed to create item",
			"error", err,
			"user_id", owner.ID)
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	s.logger.Info("item created",
		"item_id", item.ID,
		"user_id", owner.ID)

	return item, nil
}

// DeleteItem deletes the item after checking the acting user owns it.
// The ownership failure is distinct from not-found so a non-owner learns the
// item exists but may not touch it, matching the delete semantics elsewhere
// in the API.
func (s *ItemServiceImpl) DeleteItem(
	ctx context.Context,
	user *domain.User,
	itemID int64,
) (*domain.Item, error) {
	item, err := s.itemStore.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			s.logger.Debug("attempted to delete missing item",
				"item_id", itemID,
				"user_id", user.ID)
			return nil, store.ErrItemNotFound
		}
		s.logger.Error("failed to load item for delete",
			"error", err,
			"item_id", itemID)
		return nil, fmt.Errorf("failed to load item: %w", err)
	}

	if item.OwnerID != user.ID {
		s.logger.Warn("delete attempt by non-owner",
			"item_id", itemID,
			"owner_id", item.OwnerID,
			"user_id", user.ID)
		return nil, ErrNotItemOwner
	}

	if err := s.itemStore.Delete(ctx, itemID); err != nil {
		s.logger.Error("failed to delete item",
			"error", err,
			"item_id", itemID)
		return nil, fmt.Errorf("failed to delete item: %w", err)
	}

	s.logger.Info("item deleted",
		"item_id", itemID,
		"user_id", user.ID)

	return item, nil
}
