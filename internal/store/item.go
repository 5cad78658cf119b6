package store

import (
	"context"
	"database/sql"

	"github.com/handover-labs/handover/internal/domain"
)

// ItemStore defines the interface for item data persistence.
type ItemStore interface {
	// Create saves a new item to the store and assigns its ID.
	// Returns ErrInvalidEntity if the owner does not exist.
	// Returns validation errors from the domain Item if data is invalid.
	Create(ctx context.Context, item *domain.Item) error

	// GetByID retrieves an item by its unique ID.
	// Returns ErrItemNotFound if the item does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Item, error)

	// GetByIDForUpdate retrieves an item by ID and locks its row for the
	// duration of the surrounding transaction. Callers MUST use this from a
	// store obtained via WithTx; it is the foundation of the atomic
	// check-and-set during ownership transfer.
	// Returns ErrItemNotFound if the item does not exist.
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Item, error)

	// ListByOwner retrieves all items owned by the given user, ordered by ID.
	// Returns an empty slice when the user owns nothing.
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Item, error)

	// UpdateOwner reassigns the item to a new owner.
	// Returns ErrItemNotFound if the item does not exist.
	UpdateOwner(ctx context.Context, itemID, newOwnerID int64) error

	// Delete removes an item from the store by its ID.
	// Returns ErrItemNotFound if the item does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new ItemStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller
	// (typically a service).
	WithTx(tx *sql.Tx) ItemStore
}
