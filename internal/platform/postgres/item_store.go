package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/handover-labs/handover/internal/domain"
	"github.com/handover-labs/handover/internal/platform/logger"
	"github.com/handover-labs/handover/internal/store"
)

// PostgresItemStore implements the store.ItemStore interface
// using a PostgreSQL database as the storage backend.
type PostgresItemStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresItemStore creates a new PostgreSQL implementation of the
// ItemStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller.
func NewPostgresItemStore(db store.DBTX, log *slog.Logger) *PostgresItemStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresItemStore{
		db:     db,
		logger: log.With(slog.String("component", "item_store")),
	}
}

// Ensure PostgresItemStore implements store.ItemStore interface
var _ store.ItemStore = (*PostgresItemStore)(nil)

// Create implements store.ItemStore.Create
// Returns store.ErrInvalidEntity if the owner does not exist
// (foreign key violation).
func (s *PostgresItemStore) Create(ctx context.Context, item *domain.Item) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := item.Validate(); err != nil {
		log.Warn("item validation failed during create",
			slog.String("error", err.Error()),
			slog.String("name", item.Name))
		return err
	}

	query := `
		INSERT INTO items (name, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		item.Name,
		item.OwnerID,
		item.CreatedAt,
		item.UpdatedAt,
	).Scan(&item.ID)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during item creation",
				slog.String("error", err.Error()),
				slog.Int64("owner_id", item.OwnerID))
			return MapError(err)
		}
		log.Error("failed to create item",
			slog.String("error", err.Error()),
			slog.Int64("owner_id", item.OwnerID))
		return MapError(err)
	}

	log.Info("item created successfully",
		slog.Int64("item_id", item.ID),
		slog.Int64("owner_id", item.OwnerID))
	return nil
}

// GetByID implements store.ItemStore.GetByID
// Returns store.ErrItemNotFound if the item does not exist.
func (s *PostgresItemStore) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	return s.getByID(ctx, id, false)
}

// GetByIDForUpdate implements store.ItemStore.GetByIDForUpdate
// It locks the item's row until the surrounding transaction completes, so
// concurrent ownership changes serialize on it. Only meaningful on a store
// obtained via WithTx.
func (s *PostgresItemStore) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Item, error) {
	return s.getByID(ctx, id, true)
}

func (s *PostgresItemStore) getByID(
	ctx context.Context,
	id int64,
	forUpdate bool,
) (*domain.Item, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, owner_id, created_at, updated_at
		FROM items
		WHERE id = $1
	`
	if forUpdate {
		query += " FOR UPDATE"
	}

	var item domain.Item
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID,
		&item.Name,
		&item.OwnerID,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("item not found", slog.Int64("item_id", id))
			return nil, store.ErrItemNotFound
		}
		log.Error("failed to get item by ID",
			slog.String("error", err.Error()),
			slog.Int64("item_id", id))
		return nil, MapError(err)
	}

	return &item, nil
}

// ListByOwner implements store.ItemStore.ListByOwner
func (s *PostgresItemStore) ListByOwner(
	ctx context.Context,
	ownerID int64,
) ([]*domain.Item, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, owner_id, created_at, updated_at
		FROM items
		WHERE owner_id = $1
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		log.Error("failed to list items by owner",
			slog.String("error", err.Error()),
			slog.Int64("owner_id", ownerID))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Warn("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	items := make([]*domain.Item, 0)
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.OwnerID,
			&item.CreatedAt,
			&item.UpdatedAt,
		); err != nil {
			log.Error("failed to scan item row",
				slog.String("error", err.Error()),
				slog.Int64("owner_id", ownerID))
			return nil, MapError(err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return items, nil
}

// UpdateOwner implements store.ItemStore.UpdateOwner
// Returns store.ErrItemNotFound if the item does not exist.
func (s *PostgresItemStore) UpdateOwner(ctx context.Context, itemID, newOwnerID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE items
		SET owner_id = $1, updated_at = $2
		WHERE id = $3
	`
	result, err := s.db.ExecContext(ctx, query, newOwnerID, time.Now().UTC(), itemID)
	if err != nil {
		log.Error("failed to update item owner",
			slog.String("error", err.Error()),
			slog.Int64("item_id", itemID),
			slog.Int64("new_owner_id", newOwnerID))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "item"); err != nil {
		return store.ErrItemNotFound
	}

	log.Info("item owner updated",
		slog.Int64("item_id", itemID),
		slog.Int64("new_owner_id", newOwnerID))
	return nil
}

// Delete implements store.ItemStore.Delete
// Returns store.ErrItemNotFound if the item does not exist.
func (s *PostgresItemStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete item",
			slog.String("error", err.Error()),
			slog.Int64("item_id", id))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "item"); err != nil {
		return store.ErrItemNotFound
	}

	log.Info("item deleted", slog.Int64("item_id", id))
	return nil
}

// WithTx implements store.ItemStore.WithTx
// It returns a new store bound to the given transaction.
func (s *PostgresItemStore) WithTx(tx *sql.Tx) store.ItemStore {
	return &PostgresItemStore{
		db:     tx,
		logger: s.logger,
	}
}
