package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/handover-labs/handover/internal/domain"
	"github.com/handover-labs/handover/internal/store"
)

// MockItemStore implements store.ItemStore for testing.
type MockItemStore struct {
	// Function fields for customizable behavior
	CreateFn           func(ctx context.Context, item *domain.Item) error
	GetByIDFn          func(ctx context.Context, id int64) (*domain.Item, error)
	GetByIDForUpdateFn func(ctx context.Context, id int64) (*domain.Item, error)
	ListByOwnerFn      func(ctx context.Context, ownerID int64) ([]*domain.Item, error)
	UpdateOwnerFn      func(ctx context.Context, itemID, newOwnerID int64) error
	DeleteFn           func(ctx context.Context, id int64) error

	mu     sync.Mutex
	items  map[int64]*domain.Item
	nextID int64
}

// Ensure MockItemStore implements store.ItemStore interface
var _ store.ItemStore = (*MockItemStore)(nil)

// NewMockItemStore creates a new mock store with initialized defaults.
func NewMockItemStore() *MockItemStore {
	return &MockItemStore{
		items:  make(map[int64]*domain.Item),
		nextID: 1,
	}
}

// Create implements the ItemStore interface.
func (m *MockItemStore) Create(ctx context.Context, item *domain.Item) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, item)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	item.ID = m.nextID
	m.nextID++
	m.items[item.ID] = item
	return nil
}

// GetByID implements the ItemStore interface.
func (m *MockItemStore) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.get(id)
}

// GetByIDForUpdate implements the ItemStore interface. The mock has no row
// locking; it behaves like GetByID.
func (m *MockItemStore) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Item, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return m.get(id)
}

func (m *MockItemStore) get(id int64) (*domain.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if item, ok := m.items[id]; ok {
		copied := *item
		return &copied, nil
	}
	return nil, store.ErrItemNotFound
}

// ListByOwner implements the ItemStore interface.
func (m *MockItemStore) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Item, error) {
	if m.ListByOwnerFn != nil {
		return m.ListByOwnerFn(ctx, ownerID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	items := make([]*domain.Item, 0)
	for _, item := range m.items {
		if item.OwnerID == ownerID {
			copied := *item
			items = append(items, &copied)
		}
	}
	return items, nil
}

// UpdateOwner implements the ItemStore interface.
func (m *MockItemStore) UpdateOwner(ctx context.Context, itemID, newOwnerID int64) error {
	if m.UpdateOwnerFn != nil {
		return m.UpdateOwnerFn(ctx, itemID, newOwnerID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.items[itemID]
	if !ok {
		return store.ErrItemNotFound
	}
	item.OwnerID = newOwnerID
	return nil
}

// Delete implements the ItemStore interface.
func (m *MockItemStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[id]; !ok {
		return store.ErrItemNotFound
	}
	delete(m.items, id)
	return nil
}

// WithTx implements the ItemStore interface. The mock has no transactions,
// so it returns itself.
func (m *MockItemStore) WithTx(tx *sql.Tx) store.ItemStore {
	return m
}
