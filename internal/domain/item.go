package domain

import (
	"errors"
	"time"
)

// Item validation errors
var (
	ErrEmptyItemName   = errors.New("item name cannot be empty")
	ErrItemNameTooLong = errors.New("item name must be at most 80 characters long")
	ErrNoItemOwner     = errors.New("item must have an owner")
)

// Item is a thing owned by exactly one user. OwnerID is the only mutable
// field; it changes solely through a completed transfer.
type Item struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	OwnerID   int64     `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewItem creates a new Item named name and owned by ownerID.
// The ID is zero until the store assigns one on creation.
func NewItem(name string, ownerID int64) (*Item, error) {
	item := &Item{
		Name:      name,
		OwnerID:   ownerID,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate checks if the Item has valid data.
func (i *Item) Validate() error {
	if i.Name == "" {
		return ErrEmptyItemName
	}
	if len(i.Name) > 80 {
		return ErrItemNameTooLong
	}
	if i.OwnerID <= 0 {
		return ErrNoItemOwner
	}
	return nil
}
