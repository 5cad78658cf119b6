package api

import "github.com/handover-labs/handover/internal/domain"

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=80"`
	Password string `json:"password" validate:"required,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CreateItemRequest defines the payload for the item creation endpoint.
type CreateItemRequest struct {
	Name string `json:"name" validate:"required,max=80"`
}

// ProposeTransferRequest defines the payload for the transfer initiation
// endpoint.
type ProposeTransferRequest struct {
	ItemID            int64  `json:"item_id"            validate:"required,gt=0"`
	RecipientUsername string `json:"recipient_username" validate:"required"`
}

// ItemPayload is the wire shape of an item.
type ItemPayload struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	OwnerID int64  `json:"owner_id"`
}

// NewItemPayload converts a domain item to its wire shape.
func NewItemPayload(item *domain.Item) ItemPayload {
	return ItemPayload{
		ID:      item.ID,
		Name:    item.Name,
		OwnerID: item.OwnerID,
	}
}

// RegisterResponse wraps the created user. Items is always present, empty
// for a fresh account.
type RegisterResponse struct {
	User RegisteredUser `json:"user"`
}

// RegisteredUser is the wire shape of a newly registered user.
type RegisteredUser struct {
	ID       int64         `json:"id"`
	Username string        `json:"username"`
	Items    []ItemPayload `json:"items"`
}

// LoginResponse wraps the issued session token.
type LoginResponse struct {
	User SessionPayload `json:"user"`
}

// SessionPayload carries the session token issued on login.
type SessionPayload struct {
	SessionToken string `json:"session_token"`
}

// ItemsResponse wraps an item list.
type ItemsResponse struct {
	Items []ItemPayload `json:"items"`
}

// ItemResponse wraps a single item.
type ItemResponse struct {
	Item ItemPayload `json:"item"`
}

// ItemDeletedResponse confirms a deletion.
type ItemDeletedResponse struct {
	Item string `json:"item"`
}

// TransferProposedResponse carries the one-time URL the sender hands to the
// recipient out-of-band.
type TransferProposedResponse struct {
	TransferURL string `json:"transfer_url"`
}
