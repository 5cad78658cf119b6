package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// Callers check for these with errors.Is(); the API layer maps each onto an
// HTTP status code.
var (
	// ErrWrongPassword indicates the supplied password does not match the
	// stored digest. API layer maps this to HTTP 401 Unauthorized.
	ErrWrongPassword = errors.New("wrong password")

	// ErrNotItemOwner indicates the acting user does not currently own the
	// item. Returned for delete and transfer-propose attempts by non-owners.
	// API layer maps this to HTTP 403 Forbidden.
	ErrNotItemOwner = errors.New("item is owned by another user")

	// ErrAlreadyOwned indicates the prospective recipient already owns the
	// item. During redemption this doubles as the replay guard: a transfer
	// token redeemed a second time finds the recipient owning the item and
	// fails here. API layer maps this to HTTP 409 Conflict.
	ErrAlreadyOwned = errors.New("user already owns this item")

	// ErrWrongRecipient indicates an authenticated user tried to redeem a
	// transfer token naming someone else. API layer maps this to
	// HTTP 403 Forbidden.
	ErrWrongRecipient = errors.New("transfer token names another recipient")
)
