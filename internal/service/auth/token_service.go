// Package auth provides the token service and password collaborators used
// to authenticate users and to authorize one-time item transfers.
package auth

import (
	"context"
	"time"
)

// TokenService defines operations for issuing and verifying the two kinds
// of signed, self-contained tokens this service uses: session tokens
// (identity assertions) and transfer tokens (one-time capability assertions
// naming an item and its intended recipient). No token is ever persisted.
type TokenService interface {
	// GenerateSessionToken creates a signed session token asserting the
	// identity of the named user until the configured lifetime elapses.
	GenerateSessionToken(ctx context.Context, username string) (string, error)

	// ValidateSessionToken validates a session token string and extracts its
	// claims. Returns ErrExpiredToken, ErrInvalidToken or ErrWrongTokenType
	// on failure.
	ValidateSessionToken(ctx context.Context, tokenString string) (*SessionClaims, error)

	// GenerateTransferToken creates a signed capability token asserting that
	// recipientUsername may claim the item with itemID, once.
	GenerateTransferToken(ctx context.Context, itemID int64, recipientUsername string) (string, error)

	// ValidateTransferToken validates a transfer token string and extracts
	// its claims. Returns ErrExpiredTransferToken, ErrInvalidTransferToken
	// or ErrWrongTokenType on failure.
	ValidateTransferToken(ctx context.Context, tokenString string) (*TransferClaims, error)
}

// SessionClaims is the verified content of a session token.
type SessionClaims struct {
	// Username identifies the user the token was issued for.
	Username string

	// Standard registered claims
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}

// TransferClaims is the verified content of a transfer token.
type TransferClaims struct {
	// ItemID names the item the capability covers.
	ItemID int64

	// RecipientUsername names the only user permitted to redeem the token.
	RecipientUsername string

	// Standard registered claims
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}
