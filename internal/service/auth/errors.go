package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the session token format is invalid or the
	// signature doesn't match.
	ErrInvalidToken = errors.New("invalid session token")

	// ErrExpiredToken indicates the session token has expired.
	ErrExpiredToken = errors.New("session token has expired")

	// ErrMissingToken indicates a session token was expected but not provided.
	ErrMissingToken = errors.New("session token is missing")

	// ErrInvalidTransferToken indicates the transfer token format is invalid
	// or the signature doesn't match.
	ErrInvalidTransferToken = errors.New("invalid transfer token")

	// ErrExpiredTransferToken indicates the transfer token has expired.
	ErrExpiredTransferToken = errors.New("transfer token has expired")

	// ErrWrongTokenType indicates a token of one kind was presented where the
	// other kind is required (e.g., a session token used as a transfer
	// capability).
	ErrWrongTokenType = errors.New("wrong token type")
)
