package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/handover-labs/handover/internal/config"
	"github.com/handover-labs/handover/internal/platform/logger"
)

// Token type claim values. The type claim prevents a token of one kind being
// replayed where the other kind is required.
const (
	tokenTypeSession  = "session"
	tokenTypeTransfer = "transfer"
)

// hmacTokenService is an implementation of TokenService using HMAC-SHA256
// signing. Signature verification is constant-time inside the jwt library.
type hmacTokenService struct {
	signingKey            []byte
	sessionTokenLifetime  time.Duration
	transferTokenLifetime time.Duration
	timeFunc              func() time.Time // Injectable for testing
	clockSkew             time.Duration    // Leeway for clock drift between hosts
}

// sessionTokenClaims is the wire layout of session token claims.
type sessionTokenClaims struct {
	Username  string `json:"username"`
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

// transferTokenClaims is the wire layout of transfer token claims.
type transferTokenClaims struct {
	ItemID    int64  `json:"item_id"`
	Recipient string `json:"recipient"`
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

// Ensure hmacTokenService implements TokenService interface
var _ TokenService = (*hmacTokenService)(nil)

// NewTokenService creates a new token service using HMAC-SHA256 signing.
// The signing secret and both token lifetimes come from the auth
// configuration; nothing in the service mutates after construction, so a
// single instance is safe for concurrent use.
func NewTokenService(cfg config.AuthConfig) (TokenService, error) {
	if len(cfg.TokenSecret) < 32 {
		return nil, fmt.Errorf("token secret must be at least 32 characters")
	}

	return &hmacTokenService{
		signingKey:            []byte(cfg.TokenSecret),
		sessionTokenLifetime:  time.Duration(cfg.SessionTokenLifetimeMinutes) * time.Minute,
		transferTokenLifetime: time.Duration(cfg.TransferTokenLifetimeMinutes) * time.Minute,
		timeFunc:              time.Now,
		clockSkew:             2 * time.Minute,
	}, nil
}

// GenerateSessionToken creates a signed session token for the named user.
func (s *hmacTokenService) GenerateSessionToken(ctx context.Context, username string) (string, error) {
	log := logger.FromContext(ctx)
	now := s.timeFunc()

	claims := sessionTokenClaims{
		Username:  username,
		TokenType: tokenTypeSession,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTokenLifetime)),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		log.Error("failed to sign session token",
			"error", err,
			"username", username)
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return signed, nil
}

// ValidateSessionToken validates a session token and returns its claims.
func (s *hmacTokenService) ValidateSessionToken(
	ctx context.Context,
	tokenString string,
) (*SessionClaims, error) {
	log := logger.FromContext(ctx)

	claims := &sessionTokenClaims{}
	if err := s.parse(tokenString, claims); err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Debug("session token validation failed: token expired", "error", err)
			return nil, ErrExpiredToken
		}
		log.Debug("session token validation failed", "error", err)
		return nil, ErrInvalidToken
	}

	if claims.TokenType != tokenTypeSession {
		log.Debug("session token validation failed: wrong token type",
			"expected", tokenTypeSession,
			"actual", claims.TokenType)
		return nil, ErrWrongTokenType
	}

	return &SessionClaims{
		Username:  claims.Username,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
		ID:        claims.ID,
	}, nil
}

// GenerateTransferToken creates a signed one-time capability naming an item
// and its intended recipient. The token carries no server-side state; replay
// safety rests on the redeem-time ownership check in the transfer service.
func (s *hmacTokenService) GenerateTransferToken(
	ctx context.Context,
	itemID int64,
	recipientUsername string,
) (string, error) {
	log := logger.FromContext(ctx)
	now := s.timeFunc()

	claims := transferTokenClaims{
		ItemID:    itemID,
		Recipient: recipientUsername,
		TokenType: tokenTypeTransfer,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   recipientUsername,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.transferTokenLifetime)),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		log.Error("failed to sign transfer token",
			"error", err,
			"item_id", itemID,
			"recipient", recipientUsername)
		return "", fmt.Errorf("failed to sign transfer token: %w", err)
	}

	return signed, nil
}

// ValidateTransferToken validates a transfer token and returns its claims.
func (s *hmacTokenService) ValidateTransferToken(
	ctx context.Context,
	tokenString string,
) (*TransferClaims, error) {
	log := logger.FromContext(ctx)

	claims := &transferTokenClaims{}
	if err := s.parse(tokenString, claims); err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Debug("transfer token validation failed: token expired", "error", err)
			return nil, ErrExpiredTransferToken
		}
		log.Debug("transfer token validation failed", "error", err)
		return nil, ErrInvalidTransferToken
	}

	if claims.TokenType != tokenTypeTransfer {
		log.Debug("transfer token validation failed: wrong token type",
			"expected", tokenTypeTransfer,
			"actual", claims.TokenType)
		return nil, ErrWrongTokenType
	}

	return &TransferClaims{
		ItemID:            claims.ItemID,
		RecipientUsername: claims.Recipient,
		IssuedAt:          claims.IssuedAt.Time,
		ExpiresAt:         claims.ExpiresAt.Time,
		ID:                claims.ID,
	}, nil
}

// parse runs signature and time-claim validation over tokenString,
// populating claims on success. Only HMAC-SHA256 is accepted.
func (s *hmacTokenService) parse(tokenString string, claims jwt.Claims) error {
	now := s.timeFunc()

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithLeeway(s.clockSkew),
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithExpirationRequired(),
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.signingKey, nil
		},
		parserOpts...)
	if err != nil {
		return err
	}
	if !token.Valid {
		return jwt.ErrTokenUnverifiable
	}

	return nil
}
