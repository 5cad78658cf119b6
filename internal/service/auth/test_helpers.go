package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/handover-labs/handover/internal/config"
)

// DefaultAuthConfig returns a standard auth configuration suitable for
// testing. This is the single source of truth for token test config.
func DefaultAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		TokenSecret:                  "test-token-secret-that-is-32-chars-long",
		SessionTokenLifetimeMinutes:  60,
		TransferTokenLifetimeMinutes: 24 * 60,
	}
}

// RequireTestTokenService creates a token service with the default test
// configuration, failing the test on error.
func RequireTestTokenService(t *testing.T) TokenService {
	t.Helper()
	svc, err := NewTokenService(DefaultAuthConfig())
	require.NoError(t, err, "failed to create test token service")
	return svc
}

// NewTokenServiceAt creates a token service whose clock is pinned to the
// given time function. Used by tests that exercise expiry behavior.
func NewTokenServiceAt(
	t *testing.T,
	cfg config.AuthConfig,
	timeFunc func() time.Time,
) TokenService {
	t.Helper()
	svc, err := NewTokenService(cfg)
	require.NoError(t, err, "failed to create token service")
	hmacSvc, ok := svc.(*hmacTokenService)
	require.True(t, ok, "unexpected token service implementation")
	hmacSvc.timeFunc = timeFunc
	hmacSvc.clockSkew = 0
	return hmacSvc
}
