package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// BaseURL is the externally reachable root of this service. Transfer
	// URLs handed to clients are built on top of it.
	BaseURL string `mapstructure:"base_url" validate:"required,url"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains all authentication and token-signing settings.
// These values are read once at startup and passed into the token service
// at construction; nothing mutates them afterwards.
type AuthConfig struct {
	// TokenSecret signs both session and transfer tokens.
	TokenSecret string `mapstructure:"token_secret" validate:"required,min=32"`

	// SessionTokenLifetimeMinutes bounds the validity of session tokens.
	SessionTokenLifetimeMinutes int `mapstructure:"session_token_lifetime_minutes" validate:"required,gt=0"`

	// TransferTokenLifetimeMinutes bounds the validity of transfer tokens.
	// The original handoff design left transfer capabilities unexpiring;
	// bounding them narrows the replay window without changing the
	// ownership-based idempotency guard.
	TransferTokenLifetimeMinutes int `mapstructure:"transfer_token_lifetime_minutes" validate:"required,gt=0"`
}
