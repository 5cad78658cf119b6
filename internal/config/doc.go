// Package config handles loading, parsing, and validating application
// configuration from environment variables and configuration files.
package config
