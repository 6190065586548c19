// Package config loads and validates application configuration.
package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	Geocoder GeocoderConfig `mapstructure:"geocoder" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`

	// TokenLifetimeMinutes is the access token lifetime. Defaults to 24 hours.
	TokenLifetimeMinutes int `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
}

// GeocoderConfig contains settings for the address geocoding collaborator.
type GeocoderConfig struct {
	// BaseURL is the geocoding endpoint. Defaults to the public Nominatim instance.
	BaseURL string `mapstructure:"base_url" validate:"required,url"`

	// UserAgent identifies this application to the geocoding provider.
	// Nominatim's usage policy requires a meaningful value.
	UserAgent string `mapstructure:"user_agent" validate:"required"`

	// TimeoutSeconds bounds each geocoding request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" validate:"required,gt=0"`
}
