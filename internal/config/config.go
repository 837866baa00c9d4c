// Package config loads and validates the application configuration from
// environment variables and an optional config file.
package config

// Config holds all application configuration, grouped by concern.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains the HTTP server settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains the database settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains authentication settings. The refresh token is an
// opaque value whose lifetime is tracked on the user row, so its lifetime
// is configured in days while the short-lived access token uses minutes.
type AuthConfig struct {
	JWTSecret                string `mapstructure:"jwt_secret"                 validate:"required,min=32"`
	TokenLifetimeMinutes     int    `mapstructure:"token_lifetime_minutes"     validate:"required,gt=0"`
	RefreshTokenLifetimeDays int    `mapstructure:"refresh_token_lifetime_days" validate:"required,gt=0"`
	BcryptCost               int    `mapstructure:"bcrypt_cost"                validate:"omitempty,gte=4,lte=31"`
}
