// Package config provides application configuration management.
// Configuration is loaded from environment variables following 12-factor principles,
// optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is read when ENV_FILE is not set.
const DefaultEnvFile = ".env"

// Config holds all server configuration.
type Config struct {
	// Application settings
	AppEnv  string `env:"APP_ENV" envDefault:"development"`
	AppPort int    `env:"APP_PORT" envDefault:"8080"`

	// Database (PostgreSQL)
	DatabaseURL    string `env:"DATABASE_URL,required"`
	MigrateOnStart bool   `env:"MIGRATE_ON_START" envDefault:"true"`

	// Session tokens. The secret is a startup precondition.
	TokenSecret string        `env:"TOKEN_SECRET,required,notEmpty"`
	TokenTTL    time.Duration `env:"TOKEN_TTL" envDefault:"0s"`

	// EntriesScoped restricts every entry operation to its authenticated owner.
	// When false, entry routes are public and entries are unowned.
	EntriesScoped bool `env:"ENTRIES_SCOPED" envDefault:"true"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Server timeouts
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// Comma-separated list of allowed origins for the browser client
	CORSAllowedOrigins string `env:"CORS_ALLOWED_ORIGINS" envDefault:""`

	// Request body size limit in bytes (default 1MB)
	MaxRequestBodySize int64 `env:"MAX_REQUEST_BODY_SIZE" envDefault:"1048576"`

	MetricsEnabled bool `env:"METRICS_ENABLED" envDefault:"true"`
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// GetCORSAllowedOrigins parses the comma-separated origins string into a slice.
func (c *Config) GetCORSAllowedOrigins() []string {
	return splitList(c.CORSAllowedOrigins)
}

// Load reads the optional env file and parses environment variables into a Config.
// Returns an error if required variables are missing.
func Load() (*Config, error) {
	if err := LoadEnvFile(envFilePath()); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// ClientConfig holds configuration for the terminal client.
type ClientConfig struct {
	APIURL      string        `env:"JOURNAL_API_URL" envDefault:"http://localhost:8080"`
	Timeout     time.Duration `env:"JOURNAL_TIMEOUT" envDefault:"10s"`
	SessionFile string        `env:"JOURNAL_SESSION_FILE"`
}

// LoadClient parses the client configuration.
func LoadClient() (*ClientConfig, error) {
	if err := LoadEnvFile(envFilePath()); err != nil {
		return nil, err
	}

	cfg := &ClientConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse client config: %w", err)
	}
	return cfg, nil
}

// LoadEnvFile loads variables from path without overriding ones already set.
// A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

func envFilePath() string {
	if p, ok := os.LookupEnv("ENV_FILE"); ok {
		return p
	}
	return DefaultEnvFile
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}

	items := strings.Split(s, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
