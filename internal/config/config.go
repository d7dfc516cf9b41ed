// Package config loads server configuration from an optional YAML file and
// the environment. Environment variables use the upper-cased key with dots
// replaced by underscores, e.g. STORAGE_BACKEND for storage.backend.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Storage  StorageConfig  `mapstructure:"storage"`
	CMS      CMSConfig      `mapstructure:"cms"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Currency CurrencyConfig `mapstructure:"currency"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int `mapstructure:"port"`
	// BaseURL is the public address used in share links.
	BaseURL         string        `mapstructure:"base_url"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// StorageConfig selects and configures the persistence backend
type StorageConfig struct {
	Backend          string `mapstructure:"backend"`
	SQLitePath       string `mapstructure:"sqlite_path"`
	PostgresURL      string `mapstructure:"postgres_url"`
	PostgresMaxConns int    `mapstructure:"postgres_max_conns"`
}

// CMSConfig holds the reference-data backend configuration
type CMSConfig struct {
	URL      string        `mapstructure:"url"`
	APIKey   string        `mapstructure:"api_key"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// AuthConfig holds member token configuration
type AuthConfig struct {
	JWTSecret     string        `mapstructure:"jwt_secret"`
	TokenDuration time.Duration `mapstructure:"token_duration"`
}

// CurrencyConfig holds currency reporting configuration
type CurrencyConfig struct {
	Reporting string `mapstructure:"reporting"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Storage backends.
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

var validBackends = []string{BackendMemory, BackendSQLite, BackendPostgres}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("storage.backend", BackendSQLite)
	v.SetDefault("storage.sqlite_path", "./data/tripsplit.db")
	v.SetDefault("storage.postgres_url", "")
	v.SetDefault("storage.postgres_max_conns", 10)

	v.SetDefault("cms.url", "")
	v.SetDefault("cms.api_key", "")
	v.SetDefault("cms.cache_ttl", 5*time.Minute)
	v.SetDefault("cms.timeout", 10*time.Second)

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_duration", 30*24*time.Hour)

	v.SetDefault("currency.reporting", "INR")

	v.SetDefault("log.level", "info")
}

// Load reads configuration. configPath may be empty, in which case a
// config.yaml in the working directory is used when present. Environment
// variables override file values.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Currency.Reporting = strings.ToUpper(strings.TrimSpace(cfg.Currency.Reporting))
	cfg.Storage.Backend = strings.ToLower(strings.TrimSpace(cfg.Storage.Backend))

	return &cfg, nil
}

// Validate validates the configuration and returns an error listing every
// problem found.
func (c *Config) Validate() error {
	var problems []string

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", c.Server.Port))
	}
	if u, err := url.Parse(c.Server.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		problems = append(problems, fmt.Sprintf("invalid base URL %q: must be an absolute URL", c.Server.BaseURL))
	}

	if !slices.Contains(validBackends, c.Storage.Backend) {
		problems = append(problems, fmt.Sprintf("invalid storage backend %q: must be one of %v", c.Storage.Backend, validBackends))
	}
	if c.Storage.Backend == BackendSQLite && c.Storage.SQLitePath == "" {
		problems = append(problems, "SQLite database path cannot be empty when using sqlite backend")
	}
	if c.Storage.Backend == BackendPostgres {
		if c.Storage.PostgresURL == "" {
			problems = append(problems, "PostgreSQL URL is required when using postgres backend")
		}
		if c.Storage.PostgresMaxConns < 1 {
			problems = append(problems, fmt.Sprintf("invalid postgres max conns %d: must be at least 1", c.Storage.PostgresMaxConns))
		}
	}

	if c.CMS.URL != "" {
		if u, err := url.Parse(c.CMS.URL); err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			problems = append(problems, fmt.Sprintf("invalid CMS URL %q: must be http or https", c.CMS.URL))
		}
	}
	if c.CMS.CacheTTL < 0 {
		problems = append(problems, "CMS cache TTL cannot be negative")
	}

	if len(c.Auth.JWTSecret) < 16 {
		problems = append(problems, "JWT secret must be at least 16 characters (set AUTH_JWT_SECRET)")
	}
	if c.Auth.TokenDuration < time.Minute {
		problems = append(problems, fmt.Sprintf("invalid token duration %v: must be at least 1 minute", c.Auth.TokenDuration))
	}

	if len(c.Currency.Reporting) != 3 {
		problems = append(problems, fmt.Sprintf("invalid reporting currency %q: must be a 3-letter code", c.Currency.Reporting))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}
