package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Server:   ServerConfig{Port: 8080, BaseURL: "http://localhost:8080"},
		Storage:  StorageConfig{Backend: BackendMemory},
		Auth:     AuthConfig{JWTSecret: "0123456789abcdef", TokenDuration: time.Hour},
		Currency: CurrencyConfig{Reporting: "INR"},
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Storage.Backend != BackendSQLite {
		t.Errorf("Expected sqlite backend, got %q", cfg.Storage.Backend)
	}
	if cfg.CMS.CacheTTL != 5*time.Minute {
		t.Errorf("Expected 5m cache TTL, got %v", cfg.CMS.CacheTTL)
	}
	if cfg.Currency.Reporting != "INR" {
		t.Errorf("Expected INR, got %q", cfg.Currency.Reporting)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORAGE_BACKEND", "Postgres")
	t.Setenv("CMS_CACHE_TTL", "30s")
	t.Setenv("CURRENCY_REPORTING", "usd")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Storage.Backend != BackendPostgres {
		t.Errorf("Expected postgres backend, got %q", cfg.Storage.Backend)
	}
	if cfg.CMS.CacheTTL != 30*time.Second {
		t.Errorf("Expected 30s, got %v", cfg.CMS.CacheTTL)
	}
	if cfg.Currency.Reporting != "USD" {
		t.Errorf("Expected USD, got %q", cfg.Currency.Reporting)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tripsplit.yaml")
	content := "server:\n  port: 7000\ncms:\n  url: https://cms.example\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 7000 || cfg.CMS.URL != "https://cms.example" {
		t.Errorf("Expected file values, got %+v", cfg)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing explicit config file")
	}
}

func TestValidate(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("Expected valid config, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"bad port", func(c *Config) { c.Server.Port = 0 }, "invalid port"},
		{"relative base url", func(c *Config) { c.Server.BaseURL = "/app" }, "invalid base URL"},
		{"unknown backend", func(c *Config) { c.Storage.Backend = "redis" }, "invalid storage backend"},
		{"postgres without url", func(c *Config) { c.Storage.Backend = BackendPostgres; c.Storage.PostgresMaxConns = 5 }, "PostgreSQL URL is required"},
		{"sqlite without path", func(c *Config) { c.Storage.Backend = BackendSQLite }, "SQLite database path"},
		{"bad cms url", func(c *Config) { c.CMS.URL = "ftp://cms" }, "invalid CMS URL"},
		{"short secret", func(c *Config) { c.Auth.JWTSecret = "short" }, "JWT secret"},
		{"bad currency", func(c *Config) { c.Currency.Reporting = "RUPEE" }, "reporting currency"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestValidateCollectsAllProblems(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = -1
	cfg.Auth.JWTSecret = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Expected error")
	}
	if !strings.Contains(err.Error(), "invalid port") || !strings.Contains(err.Error(), "JWT secret") {
		t.Errorf("Expected both problems reported, got %v", err)
	}
}
