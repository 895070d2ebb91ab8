package config

import (
	"os"
	"testing"
	"time"

	"gorm.io/gorm/logger"
)

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		// Setenv registers the restore, Unsetenv clears it for this test
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	unsetEnv(t, "SERVICE_NAME", "DB_DRIVER", "DB_NAME", "AUTH_ENABLED", "COLLATION_LOCALE", "DB_LOG_LEVEL", "SEED_FILE")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DB.DBName != "gestorpro" {
		t.Fatalf("DBName: expected service name fallback, got %q", cfg.DB.DBName)
	}
	if cfg.JWT.Enabled {
		t.Fatalf("auth should default to disabled")
	}
	if cfg.Recipe.Locale.String() != "pt-BR" {
		t.Fatalf("Locale: got %s", cfg.Recipe.Locale)
	}
	if cfg.DB.LogLevel != logger.Warn {
		t.Fatalf("LogLevel: got %v", cfg.DB.LogLevel)
	}
	if cfg.Seed.File != "" {
		t.Fatalf("Seed file: expected none, got %q", cfg.Seed.File)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVICE_NAME", "estoque")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", "/tmp/estoque.db")
	t.Setenv("AUTH_ENABLED", "true")
	t.Setenv("DB_CONN_MAX_LIFETIME", "5m")
	t.Setenv("COLLATION_LOCALE", "en-US")
	t.Setenv("SEED_FILE", "seed.example.yaml")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DB.Driver != "sqlite" || cfg.DB.Path != "/tmp/estoque.db" {
		t.Fatalf("DB: got %+v", cfg.DB)
	}
	if !cfg.JWT.Enabled {
		t.Fatalf("expected auth enabled")
	}
	if cfg.DB.ConnMaxLifetime != 5*time.Minute {
		t.Fatalf("ConnMaxLifetime: got %v", cfg.DB.ConnMaxLifetime)
	}
	if cfg.Metrics.Prefix != "estoque" {
		t.Fatalf("Metrics prefix: got %q", cfg.Metrics.Prefix)
	}
	if cfg.Seed.File != "seed.example.yaml" {
		t.Fatalf("Seed file: got %q", cfg.Seed.File)
	}
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("COLLATION_LOCALE", "pt-BR")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unsupported driver")
	}
}
