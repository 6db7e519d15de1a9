package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Server.Port != "8080" {
		t.Errorf("default port = %s, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Type != "mysql" {
		t.Errorf("default database type = %s, want mysql", cfg.Database.Type)
	}
	if cfg.Import.MaxBatchSize != 500 {
		t.Errorf("default max batch size = %d, want 500", cfg.Import.MaxBatchSize)
	}
	if !cfg.Import.RateLimit.Enabled {
		t.Error("rate limiting should be enabled by default")
	}
	if cfg.Cleanup.DemoRetentionDays != 30 {
		t.Errorf("default retention = %d, want 30", cfg.Cleanup.DemoRetentionDays)
	}
}

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/app.yaml")
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("expected defaults, got port %s", cfg.Server.Port)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	content := `
server:
  port: "9090"
database:
  type: postgres
  postgres:
    host: pg.internal
import:
  max_batch_size: 50
  rate_limit:
    enabled: false
`
	path := filepath.Join(t.TempDir(), "app.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("port = %s, want 9090", cfg.Server.Port)
	}
	if cfg.Database.Type != "postgres" || cfg.Database.Postgres.Host != "pg.internal" {
		t.Errorf("database override not applied: %+v", cfg.Database)
	}
	if cfg.Import.MaxBatchSize != 50 {
		t.Errorf("max batch size = %d, want 50", cfg.Import.MaxBatchSize)
	}
	if cfg.Import.RateLimit.Enabled {
		t.Error("rate limit override not applied")
	}
	// Keys the file omits keep their defaults
	if cfg.Database.Postgres.Port != 5432 {
		t.Errorf("omitted key lost its default: %d", cfg.Database.Postgres.Port)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.yaml")
	if err := os.WriteFile(path, []byte("server: [broken"), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestGetConnMaxLifetime(t *testing.T) {
	pool := PoolConfig{ConnMaxLifetimeMinutes: 45}
	if got := pool.GetConnMaxLifetime(); got != 45*time.Minute {
		t.Errorf("GetConnMaxLifetime() = %v, want 45m", got)
	}
}
