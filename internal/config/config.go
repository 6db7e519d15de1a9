package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Search    SearchConfig    `yaml:"search"`
	Import    ImportConfig    `yaml:"import"`
	Cleanup   CleanupConfig   `yaml:"cleanup"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Port               string   `yaml:"port"`
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Type     string         `yaml:"type"`
	MySQL    MySQLConfig    `yaml:"mysql"`
	Postgres PostgresConfig `yaml:"postgres"`
	Pool     PoolConfig     `yaml:"pool"`
}

// MySQLConfig contains MySQL connection settings
type MySQLConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

// PostgresConfig contains PostgreSQL connection settings
type PostgresConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"sslmode"`
}

// PoolConfig bounds the shared connection pool. One transactional
// connection is held per import item for the duration of its steps.
type PoolConfig struct {
	MaxOpenConns           int `yaml:"max_open_conns"`
	MaxIdleConns           int `yaml:"max_idle_conns"`
	ConnMaxLifetimeMinutes int `yaml:"conn_max_lifetime_minutes"`
}

// SearchConfig contains search engine settings
type SearchConfig struct {
	Meilisearch MeilisearchConfig `yaml:"meilisearch"`
}

// MeilisearchConfig contains Meilisearch connection settings
type MeilisearchConfig struct {
	Host   string `yaml:"host"`
	APIKey string `yaml:"api_key"`
}

// ImportConfig contains import endpoint settings
type ImportConfig struct {
	MaxBatchSize int             `yaml:"max_batch_size"`
	RateLimit    RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig contains rate limiting settings for the import endpoint
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requests_per_minute"`
	RequestsPerHour   int  `yaml:"requests_per_hour"`
}

// CleanupConfig contains demo-listing purge settings
type CleanupConfig struct {
	DemoRetentionDays int `yaml:"demo_retention_days"`
	MaxDeletionCount  int `yaml:"max_deletion_count"`
}

// SchedulerConfig contains nightly job settings (HH:MM local time)
type SchedulerConfig struct {
	ReindexEnabled bool   `yaml:"reindex_enabled"`
	ReindexTime    string `yaml:"reindex_time"`
	CleanupEnabled bool   `yaml:"cleanup_enabled"`
	CleanupTime    string `yaml:"cleanup_time"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:               "8080",
			CORSAllowedOrigins: []string{"http://localhost:5173"},
		},
		Database: DatabaseConfig{
			Type: "mysql",
			MySQL: MySQLConfig{
				Host:     "mysql",
				Port:     3306,
				User:     "marketplace_user",
				Password: "marketplace_pass",
				Database: "marketplace_db",
			},
			Postgres: PostgresConfig{
				Host:     "db",
				Port:     5432,
				User:     "marketplace_user",
				Password: "marketplace_pass",
				Database: "marketplace_db",
				SSLMode:  "disable",
			},
			Pool: PoolConfig{
				MaxOpenConns:           25,
				MaxIdleConns:           5,
				ConnMaxLifetimeMinutes: 30,
			},
		},
		Search: SearchConfig{
			Meilisearch: MeilisearchConfig{
				Host:   "http://meilisearch:7700",
				APIKey: "masterKey123",
			},
		},
		Import: ImportConfig{
			MaxBatchSize: 500,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 30,
				RequestsPerHour:   600,
			},
		},
		Cleanup: CleanupConfig{
			DemoRetentionDays: 30,
			MaxDeletionCount:  10000,
		},
		Scheduler: SchedulerConfig{
			ReindexEnabled: false,
			ReindexTime:    "03:00",
			CleanupEnabled: false,
			CleanupTime:    "04:00",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(filepath string) (*Config, error) {
	// Start with default config
	config := DefaultConfig()

	// If file doesn't exist, return default config
	if _, err := os.Stat(filepath); os.IsNotExist(err) {
		return config, nil
	}

	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// GetConnMaxLifetime returns the pool connection lifetime as a duration
func (p *PoolConfig) GetConnMaxLifetime() time.Duration {
	return time.Duration(p.ConnMaxLifetimeMinutes) * time.Minute
}
