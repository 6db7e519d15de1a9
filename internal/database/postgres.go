package database

import (
	"database/sql"
	"fmt"

	"real-estate-marketplace/internal/config"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgres opens a PostgreSQL-backed GormDB. The database/sql pool is
// opened first (lib/pq driver) so its limits are set before GORM wraps it.
func NewPostgres(cfg config.PostgresConfig, pool config.PoolConfig) (*GormDB, error) {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database, sslMode)

	sqlDB, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	applyPoolLimits(sqlDB, pool)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	return &GormDB{db: db}, nil
}

func applyPoolLimits(sqlDB *sql.DB, pool config.PoolConfig) {
	if pool.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	}
	if pool.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	}
	if pool.ConnMaxLifetimeMinutes > 0 {
		sqlDB.SetConnMaxLifetime(pool.GetConnMaxLifetime())
	}
}
