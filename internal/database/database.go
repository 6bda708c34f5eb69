package database

import (
	"fmt"
	"time"

	"github.com/thefr3spirit/homs-backend/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Init opens the Postgres database described by cfg and tunes the
// underlying connection pool. Bounded pool with overflow headroom;
// idle lifetime limits keep stale connections from being handed out.
func Init(cfg config.DatabaseConfig, debug bool) (*gorm.DB, error) {
	gormLogger := logger.Default
	if !debug {
		gormLogger = gormLogger.LogMode(logger.Error)
	}

	db, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}

	// connection pool
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeSeconds) * time.Second)
	sqlDB.SetConnMaxIdleTime(time.Duration(cfg.ConnMaxIdleTimeSeconds) * time.Second)

	// fail at startup on an unreachable database, not at first request
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}
