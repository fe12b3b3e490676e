package database

import (
	"fmt"
	"log"

	"hypotrophy-backend/pkg/config"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewConnection opens Postgres when DATABASE_URL is set and a local SQLite file otherwise.
func NewConnection(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}

	if cfg.DatabaseURL != "" {
		db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		log.Println("[Database] Connected to postgres")
		return db, nil
	}

	db, err := NewSQLiteConnection(cfg.SQLitePath)
	if err != nil {
		return nil, err
	}
	log.Printf("[Database] Using sqlite at %s", cfg.SQLitePath)
	return db, nil
}

// NewSQLiteConnection opens (or creates) a SQLite database at path.
func NewSQLiteConnection(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite %s: %w", path, err)
	}
	return db, nil
}
