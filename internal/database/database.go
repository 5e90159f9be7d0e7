// Package database opens the embedded sqlite store and applies the
// versioned schema migrations at open time.
package database

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/spotit/spotit/internal/entities"
	"github.com/spotit/spotit/internal/ident"
)

type Database struct {
	DB *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Pragmas for a single-writer local store.
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	} {
		if err := db.Exec(pragma).Error; err != nil {
			return nil, fmt.Errorf("failed to set pragma %q: %w", pragma, err)
		}
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// schemaVersion records an applied migration in schema_versions.
type schemaVersion struct {
	Version   int `gorm:"primaryKey"`
	AppliedAt int64
}

func (schemaVersion) TableName() string { return "schema_versions" }

// migrations is the ordered list of schema versions. Each version only adds
// structure; nothing here deletes or rewrites existing rows. Append new
// versions at the end.
var migrations = []struct {
	version int
	apply   func(tx *gorm.DB) error
}{
	// Version 1: core collections with their lookup indexes.
	{1, func(tx *gorm.DB) error {
		return tx.AutoMigrate(
			&entities.Room{},
			&entities.Container{},
			&entities.Item{},
			&entities.Image{},
			&entities.ItemHistory{},
		)
	}},
	// Version 2: locations collection and the rooms.location_id index.
	{2, func(tx *gorm.DB) error {
		return tx.AutoMigrate(
			&entities.Location{},
			&entities.Room{},
		)
	}},
	// Version 3: tag categories and the settings key/value collection.
	{3, func(tx *gorm.DB) error {
		return tx.AutoMigrate(
			&entities.TagCategory{},
			&entities.Setting{},
		)
	}},
}

// Migrate applies the schema versions in order, each at most once. Safe to
// call on every open.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&schemaVersion{}); err != nil {
		return fmt.Errorf("creating schema_versions: %w", err)
	}

	for _, m := range migrations {
		var applied int64
		if err := db.Model(&schemaVersion{}).Where("version = ?", m.version).Count(&applied).Error; err != nil {
			return fmt.Errorf("checking schema version %d: %w", m.version, err)
		}
		if applied > 0 {
			continue
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := m.apply(tx); err != nil {
				return err
			}
			return tx.Create(&schemaVersion{Version: m.version, AppliedAt: ident.Now()}).Error
		})
		if err != nil {
			return fmt.Errorf("applying schema version %d: %w", m.version, err)
		}
	}

	return nil
}
