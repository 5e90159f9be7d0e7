// Package backup implements full-store snapshots and the local backup
// manager that writes them to disk, keeps a bounded history, and restores
// from them.
package backup

import (
	"time"

	"gorm.io/gorm"

	"github.com/spotit/spotit/internal/entities"
)

// SnapshotVersion is the current snapshot format. Version 1 predates the
// locations collection; Restore accepts both.
const SnapshotVersion = 2

const restoreBatchSize = 200

// Snapshot is a full-store export: every row of every collection.
// Tag categories are reseeded from the built-in table instead of being
// carried in backups.
type Snapshot struct {
	Version    int          `json:"version"`
	ExportedAt string       `json:"exportedAt"`
	Data       SnapshotData `json:"data"`
}

type SnapshotData struct {
	Locations  []entities.Location    `json:"locations"`
	Rooms      []entities.Room        `json:"rooms"`
	Containers []entities.Container   `json:"containers"`
	Items      []entities.Item        `json:"items"`
	Images     []entities.Image       `json:"images"`
	History    []entities.ItemHistory `json:"history"`
}

// Export reads every collection inside one transaction and returns the
// snapshot.
func Export(db *gorm.DB) (*Snapshot, error) {
	snap := &Snapshot{
		Version:    SnapshotVersion,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Order("created_at ASC").Find(&snap.Data.Locations).Error; err != nil {
			return err
		}
		if err := tx.Order("created_at ASC").Find(&snap.Data.Rooms).Error; err != nil {
			return err
		}
		if err := tx.Order("created_at ASC").Find(&snap.Data.Containers).Error; err != nil {
			return err
		}
		if err := tx.Order("created_at ASC").Find(&snap.Data.Items).Error; err != nil {
			return err
		}
		if err := tx.Order("created_at ASC").Find(&snap.Data.Images).Error; err != nil {
			return err
		}
		return tx.Order("created_at ASC").Find(&snap.Data.History).Error
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// Restore clears every collection and bulk-inserts the snapshot's rows,
// all in one transaction. Missing arrays (older snapshot versions without
// locations) are treated as empty.
func Restore(db *gorm.DB, snap *Snapshot) error {
	return db.Transaction(func(tx *gorm.DB) error {
		global := tx.Session(&gorm.Session{AllowGlobalUpdate: true})

		// Children first so the intermediate states stay consistent.
		if err := global.Delete(&entities.ItemHistory{}).Error; err != nil {
			return err
		}
		if err := global.Delete(&entities.Image{}).Error; err != nil {
			return err
		}
		if err := global.Delete(&entities.Item{}).Error; err != nil {
			return err
		}
		if err := global.Delete(&entities.Container{}).Error; err != nil {
			return err
		}
		if err := global.Delete(&entities.Room{}).Error; err != nil {
			return err
		}
		if err := global.Delete(&entities.Location{}).Error; err != nil {
			return err
		}

		if len(snap.Data.Locations) > 0 {
			if err := tx.CreateInBatches(snap.Data.Locations, restoreBatchSize).Error; err != nil {
				return err
			}
		}
		if len(snap.Data.Rooms) > 0 {
			if err := tx.CreateInBatches(snap.Data.Rooms, restoreBatchSize).Error; err != nil {
				return err
			}
		}
		if len(snap.Data.Containers) > 0 {
			if err := tx.CreateInBatches(snap.Data.Containers, restoreBatchSize).Error; err != nil {
				return err
			}
		}
		if len(snap.Data.Items) > 0 {
			if err := tx.CreateInBatches(snap.Data.Items, restoreBatchSize).Error; err != nil {
				return err
			}
		}
		if len(snap.Data.Images) > 0 {
			if err := tx.CreateInBatches(snap.Data.Images, restoreBatchSize).Error; err != nil {
				return err
			}
		}
		if len(snap.Data.History) > 0 {
			if err := tx.CreateInBatches(snap.Data.History, restoreBatchSize).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
