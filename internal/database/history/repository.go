// Package history provides read access to the item audit trail.
//
// History rows are written exclusively by the items repository and are
// never updated or deleted here; this package only queries them.
package history

import (
	"gorm.io/gorm"

	"github.com/spotit/spotit/internal/entities"
)

// Repository handles history queries.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetByItemID returns an item's history, most recent first. Records created
// in the same millisecond keep a deterministic order via the store's
// insertion order (rowid).
func (r *Repository) GetByItemID(itemID string) ([]entities.ItemHistory, error) {
	var records []entities.ItemHistory
	err := r.db.Where("item_id = ?", itemID).
		Order("created_at DESC, rowid DESC").Find(&records).Error
	return records, err
}

// GetByAction returns all records with the given action, most recent first.
func (r *Repository) GetByAction(action entities.HistoryAction) ([]entities.ItemHistory, error) {
	var records []entities.ItemHistory
	err := r.db.Where("action = ?", action).
		Order("created_at DESC, rowid DESC").Find(&records).Error
	return records, err
}

// GetRecent returns the newest records across all items, up to limit.
// A non-positive limit returns everything.
func (r *Repository) GetRecent(limit int) ([]entities.ItemHistory, error) {
	query := r.db.Order("created_at DESC, rowid DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var records []entities.ItemHistory
	err := query.Find(&records).Error
	return records, err
}
