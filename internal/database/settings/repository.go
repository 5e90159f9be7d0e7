// Package settings provides key/value store bookkeeping rows, used by the
// backup subsystem for its schedule state and record list.
package settings

import (
	"errors"

	"gorm.io/gorm"

	"github.com/spotit/spotit/internal/entities"
)

// Repository handles settings rows.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Get returns the value for key, or "" when the key is absent.
func (r *Repository) Get(key string) (string, error) {
	var setting entities.Setting
	err := r.db.First(&setting, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return setting.Value, nil
}

// Set creates or updates the value for key.
func (r *Repository) Set(key, value string) error {
	var setting entities.Setting
	err := r.db.First(&setting, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(&entities.Setting{Key: key, Value: value}).Error
	}
	if err != nil {
		return err
	}
	setting.Value = value
	return r.db.Save(&setting).Error
}

// Delete removes the key; deleting an absent key is not an error.
func (r *Repository) Delete(key string) error {
	return r.db.Delete(&entities.Setting{}, "key = ?", key).Error
}
