// Package seed initializes a fresh store with the default template: one
// default location (whose creation provisions rooms and containers), and
// the built-in tag categories. Safe to run on every application start.
package seed

import (
	"log"

	"gorm.io/gorm"

	"github.com/spotit/spotit/internal/database/locations"
	"github.com/spotit/spotit/internal/database/tagcategories"
	"github.com/spotit/spotit/internal/entities"
)

// Initialize seeds the default template. Idempotent: a second run finds
// the existing default location and categories and creates nothing.
func Initialize(db *gorm.DB) error {
	defaultLocationID, err := ensureDefaultLocation(db)
	if err != nil {
		return err
	}

	// Rooms written before locations existed carry no locationId; adopt
	// them into the default location.
	if defaultLocationID != "" {
		var roomCount int64
		if err := db.Model(&entities.Room{}).Count(&roomCount).Error; err != nil {
			return err
		}
		if roomCount > 0 {
			if err := db.Model(&entities.Room{}).
				Where("location_id IS NULL OR location_id = ''").
				Update("location_id", defaultLocationID).Error; err != nil {
				return err
			}
		}
	}

	return ensureTagCategories(db)
}

// ensureDefaultLocation returns the id of the location that orphaned rooms
// should belong to, creating 我的家 when the store has no locations at all.
func ensureDefaultLocation(db *gorm.DB) (string, error) {
	var count int64
	if err := db.Model(&entities.Location{}).Count(&count).Error; err != nil {
		return "", err
	}

	repo := locations.NewRepository(db)

	if count == 0 {
		home, err := repo.Create(locations.CreateInput{
			Name:        "我的家",
			Description: "默认区域",
			IsDefault:   true,
		})
		if err != nil {
			return "", err
		}
		log.Printf("Seeded default location %s", home.ID)
		return home.ID, nil
	}

	var defaultLoc entities.Location
	err := db.Where("is_default = ?", true).Order("created_at ASC").First(&defaultLoc).Error
	if err == nil {
		return defaultLoc.ID, nil
	}
	if err != gorm.ErrRecordNotFound {
		return "", err
	}

	var firstLoc entities.Location
	if err := db.Order("created_at ASC").First(&firstLoc).Error; err != nil {
		return "", err
	}
	return firstLoc.ID, nil
}

// ensureTagCategories seeds the built-in keyword table once.
func ensureTagCategories(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entities.TagCategory{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	repo := tagcategories.NewRepository(db)
	for _, c := range builtinCategories {
		_, err := repo.Create(tagcategories.CreateInput{
			Name:        c.name,
			Keywords:    c.keywords,
			Suggestions: c.suggestions,
			IsCustom:    false,
		})
		if err != nil {
			return err
		}
	}
	log.Printf("Seeded %d tag categories", len(builtinCategories))
	return nil
}
