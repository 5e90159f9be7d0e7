// Package locations provides database operations for top-level locations.
//
// Creating a location also provisions its default rooms (which in turn
// provision their container grids); deleting one cascades room by room.
package locations

import (
	"errors"

	"gorm.io/gorm"

	"github.com/spotit/spotit/internal/database/rooms"
	"github.com/spotit/spotit/internal/entities"
	"github.com/spotit/spotit/internal/ident"
)

// defaultRooms are provisioned for every new location.
var defaultRooms = []struct {
	name        string
	description string
}{
	{"客厅", "客厅区域"},
	{"厨房", "厨房区域"},
	{"主卧", "主卧区域"},
	{"次卧", "次卧区域"},
	{"卫生间", "卫生间区域"},
}

// Repository handles all location database operations.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type CreateInput struct {
	Name        string
	Description string
	IsDefault   bool
}

type UpdateInput struct {
	Name        *string
	Description *string
	IsDefault   *bool
}

// Create persists the location and provisions the five default rooms for it
// in one transaction. A failed provisioning step rolls everything back.
func (r *Repository) Create(input CreateInput) (*entities.Location, error) {
	ts := ident.Now()
	location := &entities.Location{
		ID:          ident.NewID(),
		Name:        input.Name,
		Description: input.Description,
		IsDefault:   input.IsDefault,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(location).Error; err != nil {
			return err
		}

		roomsRepo := rooms.NewRepository(tx)
		for _, d := range defaultRooms {
			_, err := roomsRepo.Create(rooms.CreateInput{
				LocationID:  location.ID,
				Name:        d.name,
				Description: d.description,
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return location, nil
}

// GetByID returns the location or nil when absent.
func (r *Repository) GetByID(id string) (*entities.Location, error) {
	var location entities.Location
	err := r.db.First(&location, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &location, nil
}

// GetAll returns all locations in creation order.
func (r *Repository) GetAll() ([]entities.Location, error) {
	var locations []entities.Location
	err := r.db.Order("created_at ASC").Find(&locations).Error
	return locations, err
}

func (r *Repository) Update(id string, input UpdateInput) error {
	updates := map[string]interface{}{"updated_at": ident.Now()}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.IsDefault != nil {
		updates["is_default"] = *input.IsDefault
	}
	return r.db.Model(&entities.Location{}).Where("id = ?", id).Updates(updates).Error
}

// Delete cascades through every room of the location (full room cascade,
// containers removed and items unlinked) and then removes the location.
// A location that already has zero rooms deletes cleanly.
func (r *Repository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		roomsRepo := rooms.NewRepository(tx)
		roomList, err := roomsRepo.GetByLocationID(id)
		if err != nil {
			return err
		}
		for _, room := range roomList {
			if err := roomsRepo.Delete(room.ID); err != nil {
				return err
			}
		}
		return tx.Delete(&entities.Location{}, "id = ?", id).Error
	})
}
