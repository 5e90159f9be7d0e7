// Package rooms provides database operations for rooms.
//
// Creating a room also provisions its default container grid; deleting a
// room cascades to its containers and unlinks their items, all in one
// transaction.
package rooms

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/spotit/spotit/internal/database/containers"
	"github.com/spotit/spotit/internal/entities"
	"github.com/spotit/spotit/internal/ident"
)

// Default container grid: two cabinet types by three positions.
var (
	cabinetTypes = []string{"上柜", "下柜"}
	positions    = []string{"左格", "中格", "右格"}
)

// Repository handles all room database operations.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type CreateInput struct {
	LocationID  string
	Name        string
	Description string
}

type UpdateInput struct {
	LocationID  *string
	Name        *string
	Description *string
}

// Create persists the room and provisions its six default containers within
// the same transaction. If any provisioning step fails nothing is visible.
func (r *Repository) Create(input CreateInput) (*entities.Room, error) {
	ts := ident.Now()
	room := &entities.Room{
		ID:          ident.NewID(),
		LocationID:  input.LocationID,
		Name:        input.Name,
		Description: input.Description,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(room).Error; err != nil {
			return err
		}

		containersRepo := containers.NewRepository(tx)
		for _, cabinet := range cabinetTypes {
			for _, position := range positions {
				_, err := containersRepo.Create(containers.CreateInput{
					RoomID:      room.ID,
					Name:        fmt.Sprintf("%s-%s", cabinet, position),
					Description: fmt.Sprintf("%s的%s%s", room.Name, cabinet, position),
					Code:        fmt.Sprintf("%s-%s-%s", room.ID, cabinet, position),
				})
				if err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return room, nil
}

// GetByID returns the room or nil when absent.
func (r *Repository) GetByID(id string) (*entities.Room, error) {
	var room entities.Room
	err := r.db.First(&room, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// GetByLocationID returns a location's rooms, newest first.
func (r *Repository) GetByLocationID(locationID string) ([]entities.Room, error) {
	var rooms []entities.Room
	err := r.db.Where("location_id = ?", locationID).
		Order("created_at DESC").Find(&rooms).Error
	return rooms, err
}

// GetAll returns all rooms, newest first.
func (r *Repository) GetAll() ([]entities.Room, error) {
	var rooms []entities.Room
	err := r.db.Order("created_at DESC").Find(&rooms).Error
	return rooms, err
}

func (r *Repository) Update(id string, input UpdateInput) error {
	updates := map[string]interface{}{"updated_at": ident.Now()}
	if input.LocationID != nil {
		updates["location_id"] = *input.LocationID
	}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	return r.db.Model(&entities.Room{}).Where("id = ?", id).Updates(updates).Error
}

// Delete removes the room, its containers (including soft-deleted ones)
// and every item link to those containers, as one transaction. Items
// themselves are never deleted, only unlinked.
func (r *Repository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var containerIDs []string
		if err := tx.Model(&entities.Container{}).Where("room_id = ?", id).
			Pluck("id", &containerIDs).Error; err != nil {
			return err
		}

		if len(containerIDs) > 0 {
			if err := tx.Model(&entities.Item{}).Where("container_id IN ?", containerIDs).
				Updates(map[string]interface{}{"container_id": nil, "room_id": nil}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("room_id = ?", id).Delete(&entities.Container{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Room{}, "id = ?", id).Error
	})
}
