// Package containers provides database operations for storage containers.
//
// Containers are soft-deleted by default: a deleted container disappears
// from active listings and code lookups but stays retrievable by id so
// history records can still be resolved.
package containers

import (
	"errors"

	"gorm.io/gorm"

	"github.com/spotit/spotit/internal/entities"
	"github.com/spotit/spotit/internal/ident"
)

// Repository handles all container database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new containers repository. Pass a transaction
// handle to run the repository inside an enclosing transaction.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateInput holds the caller-supplied fields for a new container.
// RoomID is fixed at creation; containers are never reparented.
type CreateInput struct {
	RoomID      string
	Name        string
	Description string
	Code        string
}

// UpdateInput holds the optional fields for a partial update. Nil means
// "leave unchanged". RoomID is deliberately absent.
type UpdateInput struct {
	Name        *string
	Description *string
	Code        *string
}

func (r *Repository) Create(input CreateInput) (*entities.Container, error) {
	ts := ident.Now()
	container := &entities.Container{
		ID:          ident.NewID(),
		RoomID:      input.RoomID,
		Name:        input.Name,
		Description: input.Description,
		Code:        input.Code,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
	if err := r.db.Create(container).Error; err != nil {
		return nil, err
	}
	return container, nil
}

// GetByID returns the container or nil when absent. Soft-deleted
// containers are returned too, with DeletedAt set.
func (r *Repository) GetByID(id string) (*entities.Container, error) {
	var container entities.Container
	err := r.db.First(&container, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &container, nil
}

// GetByRoomID returns the active containers of a room.
func (r *Repository) GetByRoomID(roomID string) ([]entities.Container, error) {
	var containers []entities.Container
	err := r.db.Where("room_id = ? AND deleted_at IS NULL", roomID).
		Order("created_at ASC").Find(&containers).Error
	return containers, err
}

// GetByCode resolves a scanned QR code to an active container. Returns nil
// when the code does not resolve or resolves to a soft-deleted container.
func (r *Repository) GetByCode(code string) (*entities.Container, error) {
	var container entities.Container
	err := r.db.Where("code = ? AND deleted_at IS NULL", code).First(&container).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &container, nil
}

// GetAll returns all active containers.
func (r *Repository) GetAll() ([]entities.Container, error) {
	var containers []entities.Container
	err := r.db.Where("deleted_at IS NULL").Order("created_at ASC").Find(&containers).Error
	return containers, err
}

func (r *Repository) Update(id string, input UpdateInput) error {
	updates := map[string]interface{}{"updated_at": ident.Now()}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Code != nil {
		updates["code"] = *input.Code
	}
	return r.db.Model(&entities.Container{}).Where("id = ?", id).Updates(updates).Error
}

// Delete removes a container. Soft mode marks it deleted; hard mode removes
// the row. Either way every item pointing at the container is unlinked
// (containerId and roomId cleared, nothing else touched) in the same
// transaction, so no item is ever left pointing at a removed container.
func (r *Repository) Delete(id string, soft bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if soft {
			ts := ident.Now()
			if err := tx.Model(&entities.Container{}).Where("id = ?", id).
				Updates(map[string]interface{}{"deleted_at": ts, "updated_at": ts}).Error; err != nil {
				return err
			}
			return unlinkItems(tx, id)
		}

		if err := unlinkItems(tx, id); err != nil {
			return err
		}
		return tx.Delete(&entities.Container{}, "id = ?", id).Error
	})
}

// unlinkItems clears containerId/roomId on every item in the container.
// Items survive container deletion; only the link is removed.
func unlinkItems(tx *gorm.DB, containerID string) error {
	return tx.Model(&entities.Item{}).Where("container_id = ?", containerID).
		Updates(map[string]interface{}{"container_id": nil, "room_id": nil}).Error
}
