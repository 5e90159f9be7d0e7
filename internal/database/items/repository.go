// Package items provides database operations for inventory items.
//
// Item mutations are the only source of history records: Create appends a
// create record, Update derives move/lend/return records from old-vs-new
// field values, and Delete appends a final delete record before removing
// the row. Every append shares the mutation's transaction and timestamp,
// so an item and its audit trail always agree for a single operation.
package items

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/spotit/spotit/internal/entities"
	"github.com/spotit/spotit/internal/ident"
)

// Repository handles all item database operations.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type CreateInput struct {
	Name        string
	Alias       string
	RoomID      *string
	ContainerID *string
	Quantity    int
	Unit        entities.ItemUnit
	Tags        []string
	Status      entities.ItemStatus
	LentTo      string
	LentAt      *int64
	ImageID     *string
	Notes       string
}

// UpdateInput holds the optional fields of a partial update; nil means
// "not provided". When ContainerID is provided the repository resolves the
// container's room and stamps the item's denormalized roomId itself.
type UpdateInput struct {
	Name        *string
	Alias       *string
	ContainerID *string
	Quantity    *int
	Unit        *entities.ItemUnit
	Tags        *[]string
	Status      *entities.ItemStatus
	LentTo      *string
	LentAt      *int64
	ImageID     *string
	Notes       *string
}

// Create persists the item and appends its create history record, carrying
// the initial container/room as the "to" location, in one transaction.
func (r *Repository) Create(input CreateInput) (*entities.Item, error) {
	ts := ident.Now()

	status := input.Status
	if status == "" {
		status = entities.ItemStatusInStock
	}
	unit := input.Unit
	if unit == "" {
		unit = entities.DefaultUnit
	}

	roomID := input.RoomID
	if input.ContainerID != nil && roomID == nil {
		var err error
		if roomID, err = r.roomOf(*input.ContainerID); err != nil {
			return nil, err
		}
	}

	item := &entities.Item{
		ID:          ident.NewID(),
		Name:        input.Name,
		Alias:       input.Alias,
		RoomID:      roomID,
		ContainerID: input.ContainerID,
		Quantity:    input.Quantity,
		Unit:        unit,
		Tags:        entities.StringList(input.Tags),
		Status:      status,
		LentTo:      input.LentTo,
		LentAt:      input.LentAt,
		ImageID:     input.ImageID,
		Notes:       input.Notes,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(item).Error; err != nil {
			return err
		}
		return tx.Create(&entities.ItemHistory{
			ID:            ident.NewID(),
			ItemID:        item.ID,
			Action:        entities.HistoryActionCreate,
			ToContainerID: item.ContainerID,
			ToRoomID:      item.RoomID,
			CreatedAt:     ts,
			UpdatedAt:     ts,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// GetByID returns the item or nil when absent.
func (r *Repository) GetByID(id string) (*entities.Item, error) {
	var item entities.Item
	err := r.db.First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Repository) GetByContainerID(containerID string) ([]entities.Item, error) {
	var items []entities.Item
	err := r.db.Where("container_id = ?", containerID).Find(&items).Error
	return items, err
}

func (r *Repository) GetByRoomID(roomID string) ([]entities.Item, error) {
	var items []entities.Item
	err := r.db.Where("room_id = ?", roomID).Find(&items).Error
	return items, err
}

func (r *Repository) GetByStatus(status entities.ItemStatus) ([]entities.Item, error) {
	var items []entities.Item
	err := r.db.Where("status = ?", status).Find(&items).Error
	return items, err
}

// GetByTag returns items whose tag set contains the exact tag.
func (r *Repository) GetByTag(tag string) ([]entities.Item, error) {
	var items []entities.Item
	err := r.db.Where(
		"EXISTS (SELECT 1 FROM json_each(items.tags) WHERE json_each.value = ?)", tag,
	).Find(&items).Error
	return items, err
}

// GetAll returns all items, newest first.
func (r *Repository) GetAll() ([]entities.Item, error) {
	var items []entities.Item
	err := r.db.Order("created_at DESC").Find(&items).Error
	return items, err
}

// Search matches the query case-insensitively as a substring of the item's
// name, alias or notes, or of any of its tags. No ranking.
func (r *Repository) Search(query string) ([]entities.Item, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	var items []entities.Item
	err := r.db.Where(
		`LOWER(name) LIKE ? OR LOWER(alias) LIKE ? OR LOWER(notes) LIKE ?
		 OR EXISTS (SELECT 1 FROM json_each(items.tags) WHERE LOWER(json_each.value) LIKE ?)`,
		pattern, pattern, pattern, pattern,
	).Find(&items).Error
	return items, err
}

// Update applies a partial update and derives history records by comparing
// old and new values. The three checks are independent and may all fire
// from a single call:
//
//   - a provided containerId that differs from the current one appends a
//     move record (and re-syncs the denormalized roomId);
//   - a status change into "lent" appends a lend record with the new
//     borrower;
//   - a status change from "lent" to "in_stock" appends a return record
//     with the borrower the item came back from.
//
// A missing item is a no-op. All appends share the update's transaction
// and timestamp.
func (r *Repository) Update(id string, input UpdateInput) error {
	old, err := r.GetByID(id)
	if err != nil {
		return err
	}
	if old == nil {
		return nil
	}

	ts := ident.Now()
	updates := map[string]interface{}{"updated_at": ts}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Alias != nil {
		updates["alias"] = *input.Alias
	}
	if input.Quantity != nil {
		updates["quantity"] = *input.Quantity
	}
	if input.Unit != nil {
		updates["unit"] = *input.Unit
	}
	if input.Tags != nil {
		updates["tags"] = entities.StringList(*input.Tags)
	}
	if input.Status != nil {
		updates["status"] = *input.Status
	}
	if input.LentTo != nil {
		updates["lent_to"] = *input.LentTo
	}
	if input.LentAt != nil {
		updates["lent_at"] = *input.LentAt
	}
	if input.ImageID != nil {
		updates["image_id"] = *input.ImageID
	}
	if input.Notes != nil {
		updates["notes"] = *input.Notes
	}

	containerChanged := input.ContainerID != nil &&
		(old.ContainerID == nil || *old.ContainerID != *input.ContainerID)

	var newRoomID *string
	if input.ContainerID != nil {
		if newRoomID, err = r.roomOf(*input.ContainerID); err != nil {
			return err
		}
		updates["container_id"] = *input.ContainerID
		updates["room_id"] = newRoomID
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entities.Item{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}

		if containerChanged {
			if err := tx.Create(&entities.ItemHistory{
				ID:              ident.NewID(),
				ItemID:          id,
				Action:          entities.HistoryActionMove,
				FromContainerID: old.ContainerID,
				ToContainerID:   input.ContainerID,
				FromRoomID:      old.RoomID,
				ToRoomID:        newRoomID,
				CreatedAt:       ts,
				UpdatedAt:       ts,
			}).Error; err != nil {
				return err
			}
		}

		if input.Status != nil && *input.Status == entities.ItemStatusLent &&
			old.Status != entities.ItemStatusLent {
			lentTo := ""
			if input.LentTo != nil {
				lentTo = *input.LentTo
			}
			if err := tx.Create(&entities.ItemHistory{
				ID:        ident.NewID(),
				ItemID:    id,
				Action:    entities.HistoryActionLend,
				LentTo:    lentTo,
				CreatedAt: ts,
				UpdatedAt: ts,
			}).Error; err != nil {
				return err
			}
		}

		if input.Status != nil && *input.Status == entities.ItemStatusInStock &&
			old.Status == entities.ItemStatusLent {
			if err := tx.Create(&entities.ItemHistory{
				ID:        ident.NewID(),
				ItemID:    id,
				Action:    entities.HistoryActionReturn,
				LentTo:    old.LentTo,
				CreatedAt: ts,
				UpdatedAt: ts,
			}).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// Delete appends the final delete history record, removes the item's
// images and removes the item, as one transaction.
func (r *Repository) Delete(id string) error {
	ts := ident.Now()
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&entities.ItemHistory{
			ID:        ident.NewID(),
			ItemID:    id,
			Action:    entities.HistoryActionDelete,
			CreatedAt: ts,
			UpdatedAt: ts,
		}).Error; err != nil {
			return err
		}
		if err := tx.Where("item_id = ?", id).Delete(&entities.Image{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Item{}, "id = ?", id).Error
	})
}

// roomOf resolves a container's room for the denormalized item roomId.
// An unresolvable container yields nil; the store does not validate
// references.
func (r *Repository) roomOf(containerID string) (*string, error) {
	var container entities.Container
	err := r.db.First(&container, "id = ?", containerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	roomID := container.RoomID
	return &roomID, nil
}
