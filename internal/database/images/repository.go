// Package images provides database operations for item images.
//
// Images are plain rows keyed by item; the cascade that removes them when
// an item is deleted lives in the items repository.
package images

import (
	"errors"

	"gorm.io/gorm"

	"github.com/spotit/spotit/internal/entities"
	"github.com/spotit/spotit/internal/ident"
	"github.com/spotit/spotit/internal/imaging"
)

// Repository handles all image database operations.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type CreateInput struct {
	ItemID   string
	DataURL  string
	MimeType string
	Size     int64
	Width    int
	Height   int
}

// Create persists an image. Missing metadata (mime type, byte size,
// dimensions) is probed from the data URL when possible; a payload the
// probe cannot read is stored as-is.
func (r *Repository) Create(input CreateInput) (*entities.Image, error) {
	if input.MimeType == "" || input.Size == 0 || input.Width == 0 || input.Height == 0 {
		if info, err := imaging.Probe(input.DataURL); err == nil {
			if input.MimeType == "" {
				input.MimeType = info.MimeType
			}
			if input.Size == 0 {
				input.Size = info.Size
			}
			if input.Width == 0 {
				input.Width = info.Width
			}
			if input.Height == 0 {
				input.Height = info.Height
			}
		}
	}

	ts := ident.Now()
	image := &entities.Image{
		ID:        ident.NewID(),
		ItemID:    input.ItemID,
		DataURL:   input.DataURL,
		MimeType:  input.MimeType,
		Size:      input.Size,
		Width:     input.Width,
		Height:    input.Height,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	if err := r.db.Create(image).Error; err != nil {
		return nil, err
	}
	return image, nil
}

// GetByID returns the image or nil when absent.
func (r *Repository) GetByID(id string) (*entities.Image, error) {
	var image entities.Image
	err := r.db.First(&image, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &image, nil
}

// GetByItemID returns an item's images in creation order; the UI surfaces
// only the first.
func (r *Repository) GetByItemID(itemID string) ([]entities.Image, error) {
	var images []entities.Image
	err := r.db.Where("item_id = ?", itemID).Order("created_at ASC").Find(&images).Error
	return images, err
}

func (r *Repository) Delete(id string) error {
	return r.db.Delete(&entities.Image{}, "id = ?", id).Error
}
