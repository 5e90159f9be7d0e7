// Package tagcategories provides database operations for tag suggestion
// categories, the keyword-to-tags mapping behind the tag suggestion UI.
package tagcategories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/spotit/spotit/internal/entities"
	"github.com/spotit/spotit/internal/ident"
)

// Repository handles all tag category database operations.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type CreateInput struct {
	Name        string
	Keywords    []string
	Suggestions []string
	IsCustom    bool
}

type UpdateInput struct {
	Name        *string
	Keywords    *[]string
	Suggestions *[]string
}

func (r *Repository) Create(input CreateInput) (*entities.TagCategory, error) {
	ts := ident.Now()
	category := &entities.TagCategory{
		ID:          ident.NewID(),
		Name:        input.Name,
		Keywords:    entities.StringList(input.Keywords),
		Suggestions: entities.StringList(input.Suggestions),
		IsCustom:    input.IsCustom,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
	if err := r.db.Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// GetByID returns the category or nil when absent.
func (r *Repository) GetByID(id string) (*entities.TagCategory, error) {
	var category entities.TagCategory
	err := r.db.First(&category, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// GetAll returns all categories in creation order.
func (r *Repository) GetAll() ([]entities.TagCategory, error) {
	var categories []entities.TagCategory
	err := r.db.Order("created_at ASC").Find(&categories).Error
	return categories, err
}

func (r *Repository) Update(id string, input UpdateInput) error {
	updates := map[string]interface{}{"updated_at": ident.Now()}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Keywords != nil {
		updates["keywords"] = entities.StringList(*input.Keywords)
	}
	if input.Suggestions != nil {
		updates["suggestions"] = entities.StringList(*input.Suggestions)
	}
	return r.db.Model(&entities.TagCategory{}).Where("id = ?", id).Updates(updates).Error
}

func (r *Repository) Delete(id string) error {
	return r.db.Delete(&entities.TagCategory{}, "id = ?", id).Error
}
