package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spotit/spotit/internal/database/tagcategories"
	"github.com/spotit/spotit/internal/notify"
)

type TagCategoriesController struct {
	repo *tagcategories.Repository
	hub  *notify.Hub
}

func NewTagCategoriesController(repo *tagcategories.Repository, hub *notify.Hub) *TagCategoriesController {
	return &TagCategoriesController{repo: repo, hub: hub}
}

type createTagCategoryRequest struct {
	Name        string   `json:"name" binding:"required"`
	Keywords    []string `json:"keywords"`
	Suggestions []string `json:"suggestions"`
}

type updateTagCategoryRequest struct {
	Name        *string   `json:"name"`
	Keywords    *[]string `json:"keywords"`
	Suggestions *[]string `json:"suggestions"`
}

// ListTagCategories returns all tag categories.
// GET /api/tag-categories
func (tc *TagCategoriesController) ListTagCategories(c *gin.Context) {
	all, err := tc.repo.GetAll()
	if err != nil {
		respondInternalError(c, err, "list tag categories")
		return
	}
	c.JSON(http.StatusOK, all)
}

// CreateTagCategory creates a custom tag category.
// POST /api/tag-categories
func (tc *TagCategoriesController) CreateTagCategory(c *gin.Context) {
	var req createTagCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	category, err := tc.repo.Create(tagcategories.CreateInput{
		Name:        req.Name,
		Keywords:    req.Keywords,
		Suggestions: req.Suggestions,
		IsCustom:    true,
	})
	if err != nil {
		respondInternalError(c, err, "create tag category")
		return
	}

	tc.hub.Publish("tagCategories", "created", category.ID)
	respondCreated(c, category)
}

// UpdateTagCategory applies a partial update to a tag category.
// PUT /api/tag-categories/:id
func (tc *TagCategoriesController) UpdateTagCategory(c *gin.Context) {
	id, ok := requireIDParam(c, "id")
	if !ok {
		return
	}

	var req updateTagCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	existing, err := tc.repo.GetByID(id)
	if err != nil {
		respondInternalError(c, err, "update tag category")
		return
	}
	if existing == nil {
		respondNotFound(c, "tag category")
		return
	}

	err = tc.repo.Update(id, tagcategories.UpdateInput{
		Name:        req.Name,
		Keywords:    req.Keywords,
		Suggestions: req.Suggestions,
	})
	if err != nil {
		respondInternalError(c, err, "update tag category")
		return
	}

	updated, err := tc.repo.GetByID(id)
	if err != nil {
		respondInternalError(c, err, "update tag category")
		return
	}

	tc.hub.Publish("tagCategories", "updated", id)
	c.JSON(http.StatusOK, updated)
}

// DeleteTagCategory removes a tag category.
// DELETE /api/tag-categories/:id
func (tc *TagCategoriesController) DeleteTagCategory(c *gin.Context) {
	id, ok := requireIDParam(c, "id")
	if !ok {
		return
	}

	existing, err := tc.repo.GetByID(id)
	if err != nil {
		respondInternalError(c, err, "delete tag category")
		return
	}
	if existing == nil {
		respondNotFound(c, "tag category")
		return
	}

	if err := tc.repo.Delete(id); err != nil {
		respondInternalError(c, err, "delete tag category")
		return
	}

	tc.hub.Publish("tagCategories", "deleted", id)
	respondSuccess(c, "tag category deleted")
}
