package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spotit/spotit/internal/database/items"
	"github.com/spotit/spotit/internal/entities"
	"github.com/spotit/spotit/internal/notify"
)

type ItemsController struct {
	repo *items.Repository
	hub  *notify.Hub
}

func NewItemsController(repo *items.Repository, hub *notify.Hub) *ItemsController {
	return &ItemsController{repo: repo, hub: hub}
}

type createItemRequest struct {
	Name        string   `json:"name" binding:"required"`
	Alias       string   `json:"alias"`
	RoomID      *string  `json:"roomId"`
	ContainerID *string  `json:"containerId"`
	Quantity    int      `json:"quantity"`
	Unit        string   `json:"unit"`
	Tags        []string `json:"tags"`
	Status      string   `json:"status"`
	LentTo      string   `json:"lentTo"`
	LentAt      *int64   `json:"lentAt"`
	ImageID     *string  `json:"imageId"`
	Notes       string   `json:"notes"`
}

type updateItemRequest struct {
	Name        *string   `json:"name"`
	Alias       *string   `json:"alias"`
	ContainerID *string   `json:"containerId"`
	Quantity    *int      `json:"quantity"`
	Unit        *string   `json:"unit"`
	Tags        *[]string `json:"tags"`
	Status      *string   `json:"status"`
	LentTo      *string   `json:"lentTo"`
	LentAt      *int64    `json:"lentAt"`
	ImageID     *string   `json:"imageId"`
	Notes       *string   `json:"notes"`
}

// ListItems returns items, optionally filtered by container, room,
// status, or tag. Filters are mutually exclusive; the first one present
// wins.
// GET /api/items?containerId=...&roomId=...&status=...&tag=...
func (ic *ItemsController) ListItems(c *gin.Context) {
	var (
		list []entities.Item
		err  error
	)

	switch {
	case c.Query("containerId") != "":
		list, err = ic.repo.GetByContainerID(c.Query("containerId"))
	case c.Query("roomId") != "":
		list, err = ic.repo.GetByRoomID(c.Query("roomId"))
	case c.Query("status") != "":
		list, err = ic.repo.GetByStatus(entities.ItemStatus(c.Query("status")))
	case c.Query("tag") != "":
		list, err = ic.repo.GetByTag(c.Query("tag"))
	default:
		list, err = ic.repo.GetAll()
	}
	if err != nil {
		respondInternalError(c, err, "list items")
		return
	}
	c.JSON(http.StatusOK, list)
}

// SearchItems performs a case-insensitive search over name, alias,
// notes, and tags.
// GET /api/items/search?q=...
func (ic *ItemsController) SearchItems(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		respondBadRequest(c, "q is required")
		return
	}

	list, err := ic.repo.Search(query)
	if err != nil {
		respondInternalError(c, err, "search items")
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetItem returns a single item by ID.
// GET /api/items/:id
func (ic *ItemsController) GetItem(c *gin.Context) {
	id, ok := requireIDParam(c, "id")
	if !ok {
		return
	}

	item, err := ic.repo.GetByID(id)
	if err != nil {
		respondInternalError(c, err, "get item")
		return
	}
	if item == nil {
		respondNotFound(c, "item")
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateItem creates an item and records its create history entry.
// POST /api/items
func (ic *ItemsController) CreateItem(c *gin.Context) {
	var req createItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	item, err := ic.repo.Create(items.CreateInput{
		Name:        req.Name,
		Alias:       req.Alias,
		RoomID:      req.RoomID,
		ContainerID: req.ContainerID,
		Quantity:    req.Quantity,
		Unit:        entities.ItemUnit(req.Unit),
		Tags:        req.Tags,
		Status:      entities.ItemStatus(req.Status),
		LentTo:      req.LentTo,
		LentAt:      req.LentAt,
		ImageID:     req.ImageID,
		Notes:       req.Notes,
	})
	if err != nil {
		respondInternalError(c, err, "create item")
		return
	}

	ic.hub.Publish("items", "created", item.ID)
	respondCreated(c, item)
}

// UpdateItem applies a partial update and records any move, lend, or
// return the change implies.
// PUT /api/items/:id
func (ic *ItemsController) UpdateItem(c *gin.Context) {
	id, ok := requireIDParam(c, "id")
	if !ok {
		return
	}

	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	existing, err := ic.repo.GetByID(id)
	if err != nil {
		respondInternalError(c, err, "update item")
		return
	}
	if existing == nil {
		respondNotFound(c, "item")
		return
	}

	input := items.UpdateInput{
		Name:        req.Name,
		Alias:       req.Alias,
		ContainerID: req.ContainerID,
		Quantity:    req.Quantity,
		Tags:        req.Tags,
		LentTo:      req.LentTo,
		LentAt:      req.LentAt,
		ImageID:     req.ImageID,
		Notes:       req.Notes,
	}
	if req.Unit != nil {
		unit := entities.ItemUnit(*req.Unit)
		input.Unit = &unit
	}
	if req.Status != nil {
		status := entities.ItemStatus(*req.Status)
		input.Status = &status
	}

	if err := ic.repo.Update(id, input); err != nil {
		respondInternalError(c, err, "update item")
		return
	}

	updated, err := ic.repo.GetByID(id)
	if err != nil {
		respondInternalError(c, err, "update item")
		return
	}

	ic.hub.Publish("items", "updated", id)
	c.JSON(http.StatusOK, updated)
}

// DeleteItem records the delete history entry and removes the item with
// its images.
// DELETE /api/items/:id
func (ic *ItemsController) DeleteItem(c *gin.Context) {
	id, ok := requireIDParam(c, "id")
	if !ok {
		return
	}

	existing, err := ic.repo.GetByID(id)
	if err != nil {
		respondInternalError(c, err, "delete item")
		return
	}
	if existing == nil {
		respondNotFound(c, "item")
		return
	}

	if err := ic.repo.Delete(id); err != nil {
		respondInternalError(c, err, "delete item")
		return
	}

	ic.hub.Publish("items", "deleted", id)
	respondSuccess(c, "item deleted")
}
