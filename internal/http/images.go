package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spotit/spotit/internal/database/images"
	"github.com/spotit/spotit/internal/notify"
)

type ImagesController struct {
	repo *images.Repository
	hub  *notify.Hub
}

func NewImagesController(repo *images.Repository, hub *notify.Hub) *ImagesController {
	return &ImagesController{repo: repo, hub: hub}
}

type createImageRequest struct {
	ItemID   string `json:"itemId" binding:"required"`
	DataURL  string `json:"dataUrl" binding:"required"`
	MimeType string `json:"mimeType"`
	Size     int64  `json:"size"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

// GetImage returns a single image by ID.
// GET /api/images/:id
func (ic *ImagesController) GetImage(c *gin.Context) {
	id, ok := requireIDParam(c, "id")
	if !ok {
		return
	}

	image, err := ic.repo.GetByID(id)
	if err != nil {
		respondInternalError(c, err, "get image")
		return
	}
	if image == nil {
		respondNotFound(c, "image")
		return
	}
	c.JSON(http.StatusOK, image)
}

// ListImagesByItem returns an item's images in upload order.
// GET /api/items/:id/images
func (ic *ImagesController) ListImagesByItem(c *gin.Context) {
	itemID, ok := requireIDParam(c, "id")
	if !ok {
		return
	}

	list, err := ic.repo.GetByItemID(itemID)
	if err != nil {
		respondInternalError(c, err, "list images")
		return
	}
	c.JSON(http.StatusOK, list)
}

// CreateImage stores an image. Metadata missing from the request is
// probed from the data URL.
// POST /api/images
func (ic *ImagesController) CreateImage(c *gin.Context) {
	var req createImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	image, err := ic.repo.Create(images.CreateInput{
		ItemID:   req.ItemID,
		DataURL:  req.DataURL,
		MimeType: req.MimeType,
		Size:     req.Size,
		Width:    req.Width,
		Height:   req.Height,
	})
	if err != nil {
		respondInternalError(c, err, "create image")
		return
	}

	ic.hub.Publish("images", "created", image.ID)
	respondCreated(c, image)
}

// DeleteImage removes an image.
// DELETE /api/images/:id
func (ic *ImagesController) DeleteImage(c *gin.Context) {
	id, ok := requireIDParam(c, "id")
	if !ok {
		return
	}

	existing, err := ic.repo.GetByID(id)
	if err != nil {
		respondInternalError(c, err, "delete image")
		return
	}
	if existing == nil {
		respondNotFound(c, "image")
		return
	}

	if err := ic.repo.Delete(id); err != nil {
		respondInternalError(c, err, "delete image")
		return
	}

	ic.hub.Publish("images", "deleted", id)
	respondSuccess(c, "image deleted")
}
