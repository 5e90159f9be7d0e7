package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spotit/spotit/internal/database/containers"
	"github.com/spotit/spotit/internal/notify"
)

type ContainersController struct {
	repo *containers.Repository
	hub  *notify.Hub
}

func NewContainersController(repo *containers.Repository, hub *notify.Hub) *ContainersController {
	return &ContainersController{repo: repo, hub: hub}
}

type createContainerRequest struct {
	RoomID      string `json:"roomId" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Code        string `json:"code"`
}

type updateContainerRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Code        *string `json:"code"`
}

// ListContainers returns active containers, optionally filtered by room.
// GET /api/containers?roomId=...
func (cc *ContainersController) ListContainers(c *gin.Context) {
	if roomID := c.Query("roomId"); roomID != "" {
		list, err := cc.repo.GetByRoomID(roomID)
		if err != nil {
			respondInternalError(c, err, "list containers by room")
			return
		}
		c.JSON(http.StatusOK, list)
		return
	}

	all, err := cc.repo.GetAll()
	if err != nil {
		respondInternalError(c, err, "list containers")
		return
	}
	c.JSON(http.StatusOK, all)
}

// GetContainer returns a single container by ID, soft-deleted included.
// GET /api/containers/:id
func (cc *ContainersController) GetContainer(c *gin.Context) {
	id, ok := requireIDParam(c, "id")
	if !ok {
		return
	}

	container, err := cc.repo.GetByID(id)
	if err != nil {
		respondInternalError(c, err, "get container")
		return
	}
	if container == nil {
		respondNotFound(c, "container")
		return
	}
	c.JSON(http.StatusOK, container)
}

// GetContainerByCode resolves a scanned code to its active container.
// GET /api/containers/by-code/:code
func (cc *ContainersController) GetContainerByCode(c *gin.Context) {
	code, ok := requireIDParam(c, "code")
	if !ok {
		return
	}

	container, err := cc.repo.GetByCode(code)
	if err != nil {
		respondInternalError(c, err, "get container by code")
		return
	}
	if container == nil {
		respondNotFound(c, "container")
		return
	}
	c.JSON(http.StatusOK, container)
}

// CreateContainer creates a container inside a room.
// POST /api/containers
func (cc *ContainersController) CreateContainer(c *gin.Context) {
	var req createContainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	container, err := cc.repo.Create(containers.CreateInput{
		RoomID:      req.RoomID,
		Name:        req.Name,
		Description: req.Description,
		Code:        req.Code,
	})
	if err != nil {
		respondInternalError(c, err, "create container")
		return
	}

	cc.hub.Publish("containers", "created", container.ID)
	respondCreated(c, container)
}

// UpdateContainer applies a partial update to a container. Containers
// never move between rooms.
// PUT /api/containers/:id
func (cc *ContainersController) UpdateContainer(c *gin.Context) {
	id, ok := requireIDParam(c, "id")
	if !ok {
		return
	}

	var req updateContainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	existing, err := cc.repo.GetByID(id)
	if err != nil {
		respondInternalError(c, err, "update container")
		return
	}
	if existing == nil {
		respondNotFound(c, "container")
		return
	}

	err = cc.repo.Update(id, containers.UpdateInput{
		Name:        req.Name,
		Description: req.Description,
		Code:        req.Code,
	})
	if err != nil {
		respondInternalError(c, err, "update container")
		return
	}

	updated, err := cc.repo.GetByID(id)
	if err != nil {
		respondInternalError(c, err, "update container")
		return
	}

	cc.hub.Publish("containers", "updated", id)
	c.JSON(http.StatusOK, updated)
}

// DeleteContainer soft-deletes a container and unlinks its items.
// Pass ?permanent=true to remove the row entirely.
// DELETE /api/containers/:id
func (cc *ContainersController) DeleteContainer(c *gin.Context) {
	id, ok := requireIDParam(c, "id")
	if !ok {
		return
	}

	existing, err := cc.repo.GetByID(id)
	if err != nil {
		respondInternalError(c, err, "delete container")
		return
	}
	if existing == nil {
		respondNotFound(c, "container")
		return
	}

	soft := c.Query("permanent") != "true"
	if err := cc.repo.Delete(id, soft); err != nil {
		respondInternalError(c, err, "delete container")
		return
	}

	cc.hub.Publish("containers", "deleted", id)
	respondSuccess(c, "container deleted")
}
