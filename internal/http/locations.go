package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spotit/spotit/internal/database/locations"
	"github.com/spotit/spotit/internal/notify"
)

type LocationsController struct {
	repo *locations.Repository
	hub  *notify.Hub
}

func NewLocationsController(repo *locations.Repository, hub *notify.Hub) *LocationsController {
	return &LocationsController{repo: repo, hub: hub}
}

type createLocationRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	IsDefault   bool   `json:"isDefault"`
}

type updateLocationRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsDefault   *bool   `json:"isDefault"`
}

// ListLocations returns all locations.
// GET /api/locations
func (lc *LocationsController) ListLocations(c *gin.Context) {
	all, err := lc.repo.GetAll()
	if err != nil {
		respondInternalError(c, err, "list locations")
		return
	}
	c.JSON(http.StatusOK, all)
}

// GetLocation returns a single location by ID.
// GET /api/locations/:id
func (lc *LocationsController) GetLocation(c *gin.Context) {
	id, ok := requireIDParam(c, "id")
	if !ok {
		return
	}

	location, err := lc.repo.GetByID(id)
	if err != nil {
		respondInternalError(c, err, "get location")
		return
	}
	if location == nil {
		respondNotFound(c, "location")
		return
	}
	c.JSON(http.StatusOK, location)
}

// CreateLocation creates a location along with its default rooms.
// POST /api/locations
func (lc *LocationsController) CreateLocation(c *gin.Context) {
	var req createLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	location, err := lc.repo.Create(locations.CreateInput{
		Name:        req.Name,
		Description: req.Description,
		IsDefault:   req.IsDefault,
	})
	if err != nil {
		respondInternalError(c, err, "create location")
		return
	}

	lc.hub.Publish("locations", "created", location.ID)
	respondCreated(c, location)
}

// UpdateLocation applies a partial update to a location.
// PUT /api/locations/:id
func (lc *LocationsController) UpdateLocation(c *gin.Context) {
	id, ok := requireIDParam(c, "id")
	if !ok {
		return
	}

	var req updateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	existing, err := lc.repo.GetByID(id)
	if err != nil {
		respondInternalError(c, err, "update location")
		return
	}
	if existing == nil {
		respondNotFound(c, "location")
		return
	}

	err = lc.repo.Update(id, locations.UpdateInput{
		Name:        req.Name,
		Description: req.Description,
		IsDefault:   req.IsDefault,
	})
	if err != nil {
		respondInternalError(c, err, "update location")
		return
	}

	updated, err := lc.repo.GetByID(id)
	if err != nil {
		respondInternalError(c, err, "update location")
		return
	}

	lc.hub.Publish("locations", "updated", id)
	c.JSON(http.StatusOK, updated)
}

// DeleteLocation removes a location and everything inside it.
// DELETE /api/locations/:id
func (lc *LocationsController) DeleteLocation(c *gin.Context) {
	id, ok := requireIDParam(c, "id")
	if !ok {
		return
	}

	existing, err := lc.repo.GetByID(id)
	if err != nil {
		respondInternalError(c, err, "delete location")
		return
	}
	if existing == nil {
		respondNotFound(c, "location")
		return
	}

	if err := lc.repo.Delete(id); err != nil {
		respondInternalError(c, err, "delete location")
		return
	}

	lc.hub.Publish("locations", "deleted", id)
	respondSuccess(c, "location deleted")
}
