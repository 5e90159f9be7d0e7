package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spotit/spotit/internal/database/rooms"
	"github.com/spotit/spotit/internal/notify"
)

type RoomsController struct {
	repo *rooms.Repository
	hub  *notify.Hub
}

func NewRoomsController(repo *rooms.Repository, hub *notify.Hub) *RoomsController {
	return &RoomsController{repo: repo, hub: hub}
}

type createRoomRequest struct {
	LocationID  string `json:"locationId" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type updateRoomRequest struct {
	LocationID  *string `json:"locationId"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// ListRooms returns all rooms, optionally filtered by location.
// GET /api/rooms?locationId=...
func (rc *RoomsController) ListRooms(c *gin.Context) {
	if locationID := c.Query("locationId"); locationID != "" {
		list, err := rc.repo.GetByLocationID(locationID)
		if err != nil {
			respondInternalError(c, err, "list rooms by location")
			return
		}
		c.JSON(http.StatusOK, list)
		return
	}

	all, err := rc.repo.GetAll()
	if err != nil {
		respondInternalError(c, err, "list rooms")
		return
	}
	c.JSON(http.StatusOK, all)
}

// GetRoom returns a single room by ID.
// GET /api/rooms/:id
func (rc *RoomsController) GetRoom(c *gin.Context) {
	id, ok := requireIDParam(c, "id")
	if !ok {
		return
	}

	room, err := rc.repo.GetByID(id)
	if err != nil {
		respondInternalError(c, err, "get room")
		return
	}
	if room == nil {
		respondNotFound(c, "room")
		return
	}
	c.JSON(http.StatusOK, room)
}

// CreateRoom creates a room along with its default cabinet containers.
// POST /api/rooms
func (rc *RoomsController) CreateRoom(c *gin.Context) {
	var req createRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	room, err := rc.repo.Create(rooms.CreateInput{
		LocationID:  req.LocationID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondInternalError(c, err, "create room")
		return
	}

	rc.hub.Publish("rooms", "created", room.ID)
	respondCreated(c, room)
}

// UpdateRoom applies a partial update to a room.
// PUT /api/rooms/:id
func (rc *RoomsController) UpdateRoom(c *gin.Context) {
	id, ok := requireIDParam(c, "id")
	if !ok {
		return
	}

	var req updateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	existing, err := rc.repo.GetByID(id)
	if err != nil {
		respondInternalError(c, err, "update room")
		return
	}
	if existing == nil {
		respondNotFound(c, "room")
		return
	}

	err = rc.repo.Update(id, rooms.UpdateInput{
		LocationID:  req.LocationID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondInternalError(c, err, "update room")
		return
	}

	updated, err := rc.repo.GetByID(id)
	if err != nil {
		respondInternalError(c, err, "update room")
		return
	}

	rc.hub.Publish("rooms", "updated", id)
	c.JSON(http.StatusOK, updated)
}

// DeleteRoom removes a room, its containers, and unlinks their items.
// DELETE /api/rooms/:id
func (rc *RoomsController) DeleteRoom(c *gin.Context) {
	id, ok := requireIDParam(c, "id")
	if !ok {
		return
	}

	existing, err := rc.repo.GetByID(id)
	if err != nil {
		respondInternalError(c, err, "delete room")
		return
	}
	if existing == nil {
		respondNotFound(c, "room")
		return
	}

	if err := rc.repo.Delete(id); err != nil {
		respondInternalError(c, err, "delete room")
		return
	}

	rc.hub.Publish("rooms", "deleted", id)
	respondSuccess(c, "room deleted")
}
