package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/spotit/spotit/internal/database/history"
	"github.com/spotit/spotit/internal/entities"
)

type HistoryController struct {
	repo *history.Repository
}

func NewHistoryController(repo *history.Repository) *HistoryController {
	return &HistoryController{repo: repo}
}

// ListHistory returns recent history records, optionally filtered by
// action.
// GET /api/history?action=...&limit=...
func (hc *HistoryController) ListHistory(c *gin.Context) {
	if action := c.Query("action"); action != "" {
		list, err := hc.repo.GetByAction(entities.HistoryAction(action))
		if err != nil {
			respondInternalError(c, err, "list history by action")
			return
		}
		c.JSON(http.StatusOK, list)
		return
	}

	limit := 100
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 1000 {
			limit = l
		}
	}

	list, err := hc.repo.GetRecent(limit)
	if err != nil {
		respondInternalError(c, err, "list history")
		return
	}
	c.JSON(http.StatusOK, list)
}

// ListItemHistory returns an item's full timeline, newest first.
// GET /api/items/:id/history
func (hc *HistoryController) ListItemHistory(c *gin.Context) {
	itemID, ok := requireIDParam(c, "id")
	if !ok {
		return
	}

	list, err := hc.repo.GetByItemID(itemID)
	if err != nil {
		respondInternalError(c, err, "list item history")
		return
	}
	c.JSON(http.StatusOK, list)
}
