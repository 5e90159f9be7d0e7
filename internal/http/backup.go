package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spotit/spotit/internal/backup"
	"github.com/spotit/spotit/internal/database"
	"github.com/spotit/spotit/internal/notify"
)

type BackupController struct {
	db      *database.Database
	manager *backup.Manager
	hub     *notify.Hub
}

func NewBackupController(db *database.Database, manager *backup.Manager, hub *notify.Hub) *BackupController {
	return &BackupController{db: db, manager: manager, hub: hub}
}

// ExportSnapshot streams a full snapshot of the store as JSON.
// GET /api/backup/export
func (bc *BackupController) ExportSnapshot(c *gin.Context) {
	snap, err := backup.Export(bc.db.DB)
	if err != nil {
		respondInternalError(c, err, "export snapshot")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="spotit_export.json"`)
	c.JSON(http.StatusOK, snap)
}

// ImportSnapshot replaces the store's contents with an uploaded snapshot.
// POST /api/backup/import
func (bc *BackupController) ImportSnapshot(c *gin.Context) {
	var snap backup.Snapshot
	if err := c.ShouldBindJSON(&snap); err != nil {
		respondBadRequest(c, "invalid snapshot: "+err.Error())
		return
	}

	if err := backup.Restore(bc.db.DB, &snap); err != nil {
		respondInternalError(c, err, "import snapshot")
		return
	}

	bc.hub.Publish("items", "restored", "")
	respondSuccess(c, "snapshot imported")
}

// ListBackups returns known backup records, newest first.
// GET /api/backups
func (bc *BackupController) ListBackups(c *gin.Context) {
	records, err := bc.manager.List()
	if err != nil {
		respondInternalError(c, err, "list backups")
		return
	}
	if records == nil {
		records = []backup.Record{}
	}
	c.JSON(http.StatusOK, records)
}

// CreateBackup creates a backup file immediately.
// POST /api/backups
func (bc *BackupController) CreateBackup(c *gin.Context) {
	record, err := bc.manager.Create()
	if err != nil {
		respondInternalError(c, err, "create backup")
		return
	}
	respondCreated(c, record)
}

// RestoreBackup replaces the store's contents with a kept backup.
// POST /api/backups/:id/restore
func (bc *BackupController) RestoreBackup(c *gin.Context) {
	id, ok := requireIDParam(c, "id")
	if !ok {
		return
	}

	if err := bc.manager.RestoreFrom(id); err != nil {
		respondInternalError(c, err, "restore backup")
		return
	}

	bc.hub.Publish("items", "restored", "")
	respondSuccess(c, "backup restored")
}

// DeleteBackup removes a backup record and its file.
// DELETE /api/backups/:id
func (bc *BackupController) DeleteBackup(c *gin.Context) {
	id, ok := requireIDParam(c, "id")
	if !ok {
		return
	}

	if err := bc.manager.Delete(id); err != nil {
		respondInternalError(c, err, "delete backup")
		return
	}
	respondSuccess(c, "backup deleted")
}
