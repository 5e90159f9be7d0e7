package http

import (
	"github.com/spotit/spotit/internal/backup"
	"github.com/spotit/spotit/internal/database"
	"github.com/spotit/spotit/internal/notify"
)

// RouterConfig contains all dependencies needed to create the HTTP
// router, instead of a long parameter list on NewRouter.
type RouterConfig struct {
	Database      *database.Database
	BackupManager *backup.Manager
	Hub           *notify.Hub

	// Application info
	Version string
}
