package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spotit/spotit/internal/database/containers"
	"github.com/spotit/spotit/internal/database/history"
	"github.com/spotit/spotit/internal/database/images"
	"github.com/spotit/spotit/internal/database/items"
	"github.com/spotit/spotit/internal/database/locations"
	"github.com/spotit/spotit/internal/database/rooms"
	"github.com/spotit/spotit/internal/database/tagcategories"
	"github.com/spotit/spotit/internal/notify"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	db := cfg.Database.DB

	healthController := NewHealthController(cfg.Database, cfg.Version)
	locationsController := NewLocationsController(locations.NewRepository(db), cfg.Hub)
	roomsController := NewRoomsController(rooms.NewRepository(db), cfg.Hub)
	containersController := NewContainersController(containers.NewRepository(db), cfg.Hub)
	itemsController := NewItemsController(items.NewRepository(db), cfg.Hub)
	imagesController := NewImagesController(images.NewRepository(db), cfg.Hub)
	historyController := NewHistoryController(history.NewRepository(db))
	tagCategoriesController := NewTagCategoriesController(tagcategories.NewRepository(db), cfg.Hub)
	backupController := NewBackupController(cfg.Database, cfg.BackupManager, cfg.Hub)

	router.GET("/health", healthController.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	router.GET("/ws", notify.Handler(cfg.Hub))

	router.GET("/api/locations", locationsController.ListLocations)
	router.GET("/api/locations/:id", locationsController.GetLocation)
	router.POST("/api/locations", locationsController.CreateLocation)
	router.PUT("/api/locations/:id", locationsController.UpdateLocation)
	router.DELETE("/api/locations/:id", locationsController.DeleteLocation)

	router.GET("/api/rooms", roomsController.ListRooms)
	router.GET("/api/rooms/:id", roomsController.GetRoom)
	router.POST("/api/rooms", roomsController.CreateRoom)
	router.PUT("/api/rooms/:id", roomsController.UpdateRoom)
	router.DELETE("/api/rooms/:id", roomsController.DeleteRoom)

	router.GET("/api/containers", containersController.ListContainers)
	router.GET("/api/containers/by-code/:code", containersController.GetContainerByCode)
	router.GET("/api/containers/:id", containersController.GetContainer)
	router.POST("/api/containers", containersController.CreateContainer)
	router.PUT("/api/containers/:id", containersController.UpdateContainer)
	router.DELETE("/api/containers/:id", containersController.DeleteContainer)

	router.GET("/api/items", itemsController.ListItems)
	router.GET("/api/items/search", itemsController.SearchItems)
	router.GET("/api/items/:id", itemsController.GetItem)
	router.POST("/api/items", itemsController.CreateItem)
	router.PUT("/api/items/:id", itemsController.UpdateItem)
	router.DELETE("/api/items/:id", itemsController.DeleteItem)
	router.GET("/api/items/:id/images", imagesController.ListImagesByItem)
	router.GET("/api/items/:id/history", historyController.ListItemHistory)

	router.GET("/api/images/:id", imagesController.GetImage)
	router.POST("/api/images", imagesController.CreateImage)
	router.DELETE("/api/images/:id", imagesController.DeleteImage)

	router.GET("/api/history", historyController.ListHistory)

	router.GET("/api/tag-categories", tagCategoriesController.ListTagCategories)
	router.POST("/api/tag-categories", tagCategoriesController.CreateTagCategory)
	router.PUT("/api/tag-categories/:id", tagCategoriesController.UpdateTagCategory)
	router.DELETE("/api/tag-categories/:id", tagCategoriesController.DeleteTagCategory)

	router.GET("/api/backup/export", backupController.ExportSnapshot)
	router.POST("/api/backup/import", backupController.ImportSnapshot)
	router.GET("/api/backups", backupController.ListBackups)
	router.POST("/api/backups", backupController.CreateBackup)
	router.POST("/api/backups/:id/restore", backupController.RestoreBackup)
	router.DELETE("/api/backups/:id", backupController.DeleteBackup)

	return router
}
