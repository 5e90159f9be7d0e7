package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/spotit/spotit/internal/backup"
	"github.com/spotit/spotit/internal/config"
	"github.com/spotit/spotit/internal/database"
	http_controllers "github.com/spotit/spotit/internal/http"
	"github.com/spotit/spotit/internal/notify"
	"github.com/spotit/spotit/internal/scheduler"
	"github.com/spotit/spotit/internal/seed"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Shutdown callback first, to stop the backup scheduler.
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Spotit v%s", version)

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := seed.Initialize(db.DB); err != nil {
		log.Fatalf("Failed to initialize default data: %v", err)
	}

	backupManager := backup.NewManager(db, cfg.Backup.Dir, cfg.Backup.Retention)
	backupScheduler := scheduler.NewBackupScheduler(backupManager, cfg.Backup.Schedule)
	if err := backupScheduler.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start backup scheduler: %v", err)
	}

	hub := notify.NewHub()

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Database:      db,
		BackupManager: backupManager,
		Hub:           hub,
		Version:       version,
	})

	Serve(router, cfg, func(ctx context.Context) {
		backupScheduler.Stop()
	})
}
