package settings

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/spotit/spotit/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := "./test_settings_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.Setting{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func TestRepository_GetMissingKey(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	value, err := repo.Get("missing")
	require.NoError(t, err)
	assert.Equal(t, "", value)
}

func TestRepository_SetAndGet(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.Set("backup_enabled", "true"))

	value, err := repo.Get("backup_enabled")
	require.NoError(t, err)
	assert.Equal(t, "true", value)
}

func TestRepository_SetOverwrites(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.Set("last_backup_time", "100"))
	require.NoError(t, repo.Set("last_backup_time", "200"))

	value, err := repo.Get("last_backup_time")
	require.NoError(t, err)
	assert.Equal(t, "200", value)
}

func TestRepository_Delete(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.Set("backup_enabled", "true"))
	require.NoError(t, repo.Delete("backup_enabled"))

	value, err := repo.Get("backup_enabled")
	require.NoError(t, err)
	assert.Equal(t, "", value)

	// Deleting an absent key is fine.
	require.NoError(t, repo.Delete("backup_enabled"))
}
