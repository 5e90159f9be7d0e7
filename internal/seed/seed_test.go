package seed

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

func setupTestDB(t *testing.T) (*gorm.DB, func()) {
	dbPath := "./test_seed_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entities.Location{},
		&entities.Room{},
		&entities.Container{},
		&entities.Item{},
		&entities.TagCategory{},
	)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return db, cleanup
}

func TestInitialize_FreshStore(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, Initialize(db))

	var home entities.Location
	require.NoError(t, db.First(&home).Error)
	assert.Equal(t, "我的家", home.Name)
	assert.Equal(t, "默认区域", home.Description)
	assert.True(t, home.IsDefault)

	var roomCount, containerCount, categoryCount int64
	require.NoError(t, db.Model(&entities.Room{}).Count(&roomCount).Error)
	require.NoError(t, db.Model(&entities.Container{}).Count(&containerCount).Error)
	require.NoError(t, db.Model(&entities.TagCategory{}).Count(&categoryCount).Error)
	assert.Equal(t, int64(5), roomCount)
	assert.Equal(t, int64(30), containerCount)
	assert.Equal(t, int64(len(builtinCategories)), categoryCount)

	// Built-in categories are not custom.
	var customCount int64
	require.NoError(t, db.Model(&entities.TagCategory{}).Where("is_custom = ?", true).Count(&customCount).Error)
	assert.Zero(t, customCount)
}

func TestInitialize_Idempotent(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, Initialize(db))
	require.NoError(t, Initialize(db))

	var locationCount, roomCount, categoryCount int64
	require.NoError(t, db.Model(&entities.Location{}).Count(&locationCount).Error)
	require.NoError(t, db.Model(&entities.Room{}).Count(&roomCount).Error)
	require.NoError(t, db.Model(&entities.TagCategory{}).Count(&categoryCount).Error)
	assert.Equal(t, int64(1), locationCount)
	assert.Equal(t, int64(5), roomCount)
	assert.Equal(t, int64(len(builtinCategories)), categoryCount)
}

func TestInitialize_AdoptsOrphanedRooms(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	// Rooms written before the locations table existed carry no location.
	require.NoError(t, db.Create(&entities.Room{ID: "legacy-room", Name: "书房"}).Error)

	require.NoError(t, Initialize(db))

	var home entities.Location
	require.NoError(t, db.Where("is_default = ?", true).First(&home).Error)

	var legacy entities.Room
	require.NoError(t, db.First(&legacy, "id = ?", "legacy-room").Error)
	assert.Equal(t, home.ID, legacy.LocationID)
}

func TestInitialize_KeepsExistingLocations(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, db.Create(&entities.Location{
		ID:        "loc-custom",
		Name:      "仓库",
		CreatedAt: 100,
		UpdatedAt: 100,
	}).Error)

	require.NoError(t, Initialize(db))

	// No 我的家 created; the existing location is the adoption target.
	var locationCount int64
	require.NoError(t, db.Model(&entities.Location{}).Count(&locationCount).Error)
	assert.Equal(t, int64(1), locationCount)
}
