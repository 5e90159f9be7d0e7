package rooms

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/spotit/spotit/internal/entities"
)

func setupTestDB(t *testing.T) (*gorm.DB, *Repository, func()) {
	dbPath := "./test_rooms_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entities.Room{},
		&entities.Container{},
		&entities.Item{},
	)
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return db, repo, cleanup
}

func TestRepository_Create_ProvisionsContainerGrid(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	room, err := repo.Create(CreateInput{LocationID: "loc-1", Name: "厨房", Description: "厨房区域"})
	require.NoError(t, err)
	assert.NotEmpty(t, room.ID)
	assert.Equal(t, "loc-1", room.LocationID)

	var containers []entities.Container
	require.NoError(t, db.Where("room_id = ?", room.ID).Find(&containers).Error)
	require.Len(t, containers, 6)

	byName := make(map[string]entities.Container, len(containers))
	for _, container := range containers {
		byName[container.Name] = container
	}

	for _, cabinet := range []string{"上柜", "下柜"} {
		for _, position := range []string{"左格", "中格", "右格"} {
			name := fmt.Sprintf("%s-%s", cabinet, position)
			container, ok := byName[name]
			require.True(t, ok, "missing container %s", name)
			assert.Equal(t, fmt.Sprintf("厨房的%s%s", cabinet, position), container.Description)
			assert.Equal(t, fmt.Sprintf("%s-%s-%s", room.ID, cabinet, position), container.Code)
			assert.Nil(t, container.DeletedAt)
		}
	}
}

func TestRepository_GetByLocationID(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.Create(CreateInput{LocationID: "loc-1", Name: "厨房"})
	require.NoError(t, err)
	_, err = repo.Create(CreateInput{LocationID: "loc-2", Name: "客厅"})
	require.NoError(t, err)

	rooms, err := repo.GetByLocationID("loc-1")
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "厨房", rooms[0].Name)
}

func TestRepository_Update_Partial(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	room, err := repo.Create(CreateInput{LocationID: "loc-1", Name: "厨房", Description: "厨房区域"})
	require.NoError(t, err)

	newLocation := "loc-2"
	require.NoError(t, repo.Update(room.ID, UpdateInput{LocationID: &newLocation}))

	updated, err := repo.GetByID(room.ID)
	require.NoError(t, err)
	assert.Equal(t, "loc-2", updated.LocationID)
	assert.Equal(t, "厨房", updated.Name)
}

func TestRepository_Delete_RemovesContainersAndUnlinksItems(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	room, err := repo.Create(CreateInput{LocationID: "loc-1", Name: "厨房"})
	require.NoError(t, err)

	var container entities.Container
	require.NoError(t, db.Where("room_id = ?", room.ID).First(&container).Error)

	item := entities.Item{
		ID:          "item-1",
		Name:        "锅",
		ContainerID: &container.ID,
		RoomID:      &room.ID,
		Quantity:    1,
		Status:      entities.ItemStatusInStock,
	}
	require.NoError(t, db.Create(&item).Error)

	require.NoError(t, repo.Delete(room.ID))

	gone, err := repo.GetByID(room.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	var containerCount int64
	require.NoError(t, db.Model(&entities.Container{}).Where("room_id = ?", room.ID).Count(&containerCount).Error)
	assert.Zero(t, containerCount)

	var survivor entities.Item
	require.NoError(t, db.First(&survivor, "id = ?", item.ID).Error)
	assert.Nil(t, survivor.ContainerID)
	assert.Nil(t, survivor.RoomID)
	assert.Equal(t, "锅", survivor.Name)
}

func TestRepository_Delete_IncludesSoftDeletedContainers(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	room, err := repo.Create(CreateInput{LocationID: "loc-1", Name: "厨房"})
	require.NoError(t, err)

	// Soft-delete one of the provisioned containers first.
	var container entities.Container
	require.NoError(t, db.Where("room_id = ?", room.ID).First(&container).Error)
	require.NoError(t, db.Model(&entities.Container{}).Where("id = ?", container.ID).
		Update("deleted_at", int64(123)).Error)

	require.NoError(t, repo.Delete(room.ID))

	var count int64
	require.NoError(t, db.Model(&entities.Container{}).Count(&count).Error)
	assert.Zero(t, count)
}
