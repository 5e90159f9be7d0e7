package containers

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

func setupTestDB(t *testing.T) (*gorm.DB, *Repository, func()) {
	dbPath := "./test_containers_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
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

func TestRepository_Create(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	container, err := repo.Create(CreateInput{
		RoomID:      "room-1",
		Name:        "上柜-左格",
		Description: "厨房的上柜左格",
		Code:        "room-1-上柜-左格",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, container.ID)
	assert.Equal(t, "room-1", container.RoomID)
	assert.Nil(t, container.DeletedAt)
	assert.True(t, container.Active())
}

func TestRepository_GetByCode(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	created, err := repo.Create(CreateInput{RoomID: "room-1", Name: "抽屉", Code: "QR-001"})
	require.NoError(t, err)

	found, err := repo.GetByCode("QR-001")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)

	missing, err := repo.GetByCode("QR-999")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestRepository_SoftDelete_HidesFromListingsButNotGetByID(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	container, err := repo.Create(CreateInput{RoomID: "room-1", Name: "抽屉", Code: "QR-001"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(container.ID, true))

	// Active listings exclude it.
	byRoom, err := repo.GetByRoomID("room-1")
	require.NoError(t, err)
	assert.Empty(t, byRoom)

	all, err := repo.GetAll()
	require.NoError(t, err)
	assert.Empty(t, all)

	byCode, err := repo.GetByCode("QR-001")
	require.NoError(t, err)
	assert.Nil(t, byCode)

	// Direct lookup still resolves, with the deletion mark set.
	byID, err := repo.GetByID(container.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	require.NotNil(t, byID.DeletedAt)
	assert.False(t, byID.Active())
}

func TestRepository_SoftDelete_UnlinksItems(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	container, err := repo.Create(CreateInput{RoomID: "room-1", Name: "抽屉"})
	require.NoError(t, err)

	roomID := "room-1"
	item := entities.Item{
		ID:          "item-1",
		Name:        "剪刀",
		ContainerID: &container.ID,
		RoomID:      &roomID,
		Quantity:    1,
		Status:      entities.ItemStatusInStock,
		Notes:       "红色手柄",
	}
	require.NoError(t, db.Create(&item).Error)

	require.NoError(t, repo.Delete(container.ID, true))

	var unlinked entities.Item
	require.NoError(t, db.First(&unlinked, "id = ?", item.ID).Error)
	assert.Nil(t, unlinked.ContainerID)
	assert.Nil(t, unlinked.RoomID)
	assert.Equal(t, "剪刀", unlinked.Name)
	assert.Equal(t, "红色手柄", unlinked.Notes)
}

func TestRepository_HardDelete_RemovesRow(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	container, err := repo.Create(CreateInput{RoomID: "room-1", Name: "抽屉"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(container.ID, false))

	byID, err := repo.GetByID(container.ID)
	require.NoError(t, err)
	assert.Nil(t, byID)
}

func TestRepository_Update_DoesNotTouchRoom(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	container, err := repo.Create(CreateInput{RoomID: "room-1", Name: "抽屉", Code: "QR-001"})
	require.NoError(t, err)

	newName := "工具抽屉"
	require.NoError(t, repo.Update(container.ID, UpdateInput{Name: &newName}))

	updated, err := repo.GetByID(container.ID)
	require.NoError(t, err)
	assert.Equal(t, "工具抽屉", updated.Name)
	assert.Equal(t, "room-1", updated.RoomID)
	assert.Equal(t, "QR-001", updated.Code)
}
