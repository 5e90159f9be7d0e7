package locations

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
	dbPath := "./test_locations_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entities.Location{},
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

func TestRepository_Create_ProvisionsDefaultRooms(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	location, err := repo.Create(CreateInput{Name: "我的家", Description: "默认区域", IsDefault: true})
	require.NoError(t, err)
	assert.NotEmpty(t, location.ID)
	assert.True(t, location.IsDefault)
	assert.Equal(t, location.CreatedAt, location.UpdatedAt)

	var rooms []entities.Room
	require.NoError(t, db.Where("location_id = ?", location.ID).Find(&rooms).Error)
	require.Len(t, rooms, 5)

	names := make([]string, 0, len(rooms))
	for _, room := range rooms {
		names = append(names, room.Name)
		assert.Equal(t, room.Name+"区域", room.Description)
	}
	assert.ElementsMatch(t, []string{"客厅", "厨房", "主卧", "次卧", "卫生间"}, names)

	// Each default room carries its own container grid.
	var containerCount int64
	require.NoError(t, db.Model(&entities.Container{}).Count(&containerCount).Error)
	assert.Equal(t, int64(30), containerCount)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	location, err := repo.GetByID("missing")
	require.NoError(t, err)
	assert.Nil(t, location)
}

func TestRepository_GetAll_OrderedByCreation(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	first, err := repo.Create(CreateInput{Name: "我的家"})
	require.NoError(t, err)
	second, err := repo.Create(CreateInput{Name: "办公室"})
	require.NoError(t, err)

	all, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)
}

func TestRepository_Update_Partial(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	location, err := repo.Create(CreateInput{Name: "我的家", Description: "默认区域"})
	require.NoError(t, err)

	newName := "新家"
	require.NoError(t, repo.Update(location.ID, UpdateInput{Name: &newName}))

	updated, err := repo.GetByID(location.ID)
	require.NoError(t, err)
	assert.Equal(t, "新家", updated.Name)
	assert.Equal(t, "默认区域", updated.Description)
	assert.GreaterOrEqual(t, updated.UpdatedAt, location.UpdatedAt)
}

func TestRepository_Delete_CascadesToRoomsAndContainers(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	location, err := repo.Create(CreateInput{Name: "我的家"})
	require.NoError(t, err)

	// Park an item in one of the provisioned containers.
	var container entities.Container
	require.NoError(t, db.First(&container).Error)
	item := entities.Item{
		ID:          "item-1",
		Name:        "证件",
		ContainerID: &container.ID,
		RoomID:      &container.RoomID,
		Quantity:    1,
		Status:      entities.ItemStatusInStock,
	}
	require.NoError(t, db.Create(&item).Error)

	require.NoError(t, repo.Delete(location.ID))

	gone, err := repo.GetByID(location.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	var roomCount, containerCount int64
	require.NoError(t, db.Model(&entities.Room{}).Count(&roomCount).Error)
	require.NoError(t, db.Model(&entities.Container{}).Count(&containerCount).Error)
	assert.Zero(t, roomCount)
	assert.Zero(t, containerCount)

	// The item survives, unlinked.
	var survivor entities.Item
	require.NoError(t, db.First(&survivor, "id = ?", item.ID).Error)
	assert.Nil(t, survivor.ContainerID)
	assert.Nil(t, survivor.RoomID)
}
