package history

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
	dbPath := "./test_history_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.ItemHistory{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return db, repo, cleanup
}

func createRecord(t *testing.T, db *gorm.DB, id, itemID string, action entities.HistoryAction, ts int64) {
	require.NoError(t, db.Create(&entities.ItemHistory{
		ID:        id,
		ItemID:    itemID,
		Action:    action,
		CreatedAt: ts,
		UpdatedAt: ts,
	}).Error)
}

func TestRepository_GetByItemID_NewestFirst(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	createRecord(t, db, "h-1", "item-1", entities.HistoryActionCreate, 100)
	createRecord(t, db, "h-2", "item-1", entities.HistoryActionMove, 200)
	createRecord(t, db, "h-3", "item-2", entities.HistoryActionCreate, 300)

	records, err := repo.GetByItemID("item-1")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "h-2", records[0].ID)
	assert.Equal(t, "h-1", records[1].ID)
}

func TestRepository_GetByItemID_SameTimestampUsesInsertionOrder(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	// A move and a lend derived from one update share a timestamp; the
	// later insert must come back first.
	createRecord(t, db, "h-move", "item-1", entities.HistoryActionMove, 500)
	createRecord(t, db, "h-lend", "item-1", entities.HistoryActionLend, 500)

	records, err := repo.GetByItemID("item-1")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "h-lend", records[0].ID)
	assert.Equal(t, "h-move", records[1].ID)
}

func TestRepository_GetByAction(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	createRecord(t, db, "h-1", "item-1", entities.HistoryActionCreate, 100)
	createRecord(t, db, "h-2", "item-1", entities.HistoryActionLend, 200)
	createRecord(t, db, "h-3", "item-2", entities.HistoryActionLend, 300)

	lends, err := repo.GetByAction(entities.HistoryActionLend)
	require.NoError(t, err)
	require.Len(t, lends, 2)
	assert.Equal(t, "h-3", lends[0].ID)
	assert.Equal(t, "h-2", lends[1].ID)
}

func TestRepository_GetRecent_Limit(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	createRecord(t, db, "h-1", "item-1", entities.HistoryActionCreate, 100)
	createRecord(t, db, "h-2", "item-2", entities.HistoryActionCreate, 200)
	createRecord(t, db, "h-3", "item-3", entities.HistoryActionCreate, 300)

	recent, err := repo.GetRecent(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "h-3", recent[0].ID)
	assert.Equal(t, "h-2", recent[1].ID)

	all, err := repo.GetRecent(0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
