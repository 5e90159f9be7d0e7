package images

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
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
	dbPath := "./test_images_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.Image{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func pngDataURL(t *testing.T, width, height int) string {
	t.Helper()
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	require.NoError(t, png.Encode(&buf, img))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestRepository_Create_ProbesMissingMetadata(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	image, err := repo.Create(CreateInput{
		ItemID:  "item-1",
		DataURL: pngDataURL(t, 16, 9),
	})
	require.NoError(t, err)

	assert.Equal(t, "image/png", image.MimeType)
	assert.Equal(t, 16, image.Width)
	assert.Equal(t, 9, image.Height)
	assert.Positive(t, image.Size)
}

func TestRepository_Create_KeepsProvidedMetadata(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	image, err := repo.Create(CreateInput{
		ItemID:   "item-1",
		DataURL:  pngDataURL(t, 16, 9),
		MimeType: "image/webp",
		Size:     1234,
		Width:    100,
		Height:   50,
	})
	require.NoError(t, err)

	assert.Equal(t, "image/webp", image.MimeType)
	assert.Equal(t, int64(1234), image.Size)
	assert.Equal(t, 100, image.Width)
	assert.Equal(t, 50, image.Height)
}

func TestRepository_Create_UnreadablePayloadStoredAsIs(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	image, err := repo.Create(CreateInput{
		ItemID:  "item-1",
		DataURL: "nonsense",
	})
	require.NoError(t, err)
	assert.Equal(t, "", image.MimeType)
	assert.Zero(t, image.Size)
}

func TestRepository_GetByItemID_InCreationOrder(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	first, err := repo.Create(CreateInput{ItemID: "item-1", DataURL: pngDataURL(t, 2, 2)})
	require.NoError(t, err)
	_, err = repo.Create(CreateInput{ItemID: "item-2", DataURL: pngDataURL(t, 2, 2)})
	require.NoError(t, err)
	second, err := repo.Create(CreateInput{ItemID: "item-1", DataURL: pngDataURL(t, 2, 2)})
	require.NoError(t, err)

	images, err := repo.GetByItemID("item-1")
	require.NoError(t, err)
	require.Len(t, images, 2)
	assert.Equal(t, first.ID, images[0].ID)
	assert.Equal(t, second.ID, images[1].ID)
}

func TestRepository_Delete(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	image, err := repo.Create(CreateInput{ItemID: "item-1", DataURL: pngDataURL(t, 2, 2)})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(image.ID))

	gone, err := repo.GetByID(image.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
