package documents

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/photoapp/photoapp/database/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	assert.NoError(t, err)

	err = db.AutoMigrate(&models.Document{})
	assert.NoError(t, err)

	return db
}

func TestCreate_AssignsIdentifier(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	doc := &models.Document{
		PDFName:   "trip",
		PDFKey:    "pdf_assets/abc.pdf",
		PageCount: 3,
	}
	err := repo.Create(context.Background(), doc)
	assert.NoError(t, err)
	assert.Greater(t, doc.PDFID, uint(0))
}

func TestGetByID_NotFound(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	_, err := repo.GetByID(context.Background(), 999999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGetByID_ReturnsFullRow(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	doc := &models.Document{
		PDFName:   "album",
		PDFKey:    "pdf_assets/def.pdf",
		PageCount: 7,
	}
	assert.NoError(t, repo.Create(context.Background(), doc))

	got, err := repo.GetByID(context.Background(), doc.PDFID)
	assert.NoError(t, err)
	assert.Equal(t, "album", got.PDFName)
	assert.Equal(t, "pdf_assets/def.pdf", got.PDFKey)
	assert.Equal(t, 7, got.PageCount)
}
