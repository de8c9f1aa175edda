package documents

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/photoapp/photoapp/database/models"
)

// Repository persists assembled-document metadata rows.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new document row and fills in the assigned identifier.
func (r *Repository) Create(ctx context.Context, doc *models.Document) error {
	result := r.db.WithContext(ctx).Create(doc)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected != 1 {
		return fmt.Errorf("document insert affected %d rows, expected 1", result.RowsAffected)
	}
	return nil
}

// GetByID fetches one document. Returns gorm.ErrRecordNotFound for unknown ids.
func (r *Repository) GetByID(ctx context.Context, pdfID uint) (*models.Document, error) {
	var doc models.Document
	err := r.db.WithContext(ctx).First(&doc, "pdfId = ?", pdfID).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}
