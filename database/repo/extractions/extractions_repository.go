package extractions

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/photoapp/photoapp/database/models"
)

// Repository persists OCR extraction records, one per asset.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Upsert records the latest text key for an asset, overwriting any previous
// extraction.
func (r *Repository) Upsert(ctx context.Context, assetID uint, textKey string) error {
	record := models.TextExtraction{
		AssetID: assetID,
		S3Key:   textKey,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "assetid"}},
			DoUpdates: clause.AssignmentColumns([]string{"s3Key"}),
		}).
		Create(&record).Error
}

// GetByAssetID fetches the extraction record for an asset.
func (r *Repository) GetByAssetID(ctx context.Context, assetID uint) (*models.TextExtraction, error) {
	var record models.TextExtraction
	err := r.db.WithContext(ctx).First(&record, "assetid = ?", assetID).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}
