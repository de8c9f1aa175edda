package assets

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/photoapp/photoapp/database/models"
)

// Repository persists asset metadata rows.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new asset row and fills in the assigned identifier.
// Anything other than exactly one affected row is a failure; the caller has
// already written the blob, so the key is reported for the orphan log.
func (r *Repository) Create(ctx context.Context, asset *models.Asset) error {
	result := r.db.WithContext(ctx).Create(asset)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected != 1 {
		return fmt.Errorf("asset insert affected %d rows, expected 1", result.RowsAffected)
	}
	return nil
}

// GetByID fetches one asset. Returns gorm.ErrRecordNotFound for unknown ids.
func (r *Repository) GetByID(ctx context.Context, assetID uint) (*models.Asset, error) {
	var asset models.Asset
	err := r.db.WithContext(ctx).First(&asset, "assetid = ?", assetID).Error
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

// ListAll returns every asset row, oldest first.
func (r *Repository) ListAll(ctx context.Context) ([]models.Asset, error) {
	var assets []models.Asset
	err := r.db.WithContext(ctx).Order("assetid asc").Find(&assets).Error
	return assets, err
}
