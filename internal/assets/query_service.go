package assets

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/photoapp/photoapp/database/models"
	"github.com/photoapp/photoapp/storage"
)

// AssetReader is the slice of the asset repository the query pipeline needs.
type AssetReader interface {
	GetByID(ctx context.Context, assetID uint) (*models.Asset, error)
	ListAll(ctx context.Context) ([]models.Asset, error)
}

// QueryService serves read-only projections of stored asset metadata.
type QueryService struct {
	repo  AssetReader
	store storage.Provider
}

func NewQueryService(repo AssetReader, store storage.Provider) *QueryService {
	return &QueryService{repo: repo, store: store}
}

// ListAssets returns all asset rows verbatim.
func (s *QueryService) ListAssets(ctx context.Context) ([]models.Asset, error) {
	return s.repo.ListAll(ctx)
}

// GetAsset fetches one asset and its derived public URL. Unknown identifiers
// yield ErrAssetNotFound, distinct from other failures.
func (s *QueryService) GetAsset(ctx context.Context, assetID uint) (*models.Asset, string, error) {
	asset, err := s.repo.GetByID(ctx, assetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrAssetNotFound
		}
		return nil, "", err
	}
	return asset, s.store.PublicURL(asset.BucketKey), nil
}
