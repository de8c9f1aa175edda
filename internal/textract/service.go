package textract

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"

	"github.com/photoapp/photoapp/database/models"
	"github.com/photoapp/photoapp/internal/ocr"
	"github.com/photoapp/photoapp/storage"
	"github.com/photoapp/photoapp/utils/generator"
)

// Pipeline failure categories.
var (
	// ErrAssetNotFound: no asset row matches the requested identifier.
	ErrAssetNotFound = errors.New("no image found with the given assetid")

	// ErrProcess: fetching the blob or running recognition failed. Nothing
	// was persisted.
	ErrProcess = errors.New("failed to process image")

	// ErrUpload: the extracted text could not be written to the store.
	ErrUpload = errors.New("failed to upload extracted text")
)

// AssetReader looks up the storage key for an asset.
type AssetReader interface {
	GetByID(ctx context.Context, assetID uint) (*models.Asset, error)
}

// ExtractionWriter records the latest text key for an asset.
type ExtractionWriter interface {
	Upsert(ctx context.Context, assetID uint, textKey string) error
}

// Result is the successful outcome of one extraction.
type Result struct {
	TextKey string
	TextURL string
}

// Service extracts plain text from a stored asset and files the result.
type Service struct {
	assets      AssetReader
	extractions ExtractionWriter
	store       storage.Provider
	engine      ocr.Engine
	keys        *generator.KeyGenerator
}

func NewService(assets AssetReader, extractions ExtractionWriter, store storage.Provider, engine ocr.Engine, keys *generator.KeyGenerator) *Service {
	return &Service{
		assets:      assets,
		extractions: extractions,
		store:       store,
		engine:      engine,
		keys:        keys,
	}
}

// Extract looks up the asset, runs recognition on its blob and stores the
// text under a fresh key. Recognition is the slow step; the caller's request
// blocks on it. A failed extraction-record write is logged but does not fail
// the call, since the text blob itself was stored successfully.
func (s *Service) Extract(ctx context.Context, assetID uint) (*Result, error) {
	asset, err := s.assets.GetByID(ctx, assetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssetNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrProcess, err)
	}

	blob, err := s.store.GetWithContext(ctx, asset.BucketKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProcess, err)
	}

	text, err := s.engine.ExtractText(ctx, blob)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProcess, err)
	}

	key := s.keys.TextKey()
	err = s.store.SaveWithContext(ctx, key, strings.NewReader(text), int64(len(text)), "text/plain")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpload, err)
	}

	if err := s.extractions.Upsert(ctx, assetID, key); err != nil {
		log.Printf("Failed to record extraction for asset %d (text stored under %s): %v", assetID, key, err)
	}

	return &Result{
		TextKey: key,
		TextURL: s.store.PublicURL(key),
	}, nil
}
