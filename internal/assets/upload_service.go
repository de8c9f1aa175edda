package assets

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	"github.com/photoapp/photoapp/database/models"
	imagecodec "github.com/photoapp/photoapp/internal/image"
	"github.com/photoapp/photoapp/storage"
	"github.com/photoapp/photoapp/utils/generator"
)

// AssetWriter is the slice of the asset repository the upload pipeline needs.
type AssetWriter interface {
	Create(ctx context.Context, asset *models.Asset) error
}

// UploadInput carries the raw request fields. Width and Height stay untyped
// because clients send them as JSON numbers or numeric strings; the pipeline
// validates them at the step the contract prescribes.
type UploadInput struct {
	AssetName string
	Data      string
	Width     interface{}
	Height    interface{}
}

// UploadResult is the successful outcome of one upload.
type UploadResult struct {
	AssetID        uint
	ObjectURL      string
	OriginalWidth  int
	OriginalHeight int
	ResizedWidth   int
	ResizedHeight  int
}

// UploadService orchestrates decode, resize, store write and metadata insert
// for a single asset.
type UploadService struct {
	repo  AssetWriter
	store storage.Provider
	codec imagecodec.Codec
	keys  *generator.KeyGenerator
}

func NewUploadService(repo AssetWriter, store storage.Provider, codec imagecodec.Codec, keys *generator.KeyGenerator) *UploadService {
	return &UploadService{
		repo:  repo,
		store: store,
		codec: codec,
		keys:  keys,
	}
}

// Upload runs the pipeline. Each step is a hard checkpoint: the store write
// always precedes the metadata insert, and the insert is what commits the
// asset's existence. A crash or insert failure in between leaves an orphaned
// blob, which is logged but not compensated.
func (s *UploadService) Upload(ctx context.Context, in UploadInput) (*UploadResult, error) {
	raw, err := base64.StdEncoding.DecodeString(in.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}

	originalWidth, originalHeight, err := s.codec.Dimensions(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadImage, err)
	}

	targetWidth, err := parseDimension(in.Width)
	if err != nil {
		return nil, ErrInvalidDimensions
	}
	targetHeight, err := parseDimension(in.Height)
	if err != nil {
		return nil, ErrInvalidDimensions
	}

	resized, err := s.codec.ResizeJPEG(raw, targetWidth, targetHeight)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResize, err)
	}

	key := s.keys.AssetKey()
	err = s.store.SaveWithContext(ctx, key, bytes.NewReader(resized), int64(len(resized)), "image/jpeg")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpload, err)
	}

	asset := &models.Asset{
		AssetName:      in.AssetName,
		BucketKey:      key,
		OriginalWidth:  originalWidth,
		OriginalHeight: originalHeight,
		ResizedWidth:   targetWidth,
		ResizedHeight:  targetHeight,
		IsResized:      true,
	}
	if err := s.repo.Create(ctx, asset); err != nil {
		log.Printf("Asset insert failed, blob orphaned in store under key %s: %v", key, err)
		return nil, fmt.Errorf("%w: %v", ErrPersist, err)
	}

	return &UploadResult{
		AssetID:        asset.AssetID,
		ObjectURL:      s.store.PublicURL(key),
		OriginalWidth:  originalWidth,
		OriginalHeight: originalHeight,
		ResizedWidth:   targetWidth,
		ResizedHeight:  targetHeight,
	}, nil
}

// parseDimension accepts the value shapes JSON clients actually send for a
// dimension and rejects everything that is not a positive integer.
func parseDimension(v interface{}) (int, error) {
	var n int
	switch value := v.(type) {
	case nil:
		return 0, fmt.Errorf("dimension missing")
	case float64:
		n = int(value)
		if float64(n) != value {
			return 0, fmt.Errorf("dimension not an integer: %v", value)
		}
	case int:
		n = value
	case json.Number:
		parsed, err := value.Int64()
		if err != nil {
			return 0, fmt.Errorf("dimension not an integer: %v", value)
		}
		n = int(parsed)
	case string:
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("dimension not an integer: %q", value)
		}
		n = parsed
	default:
		return 0, fmt.Errorf("dimension has unsupported type %T", v)
	}

	if n <= 0 {
		return 0, fmt.Errorf("dimension must be positive, got %d", n)
	}
	return n, nil
}
