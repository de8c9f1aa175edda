package documents

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/photoapp/photoapp/database/models"
	"github.com/photoapp/photoapp/internal/pdf"
	"github.com/photoapp/photoapp/storage"
	"github.com/photoapp/photoapp/utils/generator"
)

// Pipeline failure categories, mirrored by the handler's status mapping.
var (
	// ErrNoImages: the request listed no source images. Rejected before any
	// network call.
	ErrNoImages = errors.New("at least one image is required to create a PDF")

	// ErrFetch: a source blob could not be retrieved. The whole assembly is
	// aborted; partial documents are never persisted.
	ErrFetch = errors.New("failed to fetch source image")

	// ErrAssemble: layout or serialization failed.
	ErrAssemble = errors.New("failed to assemble PDF")

	// ErrUpload: the document blob could not be written. No metadata row exists.
	ErrUpload = errors.New("failed to upload PDF to object store")

	// ErrPersist: the document metadata insert failed.
	ErrPersist = errors.New("failed to persist PDF metadata")
)

// DocumentWriter is the slice of the document repository the pipeline needs.
type DocumentWriter interface {
	Create(ctx context.Context, doc *models.Document) error
}

// Result is the successful outcome of one assembly.
type Result struct {
	PDFID  uint
	PDFURL string
}

// Service assembles stored images into a single PDF document.
type Service struct {
	repo      DocumentWriter
	store     storage.Provider
	assembler pdf.Assembler
	keys      *generator.KeyGenerator
}

func NewService(repo DocumentWriter, store storage.Provider, assembler pdf.Assembler, keys *generator.KeyGenerator) *Service {
	return &Service{
		repo:      repo,
		store:     store,
		assembler: assembler,
		keys:      keys,
	}
}

// Assemble fetches every source blob, lays one image per page and stores the
// finished document. Fetches run concurrently but results are slotted by
// index, so page order always matches input order.
func (s *Service) Assemble(ctx context.Context, imageKeys []string, name string) (*Result, error) {
	if len(imageKeys) == 0 {
		return nil, ErrNoImages
	}

	blobs := make([][]byte, len(imageKeys))
	g, gctx := errgroup.WithContext(ctx)
	for i, key := range imageKeys {
		i, key := i, key
		g.Go(func() error {
			data, err := s.store.GetWithContext(gctx, key)
			if err != nil {
				return fmt.Errorf("%w '%s': %v", ErrFetch, key, err)
			}
			blobs[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	document, err := s.assembler.Assemble(ctx, blobs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssemble, err)
	}

	key := s.keys.DocumentKey()
	err = s.store.SaveWithContext(ctx, key, bytes.NewReader(document), int64(len(document)), "application/pdf")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpload, err)
	}

	doc := &models.Document{
		PDFName:   name,
		PDFKey:    key,
		PageCount: len(imageKeys),
	}
	if err := s.repo.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersist, err)
	}

	return &Result{
		PDFID:  doc.PDFID,
		PDFURL: s.store.PublicURL(key),
	}, nil
}
