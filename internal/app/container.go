package app

import (
	"fmt"
	"time"

	"github.com/photoapp/photoapp/config"
	"github.com/photoapp/photoapp/database"
	"github.com/photoapp/photoapp/database/models"
	repoassets "github.com/photoapp/photoapp/database/repo/assets"
	repodocuments "github.com/photoapp/photoapp/database/repo/documents"
	repoextractions "github.com/photoapp/photoapp/database/repo/extractions"
	assetssvc "github.com/photoapp/photoapp/internal/assets"
	documentssvc "github.com/photoapp/photoapp/internal/documents"
	"github.com/photoapp/photoapp/internal/image"
	"github.com/photoapp/photoapp/internal/ocr"
	"github.com/photoapp/photoapp/internal/pdf"
	textractsvc "github.com/photoapp/photoapp/internal/textract"
	"github.com/photoapp/photoapp/storage"
	"github.com/photoapp/photoapp/utils/generator"
)

// Container wires every long-lived dependency once at process start. Nothing
// here mutates after Init; request handling only reads from it.
type Container struct {
	cfg       *config.Config
	startTime time.Time

	dbProvider database.Provider
	store      storage.Provider

	assetsRepo      *repoassets.Repository
	documentsRepo   *repodocuments.Repository
	extractionsRepo *repoextractions.Repository

	UploadService   *assetssvc.UploadService
	QueryService    *assetssvc.QueryService
	DocumentService *documentssvc.Service
	TextractService *textractsvc.Service
}

func NewContainer(cfg *config.Config) *Container {
	return &Container{
		cfg:       cfg,
		startTime: time.Now(),
	}
}

// InitDatabase connects to the metadata store and applies DDL.
func (c *Container) InitDatabase() error {
	provider, err := database.NewGormProvider(c.cfg)
	if err != nil {
		return err
	}
	c.dbProvider = provider

	err = provider.AutoMigrate(
		&models.Asset{},
		&models.Document{},
		&models.TextExtraction{},
	)
	if err != nil {
		return fmt.Errorf("failed to auto migrate database: %w", err)
	}
	return nil
}

// InitStorage connects to the object store.
func (c *Container) InitStorage() error {
	store, err := storage.NewMinioStorage(c.cfg)
	if err != nil {
		return err
	}
	c.store = store
	return nil
}

// InitServices builds the pipelines. Database and storage must be up.
func (c *Container) InitServices() error {
	if c.dbProvider == nil || c.store == nil {
		return fmt.Errorf("database and storage must be initialized before services")
	}

	db := c.dbProvider.DB()
	c.assetsRepo = repoassets.NewRepository(db)
	c.documentsRepo = repodocuments.NewRepository(db)
	c.extractionsRepo = repoextractions.NewRepository(db)

	keys := generator.NewKeyGenerator()
	codec := image.NewVipsCodec()
	engine := ocr.NewTesseractEngine()
	assembler := pdf.NewAssembler()

	c.UploadService = assetssvc.NewUploadService(c.assetsRepo, c.store, codec, keys)
	c.QueryService = assetssvc.NewQueryService(c.assetsRepo, c.store)
	c.DocumentService = documentssvc.NewService(c.documentsRepo, c.store, assembler, keys)
	c.TextractService = textractsvc.NewService(c.assetsRepo, c.extractionsRepo, c.store, engine, keys)
	return nil
}

// StartTime reports when the process started serving.
func (c *Container) StartTime() time.Time {
	return c.startTime
}

func (c *Container) DBProvider() database.Provider {
	return c.dbProvider
}

func (c *Container) Store() storage.Provider {
	return c.store
}

func (c *Container) Close() error {
	if c.dbProvider != nil {
		return c.dbProvider.Close()
	}
	return nil
}
