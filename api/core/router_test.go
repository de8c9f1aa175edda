package core

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/photoapp/photoapp/database"
	"github.com/photoapp/photoapp/database/models"
	repoassets "github.com/photoapp/photoapp/database/repo/assets"
	repodocuments "github.com/photoapp/photoapp/database/repo/documents"
	repoextractions "github.com/photoapp/photoapp/database/repo/extractions"
	assetssvc "github.com/photoapp/photoapp/internal/assets"
	documentssvc "github.com/photoapp/photoapp/internal/documents"
	"github.com/photoapp/photoapp/internal/pdf"
	textractsvc "github.com/photoapp/photoapp/internal/textract"
	"github.com/photoapp/photoapp/utils/generator"
)

type testProvider struct {
	db *gorm.DB
}

func (p *testProvider) DB() *gorm.DB                              { return p.db }
func (p *testProvider) WithContext(ctx context.Context) *gorm.DB  { return p.db.WithContext(ctx) }
func (p *testProvider) AutoMigrate(models ...interface{}) error   { return p.db.AutoMigrate(models...) }
func (p *testProvider) Name() string                              { return "sqlite" }
func (p *testProvider) Ping() error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
func (p *testProvider) Close() error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

var _ database.Provider = (*testProvider)(nil)

type memStore struct {
	blobs map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{blobs: map[string][]byte{}}
}

func (m *memStore) SaveWithContext(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.blobs[key] = data
	return nil
}

func (m *memStore) GetWithContext(_ context.Context, key string) ([]byte, error) {
	data, ok := m.blobs[key]
	if !ok {
		return nil, fmt.Errorf("object not found: %s", key)
	}
	return data, nil
}

func (m *memStore) Exists(_ context.Context, key string) (bool, error) {
	_, ok := m.blobs[key]
	return ok, nil
}

func (m *memStore) Health(context.Context) error { return nil }

func (m *memStore) PublicURL(key string) string {
	return "https://photoapp-assets.s3.us-east-2.amazonaws.com/" + key
}

func (m *memStore) Name() string { return "memory" }

// stubCodec reports fixed intrinsic dimensions and echoes the target size.
type stubCodec struct {
	width  int
	height int
}

func (s *stubCodec) Dimensions([]byte) (int, int, error) {
	return s.width, s.height, nil
}

func (s *stubCodec) ResizeJPEG(_ []byte, width, height int) ([]byte, error) {
	return []byte(fmt.Sprintf("jpeg-%dx%d", width, height)), nil
}

type stubEngine struct {
	text string
}

func (s *stubEngine) ExtractText(context.Context, []byte) (string, error) {
	return s.text, nil
}

type testEnv struct {
	router *gin.Engine
	store  *memStore
	db     *gorm.DB
}

func setupEnv(t *testing.T) *testEnv {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.Asset{}, &models.Document{}, &models.TextExtraction{}))

	store := newMemStore()
	keys := generator.NewKeyGenerator()

	assetsRepo := repoassets.NewRepository(db)
	documentsRepo := repodocuments.NewRepository(db)
	extractionsRepo := repoextractions.NewRepository(db)

	deps := &RouterDependencies{
		DBProvider:      &testProvider{db: db},
		StartTime:       time.Now(),
		UploadService:   assetssvc.NewUploadService(assetsRepo, store, &stubCodec{width: 400, height: 300}, keys),
		QueryService:    assetssvc.NewQueryService(assetsRepo, store),
		DocumentService: documentssvc.NewService(documentsRepo, store, pdf.NewAssembler(), keys),
		TextractService: textractsvc.NewService(assetsRepo, extractionsRepo, store, &stubEngine{text: "scanned text"}, keys),
	}

	router := gin.New()
	RegisterRoutes(router, deps)

	return &testEnv{router: router, store: store, db: db}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var parsed map[string]interface{}
	if w.Body.Len() > 0 {
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	}
	return w, parsed
}

func pngPayload(t *testing.T, width, height int) string {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	assert.NoError(t, png.Encode(&buf, img))
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestRootStatus(t *testing.T) {
	env := setupEnv(t)

	w, body := env.do(t, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "running", body["status"])
	assert.Equal(t, "connected", body["dbConnection"])
	assert.Contains(t, body, "uptime-in-secs")
}

func TestUploadImage_EndToEnd(t *testing.T) {
	env := setupEnv(t)

	w, body := env.do(t, http.MethodPost, "/image", gin.H{
		"assetname": "cat",
		"data":      pngPayload(t, 400, 300),
		"width":     100,
		"height":    100,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", body["message"])
	assert.Greater(t, body["assetid"].(float64), float64(0))
	assert.Equal(t, float64(400), body["originalImageWidth"])
	assert.Equal(t, float64(300), body["originalImageHeight"])
	assert.Equal(t, float64(100), body["resizedImageWidth"])
	assert.Equal(t, float64(100), body["resizedImageHeight"])
	assert.Contains(t, body["objectUrl"], "image_assets/")

	// The resized blob is in the store and the row in the database.
	assert.Len(t, env.store.blobs, 1)
	var count int64
	assert.NoError(t, env.db.Model(&models.Asset{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUploadImage_NonNumericDimensions(t *testing.T) {
	env := setupEnv(t)

	w, body := env.do(t, http.MethodPost, "/image", gin.H{
		"assetname": "cat",
		"data":      pngPayload(t, 40, 30),
		"width":     "abc",
		"height":    100,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Height and width must be valid integers.", body["message"])
	assert.Equal(t, float64(-1), body["assetid"])

	// No object-store write and no metadata row.
	assert.Empty(t, env.store.blobs)
	var count int64
	assert.NoError(t, env.db.Model(&models.Asset{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGetImage_UnknownAssetIs404(t *testing.T) {
	env := setupEnv(t)

	w, body := env.do(t, http.MethodGet, "/image/999999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Asset not found.", body["message"])
}

func TestGetImage_InvalidIdentifierIs400(t *testing.T) {
	env := setupEnv(t)

	w, body := env.do(t, http.MethodGet, "/image/notanumber", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid asset ID.", body["message"])
}

func TestGetImage_ReturnsProjectionWithLink(t *testing.T) {
	env := setupEnv(t)

	_, uploaded := env.do(t, http.MethodPost, "/image", gin.H{
		"assetname": "cat",
		"data":      pngPayload(t, 40, 30),
		"width":     100,
		"height":    100,
	})
	assetID := int(uploaded["assetid"].(float64))

	w, body := env.do(t, http.MethodGet, fmt.Sprintf("/image/%d", assetID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cat", body["assetname"])
	assert.Equal(t, true, body["is_resized"])
	assert.Contains(t, body["s3_link"], body["bucketkey"])
}

func TestListAssets_Idempotent(t *testing.T) {
	env := setupEnv(t)

	env.do(t, http.MethodPost, "/image", gin.H{
		"assetname": "one",
		"data":      pngPayload(t, 40, 30),
		"width":     10,
		"height":    10,
	})
	env.do(t, http.MethodPost, "/image", gin.H{
		"assetname": "two",
		"data":      pngPayload(t, 40, 30),
		"width":     10,
		"height":    10,
	})

	w1, first := env.do(t, http.MethodGet, "/assets", nil)
	w2, second := env.do(t, http.MethodGet, "/assets", nil)
	assert.Equal(t, http.StatusOK, w1.Code)
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Equal(t, "success", first["message"])
	assert.Equal(t, first["data"], second["data"])
	assert.Len(t, first["data"].([]interface{}), 2)
}

func TestImageToPDF_EmptyListIs400(t *testing.T) {
	env := setupEnv(t)

	w, body := env.do(t, http.MethodPost, "/image-to-pdf", gin.H{
		"images":  []string{},
		"pdfName": "x",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, float64(-1), body["pdfId"])
	assert.Empty(t, env.store.blobs)
}

func TestImageToPDF_EndToEnd(t *testing.T) {
	env := setupEnv(t)

	// Two source images already in the store.
	png1, _ := base64.StdEncoding.DecodeString(pngPayload(t, 40, 30))
	png2, _ := base64.StdEncoding.DecodeString(pngPayload(t, 30, 40))
	env.store.blobs["image_assets/a.png"] = png1
	env.store.blobs["image_assets/b.png"] = png2

	w, body := env.do(t, http.MethodPost, "/image-to-pdf", gin.H{
		"images":  []string{"image_assets/a.png", "image_assets/b.png"},
		"pdfName": "album",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "PDF created successfully.", body["message"])
	assert.Greater(t, body["pdfId"].(float64), float64(0))
	assert.Contains(t, body["pdfUrl"], "pdf_assets/")

	var doc models.Document
	assert.NoError(t, env.db.First(&doc).Error)
	assert.Equal(t, 2, doc.PageCount)
	assert.Equal(t, "album", doc.PDFName)
}

func TestImageToPDF_MissingSourceAborts(t *testing.T) {
	env := setupEnv(t)

	w, body := env.do(t, http.MethodPost, "/image-to-pdf", gin.H{
		"images":  []string{"image_assets/missing.png"},
		"pdfName": "x",
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, float64(-1), body["pdfId"])

	var count int64
	assert.NoError(t, env.db.Model(&models.Document{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestExtractText_MissingAssetIDIs400(t *testing.T) {
	env := setupEnv(t)

	w, body := env.do(t, http.MethodPost, "/extract-text-from-image", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing 'assetid' in request body.", body["message"])
}

func TestExtractText_UnknownAssetIs404(t *testing.T) {
	env := setupEnv(t)

	w, _ := env.do(t, http.MethodPost, "/extract-text-from-image", gin.H{"assetid": 12345})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExtractText_EndToEnd(t *testing.T) {
	env := setupEnv(t)

	_, uploaded := env.do(t, http.MethodPost, "/image", gin.H{
		"assetname": "receipt",
		"data":      pngPayload(t, 40, 30),
		"width":     20,
		"height":    20,
	})
	assetID := int(uploaded["assetid"].(float64))

	w, body := env.do(t, http.MethodPost, "/extract-text-from-image", gin.H{"assetid": assetID})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, body["s3Key"], "textract_jobs/")
	assert.Contains(t, body["s3_link"], body["s3Key"])

	var record models.TextExtraction
	assert.NoError(t, env.db.First(&record, "assetid = ?", assetID).Error)
	assert.Equal(t, body["s3Key"], record.S3Key)

	// The text blob itself landed in the store.
	text, err := env.store.GetWithContext(context.Background(), record.S3Key)
	assert.NoError(t, err)
	assert.Equal(t, "scanned text", string(text))
}
