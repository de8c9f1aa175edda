package core

import (
	"time"

	"github.com/gin-gonic/gin"

	handlerAssets "github.com/photoapp/photoapp/api/handler/assets"
	handlerDocuments "github.com/photoapp/photoapp/api/handler/documents"
	handlerTextract "github.com/photoapp/photoapp/api/handler/textract"
	"github.com/photoapp/photoapp/database"
	"github.com/photoapp/photoapp/internal/assets"
	"github.com/photoapp/photoapp/internal/documents"
	"github.com/photoapp/photoapp/internal/textract"
)

// RouterDependencies carries everything route registration needs.
type RouterDependencies struct {
	DBProvider      database.Provider
	StartTime       time.Time
	UploadService   *assets.UploadService
	QueryService    *assets.QueryService
	DocumentService *documents.Service
	TextractService *textract.Service
}

// RegisterRoutes registers every endpoint of the service.
func RegisterRoutes(router *gin.Engine, deps *RouterDependencies) {
	healthHandler := NewHealthHandler(deps.DBProvider, deps.StartTime)
	assetHandler := handlerAssets.NewHandler(deps.UploadService, deps.QueryService)
	documentHandler := handlerDocuments.NewHandler(deps.DocumentService)
	textractHandler := handlerTextract.NewHandler(deps.TextractService)

	router.GET("/", healthHandler.Handle)
	router.GET("/assets", assetHandler.ListAssets)
	router.GET("/image/:assetid", assetHandler.GetAsset)
	router.POST("/image", assetHandler.UploadAsset)
	router.POST("/image-to-pdf", documentHandler.ImageToPDF)
	router.POST("/extract-text-from-image", textractHandler.ExtractText)
}
