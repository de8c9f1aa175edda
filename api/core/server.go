package core

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/photoapp/photoapp/config"
	"github.com/photoapp/photoapp/internal/app"
)

// setupRouter builds the gin engine with global middleware and routes.
func setupRouter(cfg *config.Config, container *app.Container) *gin.Engine {
	if !config.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	if config.IsDevelopment() {
		router.Use(gin.Logger())
	}
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
		MaxAge:          12 * time.Hour,
	}))

	RegisterRoutes(router, &RouterDependencies{
		DBProvider:      container.DBProvider(),
		StartTime:       container.StartTime(),
		UploadService:   container.UploadService,
		QueryService:    container.QueryService,
		DocumentService: container.DocumentService,
		TextractService: container.TextractService,
	})

	return router
}

// StartServer builds the HTTP server around the configured engine. The caller
// owns ListenAndServe and shutdown.
func StartServer(cfg *config.Config, container *app.Container) *http.Server {
	router := setupRouter(cfg, container)

	return &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  cfg.ServerIdleTimeout,
	}
}
