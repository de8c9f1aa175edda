package assets

import (
	"github.com/photoapp/photoapp/internal/assets"
)

// Handler serves the asset endpoints.
type Handler struct {
	uploads *assets.UploadService
	queries *assets.QueryService
}

func NewHandler(uploads *assets.UploadService, queries *assets.QueryService) *Handler {
	return &Handler{
		uploads: uploads,
		queries: queries,
	}
}
