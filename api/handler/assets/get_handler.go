package assets

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/photoapp/photoapp/api/common"
	"github.com/photoapp/photoapp/internal/assets"
)

// GetAsset returns one asset projection plus its derived public URL.
func (h *Handler) GetAsset(c *gin.Context) {
	assetID, err := strconv.ParseUint(c.Param("assetid"), 10, 32)
	if err != nil {
		common.Message(c, http.StatusBadRequest, "Invalid asset ID.")
		return
	}

	asset, link, err := h.queries.GetAsset(c.Request.Context(), uint(assetID))
	if err != nil {
		if errors.Is(err, assets.ErrAssetNotFound) {
			common.Message(c, http.StatusNotFound, "Asset not found.")
			return
		}
		log.Printf("Error in GET /image/%d: %v", assetID, err)
		common.Message(c, http.StatusInternalServerError, "Internal server error.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"assetid":         asset.AssetID,
		"assetname":       asset.AssetName,
		"bucketkey":       asset.BucketKey,
		"original_width":  asset.OriginalWidth,
		"original_height": asset.OriginalHeight,
		"resized_width":   asset.ResizedWidth,
		"resized_height":  asset.ResizedHeight,
		"is_resized":      asset.IsResized,
		"s3_link":         link,
	})
}
