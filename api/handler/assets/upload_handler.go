package assets

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/photoapp/photoapp/internal/assets"
)

type uploadRequest struct {
	AssetName string      `json:"assetname"`
	Data      string      `json:"data"`
	Width     interface{} `json:"width"`
	Height    interface{} `json:"height"`
}

// UploadAsset decodes, resizes and stores one image, then records its
// metadata and returns the assigned identifier.
func (h *Handler) UploadAsset(c *gin.Context) {
	var req uploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body.",
			"assetid": -1,
		})
		return
	}

	result, err := h.uploads.Upload(c.Request.Context(), assets.UploadInput{
		AssetName: req.AssetName,
		Data:      req.Data,
		Width:     req.Width,
		Height:    req.Height,
	})
	if err != nil {
		status := uploadStatus(err)
		if status == http.StatusInternalServerError {
			log.Printf("Error in POST /image: %v", err)
		}
		c.JSON(status, gin.H{
			"message": uploadMessage(err),
			"assetid": -1,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":             "success",
		"assetid":             result.AssetID,
		"objectUrl":           result.ObjectURL,
		"originalImageWidth":  result.OriginalWidth,
		"originalImageHeight": result.OriginalHeight,
		"resizedImageWidth":   result.ResizedWidth,
		"resizedImageHeight":  result.ResizedHeight,
	})
}

func uploadStatus(err error) int {
	switch {
	case errors.Is(err, assets.ErrBadPayload),
		errors.Is(err, assets.ErrBadImage),
		errors.Is(err, assets.ErrInvalidDimensions):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func uploadMessage(err error) string {
	switch {
	case errors.Is(err, assets.ErrInvalidDimensions):
		return "Height and width must be valid integers."
	case errors.Is(err, assets.ErrUpload):
		return "Failed to upload image to S3"
	default:
		return err.Error()
	}
}
