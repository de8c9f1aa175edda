package textract

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/photoapp/photoapp/api/common"
	"github.com/photoapp/photoapp/internal/textract"
)

// Handler serves the OCR extraction endpoint.
type Handler struct {
	service *textract.Service
}

func NewHandler(service *textract.Service) *Handler {
	return &Handler{service: service}
}

type extractRequest struct {
	AssetID *uint `json:"assetid"`
}

// ExtractText runs text recognition over a stored asset and returns the key
// and URL of the resulting text blob.
func (h *Handler) ExtractText(c *gin.Context) {
	var req extractRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.AssetID == nil {
		common.Message(c, http.StatusBadRequest, "Missing 'assetid' in request body.")
		return
	}

	result, err := h.service.Extract(c.Request.Context(), *req.AssetID)
	if err != nil {
		if errors.Is(err, textract.ErrAssetNotFound) {
			common.Message(c, http.StatusNotFound, fmt.Sprintf("No image found with assetid: %d", *req.AssetID))
			return
		}
		log.Printf("Error in POST /extract-text-from-image: %v", err)
		common.Message(c, http.StatusInternalServerError, "Failed to process Image from S3.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Image text extracted and uploaded successfully.",
		"s3Key":   result.TextKey,
		"s3_link": result.TextURL,
	})
}
