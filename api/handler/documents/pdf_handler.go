package documents

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/photoapp/photoapp/internal/documents"
)

// Handler serves the PDF assembly endpoint.
type Handler struct {
	service *documents.Service
}

func NewHandler(service *documents.Service) *Handler {
	return &Handler{service: service}
}

type assembleRequest struct {
	Images  []string `json:"images"`
	PDFName string   `json:"pdfName"`
}

// ImageToPDF assembles the listed stored images into a single PDF, one page
// per image, and returns the new document's identifier and URL.
func (h *Handler) ImageToPDF(c *gin.Context) {
	var req assembleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body.",
			"pdfId":   -1,
		})
		return
	}

	result, err := h.service.Assemble(c.Request.Context(), req.Images, req.PDFName)
	if err != nil {
		if errors.Is(err, documents.ErrNoImages) {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "At least one image is required to create a PDF.",
				"pdfId":   -1,
			})
			return
		}
		log.Printf("Error in POST /image-to-pdf: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": assembleMessage(err),
			"pdfId":   -1,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "PDF created successfully.",
		"pdfId":   result.PDFID,
		"pdfUrl":  result.PDFURL,
	})
}

func assembleMessage(err error) string {
	if errors.Is(err, documents.ErrPersist) {
		return "Failed to save PDF metadata to database."
	}
	return err.Error()
}
