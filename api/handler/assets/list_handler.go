package assets

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/photoapp/photoapp/database/models"
)

// ListAssets returns every asset row verbatim.
func (h *Handler) ListAssets(c *gin.Context) {
	listed, err := h.queries.ListAssets(c.Request.Context())
	if err != nil {
		log.Printf("Error in GET /assets: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": err.Error(),
			"data":    []models.Asset{},
		})
		return
	}

	if listed == nil {
		listed = []models.Asset{}
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "success",
		"data":    listed,
	})
}
