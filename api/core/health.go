package core

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/photoapp/photoapp/database"
)

// HealthHandler serves the default page with process status.
type HealthHandler struct {
	dbProvider database.Provider
	startTime  time.Time
}

func NewHealthHandler(dbProvider database.Provider, startTime time.Time) *HealthHandler {
	return &HealthHandler{
		dbProvider: dbProvider,
		startTime:  startTime,
	}
}

// Handle reports service status, uptime and database connectivity.
func (h *HealthHandler) Handle(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "running",
		"uptime-in-secs": int(time.Since(h.startTime).Seconds()),
		"dbConnection":   h.databaseState(),
	})
}

func (h *HealthHandler) databaseState() string {
	if h.dbProvider == nil {
		return "not initialized"
	}
	if err := h.dbProvider.Ping(); err != nil {
		return "disconnected"
	}
	return "connected"
}
