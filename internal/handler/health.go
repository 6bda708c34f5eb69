package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler serves the root status and health endpoints.
type HealthHandler struct {
	AppName string
	Version string
}

func NewHealthHandler(appName, version string) *HealthHandler {
	return &HealthHandler{AppName: appName, Version: version}
}

// Root handles GET /.
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"message": h.AppName + " API",
		"version": h.Version,
	})
}

// Health handles GET /health, used by uptime monitoring.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "backend-api",
	})
}
