package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/QNhat1998/sales-api/pkg/database"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	db        *database.PostgresDB
	startedAt time.Time
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db *database.PostgresDB) *HealthHandler {
	return &HealthHandler{db: db, startedAt: time.Now()}
}

// Liveness reports whether the process is up
// GET /health/live
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"uptime": time.Since(h.startedAt).String(),
	})
}

// Readiness reports whether the service can reach its database
// GET /health/ready
func (h *HealthHandler) Readiness(c *gin.Context) {
	if err := h.db.HealthCheck(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
			"error":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
