package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthChecker reports whether a dependency is reachable.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// HealthHandler reports process and database health.
type HealthHandler struct {
	service string
	db      HealthChecker
	now     func() time.Time
}

func NewHealthHandler(service string, db HealthChecker) *HealthHandler {
	return &HealthHandler{service: service, db: db, now: time.Now}
}

// Check returns 503 when the database ping fails.
func (h *HealthHandler) Check(c *gin.Context) {
	timestamp := h.now().UTC().Format(time.RFC3339)

	if err := h.db.Health(c.Request.Context()); err != nil {
		log.Printf("Health check failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":    "unhealthy",
			"service":   h.service,
			"database":  "disconnected",
			"timestamp": timestamp,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"service":   h.service,
		"database":  "connected",
		"timestamp": timestamp,
	})
}
