package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/cage-reservations/internal/infrastructure/adapter/api/dto"
)

// HealthChecker reports whether a dependency is reachable
type HealthChecker interface {
	Check(ctx context.Context) error
}

// HealthHandler serves GET /healthz
type HealthHandler struct {
	database  HealthChecker
	poolStats func() map[string]any
}

// NewHealthHandler creates a health handler. poolStats may be nil.
func NewHealthHandler(database HealthChecker, poolStats func() map[string]any) *HealthHandler {
	return &HealthHandler{
		database:  database,
		poolStats: poolStats,
	}
}

// Health reports database reachability
func (h *HealthHandler) Health(c *gin.Context) {
	resp := dto.HealthResponse{Status: "ok", Database: "up"}
	status := http.StatusOK

	if err := h.database.Check(c.Request.Context()); err != nil {
		resp.Status = "degraded"
		resp.Database = "down"
		status = http.StatusServiceUnavailable
	}
	if h.poolStats != nil {
		resp.Pool = h.poolStats()
	}

	c.JSON(status, resp)
}
