package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/middleware"
)

// Pinger reports whether the backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthController serves the liveness probe
type HealthController struct {
	store Pinger
}

// NewHealthController creates a HealthController. A nil store is always healthy.
func NewHealthController(store Pinger) *HealthController {
	return &HealthController{store: store}
}

// Health reports whether the service can reach its store
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 500 {object} dto.MessageResponse "Internal server error"
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	if c.store != nil {
		pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()
		if err := c.store.Ping(pingCtx); err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
	}
	ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}
