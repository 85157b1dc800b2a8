package handlers

import (
	"context"
	"net/http"
	"time"

	"atelier_backend/internal/dto"
	"atelier_backend/internal/logger"
	"atelier_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

const healthPingTimeout = 2 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	storage Pinger
	backend string
}

// NewHealthHandler reports the storage backend by name, e.g. "memory" or "postgres".
func NewHealthHandler(storage Pinger, backend string) *HealthHandler {
	return &HealthHandler{storage: storage, backend: backend}
}

func (h *HealthHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/health", h.Health)
}

func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
	defer cancel()

	if err := h.storage.Ping(ctx); err != nil {
		logger.CtxWithError(ctx, "Storage ping failed", err, "backend", h.backend)
		apperrors.HandleError(c, apperrors.ErrStorageUnavailable)
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Storage: h.backend})
}
