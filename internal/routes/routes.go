package routes

import (
	"net/http"

	"atelier_backend/internal/handlers"
	"atelier_backend/internal/logger"
	"atelier_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the HTTP API under /api.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api")
	appHandlers.RegisterRoutes(api)

	ginRouter.NoRoute(func(c *gin.Context) {
		apperrors.HandleError(c, apperrors.New(apperrors.CodeNotFound, "request", "Route not found", http.StatusNotFound))
	})

	logger.Debug("HTTP routes registered", "routes", len(ginRouter.Routes()))
}
