package handlers

import (
	"net/http"

	"atelier_backend/internal/dto"
	"atelier_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type PortfolioHandler struct {
	*BaseHandler
	portfolioService services.PortfolioService
}

func NewPortfolioHandler(base *BaseHandler, portfolioService services.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		BaseHandler:      base,
		portfolioService: portfolioService,
	}
}

func (h *PortfolioHandler) RegisterRoutes(r *gin.RouterGroup) {
	portfolio := r.Group("/portfolio")
	{
		portfolio.GET("", h.ListPortfolio)
		portfolio.GET("/featured", h.ListFeaturedPortfolio)
		portfolio.GET("/category/:category", h.ListPortfolioByCategory)
		portfolio.GET("/:id", h.GetPortfolioItem)

		// Dashboard
		portfolio.POST("", h.CreatePortfolioItem)
		portfolio.PUT("/:id", h.UpdatePortfolioItem)
		portfolio.PATCH("/:id", h.UpdatePortfolioItem)
		portfolio.DELETE("/:id", h.DeletePortfolioItem)
	}
}

func (h *PortfolioHandler) ListPortfolio(c *gin.Context) {
	items, err := h.portfolioService.List(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *PortfolioHandler) ListFeaturedPortfolio(c *gin.Context) {
	items, err := h.portfolioService.ListFeatured(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *PortfolioHandler) ListPortfolioByCategory(c *gin.Context) {
	items, err := h.portfolioService.ListByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *PortfolioHandler) GetPortfolioItem(c *gin.Context) {
	id, ok := h.paramID(c)
	if !ok {
		return
	}

	item, err := h.portfolioService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *PortfolioHandler) CreatePortfolioItem(c *gin.Context) {
	var req dto.CreatePortfolioItemRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	item, err := h.portfolioService.Create(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *PortfolioHandler) UpdatePortfolioItem(c *gin.Context) {
	id, ok := h.paramID(c)
	if !ok {
		return
	}

	var req dto.UpdatePortfolioItemRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	item, err := h.portfolioService.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *PortfolioHandler) DeletePortfolioItem(c *gin.Context) {
	id, ok := h.paramID(c)
	if !ok {
		return
	}

	if err := h.portfolioService.Delete(c.Request.Context(), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
