package handlers

import (
	"net/http"

	"atelier_backend/internal/dto"
	"atelier_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type FreelancerHandler struct {
	*BaseHandler
	freelancerService services.FreelancerService
}

func NewFreelancerHandler(base *BaseHandler, freelancerService services.FreelancerService) *FreelancerHandler {
	return &FreelancerHandler{
		BaseHandler:       base,
		freelancerService: freelancerService,
	}
}

func (h *FreelancerHandler) RegisterRoutes(r *gin.RouterGroup) {
	freelancers := r.Group("/freelancers")
	{
		freelancers.POST("", h.CreateFreelancer)

		// Dashboard
		freelancers.GET("", h.ListFreelancers)
		freelancers.GET("/:id", h.GetFreelancer)
		freelancers.PATCH("/:id", h.UpdateFreelancerStatus)
	}
}

func (h *FreelancerHandler) CreateFreelancer(c *gin.Context) {
	var req dto.CreateFreelancerRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	f, err := h.freelancerService.Create(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CreateFreelancerResponse{Success: true, FreelancerID: f.ID})
}

func (h *FreelancerHandler) ListFreelancers(c *gin.Context) {
	list, err := h.freelancerService.List(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *FreelancerHandler) GetFreelancer(c *gin.Context) {
	id, ok := h.paramID(c)
	if !ok {
		return
	}

	f, err := h.freelancerService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

func (h *FreelancerHandler) UpdateFreelancerStatus(c *gin.Context) {
	id, ok := h.paramID(c)
	if !ok {
		return
	}

	var req dto.UpdateFreelancerStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	f, err := h.freelancerService.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}
