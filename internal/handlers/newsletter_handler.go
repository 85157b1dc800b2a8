package handlers

import (
	"net/http"

	"atelier_backend/internal/dto"
	"atelier_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type NewsletterHandler struct {
	*BaseHandler
	newsletterService services.NewsletterService
}

func NewNewsletterHandler(base *BaseHandler, newsletterService services.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{
		BaseHandler:       base,
		newsletterService: newsletterService,
	}
}

func (h *NewsletterHandler) RegisterRoutes(r *gin.RouterGroup) {
	newsletter := r.Group("/newsletter")
	{
		newsletter.POST("", h.Subscribe)

		// Dashboard
		newsletter.GET("", h.ListSubscribers)
	}
}

// Subscribe answers 201 for a new address and 200 with the existing id otherwise.
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req dto.SubscribeRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	sub, created, err := h.newsletterService.Subscribe(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if !created {
		c.JSON(http.StatusOK, dto.SubscribeResponse{
			Success:      true,
			Message:      dto.AlreadySubscribedMessage,
			SubscriberID: sub.ID,
		})
		return
	}
	c.JSON(http.StatusCreated, dto.SubscribeResponse{Success: true, SubscriberID: sub.ID})
}

func (h *NewsletterHandler) ListSubscribers(c *gin.Context) {
	list, err := h.newsletterService.List(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
