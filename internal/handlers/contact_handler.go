package handlers

import (
	"net/http"

	"atelier_backend/internal/dto"
	"atelier_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	*BaseHandler
	contactService services.ContactService
}

func NewContactHandler(base *BaseHandler, contactService services.ContactService) *ContactHandler {
	return &ContactHandler{
		BaseHandler:    base,
		contactService: contactService,
	}
}

func (h *ContactHandler) RegisterRoutes(r *gin.RouterGroup) {
	contact := r.Group("/contact")
	{
		contact.POST("", h.CreateContactMessage)

		// Dashboard
		contact.GET("", h.ListContactMessages)
		contact.GET("/:id", h.GetContactMessage)
		contact.PATCH("/:id/read", h.MarkContactMessageRead)
	}
}

func (h *ContactHandler) CreateContactMessage(c *gin.Context) {
	var req dto.CreateContactMessageRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	msg, err := h.contactService.Create(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CreateContactMessageResponse{Success: true, MessageID: msg.ID})
}

func (h *ContactHandler) ListContactMessages(c *gin.Context) {
	list, err := h.contactService.List(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *ContactHandler) GetContactMessage(c *gin.Context) {
	id, ok := h.paramID(c)
	if !ok {
		return
	}

	msg, err := h.contactService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, msg)
}

func (h *ContactHandler) MarkContactMessageRead(c *gin.Context) {
	id, ok := h.paramID(c)
	if !ok {
		return
	}

	msg, err := h.contactService.MarkRead(c.Request.Context(), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, msg)
}
