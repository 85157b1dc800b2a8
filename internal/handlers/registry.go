package handlers

import (
	"atelier_backend/internal/services"
	"atelier_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

// AppHandlers holds every HTTP handler of the application.
type AppHandlers struct {
	HealthHandler     *HealthHandler
	PortfolioHandler  *PortfolioHandler
	OrderHandler      *OrderHandler
	FreelancerHandler *FreelancerHandler
	ContactHandler    *ContactHandler
	NewsletterHandler *NewsletterHandler
}

func NewAppHandlers(sc *services.ServiceContainer, storage Pinger, backend string) *AppHandlers {
	base := NewBaseHandler(validator.New())

	return &AppHandlers{
		HealthHandler:     NewHealthHandler(storage, backend),
		PortfolioHandler:  NewPortfolioHandler(base, sc.PortfolioService),
		OrderHandler:      NewOrderHandler(base, sc.OrderService),
		FreelancerHandler: NewFreelancerHandler(base, sc.FreelancerService),
		ContactHandler:    NewContactHandler(base, sc.ContactService),
		NewsletterHandler: NewNewsletterHandler(base, sc.NewsletterService),
	}
}

func (h *AppHandlers) RegisterRoutes(api *gin.RouterGroup) {
	h.HealthHandler.RegisterRoutes(api)
	h.PortfolioHandler.RegisterRoutes(api)
	h.OrderHandler.RegisterRoutes(api)
	h.FreelancerHandler.RegisterRoutes(api)
	h.ContactHandler.RegisterRoutes(api)
	h.NewsletterHandler.RegisterRoutes(api)
}
