package services

import (
	"atelier_backend/internal/email"
	"atelier_backend/internal/repositories"
)

// ServiceContainer holds every application service.
type ServiceContainer struct {
	UserService         UserService
	PortfolioService    PortfolioService
	OrderService        OrderService
	FreelancerService   FreelancerService
	ContactService      ContactService
	NewsletterService   NewsletterService
	NotificationService NotificationService
}

// NewServiceContainer wires the services over one storage backend.
// A nil provider disables studio notifications.
func NewServiceContainer(repo repositories.Repository, provider email.Provider, renderer email.TemplateRenderer, inbox string) *ServiceContainer {
	if provider == nil {
		provider = email.NoopProvider{}
		inbox = ""
	}
	notifier := NewNotificationService(provider, renderer, inbox)

	return &ServiceContainer{
		UserService:         NewUserService(repo),
		PortfolioService:    NewPortfolioService(repo),
		OrderService:        NewOrderService(repo, notifier),
		FreelancerService:   NewFreelancerService(repo, notifier),
		ContactService:      NewContactService(repo, notifier),
		NewsletterService:   NewNewsletterService(repo),
		NotificationService: notifier,
	}
}
