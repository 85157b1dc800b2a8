package repositories

import (
	"context"

	"atelier_backend/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	FindUserByID(ctx context.Context, id uint) (*models.User, error)
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
}

type PortfolioRepository interface {
	CreatePortfolioItem(ctx context.Context, item *models.PortfolioItem) (*models.PortfolioItem, error)
	FindPortfolioItemByID(ctx context.Context, id uint) (*models.PortfolioItem, error)
	ListPortfolioItems(ctx context.Context) ([]models.PortfolioItem, error)
	// ListPortfolioItemsByCategory compares categories case-insensitively.
	ListPortfolioItemsByCategory(ctx context.Context, category string) ([]models.PortfolioItem, error)
	ListFeaturedPortfolioItems(ctx context.Context) ([]models.PortfolioItem, error)
	UpdatePortfolioItem(ctx context.Context, id uint, patch models.PortfolioItemPatch) (*models.PortfolioItem, error)
	// DeletePortfolioItem reports whether a record existed and was removed.
	DeletePortfolioItem(ctx context.Context, id uint) (bool, error)
	CountPortfolioItems(ctx context.Context) (int64, error)
}

type OrderRepository interface {
	// CreateOrder assigns id, createdAt and the pending status.
	CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	FindOrderByID(ctx context.Context, id uint) (*models.Order, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, id uint, status models.OrderStatus) (*models.Order, error)
}

type FreelancerRepository interface {
	CreateFreelancer(ctx context.Context, freelancer *models.Freelancer) (*models.Freelancer, error)
	FindFreelancerByID(ctx context.Context, id uint) (*models.Freelancer, error)
	ListFreelancers(ctx context.Context) ([]models.Freelancer, error)
	UpdateFreelancerStatus(ctx context.Context, id uint, status models.FreelancerStatus) (*models.Freelancer, error)
}

type ContactRepository interface {
	CreateContactMessage(ctx context.Context, msg *models.ContactMessage) (*models.ContactMessage, error)
	FindContactMessageByID(ctx context.Context, id uint) (*models.ContactMessage, error)
	ListContactMessages(ctx context.Context) ([]models.ContactMessage, error)
	MarkContactMessageRead(ctx context.Context, id uint) (*models.ContactMessage, error)
}

type NewsletterRepository interface {
	// CreateNewsletterSubscriber is idempotent per email: when the address is
	// already stored the existing record comes back with created == false.
	CreateNewsletterSubscriber(ctx context.Context, email string) (sub *models.NewsletterSubscriber, created bool, err error)
	IsEmailSubscribed(ctx context.Context, email string) (bool, error)
	ListNewsletterSubscribers(ctx context.Context) ([]models.NewsletterSubscriber, error)
}

// Repository is the storage abstraction the services depend on.
// Lists come back in insertion (id ascending) order.
type Repository interface {
	UserRepository
	PortfolioRepository
	OrderRepository
	FreelancerRepository
	ContactRepository
	NewsletterRepository

	Ping(ctx context.Context) error
	Close() error
}
