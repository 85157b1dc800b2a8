// Package gormstore persists records in a relational database through gorm.
// PostgreSQL, MySQL and SQLite are supported; see internal/database for dialect selection.
package gormstore

import (
	"context"
	"errors"
	"time"

	"atelier_backend/internal/models"
	"atelier_backend/internal/repositories"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Option func(*Store)

// WithClock overrides the time source used for createdAt stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// Store implements repositories.Repository on top of a *gorm.DB.
type Store struct {
	db  *gorm.DB
	now func() time.Time
}

var _ repositories.Repository = (*Store)(nil)

func New(db *gorm.DB, opts ...Option) *Store {
	s := &Store{db: db, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) stamp() string {
	return models.FormatTimestamp(s.now())
}

// first loads one row by primary key, translating gorm's not-found into notFound.
func first[T any](db *gorm.DB, id uint, notFound error) (*T, error) {
	var out T
	err := db.First(&out, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound
		}
		return nil, err
	}
	return &out, nil
}

func list[T any](db *gorm.DB) ([]T, error) {
	out := make([]T, 0)
	if err := db.Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// ============================================================================
// Users
// ============================================================================

func (s *Store) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	created := *user
	created.ID = 0
	if err := s.db.WithContext(ctx).Create(&created).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, repositories.ErrUsernameTaken
		}
		return nil, err
	}
	return &created, nil
}

func (s *Store) FindUserByID(ctx context.Context, id uint) (*models.User, error) {
	return first[models.User](s.db.WithContext(ctx), id, repositories.ErrUserNotFound)
}

func (s *Store) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// ============================================================================
// Portfolio
// ============================================================================

func (s *Store) CreatePortfolioItem(ctx context.Context, item *models.PortfolioItem) (*models.PortfolioItem, error) {
	created := *item
	created.ID = 0
	if err := s.db.WithContext(ctx).Create(&created).Error; err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *Store) FindPortfolioItemByID(ctx context.Context, id uint) (*models.PortfolioItem, error) {
	return first[models.PortfolioItem](s.db.WithContext(ctx), id, repositories.ErrPortfolioItemNotFound)
}

func (s *Store) ListPortfolioItems(ctx context.Context) ([]models.PortfolioItem, error) {
	return list[models.PortfolioItem](s.db.WithContext(ctx))
}

func (s *Store) ListPortfolioItemsByCategory(ctx context.Context, category string) ([]models.PortfolioItem, error) {
	return list[models.PortfolioItem](s.db.WithContext(ctx).Where("LOWER(category) = LOWER(?)", category))
}

func (s *Store) ListFeaturedPortfolioItems(ctx context.Context) ([]models.PortfolioItem, error) {
	return list[models.PortfolioItem](s.db.WithContext(ctx).Where(map[string]interface{}{"featured": true}))
}

func (s *Store) UpdatePortfolioItem(ctx context.Context, id uint, patch models.PortfolioItemPatch) (*models.PortfolioItem, error) {
	var updated *models.PortfolioItem
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item, err := first[models.PortfolioItem](tx, id, repositories.ErrPortfolioItemNotFound)
		if err != nil {
			return err
		}
		if !patch.IsEmpty() {
			if err := tx.Model(&models.PortfolioItem{}).Where("id = ?", id).Updates(patch.Columns()).Error; err != nil {
				return err
			}
			patch.Apply(item)
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Store) DeletePortfolioItem(ctx context.Context, id uint) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&models.PortfolioItem{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *Store) CountPortfolioItems(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.PortfolioItem{}).Count(&n).Error
	return n, err
}

// ============================================================================
// Orders
// ============================================================================

func (s *Store) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	created := *order
	created.ID = 0
	created.CreatedAt = s.stamp()
	created.Status = models.OrderStatusPending
	if err := s.db.WithContext(ctx).Create(&created).Error; err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *Store) FindOrderByID(ctx context.Context, id uint) (*models.Order, error) {
	return first[models.Order](s.db.WithContext(ctx), id, repositories.ErrOrderNotFound)
}

func (s *Store) ListOrders(ctx context.Context) ([]models.Order, error) {
	return list[models.Order](s.db.WithContext(ctx))
}

func (s *Store) UpdateOrderStatus(ctx context.Context, id uint, status models.OrderStatus) (*models.Order, error) {
	var updated *models.Order
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		o, err := first[models.Order](tx, id, repositories.ErrOrderNotFound)
		if err != nil {
			return err
		}
		if err := tx.Model(&models.Order{}).Where("id = ?", id).Update("status", status).Error; err != nil {
			return err
		}
		o.Status = status
		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ============================================================================
// Freelancers
// ============================================================================

func (s *Store) CreateFreelancer(ctx context.Context, freelancer *models.Freelancer) (*models.Freelancer, error) {
	created := *freelancer
	created.ID = 0
	created.CreatedAt = s.stamp()
	created.Status = models.FreelancerStatusPending
	if err := s.db.WithContext(ctx).Create(&created).Error; err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *Store) FindFreelancerByID(ctx context.Context, id uint) (*models.Freelancer, error) {
	return first[models.Freelancer](s.db.WithContext(ctx), id, repositories.ErrFreelancerNotFound)
}

func (s *Store) ListFreelancers(ctx context.Context) ([]models.Freelancer, error) {
	return list[models.Freelancer](s.db.WithContext(ctx))
}

func (s *Store) UpdateFreelancerStatus(ctx context.Context, id uint, status models.FreelancerStatus) (*models.Freelancer, error) {
	var updated *models.Freelancer
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		f, err := first[models.Freelancer](tx, id, repositories.ErrFreelancerNotFound)
		if err != nil {
			return err
		}
		if err := tx.Model(&models.Freelancer{}).Where("id = ?", id).Update("status", status).Error; err != nil {
			return err
		}
		f.Status = status
		updated = f
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ============================================================================
// Contact messages
// ============================================================================

func (s *Store) CreateContactMessage(ctx context.Context, msg *models.ContactMessage) (*models.ContactMessage, error) {
	created := *msg
	created.ID = 0
	created.CreatedAt = s.stamp()
	created.Read = false
	if err := s.db.WithContext(ctx).Create(&created).Error; err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *Store) FindContactMessageByID(ctx context.Context, id uint) (*models.ContactMessage, error) {
	return first[models.ContactMessage](s.db.WithContext(ctx), id, repositories.ErrContactMessageNotFound)
}

func (s *Store) ListContactMessages(ctx context.Context) ([]models.ContactMessage, error) {
	return list[models.ContactMessage](s.db.WithContext(ctx))
}

func (s *Store) MarkContactMessageRead(ctx context.Context, id uint) (*models.ContactMessage, error) {
	var updated *models.ContactMessage
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := first[models.ContactMessage](tx, id, repositories.ErrContactMessageNotFound)
		if err != nil {
			return err
		}
		if err := tx.Model(&models.ContactMessage{}).Where("id = ?", id).Update("read", true).Error; err != nil {
			return err
		}
		m.Read = true
		updated = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ============================================================================
// Newsletter
// ============================================================================

// CreateNewsletterSubscriber relies on the unique index on email: the insert is
// skipped on conflict and the surviving row is read back.
func (s *Store) CreateNewsletterSubscriber(ctx context.Context, email string) (*models.NewsletterSubscriber, bool, error) {
	db := s.db.WithContext(ctx)

	sub := models.NewsletterSubscriber{Email: email, CreatedAt: s.stamp()}
	res := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(&sub)
	if res.Error != nil {
		return nil, false, res.Error
	}
	if res.RowsAffected == 1 && sub.ID != 0 {
		return &sub, true, nil
	}

	var existing models.NewsletterSubscriber
	if err := db.Where("email = ?", email).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, repositories.ErrSubscriberNotFound
		}
		return nil, false, err
	}
	return &existing, false, nil
}

func (s *Store) IsEmailSubscribed(ctx context.Context, email string) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.NewsletterSubscriber{}).Where("email = ?", email).Count(&n).Error
	return n > 0, err
}

func (s *Store) ListNewsletterSubscribers(ctx context.Context) ([]models.NewsletterSubscriber, error) {
	return list[models.NewsletterSubscriber](s.db.WithContext(ctx))
}
