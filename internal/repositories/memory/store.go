// Package memory keeps every record in process memory. Nothing survives a restart;
// it backs tests and the zero-configuration development server.
package memory

import (
	"context"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"atelier_backend/internal/models"
	"atelier_backend/internal/repositories"
)

type Option func(*Store)

// WithClock overrides the time source used for createdAt stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// Store implements repositories.Repository. Ids start at 1 per record kind.
type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	users        map[uint]models.User
	portfolio    map[uint]models.PortfolioItem
	orders       map[uint]models.Order
	freelancers  map[uint]models.Freelancer
	messages     map[uint]models.ContactMessage
	subscribers  map[uint]models.NewsletterSubscriber
	emailToSubID map[string]uint

	userSeq       uint
	portfolioSeq  uint
	orderSeq      uint
	freelancerSeq uint
	messageSeq    uint
	subscriberSeq uint
}

var _ repositories.Repository = (*Store)(nil)

func New(opts ...Option) *Store {
	s := &Store{
		now:          time.Now,
		users:        make(map[uint]models.User),
		portfolio:    make(map[uint]models.PortfolioItem),
		orders:       make(map[uint]models.Order),
		freelancers:  make(map[uint]models.Freelancer),
		messages:     make(map[uint]models.ContactMessage),
		subscribers:  make(map[uint]models.NewsletterSubscriber),
		emailToSubID: make(map[string]uint),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *Store) Close() error {
	return nil
}

func (s *Store) stamp() string {
	return models.FormatTimestamp(s.now())
}

// sortedValues returns the map values ordered by id, i.e. by insertion.
func sortedValues[T any](m map[uint]T) []T {
	out := make([]T, 0, len(m))
	for _, id := range slices.Sorted(maps.Keys(m)) {
		out = append(out, m[id])
	}
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// ============================================================================
// Users
// ============================================================================

func (s *Store) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == user.Username {
			return nil, repositories.ErrUsernameTaken
		}
	}

	s.userSeq++
	created := *user
	created.ID = s.userSeq
	s.users[created.ID] = created
	return &created, nil
}

func (s *Store) FindUserByID(ctx context.Context, id uint) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return &u, nil
}

func (s *Store) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

// ============================================================================
// Portfolio
// ============================================================================

func clonePortfolioItem(item models.PortfolioItem) models.PortfolioItem {
	item.Description = clonePtr(item.Description)
	return item
}

func (s *Store) CreatePortfolioItem(ctx context.Context, item *models.PortfolioItem) (*models.PortfolioItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.portfolioSeq++
	created := clonePortfolioItem(*item)
	created.ID = s.portfolioSeq
	s.portfolio[created.ID] = created

	out := clonePortfolioItem(created)
	return &out, nil
}

func (s *Store) FindPortfolioItemByID(ctx context.Context, id uint) (*models.PortfolioItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.portfolio[id]
	if !ok {
		return nil, repositories.ErrPortfolioItemNotFound
	}
	out := clonePortfolioItem(item)
	return &out, nil
}

func (s *Store) listPortfolio(keep func(models.PortfolioItem) bool) []models.PortfolioItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.PortfolioItem, 0, len(s.portfolio))
	for _, item := range sortedValues(s.portfolio) {
		if keep(item) {
			items = append(items, clonePortfolioItem(item))
		}
	}
	return items
}

func (s *Store) ListPortfolioItems(ctx context.Context) ([]models.PortfolioItem, error) {
	return s.listPortfolio(func(models.PortfolioItem) bool { return true }), nil
}

func (s *Store) ListPortfolioItemsByCategory(ctx context.Context, category string) ([]models.PortfolioItem, error) {
	return s.listPortfolio(func(item models.PortfolioItem) bool {
		return strings.EqualFold(item.Category, category)
	}), nil
}

func (s *Store) ListFeaturedPortfolioItems(ctx context.Context) ([]models.PortfolioItem, error) {
	return s.listPortfolio(func(item models.PortfolioItem) bool { return item.Featured }), nil
}

func (s *Store) UpdatePortfolioItem(ctx context.Context, id uint, patch models.PortfolioItemPatch) (*models.PortfolioItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.portfolio[id]
	if !ok {
		return nil, repositories.ErrPortfolioItemNotFound
	}
	patch.Apply(&item)
	s.portfolio[id] = item

	out := clonePortfolioItem(item)
	return &out, nil
}

func (s *Store) DeletePortfolioItem(ctx context.Context, id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.portfolio[id]; !ok {
		return false, nil
	}
	delete(s.portfolio, id)
	return true, nil
}

func (s *Store) CountPortfolioItems(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.portfolio)), nil
}

// ============================================================================
// Orders
// ============================================================================

func cloneOrder(o models.Order) models.Order {
	o.Phone = clonePtr(o.Phone)
	o.SpecialRequirements = clonePtr(o.SpecialRequirements)
	o.ReferralSource = clonePtr(o.ReferralSource)
	return o
}

func (s *Store) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orderSeq++
	created := cloneOrder(*order)
	created.ID = s.orderSeq
	created.CreatedAt = s.stamp()
	created.Status = models.OrderStatusPending
	s.orders[created.ID] = created

	out := cloneOrder(created)
	return &out, nil
}

func (s *Store) FindOrderByID(ctx context.Context, id uint) (*models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, repositories.ErrOrderNotFound
	}
	out := cloneOrder(o)
	return &out, nil
}

func (s *Store) ListOrders(ctx context.Context) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := sortedValues(s.orders)
	for i := range orders {
		orders[i] = cloneOrder(orders[i])
	}
	return orders, nil
}

func (s *Store) UpdateOrderStatus(ctx context.Context, id uint, status models.OrderStatus) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, repositories.ErrOrderNotFound
	}
	o.Status = status
	s.orders[id] = o

	out := cloneOrder(o)
	return &out, nil
}

// ============================================================================
// Freelancers
// ============================================================================

func (s *Store) CreateFreelancer(ctx context.Context, freelancer *models.Freelancer) (*models.Freelancer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.freelancerSeq++
	created := *freelancer
	created.PortfolioURL = clonePtr(freelancer.PortfolioURL)
	created.ID = s.freelancerSeq
	created.CreatedAt = s.stamp()
	created.Status = models.FreelancerStatusPending
	s.freelancers[created.ID] = created

	out := created
	out.PortfolioURL = clonePtr(created.PortfolioURL)
	return &out, nil
}

func (s *Store) FindFreelancerByID(ctx context.Context, id uint) (*models.Freelancer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.freelancers[id]
	if !ok {
		return nil, repositories.ErrFreelancerNotFound
	}
	f.PortfolioURL = clonePtr(f.PortfolioURL)
	return &f, nil
}

func (s *Store) ListFreelancers(ctx context.Context) ([]models.Freelancer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	freelancers := sortedValues(s.freelancers)
	for i := range freelancers {
		freelancers[i].PortfolioURL = clonePtr(freelancers[i].PortfolioURL)
	}
	return freelancers, nil
}

func (s *Store) UpdateFreelancerStatus(ctx context.Context, id uint, status models.FreelancerStatus) (*models.Freelancer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.freelancers[id]
	if !ok {
		return nil, repositories.ErrFreelancerNotFound
	}
	f.Status = status
	s.freelancers[id] = f

	f.PortfolioURL = clonePtr(f.PortfolioURL)
	return &f, nil
}

// ============================================================================
// Contact messages
// ============================================================================

func (s *Store) CreateContactMessage(ctx context.Context, msg *models.ContactMessage) (*models.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messageSeq++
	created := *msg
	created.ID = s.messageSeq
	created.CreatedAt = s.stamp()
	created.Read = false
	s.messages[created.ID] = created
	return &created, nil
}

func (s *Store) FindContactMessageByID(ctx context.Context, id uint) (*models.ContactMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.messages[id]
	if !ok {
		return nil, repositories.ErrContactMessageNotFound
	}
	return &m, nil
}

func (s *Store) ListContactMessages(ctx context.Context) ([]models.ContactMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.messages), nil
}

func (s *Store) MarkContactMessageRead(ctx context.Context, id uint) (*models.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.messages[id]
	if !ok {
		return nil, repositories.ErrContactMessageNotFound
	}
	m.Read = true
	s.messages[id] = m
	return &m, nil
}

// ============================================================================
// Newsletter
// ============================================================================

// CreateNewsletterSubscriber checks and inserts under one write lock, so two
// concurrent calls with the same address cannot both create a record.
func (s *Store) CreateNewsletterSubscriber(ctx context.Context, email string) (*models.NewsletterSubscriber, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.emailToSubID[email]; ok {
		existing := s.subscribers[id]
		return &existing, false, nil
	}

	s.subscriberSeq++
	sub := models.NewsletterSubscriber{
		ID:        s.subscriberSeq,
		Email:     email,
		CreatedAt: s.stamp(),
	}
	s.subscribers[sub.ID] = sub
	s.emailToSubID[email] = sub.ID
	return &sub, true, nil
}

func (s *Store) IsEmailSubscribed(ctx context.Context, email string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.emailToSubID[email]
	return ok, nil
}

func (s *Store) ListNewsletterSubscribers(ctx context.Context) ([]models.NewsletterSubscriber, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.subscribers), nil
}
