// Package repotest holds the behaviour every repositories.Repository must share.
// Each backend's tests call Run with a factory returning a fresh, empty store.
package repotest

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"atelier_backend/internal/models"
	"atelier_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

// Factory returns an empty repository. Cleanup is the factory's job (t.Cleanup).
type Factory func(t *testing.T) repositories.Repository

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool     { return &b }

// Run executes the full contract suite against repositories built by newRepo.
func Run(t *testing.T, newRepo Factory) {
	t.Run("Users", func(t *testing.T) { testUsers(t, newRepo(t)) })
	t.Run("Portfolio", func(t *testing.T) { testPortfolio(t, newRepo(t)) })
	t.Run("Orders", func(t *testing.T) { testOrders(t, newRepo(t)) })
	t.Run("Freelancers", func(t *testing.T) { testFreelancers(t, newRepo(t)) })
	t.Run("ContactMessages", func(t *testing.T) { testContactMessages(t, newRepo(t)) })
	t.Run("Newsletter", func(t *testing.T) { testNewsletter(t, newRepo(t)) })
	t.Run("NewsletterConcurrent", func(t *testing.T) { testNewsletterConcurrent(t, newRepo(t)) })
	t.Run("Ping", func(t *testing.T) {
		assert.NoError(t, newRepo(t).Ping(context.Background()))
	})
}

func testUsers(t *testing.T, repo repositories.Repository) {
	ctx := context.Background()

	u, err := repo.CreateUser(ctx, &models.User{Username: "admin", PasswordHash: "hash"})
	require.NoError(t, err)
	assert.Equal(t, uint(1), u.ID)

	byID, err := repo.FindUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "admin", byID.Username)
	assert.Equal(t, "hash", byID.PasswordHash)

	byName, err := repo.FindUserByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byName.ID)

	_, err = repo.FindUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	_, err = repo.FindUserByID(ctx, 99)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	_, err = repo.CreateUser(ctx, &models.User{Username: "admin", PasswordHash: "other"})
	assert.ErrorIs(t, err, repositories.ErrUsernameTaken)
}

func testPortfolio(t *testing.T, repo repositories.Repository) {
	ctx := context.Background()

	gown, err := repo.CreatePortfolioItem(ctx, &models.PortfolioItem{
		Name:        "Ivory Gown",
		Category:    "Bridal",
		ImageURL:    "https://img.example/ivory.jpg",
		Description: strPtr("Lace sleeves"),
		Featured:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), gown.ID)

	cocktail, err := repo.CreatePortfolioItem(ctx, &models.PortfolioItem{
		Name:     "Red Cocktail",
		Category: "cocktail",
		ImageURL: "https://img.example/red.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(2), cocktail.ID)
	assert.Nil(t, cocktail.Description)
	assert.False(t, cocktail.Featured)

	veil, err := repo.CreatePortfolioItem(ctx, &models.PortfolioItem{
		Name:     "Cathedral Veil",
		Category: "bridal",
		ImageURL: "https://img.example/veil.jpg",
	})
	require.NoError(t, err)

	t.Run("list keeps insertion order", func(t *testing.T) {
		items, err := repo.ListPortfolioItems(ctx)
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, []uint{gown.ID, cocktail.ID, veil.ID}, []uint{items[0].ID, items[1].ID, items[2].ID})

		n, err := repo.CountPortfolioItems(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
	})

	t.Run("category match ignores case", func(t *testing.T) {
		items, err := repo.ListPortfolioItemsByCategory(ctx, "BRIDAL")
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, gown.ID, items[0].ID)
		assert.Equal(t, veil.ID, items[1].ID)

		items, err = repo.ListPortfolioItemsByCategory(ctx, "evening")
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("featured subset", func(t *testing.T) {
		items, err := repo.ListFeaturedPortfolioItems(ctx)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, gown.ID, items[0].ID)
		assert.Equal(t, "Lace sleeves", *items[0].Description)
	})

	t.Run("partial update", func(t *testing.T) {
		updated, err := repo.UpdatePortfolioItem(ctx, cocktail.ID, models.PortfolioItemPatch{
			Featured:    boolPtr(true),
			Description: strPtr("Silk"),
		})
		require.NoError(t, err)
		assert.True(t, updated.Featured)
		assert.Equal(t, "Red Cocktail", updated.Name)
		require.NotNil(t, updated.Description)
		assert.Equal(t, "Silk", *updated.Description)

		got, err := repo.FindPortfolioItemByID(ctx, cocktail.ID)
		require.NoError(t, err)
		assert.Equal(t, updated, got)

		unchanged, err := repo.UpdatePortfolioItem(ctx, cocktail.ID, models.PortfolioItemPatch{})
		require.NoError(t, err)
		assert.Equal(t, got, unchanged)

		cleared, err := repo.UpdatePortfolioItem(ctx, cocktail.ID, models.PortfolioItemPatch{ClearDescription: true})
		require.NoError(t, err)
		assert.Nil(t, cleared.Description)
		assert.True(t, cleared.Featured)

		_, err = repo.UpdatePortfolioItem(ctx, 404, models.PortfolioItemPatch{Name: strPtr("x")})
		assert.ErrorIs(t, err, repositories.ErrPortfolioItemNotFound)
	})

	t.Run("delete reports existence", func(t *testing.T) {
		deleted, err := repo.DeletePortfolioItem(ctx, veil.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = repo.DeletePortfolioItem(ctx, veil.ID)
		require.NoError(t, err)
		assert.False(t, deleted)

		_, err = repo.FindPortfolioItemByID(ctx, veil.ID)
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})
}

func newOrder(email string) *models.Order {
	return &models.Order{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       email,
		ServiceType: "custom-dress",
		Budget:      "1000-2000",
		Timeframe:   "3 months",
		Measurements: datatypes.NewJSONType(models.Measurements{
			Bust:  "90",
			Waist: "70",
			Hips:  "95",
		}),
		ReferralSource: strPtr("instagram"),
		// Ignored: the store owns these.
		Status:    models.OrderStatusCompleted,
		CreatedAt: "yesterday",
	}
}

func testOrders(t *testing.T, repo repositories.Repository) {
	ctx := context.Background()

	first, err := repo.CreateOrder(ctx, newOrder("ada@example.com"))
	require.NoError(t, err)
	second, err := repo.CreateOrder(ctx, newOrder("grace@example.com"))
	require.NoError(t, err)

	assert.Equal(t, uint(1), first.ID)
	assert.Greater(t, second.ID, first.ID)
	assert.Equal(t, models.OrderStatusPending, first.Status)
	_, err = models.ParseTimestamp(first.CreatedAt)
	assert.NoError(t, err, "createdAt should use the timestamp layout: %s", first.CreatedAt)

	got, err := repo.FindOrderByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "90", got.Measurements.Data().Bust)
	assert.Nil(t, got.Phone)
	require.NotNil(t, got.ReferralSource)
	assert.Equal(t, "instagram", *got.ReferralSource)

	orders, err := repo.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "grace@example.com", orders[1].Email)

	updated, err := repo.UpdateOrderStatus(ctx, first.ID, models.OrderStatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusInProgress, updated.Status)

	got, err = repo.FindOrderByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusInProgress, got.Status)

	_, err = repo.UpdateOrderStatus(ctx, 77, models.OrderStatusCompleted)
	assert.ErrorIs(t, err, repositories.ErrOrderNotFound)
	_, err = repo.FindOrderByID(ctx, 77)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func testFreelancers(t *testing.T, repo repositories.Repository) {
	ctx := context.Background()

	f, err := repo.CreateFreelancer(ctx, &models.Freelancer{
		FirstName:      "Coco",
		LastName:       "Chanel",
		Email:          "coco@example.com",
		Phone:          "+33 1 00 00 00",
		Specialization: "tailoring",
		Experience:     "10+ years",
		Location:       "Paris",
		Bio:            "Little black dresses.",
		Availability:   "part-time",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), f.ID)
	assert.Equal(t, models.FreelancerStatusPending, f.Status)
	assert.Nil(t, f.PortfolioURL)
	assert.NotEmpty(t, f.CreatedAt)

	list, err := repo.ListFreelancers(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Paris", list[0].Location)

	approved, err := repo.UpdateFreelancerStatus(ctx, f.ID, models.FreelancerStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, models.FreelancerStatusApproved, approved.Status)

	got, err := repo.FindFreelancerByID(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, models.FreelancerStatusApproved, got.Status)

	_, err = repo.FindFreelancerByID(ctx, 2)
	assert.ErrorIs(t, err, repositories.ErrFreelancerNotFound)
	_, err = repo.UpdateFreelancerStatus(ctx, 2, models.FreelancerStatusRejected)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func testContactMessages(t *testing.T, repo repositories.Repository) {
	ctx := context.Background()

	m, err := repo.CreateContactMessage(ctx, &models.ContactMessage{
		Name:    "Ann",
		Email:   "ann@example.com",
		Subject: "Fitting",
		Message: "Can I book a fitting on Saturday?",
		Read:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), m.ID)
	assert.False(t, m.Read, "new messages start unread")

	got, err := repo.FindContactMessageByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fitting", got.Subject)
	assert.False(t, got.Read)

	read, err := repo.MarkContactMessageRead(ctx, m.ID)
	require.NoError(t, err)
	assert.True(t, read.Read)

	// Marking twice is harmless.
	read, err = repo.MarkContactMessageRead(ctx, m.ID)
	require.NoError(t, err)
	assert.True(t, read.Read)

	list, err := repo.ListContactMessages(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Read)

	_, err = repo.MarkContactMessageRead(ctx, 9)
	assert.ErrorIs(t, err, repositories.ErrContactMessageNotFound)
}

func testNewsletter(t *testing.T, repo repositories.Repository) {
	ctx := context.Background()

	subscribed, err := repo.IsEmailSubscribed(ctx, "x@example.com")
	require.NoError(t, err)
	assert.False(t, subscribed)

	sub, created, err := repo.CreateNewsletterSubscriber(ctx, "x@example.com")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, uint(1), sub.ID)

	again, created, err := repo.CreateNewsletterSubscriber(ctx, "x@example.com")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, sub.ID, again.ID)
	assert.Equal(t, sub.CreatedAt, again.CreatedAt)

	other, created, err := repo.CreateNewsletterSubscriber(ctx, "y@example.com")
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, sub.ID, other.ID)

	subscribed, err = repo.IsEmailSubscribed(ctx, "x@example.com")
	require.NoError(t, err)
	assert.True(t, subscribed)

	list, err := repo.ListNewsletterSubscribers(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "x@example.com", list[0].Email)
	assert.Equal(t, "y@example.com", list[1].Email)
}

func testNewsletterConcurrent(t *testing.T, repo repositories.Repository) {
	ctx := context.Background()
	const workers = 8

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		ids     = make(map[uint]struct{})
		created int
		errs    []error
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sub, isNew, err := repo.CreateNewsletterSubscriber(ctx, "race@example.com")
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, fmt.Errorf("subscribe: %w", err))
				return
			}
			ids[sub.ID] = struct{}{}
			if isNew {
				created++
			}
		}()
	}
	wg.Wait()

	require.Empty(t, errs)
	assert.Equal(t, 1, created, "exactly one call should create the subscriber")
	assert.Len(t, ids, 1, "every call should see the same subscriber")

	list, err := repo.ListNewsletterSubscribers(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
