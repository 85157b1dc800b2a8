package memory_test

import (
	"context"
	"testing"
	"time"

	"atelier_backend/internal/models"
	"atelier_backend/internal/repositories"
	"atelier_backend/internal/repositories/memory"
	"atelier_backend/internal/repositories/repotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreContract(t *testing.T) {
	repotest.Run(t, func(t *testing.T) repositories.Repository {
		return memory.New()
	})
}

func TestStore_CreatedAtUsesClock(t *testing.T) {
	fixed := time.Date(2026, 10, 17, 9, 30, 0, 0, time.FixedZone("UTC+2", 2*60*60))
	store := memory.New(memory.WithClock(func() time.Time { return fixed }))

	msg, err := store.CreateContactMessage(context.Background(), &models.ContactMessage{
		Name: "Jane", Email: "jane@x.com", Subject: "Hi", Message: "Hello",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-10-17T07:30:00.000Z", msg.CreatedAt)
}

func TestStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	desc := "original"
	item, err := store.CreatePortfolioItem(ctx, &models.PortfolioItem{
		Name: "Gown", Category: "bridal", ImageURL: "https://img.example/g.jpg", Description: &desc,
	})
	require.NoError(t, err)

	desc = "changed by caller"
	*item.Description = "changed through result"
	item.Name = "Renamed"

	got, err := store.FindPortfolioItemByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gown", got.Name)
	assert.Equal(t, "original", *got.Description)
}

func TestStore_IdsArePerKind(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	_, _, err := store.CreateNewsletterSubscriber(ctx, "a@example.com")
	require.NoError(t, err)

	msg, err := store.CreateContactMessage(ctx, &models.ContactMessage{Name: "n", Email: "e@x.com", Subject: "s", Message: "m"})
	require.NoError(t, err)
	assert.Equal(t, uint(1), msg.ID)
}

func TestStore_PingHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, memory.New().Ping(ctx), context.Canceled)
}
