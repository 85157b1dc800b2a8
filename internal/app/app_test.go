package app

import (
	"context"
	"testing"

	"atelier_backend/internal/config"
	"atelier_backend/internal/logger"
	"atelier_backend/internal/repositories/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Server.Env = "test"
	return cfg
}

func TestSeed(t *testing.T) {
	logger.Init("test")
	ctx := context.Background()

	cfg := testConfig()
	cfg.Seed.AdminUsername = "admin"
	cfg.Seed.AdminPassword = "change-me-please"

	repo := memory.New()
	a, err := NewWithRepository(cfg, repo, nil)
	require.NoError(t, err)
	defer a.Close()

	require.NoError(t, a.Seed(ctx))
	require.NoError(t, a.Seed(ctx), "seeding twice is a no-op")

	n, err := repo.CountPortfolioItems(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 7, n)

	admin, err := repo.FindUserByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.NotEqual(t, "change-me-please", admin.PasswordHash)
}

func TestSeed_Disabled(t *testing.T) {
	logger.Init("test")
	ctx := context.Background()

	cfg := testConfig()
	cfg.Seed.Portfolio = false

	repo := memory.New()
	a, err := NewWithRepository(cfg, repo, nil)
	require.NoError(t, err)
	defer a.Close()

	require.NoError(t, a.Seed(ctx))
	n, err := repo.CountPortfolioItems(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestNew_RejectsBrokenEmailConfig(t *testing.T) {
	logger.Init("test")

	cfg := testConfig()
	cfg.Email.Enabled = true
	cfg.Email.SMTPPort = 0

	_, err := New(context.Background(), cfg)
	assert.ErrorContains(t, err, "invalid email configuration")
}

func TestNewWithRepository_RejectsBadOrigins(t *testing.T) {
	logger.Init("test")

	for _, origins := range [][]string{{}, {""}, {"example.com"}} {
		cfg := testConfig()
		cfg.Server.AllowedOrigins = origins

		assert.NotPanics(t, func() {
			_, err := NewWithRepository(cfg, memory.New(), nil)
			assert.Error(t, err)
		})
	}
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	logger.Init("test")

	cfg := testConfig()
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 0

	a, err := NewWithRepository(cfg, memory.New(), nil)
	require.NoError(t, err)
	defer a.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, a.Run(ctx))
}
