package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"atelier_backend/internal/config"
	"atelier_backend/internal/logger"
	"atelier_backend/internal/repositories/gormstore"
	"atelier_backend/internal/repositories/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init("test")
	os.Exit(m.Run())
}

func TestDialector(t *testing.T) {
	for _, driver := range []string{config.DriverPostgres, config.DriverMySQL, config.DriverSQLite} {
		d, err := Dialector(driver, "dsn")
		require.NoError(t, err, driver)
		assert.NotNil(t, d)
	}

	_, err := Dialector(config.DriverMemory, "")
	assert.EqualError(t, err, `driver "memory" has no SQL dialector`)
}

func TestOpenRepository_Memory(t *testing.T) {
	repo, err := OpenRepository(context.Background(), config.Default())
	require.NoError(t, err)
	assert.IsType(t, &memory.Store{}, repo)
	assert.NoError(t, repo.Ping(context.Background()))
}

func TestOpenRepository_SQLiteMigrates(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()
	cfg.Database.Driver = config.DriverSQLite
	cfg.Database.DSN = filepath.Join(t.TempDir(), "atelier.db")

	repo, err := OpenRepository(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	assert.IsType(t, &gormstore.Store{}, repo)

	n, err := repo.CountPortfolioItems(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, created, err := repo.CreateNewsletterSubscriber(ctx, "a@example.com")
	require.NoError(t, err)
	assert.True(t, created)
}

func TestOperation(t *testing.T) {
	assert.Equal(t, "SELECT", operation("  select * from orders"))
	assert.Equal(t, "COMMIT", operation("commit"))
}
