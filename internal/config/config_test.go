package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	// The package directory has no config/config.yaml.
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.Database.Driver)
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.True(t, cfg.Seed.Portfolio)
	assert.False(t, cfg.Email.Enabled)
	assert.Equal(t, "0.0.0.0:5000", cfg.Addr())
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 8080
  env: production
  shutdown_timeout: 3s
database:
  driver: SQLite
  url: file:atelier.db
  max_open_conns: 4
seed:
  portfolio: false
`)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATABASE_LOG_QUERIES", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port, "env overrides the file")
	assert.Equal(t, "production", cfg.Server.Env)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver, "driver is normalised")
	assert.Equal(t, "file:atelier.db", cfg.Database.DSN)
	assert.Equal(t, 4, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.Database.LogQueries)
	assert.False(t, cfg.Seed.Portfolio)
	assert.False(t, cfg.IsDevelopment())
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_BrokenYAML(t *testing.T) {
	t.Setenv("CONFIG_PATH", writeConfig(t, "server: [1, 2"))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{
			name:    "unknown driver",
			mutate:  func(c *Config) { c.Database.Driver = "oracle" },
			wantErr: `unknown database driver "oracle"`,
		},
		{
			name:    "relational driver needs url",
			mutate:  func(c *Config) { c.Database.Driver = DriverPostgres },
			wantErr: "database.url is required",
		},
		{
			name:    "bad port",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: "invalid server port",
		},
		{
			name:    "empty allowed origins",
			mutate:  func(c *Config) { c.Server.AllowedOrigins = []string{} },
			wantErr: "server.allowed_origins must not be empty",
		},
		{
			name:    "origin without scheme",
			mutate:  func(c *Config) { c.Server.AllowedOrigins = []string{"https://studio.example.com", "example.com"} },
			wantErr: `invalid allowed origin "example.com"`,
		},
		{
			name:    "blank origin",
			mutate:  func(c *Config) { c.Server.AllowedOrigins = []string{""} },
			wantErr: `invalid allowed origin ""`,
		},
		{
			name:   "explicit origins",
			mutate: func(c *Config) { c.Server.AllowedOrigins = []string{"http://localhost:5173", "https://studio.example.com"} },
		},
		{
			name:    "email needs smtp settings",
			mutate:  func(c *Config) { c.Email.Enabled = true },
			wantErr: "required when email is enabled",
		},
		{
			name: "email fully configured",
			mutate: func(c *Config) {
				c.Email.Enabled = true
				c.Email.SMTPHost = "smtp.example.com"
				c.Email.FromEmail = "noreply@example.com"
				c.Email.StudioInbox = "studio@example.com"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
