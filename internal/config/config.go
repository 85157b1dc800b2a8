package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v2"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Server struct {
		Host            string        `yaml:"host" env:"SERVER_HOST"`
		Port            int           `yaml:"port" env:"SERVER_PORT"`
		Env             string        `yaml:"env" env:"SERVER_ENV"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`
		AllowedOrigins  []string      `yaml:"allowed_origins" env:"SERVER_ALLOWED_ORIGINS" envSeparator:","`
	} `yaml:"server"`

	Database struct {
		Driver       string `yaml:"driver" env:"DATABASE_DRIVER"` // memory, postgres, mysql, sqlite
		DSN          string `yaml:"url" env:"DATABASE_URL"`
		MaxOpenConns int    `yaml:"max_open_conns" env:"DATABASE_MAX_OPEN_CONNS"`
		LogQueries   bool   `yaml:"log_queries" env:"DATABASE_LOG_QUERIES"`
		AutoMigrate  bool   `yaml:"auto_migrate" env:"DATABASE_AUTO_MIGRATE"`
	} `yaml:"database"`

	Seed struct {
		// Portfolio inserts the sample dresses into an empty portfolio on startup.
		Portfolio bool `yaml:"portfolio" env:"SEED_PORTFOLIO"`

		// AdminUsername and AdminPassword create the first admin account when both are set.
		AdminUsername string `yaml:"admin_username" env:"FIRST_ADMIN_USERNAME"`
		AdminPassword string `yaml:"admin_password" env:"FIRST_ADMIN_PASSWORD"`
	} `yaml:"seed"`

	Email struct {
		Enabled      bool   `yaml:"enabled" env:"EMAIL_ENABLED"`
		SMTPHost     string `yaml:"smtp_host" env:"EMAIL_SMTP_HOST"`
		SMTPPort     int    `yaml:"smtp_port" env:"EMAIL_SMTP_PORT"`
		SMTPUsername string `yaml:"smtp_user" env:"EMAIL_SMTP_USER"`
		SMTPPassword string `yaml:"smtp_password" env:"EMAIL_SMTP_PASSWORD"`
		FromEmail    string `yaml:"from_email" env:"EMAIL_FROM"`
		FromName     string `yaml:"from_name" env:"EMAIL_FROM_NAME"`
		StudioInbox  string `yaml:"studio_inbox" env:"EMAIL_STUDIO_INBOX"`
	} `yaml:"email"`
}

// Default is the zero-configuration setup: in-memory storage with sample data, no email.
func Default() *Config {
	var cfg Config

	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 5000
	cfg.Server.Env = "development"
	cfg.Server.ShutdownTimeout = 10 * time.Second
	cfg.Server.AllowedOrigins = []string{"*"}

	cfg.Database.Driver = DriverMemory
	cfg.Database.MaxOpenConns = 10
	cfg.Database.AutoMigrate = true

	cfg.Seed.Portfolio = true

	cfg.Email.SMTPPort = 587
	cfg.Email.FromName = "Atelier"

	return &cfg
}

// Load reads the YAML file named by CONFIG_PATH (config/config.yaml when unset),
// then applies environment overrides. A missing default file is not an error.
func Load() (*Config, error) {
	cfg := Default()

	configPath := os.Getenv("CONFIG_PATH")
	explicit := configPath != ""
	if !explicit {
		configPath = "config/config.yaml"
	}

	if err := loadFile(cfg, configPath); err != nil {
		if !errors.Is(err, os.ErrNotExist) || explicit {
			return nil, err
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("failed to parse config file at %s: %w", path, err)
	}
	return nil
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	c.Database.Driver = strings.ToLower(strings.TrimSpace(c.Database.Driver))

	switch c.Database.Driver {
	case DriverMemory:
	case DriverPostgres, DriverMySQL, DriverSQLite:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.url is required for driver %q", c.Database.Driver)
		}
	default:
		return fmt.Errorf("unknown database driver %q", c.Database.Driver)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}

	if err := ValidateOrigins(c.Server.AllowedOrigins); err != nil {
		return err
	}

	if c.Email.Enabled {
		if c.Email.SMTPHost == "" || c.Email.FromEmail == "" || c.Email.StudioInbox == "" {
			return errors.New("email.smtp_host, email.from_email and email.studio_inbox are required when email is enabled")
		}
	}
	return nil
}

// ValidateOrigins rejects origin lists the CORS middleware cannot be built from.
func ValidateOrigins(origins []string) error {
	if len(origins) == 0 {
		return errors.New("server.allowed_origins must not be empty")
	}
	for _, origin := range origins {
		if origin == "*" {
			continue
		}
		if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("invalid allowed origin %q: must be \"*\" or start with http:// or https://", origin)
		}
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}
