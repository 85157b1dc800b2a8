package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"atelier_backend/internal/config"
	"atelier_backend/internal/database"
	"atelier_backend/internal/email"
	"atelier_backend/internal/handlers"
	"atelier_backend/internal/logger"
	"atelier_backend/internal/middleware"
	"atelier_backend/internal/repositories"
	"atelier_backend/internal/routes"
	"atelier_backend/internal/services"
	"atelier_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// App is the assembled server: storage, services and the gin router.
type App struct {
	cfg      *config.Config
	repo     repositories.Repository
	provider email.Provider
	services *services.ServiceContainer
	router   *gin.Engine
}

// New opens the configured storage and wires everything on top of it.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	logger.Info("Opening storage", "driver", cfg.Database.Driver)
	repo, err := database.OpenRepository(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	provider, err := newEmailProvider(cfg)
	if err != nil {
		_ = repo.Close()
		return nil, err
	}

	a, err := NewWithRepository(cfg, repo, provider)
	if err != nil {
		_ = repo.Close()
		return nil, err
	}
	return a, nil
}

// NewWithRepository wires the application over an already open repository.
// A nil provider disables studio notifications.
func NewWithRepository(cfg *config.Config, repo repositories.Repository, provider email.Provider) (*App, error) {
	if err := config.ValidateOrigins(cfg.Server.AllowedOrigins); err != nil {
		return nil, err
	}

	templates, err := email.NewBuiltinTemplateManager()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}

	serviceContainer := services.NewServiceContainer(repo, provider, templates, cfg.Email.StudioInbox)
	appHandlers := handlers.NewAppHandlers(serviceContainer, repo, cfg.Database.Driver)

	return &App{
		cfg:      cfg,
		repo:     repo,
		provider: provider,
		services: serviceContainer,
		router:   SetupRouter(cfg, appHandlers),
	}, nil
}

func newEmailProvider(cfg *config.Config) (email.Provider, error) {
	if !cfg.Email.Enabled {
		logger.Info("Email notifications disabled")
		return nil, nil
	}

	provider := email.NewGomailProvider(email.ConfigFrom(cfg))
	if err := provider.Validate(); err != nil {
		return nil, fmt.Errorf("invalid email configuration: %w", err)
	}
	logger.Info("Email notifications enabled", "smtp_host", cfg.Email.SMTPHost, "inbox", cfg.Email.StudioInbox)
	return provider, nil
}

func SetupRouter(cfg *config.Config, appHandlers *handlers.AppHandlers) *gin.Engine {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	apperrors.SetDebug(cfg.IsDevelopment())

	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(middleware.CORSMiddleware(cfg.Server.AllowedOrigins))

	routes.RegisterRoutes(ginRouter, appHandlers)
	return ginRouter
}

func (a *App) Handler() http.Handler {
	return a.router
}

func (a *App) Services() *services.ServiceContainer {
	return a.services
}

// Seed inserts the configured startup data.
func (a *App) Seed(ctx context.Context) error {
	if a.cfg.Seed.Portfolio {
		if _, err := a.services.PortfolioService.SeedSamples(ctx); err != nil {
			return err
		}
	}
	return seedFirstAdmin(ctx, a.services.UserService, a.cfg)
}

func seedFirstAdmin(ctx context.Context, users services.UserService, cfg *config.Config) error {
	username, password := cfg.Seed.AdminUsername, cfg.Seed.AdminPassword
	if username == "" || password == "" {
		logger.Debug("FIRST_ADMIN_USERNAME or FIRST_ADMIN_PASSWORD not set, skipping admin seeding")
		return nil
	}

	user, created, err := users.EnsureUser(ctx, username, password)
	if err != nil {
		return fmt.Errorf("failed to seed first admin: %w", err)
	}
	if created {
		logger.Info("First admin user created", "username", user.Username)
	} else {
		logger.Info("Admin user already exists, skipping creation", "username", user.Username)
	}
	return nil
}

// Run serves HTTP until ctx is cancelled or SIGINT/SIGTERM arrives, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    a.cfg.Addr(),
		Handler: a.router,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", "addr", server.Addr, "env", a.cfg.Server.Env, "storage", a.cfg.Database.Driver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err, ok := <-serveErr:
		if ok {
			return fmt.Errorf("server failed to listen and serve: %w", err)
		}
		return nil
	case sig := <-stop:
		logger.Info("Shutting down server gracefully...", "signal", sig.String())
	case <-ctx.Done():
		logger.Info("Shutting down server gracefully...", "reason", ctx.Err())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	logger.Info("Server exited gracefully")
	return nil
}

// Close waits for pending notifications and releases storage.
func (a *App) Close() error {
	a.services.NotificationService.Wait()

	var errs []error
	if a.provider != nil {
		errs = append(errs, a.provider.Close())
	}
	errs = append(errs, a.repo.Close())
	return errors.Join(errs...)
}
