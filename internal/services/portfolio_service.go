package services

import (
	"context"
	"errors"

	"atelier_backend/internal/dto"
	"atelier_backend/internal/logger"
	"atelier_backend/internal/models"
	"atelier_backend/internal/repositories"
	"atelier_backend/pkg/apperrors"
)

const portfolioDomain = "portfolio"

type PortfolioService interface {
	List(ctx context.Context) ([]models.PortfolioItem, error)
	ListFeatured(ctx context.Context) ([]models.PortfolioItem, error)
	ListByCategory(ctx context.Context, category string) ([]models.PortfolioItem, error)
	Get(ctx context.Context, id uint) (*models.PortfolioItem, error)
	Create(ctx context.Context, req *dto.CreatePortfolioItemRequest) (*models.PortfolioItem, error)
	Update(ctx context.Context, id uint, req *dto.UpdatePortfolioItemRequest) (*models.PortfolioItem, error)
	Delete(ctx context.Context, id uint) error

	// SeedSamples inserts the sample catalogue when the portfolio is empty and reports how many items it added.
	SeedSamples(ctx context.Context) (int, error)
}

type portfolioService struct {
	repo repositories.PortfolioRepository
}

func NewPortfolioService(repo repositories.PortfolioRepository) PortfolioService {
	return &portfolioService{repo: repo}
}

func (s *portfolioService) List(ctx context.Context) ([]models.PortfolioItem, error) {
	items, err := s.repo.ListPortfolioItems(ctx)
	if err != nil {
		return nil, apperrors.FailedTo(portfolioDomain, "fetch portfolio items", err)
	}
	return items, nil
}

func (s *portfolioService) ListFeatured(ctx context.Context) ([]models.PortfolioItem, error) {
	items, err := s.repo.ListFeaturedPortfolioItems(ctx)
	if err != nil {
		return nil, apperrors.FailedTo(portfolioDomain, "fetch featured portfolio items", err)
	}
	return items, nil
}

func (s *portfolioService) ListByCategory(ctx context.Context, category string) ([]models.PortfolioItem, error) {
	items, err := s.repo.ListPortfolioItemsByCategory(ctx, category)
	if err != nil {
		return nil, apperrors.FailedTo(portfolioDomain, "fetch portfolio items", err)
	}
	return items, nil
}

func (s *portfolioService) Get(ctx context.Context, id uint) (*models.PortfolioItem, error) {
	item, err := s.repo.FindPortfolioItemByID(ctx, id)
	if err != nil {
		return nil, s.mapError(err, "fetch portfolio item")
	}
	return item, nil
}

func (s *portfolioService) Create(ctx context.Context, req *dto.CreatePortfolioItemRequest) (*models.PortfolioItem, error) {
	item, err := s.repo.CreatePortfolioItem(ctx, req.ToModel())
	if err != nil {
		return nil, apperrors.FailedTo(portfolioDomain, "create portfolio item", err)
	}
	logger.CtxInfo(ctx, "portfolio item created", "item_id", item.ID, "category", item.Category)
	return item, nil
}

func (s *portfolioService) Update(ctx context.Context, id uint, req *dto.UpdatePortfolioItemRequest) (*models.PortfolioItem, error) {
	item, err := s.repo.UpdatePortfolioItem(ctx, id, req.ToPatch())
	if err != nil {
		return nil, s.mapError(err, "update portfolio item")
	}
	logger.CtxInfo(ctx, "portfolio item updated", "item_id", id)
	return item, nil
}

func (s *portfolioService) Delete(ctx context.Context, id uint) error {
	deleted, err := s.repo.DeletePortfolioItem(ctx, id)
	if err != nil {
		return apperrors.FailedTo(portfolioDomain, "delete portfolio item", err)
	}
	if !deleted {
		return apperrors.ErrNotFound(portfolioDomain, "Portfolio item", repositories.ErrPortfolioItemNotFound)
	}
	logger.CtxInfo(ctx, "portfolio item deleted", "item_id", id)
	return nil
}

func (s *portfolioService) SeedSamples(ctx context.Context) (int, error) {
	n, err := s.repo.CountPortfolioItems(ctx)
	if err != nil {
		return 0, apperrors.FailedTo(portfolioDomain, "count portfolio items", err)
	}
	if n > 0 {
		logger.CtxDebug(ctx, "portfolio already populated, skipping samples", "items", n)
		return 0, nil
	}

	samples := SamplePortfolio()
	for i := range samples {
		if _, err := s.repo.CreatePortfolioItem(ctx, &samples[i]); err != nil {
			return i, apperrors.FailedTo(portfolioDomain, "seed portfolio", err)
		}
	}
	logger.CtxInfo(ctx, "sample portfolio seeded", "items", len(samples))
	return len(samples), nil
}

func (s *portfolioService) mapError(err error, action string) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return apperrors.ErrNotFound(portfolioDomain, "Portfolio item", err)
	}
	return apperrors.FailedTo(portfolioDomain, action, err)
}
