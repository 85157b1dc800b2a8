package services

import (
	"context"

	"atelier_backend/internal/dto"
	"atelier_backend/internal/logger"
	"atelier_backend/internal/models"
	"atelier_backend/internal/repositories"
	"atelier_backend/pkg/apperrors"
)

const newsletterDomain = "newsletter"

type NewsletterService interface {
	// Subscribe is idempotent per (normalised) address; created is false when it was already subscribed.
	Subscribe(ctx context.Context, req *dto.SubscribeRequest) (sub *models.NewsletterSubscriber, created bool, err error)
	List(ctx context.Context) ([]models.NewsletterSubscriber, error)
}

type newsletterService struct {
	repo repositories.NewsletterRepository
}

func NewNewsletterService(repo repositories.NewsletterRepository) NewsletterService {
	return &newsletterService{repo: repo}
}

func (s *newsletterService) Subscribe(ctx context.Context, req *dto.SubscribeRequest) (*models.NewsletterSubscriber, bool, error) {
	sub, created, err := s.repo.CreateNewsletterSubscriber(ctx, dto.NormalizeEmail(req.Email))
	if err != nil {
		return nil, false, apperrors.FailedTo(newsletterDomain, "subscribe to newsletter", err)
	}
	if created {
		logger.CtxInfo(ctx, "newsletter subscriber added", "subscriber_id", sub.ID)
	}
	return sub, created, nil
}

func (s *newsletterService) List(ctx context.Context) ([]models.NewsletterSubscriber, error) {
	list, err := s.repo.ListNewsletterSubscribers(ctx)
	if err != nil {
		return nil, apperrors.FailedTo(newsletterDomain, "fetch newsletter subscribers", err)
	}
	return list, nil
}
