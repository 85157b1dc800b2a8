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

const freelancerDomain = "freelancers"

type FreelancerService interface {
	Create(ctx context.Context, req *dto.CreateFreelancerRequest) (*models.Freelancer, error)
	List(ctx context.Context) ([]models.Freelancer, error)
	Get(ctx context.Context, id uint) (*models.Freelancer, error)
	UpdateStatus(ctx context.Context, id uint, status models.FreelancerStatus) (*models.Freelancer, error)
}

type freelancerService struct {
	repo     repositories.FreelancerRepository
	notifier NotificationService
}

func NewFreelancerService(repo repositories.FreelancerRepository, notifier NotificationService) FreelancerService {
	return &freelancerService{repo: repo, notifier: notifier}
}

func (s *freelancerService) Create(ctx context.Context, req *dto.CreateFreelancerRequest) (*models.Freelancer, error) {
	f, err := s.repo.CreateFreelancer(ctx, req.ToModel())
	if err != nil {
		return nil, apperrors.FailedTo(freelancerDomain, "submit freelancer application", err)
	}
	logger.CtxInfo(ctx, "freelancer application received", "freelancer_id", f.ID, "specialization", f.Specialization)

	s.notifier.NotifyNewFreelancer(ctx, f)
	return f, nil
}

func (s *freelancerService) List(ctx context.Context) ([]models.Freelancer, error) {
	list, err := s.repo.ListFreelancers(ctx)
	if err != nil {
		return nil, apperrors.FailedTo(freelancerDomain, "fetch freelancer applications", err)
	}
	return list, nil
}

func (s *freelancerService) Get(ctx context.Context, id uint) (*models.Freelancer, error) {
	f, err := s.repo.FindFreelancerByID(ctx, id)
	if err != nil {
		return nil, mapFreelancerError(err, "fetch freelancer application")
	}
	return f, nil
}

func (s *freelancerService) UpdateStatus(ctx context.Context, id uint, status models.FreelancerStatus) (*models.Freelancer, error) {
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus(freelancerDomain, "Invalid freelancer status: "+string(status))
	}

	f, err := s.repo.UpdateFreelancerStatus(ctx, id, status)
	if err != nil {
		return nil, mapFreelancerError(err, "update freelancer status")
	}
	logger.CtxInfo(ctx, "freelancer status updated", "freelancer_id", id, "status", status)
	return f, nil
}

func mapFreelancerError(err error, action string) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return apperrors.ErrNotFound(freelancerDomain, "Freelancer", err)
	}
	return apperrors.FailedTo(freelancerDomain, action, err)
}
