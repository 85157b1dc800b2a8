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

const contactDomain = "contact"

type ContactService interface {
	Create(ctx context.Context, req *dto.CreateContactMessageRequest) (*models.ContactMessage, error)
	List(ctx context.Context) ([]models.ContactMessage, error)
	Get(ctx context.Context, id uint) (*models.ContactMessage, error)
	MarkRead(ctx context.Context, id uint) (*models.ContactMessage, error)
}

type contactService struct {
	repo     repositories.ContactRepository
	notifier NotificationService
}

func NewContactService(repo repositories.ContactRepository, notifier NotificationService) ContactService {
	return &contactService{repo: repo, notifier: notifier}
}

func (s *contactService) Create(ctx context.Context, req *dto.CreateContactMessageRequest) (*models.ContactMessage, error) {
	msg, err := s.repo.CreateContactMessage(ctx, req.ToModel())
	if err != nil {
		return nil, apperrors.FailedTo(contactDomain, "submit contact message", err)
	}
	logger.CtxInfo(ctx, "contact message received", "message_id", msg.ID)

	s.notifier.NotifyNewContactMessage(ctx, msg)
	return msg, nil
}

func (s *contactService) List(ctx context.Context) ([]models.ContactMessage, error) {
	list, err := s.repo.ListContactMessages(ctx)
	if err != nil {
		return nil, apperrors.FailedTo(contactDomain, "fetch contact messages", err)
	}
	return list, nil
}

func (s *contactService) Get(ctx context.Context, id uint) (*models.ContactMessage, error) {
	msg, err := s.repo.FindContactMessageByID(ctx, id)
	if err != nil {
		return nil, mapContactError(err, "fetch contact message")
	}
	return msg, nil
}

func (s *contactService) MarkRead(ctx context.Context, id uint) (*models.ContactMessage, error) {
	msg, err := s.repo.MarkContactMessageRead(ctx, id)
	if err != nil {
		return nil, mapContactError(err, "mark contact message as read")
	}
	return msg, nil
}

func mapContactError(err error, action string) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return apperrors.ErrNotFound(contactDomain, "Contact message", err)
	}
	return apperrors.FailedTo(contactDomain, action, err)
}
