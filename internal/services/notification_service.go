package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"atelier_backend/internal/email"
	"atelier_backend/internal/logger"
	"atelier_backend/internal/models"
)

const notificationTimeout = 30 * time.Second

// NotificationService tells the studio about new submissions by email.
// Delivery happens in the background; failures are logged and never reach the caller.
type NotificationService interface {
	NotifyNewOrder(ctx context.Context, order *models.Order)
	NotifyNewFreelancer(ctx context.Context, freelancer *models.Freelancer)
	NotifyNewContactMessage(ctx context.Context, msg *models.ContactMessage)

	// Wait blocks until every queued delivery has finished.
	Wait()
}

type notificationService struct {
	provider email.Provider
	renderer email.TemplateRenderer
	inbox    string
	timeout  time.Duration
	wg       sync.WaitGroup
}

// NewNotificationService sends to inbox. An empty inbox disables notifications.
func NewNotificationService(provider email.Provider, renderer email.TemplateRenderer, inbox string) NotificationService {
	return &notificationService{
		provider: provider,
		renderer: renderer,
		inbox:    inbox,
		timeout:  notificationTimeout,
	}
}

func (s *notificationService) NotifyNewOrder(ctx context.Context, order *models.Order) {
	subject := fmt.Sprintf("New custom order from %s %s", order.FirstName, order.LastName)
	s.dispatch(ctx, "new_order", subject, order.Email, order)
}

func (s *notificationService) NotifyNewFreelancer(ctx context.Context, freelancer *models.Freelancer) {
	subject := fmt.Sprintf("New freelancer application: %s %s", freelancer.FirstName, freelancer.LastName)
	s.dispatch(ctx, "new_freelancer", subject, freelancer.Email, freelancer)
}

func (s *notificationService) NotifyNewContactMessage(ctx context.Context, msg *models.ContactMessage) {
	subject := fmt.Sprintf("Contact form: %s", msg.Subject)
	s.dispatch(ctx, "new_contact", subject, msg.Email, msg)
}

func (s *notificationService) Wait() {
	s.wg.Wait()
}

func (s *notificationService) dispatch(ctx context.Context, template, subject, replyTo string, data interface{}) {
	if s.inbox == "" {
		return
	}

	body, err := s.renderer.Render(template, data)
	if err != nil {
		logger.CtxWithError(ctx, "failed to render notification", err, "template", template)
		return
	}

	msg := &email.Email{
		To:       []string{s.inbox},
		ReplyTo:  replyTo,
		Subject:  subject,
		HTMLBody: body,
	}

	// The request may finish before delivery does.
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer cancel()

		if err := s.provider.Send(sendCtx, msg); err != nil {
			logger.CtxWithError(sendCtx, "failed to send notification", err, "template", template)
			return
		}
		logger.CtxDebug(sendCtx, "notification sent", "template", template)
	}()
}
