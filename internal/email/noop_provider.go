package email

import (
	"context"

	"atelier_backend/internal/logger"
)

// NoopProvider drops every message. Used when email is disabled.
type NoopProvider struct{}

func (NoopProvider) Send(ctx context.Context, email *Email) error {
	logger.CtxDebug(ctx, "email disabled, message dropped", "to", email.To, "subject", email.Subject)
	return nil
}

func (NoopProvider) Validate() error { return nil }
func (NoopProvider) Close() error    { return nil }
