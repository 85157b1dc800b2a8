package email

import "context"

// Provider delivers email.
type Provider interface {
	Send(ctx context.Context, email *Email) error

	// Validate checks the provider configuration.
	Validate() error

	Close() error
}

// TemplateRenderer renders named templates.
type TemplateRenderer interface {
	Render(templateName string, data interface{}) (string, error)
	AddTemplate(name string, template string) error
}
