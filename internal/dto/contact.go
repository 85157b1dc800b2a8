package dto

import (
	"strings"

	"atelier_backend/internal/models"
)

type CreateContactMessageRequest struct {
	Name    string `json:"name" validate:"trimmed-required,max=200" example:"Jane"`
	Email   string `json:"email" validate:"required,email,max=320" example:"jane@example.com"`
	Subject string `json:"subject" validate:"trimmed-required,max=300" example:"Fitting"`
	Message string `json:"message" validate:"trimmed-required,max=10000" example:"Hello"`
}

func (r *CreateContactMessageRequest) ToModel() *models.ContactMessage {
	return &models.ContactMessage{
		Name:    strings.TrimSpace(r.Name),
		Email:   strings.TrimSpace(r.Email),
		Subject: strings.TrimSpace(r.Subject),
		Message: strings.TrimSpace(r.Message),
	}
}

type CreateContactMessageResponse struct {
	Success   bool `json:"success" example:"true"`
	MessageID uint `json:"messageId" example:"1"`
}
