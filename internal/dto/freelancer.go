package dto

import (
	"strings"

	"atelier_backend/internal/models"
)

type CreateFreelancerRequest struct {
	FirstName      string  `json:"firstName" validate:"trimmed-required,max=100"`
	LastName       string  `json:"lastName" validate:"trimmed-required,max=100"`
	Email          string  `json:"email" validate:"required,email,max=320"`
	Phone          string  `json:"phone" validate:"trimmed-required,max=50"`
	Specialization string  `json:"specialization" validate:"trimmed-required,max=100"`
	Experience     string  `json:"experience" validate:"trimmed-required,max=100"`
	Location       string  `json:"location" validate:"trimmed-required,max=200"`
	PortfolioURL   *string `json:"portfolioUrl" validate:"omitempty,max=2048"`
	Bio            string  `json:"bio" validate:"trimmed-required,max=5000"`
	Availability   string  `json:"availability" validate:"trimmed-required,max=100"`
}

func (r *CreateFreelancerRequest) ToModel() *models.Freelancer {
	return &models.Freelancer{
		FirstName:      strings.TrimSpace(r.FirstName),
		LastName:       strings.TrimSpace(r.LastName),
		Email:          strings.TrimSpace(r.Email),
		Phone:          strings.TrimSpace(r.Phone),
		Specialization: strings.TrimSpace(r.Specialization),
		Experience:     strings.TrimSpace(r.Experience),
		Location:       strings.TrimSpace(r.Location),
		PortfolioURL:   optional(r.PortfolioURL),
		Bio:            strings.TrimSpace(r.Bio),
		Availability:   strings.TrimSpace(r.Availability),
	}
}

type CreateFreelancerResponse struct {
	Success      bool `json:"success" example:"true"`
	FreelancerID uint `json:"freelancerId" example:"1"`
}

type UpdateFreelancerStatusRequest struct {
	Status models.FreelancerStatus `json:"status" validate:"required,is-freelancer-status" example:"approved"`
}
