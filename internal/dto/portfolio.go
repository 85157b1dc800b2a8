package dto

import (
	"strings"

	"atelier_backend/internal/models"
)

type CreatePortfolioItemRequest struct {
	Name        string  `json:"name" validate:"trimmed-required,max=200" example:"Ivory Lace Gown"`
	Category    string  `json:"category" validate:"trimmed-required,max=100" example:"bridal"`
	ImageURL    string  `json:"imageUrl" validate:"trimmed-required,max=2048" example:"https://images.example.com/ivory.jpg"`
	Description *string `json:"description"`
	Featured    *bool   `json:"featured"`
}

func (r *CreatePortfolioItemRequest) ToModel() *models.PortfolioItem {
	item := &models.PortfolioItem{
		Name:        strings.TrimSpace(r.Name),
		Category:    strings.TrimSpace(r.Category),
		ImageURL:    strings.TrimSpace(r.ImageURL),
		Description: optional(r.Description),
	}
	if r.Featured != nil {
		item.Featured = *r.Featured
	}
	return item
}

// UpdatePortfolioItemRequest is a partial update; absent fields keep their value.
type UpdatePortfolioItemRequest struct {
	Name        *string `json:"name" validate:"omitempty,trimmed-required,max=200"`
	Category    *string `json:"category" validate:"omitempty,trimmed-required,max=100"`
	ImageURL    *string `json:"imageUrl" validate:"omitempty,trimmed-required,max=2048"`
	Description *string `json:"description"`
	Featured    *bool   `json:"featured"`
}

func (r *UpdatePortfolioItemRequest) ToPatch() models.PortfolioItemPatch {
	trim := func(s *string) *string {
		if s == nil {
			return nil
		}
		v := strings.TrimSpace(*s)
		return &v
	}
	patch := models.PortfolioItemPatch{
		Name:        trim(r.Name),
		Category:    trim(r.Category),
		ImageURL:    trim(r.ImageURL),
		Description: optional(r.Description),
		Featured:    r.Featured,
	}
	// A blank description clears it, same as on create.
	patch.ClearDescription = r.Description != nil && patch.Description == nil
	return patch
}
