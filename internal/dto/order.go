package dto

import (
	"strings"

	"atelier_backend/internal/models"

	"gorm.io/datatypes"
)

// MeasurementsRequest needs every key present; an empty value is allowed.
type MeasurementsRequest struct {
	Bust            *string `json:"bust" validate:"required,max=50"`
	Waist           *string `json:"waist" validate:"required,max=50"`
	Hips            *string `json:"hips" validate:"required,max=50"`
	Height          *string `json:"height" validate:"required,max=50"`
	ShoulderToWaist *string `json:"shoulderToWaist" validate:"required,max=50"`
	WaistToHem      *string `json:"waistToHem" validate:"required,max=50"`
}

type CreateOrderRequest struct {
	FirstName           string               `json:"firstName" validate:"trimmed-required,max=100"`
	LastName            string               `json:"lastName" validate:"trimmed-required,max=100"`
	Email               string               `json:"email" validate:"required,email,max=320"`
	Phone               *string              `json:"phone" validate:"omitempty,max=50"`
	ServiceType         string               `json:"serviceType" validate:"trimmed-required,max=100"`
	Budget              string               `json:"budget" validate:"trimmed-required,max=100"`
	Timeframe           string               `json:"timeframe" validate:"trimmed-required,max=100"`
	Measurements        *MeasurementsRequest `json:"measurements" validate:"required"`
	SpecialRequirements *string              `json:"specialRequirements" validate:"omitempty,max=5000"`
	ReferralSource      *string              `json:"referralSource" validate:"omitempty,max=200"`
}

func (r *CreateOrderRequest) ToModel() *models.Order {
	m := r.Measurements
	return &models.Order{
		FirstName:   strings.TrimSpace(r.FirstName),
		LastName:    strings.TrimSpace(r.LastName),
		Email:       strings.TrimSpace(r.Email),
		Phone:       optional(r.Phone),
		ServiceType: strings.TrimSpace(r.ServiceType),
		Budget:      strings.TrimSpace(r.Budget),
		Timeframe:   strings.TrimSpace(r.Timeframe),
		Measurements: datatypes.NewJSONType(models.Measurements{
			Bust:            trimmed(m.Bust),
			Waist:           trimmed(m.Waist),
			Hips:            trimmed(m.Hips),
			Height:          trimmed(m.Height),
			ShoulderToWaist: trimmed(m.ShoulderToWaist),
			WaistToHem:      trimmed(m.WaistToHem),
		}),
		SpecialRequirements: optional(r.SpecialRequirements),
		ReferralSource:      optional(r.ReferralSource),
	}
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

type CreateOrderResponse struct {
	Success bool `json:"success" example:"true"`
	OrderID uint `json:"orderId" example:"1"`
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" validate:"required,is-order-status" example:"in-progress"`
}
