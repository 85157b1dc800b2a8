package models

import "gorm.io/datatypes"

// Measurements are free-text body measurements supplied with a custom order.
type Measurements struct {
	Bust            string `json:"bust"`
	Waist           string `json:"waist"`
	Hips            string `json:"hips"`
	Height          string `json:"height"`
	ShoulderToWaist string `json:"shoulderToWaist"`
	WaistToHem      string `json:"waistToHem"`
}

// Order is a custom dress order submitted from the order form.
type Order struct {
	ID                  uint                             `gorm:"primaryKey" json:"id"`
	FirstName           string                           `gorm:"not null" json:"firstName"`
	LastName            string                           `gorm:"not null" json:"lastName"`
	Email               string                           `gorm:"not null;size:320;index" json:"email"`
	Phone               *string                          `json:"phone"`
	ServiceType         string                           `gorm:"not null" json:"serviceType"`
	Budget              string                           `gorm:"not null" json:"budget"`
	Timeframe           string                           `gorm:"not null" json:"timeframe"`
	Measurements        datatypes.JSONType[Measurements] `gorm:"not null" json:"measurements"`
	SpecialRequirements *string                          `json:"specialRequirements"`
	ReferralSource      *string                          `json:"referralSource"`
	CreatedAt           string                           `gorm:"not null" json:"createdAt"`
	Status              OrderStatus                      `gorm:"type:varchar(32);not null;default:'pending';index" json:"status"`
}

func (Order) TableName() string {
	return "orders"
}
