package models

type ContactMessage struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"not null" json:"name"`
	Email     string `gorm:"not null" json:"email"`
	Subject   string `gorm:"not null" json:"subject"`
	Message   string `gorm:"type:text;not null" json:"message"`
	CreatedAt string `gorm:"not null" json:"createdAt"`
	Read      bool   `gorm:"not null;default:false" json:"read"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}

type NewsletterSubscriber struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Email     string `gorm:"not null;uniqueIndex;size:320" json:"email"`
	CreatedAt string `gorm:"not null" json:"createdAt"`
}

func (NewsletterSubscriber) TableName() string {
	return "newsletter_subscribers"
}

// AllModels is the migration set, in dependency order.
func AllModels() []interface{} {
	return []interface{}{
		&User{},
		&PortfolioItem{},
		&Order{},
		&Freelancer{},
		&ContactMessage{},
		&NewsletterSubscriber{},
	}
}
