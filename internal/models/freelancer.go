package models

// Freelancer is an application from a seamstress or designer who wants to work with the studio.
type Freelancer struct {
	ID             uint             `gorm:"primaryKey" json:"id"`
	FirstName      string           `gorm:"not null" json:"firstName"`
	LastName       string           `gorm:"not null" json:"lastName"`
	Email          string           `gorm:"not null;size:320;index" json:"email"`
	Phone          string           `gorm:"not null" json:"phone"`
	Specialization string           `gorm:"not null" json:"specialization"`
	Experience     string           `gorm:"not null" json:"experience"`
	Location       string           `gorm:"not null" json:"location"`
	PortfolioURL   *string          `gorm:"column:portfolio_url" json:"portfolioUrl"`
	Bio            string           `gorm:"type:text;not null" json:"bio"`
	Availability   string           `gorm:"not null" json:"availability"`
	CreatedAt      string           `gorm:"not null" json:"createdAt"`
	Status         FreelancerStatus `gorm:"type:varchar(32);not null;default:'pending';index" json:"status"`
}

func (Freelancer) TableName() string {
	return "freelancers"
}
