package models

// User is an admin account. Not reachable over HTTP; created from the CLI.
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"not null;uniqueIndex;size:100" json:"username"`
	PasswordHash string `gorm:"column:password;not null" json:"-"`
}

func (User) TableName() string {
	return "users"
}
