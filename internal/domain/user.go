package domain

import "time"

// User is an account that owns favorites and a client profile. Kept minimal;
// registration and login live in the auth module.
type User struct {
	ID           string `json:"id" gorm:"primaryKey;size:36"`
	Email        string `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"not null"`
	FullName     string `json:"full_name" gorm:"size:180"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
