package domain

import "time"

// ClientProfile holds the contact details used on support e-mails and
// warranty certificates. One profile per user; saves upsert.
type ClientProfile struct {
	ID          string `json:"id" gorm:"primaryKey;size:36"`
	UserID      string `json:"user_id" gorm:"size:36;not null;uniqueIndex"`
	FullName    string `json:"full_name" gorm:"size:180;not null"`
	Email       string `json:"email" gorm:"not null"`
	PhoneNumber string `json:"phone_number" gorm:"size:30"`
	TaxNumber   string `json:"tax_number,omitempty" gorm:"size:30"`
	Address     string `json:"address" gorm:"size:255"`
	City        string `json:"city" gorm:"size:100"`
	PostalCode  string `json:"postal_code,omitempty" gorm:"size:10"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ClientProfile) TableName() string {
	return "client_profiles"
}
