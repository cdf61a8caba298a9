package domain

import "time"

// Brand is a manufacturer whose products can be registered for warranty
// tracking. Brands are seeded or registered explicitly and never deleted.
type Brand struct {
	ID           string `json:"id" gorm:"primaryKey;size:36"`
	Name         string `json:"name" gorm:"uniqueIndex;size:120;not null"`
	LogoURL      string `json:"logo_url,omitempty"`
	SupportEmail string `json:"support_email" gorm:"not null"`
	SupportPhone string `json:"support_phone,omitempty"`
	Website      string `json:"website,omitempty"`
	Category     string `json:"category,omitempty" gorm:"size:100"`

	// CountrySupportEmails overrides SupportEmail per ISO country code.
	CountrySupportEmails map[string]string `json:"country_support_emails,omitempty" gorm:"serializer:json"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Brand) TableName() string {
	return "brands"
}

// SupportEmailFor returns the support address for the given country code,
// falling back to the global support email.
func (b *Brand) SupportEmailFor(country string) string {
	if country != "" {
		if email, ok := b.CountrySupportEmails[country]; ok && email != "" {
			return email
		}
	}
	return b.SupportEmail
}
