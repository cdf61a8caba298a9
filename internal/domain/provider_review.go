package domain

import "time"

// ServiceProviderReview rates a service provider 1..5. Creating one triggers
// recomputation of the parent provider's AverageRating.
type ServiceProviderReview struct {
	ID         string `json:"id" gorm:"primaryKey;size:36"`
	ProviderID string `json:"provider_id" gorm:"size:36;not null;index"`
	Rating     int    `json:"rating" gorm:"not null"`
	Comment    string `json:"comment,omitempty" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
}

func (ServiceProviderReview) TableName() string {
	return "service_provider_reviews"
}
