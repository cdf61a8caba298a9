package domain

import "time"

// Review is a product review. Reviews are immutable after creation and are
// removed together with their product.
type Review struct {
	ID        string   `json:"id" gorm:"primaryKey;size:36"`
	ProductID string   `json:"product_id" gorm:"size:36;not null;index"`
	Rating    int      `json:"rating" gorm:"not null"` // 1..5
	Title     string   `json:"title,omitempty" gorm:"size:180"`
	Content   string   `json:"content,omitempty" gorm:"type:text"`
	Pros      []string `json:"pros,omitempty" gorm:"serializer:json"`
	Cons      []string `json:"cons,omitempty" gorm:"serializer:json"`
	Recommend bool     `json:"recommend"`

	CreatedAt time.Time `json:"created_at"`
}

func (Review) TableName() string {
	return "reviews"
}
