package domain

import "time"

type FavoriteType string

const (
	FavoriteProduct  FavoriteType = "product"
	FavoriteProvider FavoriteType = "provider"
)

func (t FavoriteType) Valid() bool {
	return t == FavoriteProduct || t == FavoriteProvider
}

// Favorite marks a product or provider as favorited by a user. Toggled on and
// off rather than created/deleted explicitly.
type Favorite struct {
	ID       string       `json:"id" gorm:"primaryKey;size:36"`
	UserID   string       `json:"user_id" gorm:"size:36;not null;index;uniqueIndex:idx_user_target"`
	Type     FavoriteType `json:"type" gorm:"size:10;not null;uniqueIndex:idx_user_target"`
	TargetID string       `json:"target_id" gorm:"size:36;not null;uniqueIndex:idx_user_target"`

	CreatedAt time.Time `json:"created_at"`
}

func (Favorite) TableName() string {
	return "favorites"
}
