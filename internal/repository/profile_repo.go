package repository

import (
	"context"

	"warrantly/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID string) (*domain.ClientProfile, error) {
	var profile domain.ClientProfile
	if err := r.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// Save creates the user's profile on first save and updates it afterwards,
// keyed by the user_id unique index.
func (r *ProfileRepository) Save(ctx context.Context, profile *domain.ClientProfile) error {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"full_name", "email", "phone_number", "tax_number",
				"address", "city", "postal_code", "updated_at",
			}),
		}).
		Create(profile).Error
}
