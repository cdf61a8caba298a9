package repository

import (
	"context"

	"warrantly/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProviderReviewRepository struct {
	db *gorm.DB
}

func NewProviderReviewRepository(db *gorm.DB) *ProviderReviewRepository {
	return &ProviderReviewRepository{db: db}
}

func (r *ProviderReviewRepository) Create(ctx context.Context, review *domain.ServiceProviderReview) error {
	if review.ID == "" {
		review.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(review).Error
}

// GetByProvider returns the provider's reviews newest first.
func (r *ProviderReviewRepository) GetByProvider(ctx context.Context, providerID string) ([]domain.ServiceProviderReview, error) {
	var reviews []domain.ServiceProviderReview
	err := r.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *ProviderReviewRepository) GetAll(ctx context.Context) ([]domain.ServiceProviderReview, error) {
	var reviews []domain.ServiceProviderReview
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}
