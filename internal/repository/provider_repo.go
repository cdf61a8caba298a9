package repository

import (
	"context"

	"warrantly/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProviderRepository struct {
	db *gorm.DB
}

func NewProviderRepository(db *gorm.DB) *ProviderRepository {
	return &ProviderRepository{db: db}
}

func (r *ProviderRepository) Create(ctx context.Context, provider *domain.ServiceProvider) error {
	if provider.ID == "" {
		provider.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(provider).Error
}

func (r *ProviderRepository) GetByID(ctx context.Context, id string) (*domain.ServiceProvider, error) {
	var provider domain.ServiceProvider
	if err := r.db.WithContext(ctx).First(&provider, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &provider, nil
}

// GetAll returns providers sorted by persisted average rating, best first.
// An empty district matches every district.
func (r *ProviderRepository) GetAll(ctx context.Context, district domain.District) ([]domain.ServiceProvider, error) {
	var providers []domain.ServiceProvider

	q := r.db.WithContext(ctx).Order("average_rating DESC")
	if district != "" {
		q = q.Where("district = ?", district)
	}

	err := q.Find(&providers).Error
	return providers, err
}

func (r *ProviderRepository) Update(ctx context.Context, provider *domain.ServiceProvider) error {
	return r.db.WithContext(ctx).Save(provider).Error
}

// UpdateAverageRating persists the recomputed integer rating rollup.
func (r *ProviderRepository) UpdateAverageRating(ctx context.Context, id string, rating int) error {
	return r.db.WithContext(ctx).
		Model(&domain.ServiceProvider{}).
		Where("id = ?", id).
		Update("average_rating", rating).Error
}

// Delete removes the provider and cascades to its reviews in one transaction.
// Returns false when the provider does not exist.
func (r *ProviderRepository) Delete(ctx context.Context, id string) (bool, error) {
	found := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&domain.ServiceProvider{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		found = true

		return tx.Delete(&domain.ServiceProviderReview{}, "provider_id = ?", id).Error
	})
	return found, err
}
