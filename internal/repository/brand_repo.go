package repository

import (
	"context"

	"warrantly/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BrandRepository struct {
	db *gorm.DB
}

func NewBrandRepository(db *gorm.DB) *BrandRepository {
	return &BrandRepository{db: db}
}

func (r *BrandRepository) Create(ctx context.Context, brand *domain.Brand) error {
	if brand.ID == "" {
		brand.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(brand).Error
}

func (r *BrandRepository) GetByID(ctx context.Context, id string) (*domain.Brand, error) {
	var brand domain.Brand
	if err := r.db.WithContext(ctx).First(&brand, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *BrandRepository) GetByName(ctx context.Context, name string) (*domain.Brand, error) {
	var brand domain.Brand
	if err := r.db.WithContext(ctx).First(&brand, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &brand, nil
}

// GetAll returns brands sorted alphabetically by name.
func (r *BrandRepository) GetAll(ctx context.Context) ([]domain.Brand, error) {
	var brands []domain.Brand
	err := r.db.WithContext(ctx).Order("name ASC").Find(&brands).Error
	return brands, err
}

func (r *BrandRepository) Update(ctx context.Context, brand *domain.Brand) error {
	return r.db.WithContext(ctx).Save(brand).Error
}
