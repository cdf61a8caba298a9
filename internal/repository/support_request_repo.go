package repository

import (
	"context"

	"warrantly/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SupportRequestRepository struct {
	db *gorm.DB
}

func NewSupportRequestRepository(db *gorm.DB) *SupportRequestRepository {
	return &SupportRequestRepository{db: db}
}

func (r *SupportRequestRepository) Create(ctx context.Context, req *domain.SupportRequest) error {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *SupportRequestRepository) GetByID(ctx context.Context, id string) (*domain.SupportRequest, error) {
	var req domain.SupportRequest
	if err := r.db.WithContext(ctx).First(&req, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// GetByProduct returns the product's support requests newest first.
func (r *SupportRequestRepository) GetByProduct(ctx context.Context, productID string) ([]domain.SupportRequest, error) {
	var reqs []domain.SupportRequest
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

func (r *SupportRequestRepository) GetAll(ctx context.Context) ([]domain.SupportRequest, error) {
	var reqs []domain.SupportRequest
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&reqs).Error
	return reqs, err
}

func (r *SupportRequestRepository) Update(ctx context.Context, req *domain.SupportRequest) error {
	return r.db.WithContext(ctx).Save(req).Error
}
