package repository

import (
	"context"

	"warrantly/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	var product domain.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// GetAll returns products sorted by purchase date, newest purchase first.
func (r *ProductRepository) GetAll(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.WithContext(ctx).Order("purchase_date DESC").Find(&products).Error
	return products, err
}

func (r *ProductRepository) GetByBrand(ctx context.Context, brandID string) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.WithContext(ctx).
		Where("brand_id = ?", brandID).
		Order("purchase_date DESC").
		Find(&products).Error
	return products, err
}

func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// Delete removes the product together with its reviews and support requests
// in one transaction, so a reported success never leaves orphaned children.
// Returns false when the product does not exist.
func (r *ProductRepository) Delete(ctx context.Context, id string) (bool, error) {
	found := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&domain.Product{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		found = true

		if err := tx.Delete(&domain.Review{}, "product_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.SupportRequest{}, "product_id = ?", id).Error
	})
	return found, err
}
