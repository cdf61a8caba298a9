package product

import (
	"context"

	"warrantly/internal/domain"
)

type ProductRepo interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	GetAll(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) (bool, error)
}

type BrandGate interface {
	GetByID(ctx context.Context, id string) (*domain.Brand, error)
}

type ReviewGate interface {
	GetByProduct(ctx context.Context, productID string) ([]domain.Review, error)
}

type SupportGate interface {
	GetByProduct(ctx context.Context, productID string) ([]domain.SupportRequest, error)
}
