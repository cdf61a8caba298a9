package analytics

import (
	"context"

	"warrantly/internal/domain"
)

type ProductGate interface {
	GetAll(ctx context.Context) ([]domain.Product, error)
}

type BrandGate interface {
	GetAll(ctx context.Context) ([]domain.Brand, error)
}

type ReviewGate interface {
	GetAll(ctx context.Context) ([]domain.Review, error)
}

type ProviderGate interface {
	GetAll(ctx context.Context, district domain.District) ([]domain.ServiceProvider, error)
}

type ProviderReviewGate interface {
	GetAll(ctx context.Context) ([]domain.ServiceProviderReview, error)
}
