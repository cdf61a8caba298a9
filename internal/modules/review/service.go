package review

import (
	"context"
	"errors"

	"warrantly/internal/domain"

	"gorm.io/gorm"
)

type ReviewRepo interface {
	Create(ctx context.Context, review *domain.Review) error
	GetByProduct(ctx context.Context, productID string) ([]domain.Review, error)
}

type ProductGate interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

type Service struct {
	reviews  ReviewRepo
	products ProductGate
}

func NewService(reviews ReviewRepo, products ProductGate) *Service {
	return &Service{reviews: reviews, products: products}
}

// Create adds an immutable review to a product. There is no update path.
func (s *Service) Create(ctx context.Context, productID string, req CreateReviewRequest) (*domain.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRequest
	}

	if _, err := s.products.GetByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	rv := &domain.Review{
		ProductID: productID,
		Rating:    req.Rating,
		Title:     req.Title,
		Content:   req.Content,
		Pros:      req.Pros,
		Cons:      req.Cons,
		Recommend: req.Recommend,
	}

	if err := s.reviews.Create(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *Service) GetByProduct(ctx context.Context, productID string) ([]domain.Review, error) {
	return s.reviews.GetByProduct(ctx, productID)
}
