package provider

import (
	"context"
	"errors"
	"math"

	"warrantly/internal/domain"

	"gorm.io/gorm"
)

type ProviderRepo interface {
	Create(ctx context.Context, provider *domain.ServiceProvider) error
	GetByID(ctx context.Context, id string) (*domain.ServiceProvider, error)
	GetAll(ctx context.Context, district domain.District) ([]domain.ServiceProvider, error)
	Update(ctx context.Context, provider *domain.ServiceProvider) error
	UpdateAverageRating(ctx context.Context, id string, rating int) error
	Delete(ctx context.Context, id string) (bool, error)
}

type ReviewRepo interface {
	Create(ctx context.Context, review *domain.ServiceProviderReview) error
	GetByProvider(ctx context.Context, providerID string) ([]domain.ServiceProviderReview, error)
}

type Service struct {
	providers ProviderRepo
	reviews   ReviewRepo
}

func NewService(providers ProviderRepo, reviews ReviewRepo) *Service {
	return &Service{providers: providers, reviews: reviews}
}

func (s *Service) Create(ctx context.Context, req CreateProviderRequest) (*domain.ServiceProvider, error) {
	if !req.District.Valid() {
		return nil, ErrInvalidDistrict
	}

	p := &domain.ServiceProvider{
		Name:              req.Name,
		Email:             req.Email,
		Phone:             req.Phone,
		Website:           req.Website,
		Address:           req.Address,
		City:              req.City,
		District:          req.District,
		SupportedBrandIDs: req.SupportedBrandIDs,
	}

	if err := s.providers.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Get returns the provider joined with its reviews and the derived decimal
// average.
func (s *Service) Get(ctx context.Context, id string) (*ProviderWithReviews, error) {
	p, err := s.providers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	reviews, err := s.reviews.GetByProvider(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ProviderWithReviews{
		ServiceProvider: *p,
		Reviews:         reviews,
		DerivedAverage:  meanRating1(reviews),
	}, nil
}

// List returns providers best-rated first, optionally narrowed to a district.
func (s *Service) List(ctx context.Context, district domain.District) ([]domain.ServiceProvider, error) {
	if district != "" && !district.Valid() {
		return nil, ErrInvalidDistrict
	}
	return s.providers.GetAll(ctx, district)
}

func (s *Service) Update(ctx context.Context, id string, req UpdateProviderRequest) (*domain.ServiceProvider, error) {
	p, err := s.providers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.District != nil {
		if !req.District.Valid() {
			return nil, ErrInvalidDistrict
		}
		p.District = *req.District
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Email != nil {
		p.Email = *req.Email
	}
	if req.Phone != nil {
		p.Phone = *req.Phone
	}
	if req.Website != nil {
		p.Website = *req.Website
	}
	if req.Address != nil {
		p.Address = *req.Address
	}
	if req.City != nil {
		p.City = *req.City
	}
	if req.SupportedBrandIDs != nil {
		p.SupportedBrandIDs = *req.SupportedBrandIDs
	}

	if err := s.providers.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes the provider and cascades to its reviews.
func (s *Service) Delete(ctx context.Context, id string) error {
	found, err := s.providers.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

// AddReview stores a review and recomputes the provider's persisted integer
// average over all of its reviews. The rollup is recomputed from scratch each
// time, never incrementally averaged.
func (s *Service) AddReview(ctx context.Context, providerID string, req CreateProviderReviewRequest) (*domain.ServiceProviderReview, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRequest
	}

	if _, err := s.providers.GetByID(ctx, providerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rv := &domain.ServiceProviderReview{
		ProviderID: providerID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}
	if err := s.reviews.Create(ctx, rv); err != nil {
		return nil, err
	}

	reviews, err := s.reviews.GetByProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}

	rounded := int(math.Round(meanRating(reviews)))
	if err := s.providers.UpdateAverageRating(ctx, providerID, rounded); err != nil {
		return nil, err
	}

	return rv, nil
}

func (s *Service) GetReviews(ctx context.Context, providerID string) ([]domain.ServiceProviderReview, error) {
	return s.reviews.GetByProvider(ctx, providerID)
}

func meanRating(reviews []domain.ServiceProviderReview) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, rv := range reviews {
		sum += rv.Rating
	}
	return float64(sum) / float64(len(reviews))
}

func meanRating1(reviews []domain.ServiceProviderReview) float64 {
	return math.Round(meanRating(reviews)*10) / 10
}
