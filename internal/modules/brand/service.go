package brand

import (
	"context"
	"errors"

	"warrantly/internal/domain"

	"gorm.io/gorm"
)

type Repo interface {
	Create(ctx context.Context, brand *domain.Brand) error
	GetByID(ctx context.Context, id string) (*domain.Brand, error)
	GetByName(ctx context.Context, name string) (*domain.Brand, error)
	GetAll(ctx context.Context) ([]domain.Brand, error)
	Update(ctx context.Context, brand *domain.Brand) error
}

type Service struct {
	brands Repo
}

func NewService(brands Repo) *Service {
	return &Service{brands: brands}
}

func (s *Service) Create(ctx context.Context, req CreateBrandRequest) (*domain.Brand, error) {
	if _, err := s.brands.GetByName(ctx, req.Name); err == nil {
		return nil, ErrNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	b := &domain.Brand{
		Name:                 req.Name,
		LogoURL:              req.LogoURL,
		SupportEmail:         req.SupportEmail,
		SupportPhone:         req.SupportPhone,
		Website:              req.Website,
		Category:             req.Category,
		CountrySupportEmails: req.CountrySupportEmails,
	}

	if err := s.brands.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Brand, error) {
	b, err := s.brands.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) GetAll(ctx context.Context) ([]domain.Brand, error) {
	return s.brands.GetAll(ctx)
}

func (s *Service) Update(ctx context.Context, id string, req UpdateBrandRequest) (*domain.Brand, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != b.Name {
		if _, err := s.brands.GetByName(ctx, *req.Name); err == nil {
			return nil, ErrNameTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		b.Name = *req.Name
	}
	if req.LogoURL != nil {
		b.LogoURL = *req.LogoURL
	}
	if req.SupportEmail != nil {
		b.SupportEmail = *req.SupportEmail
	}
	if req.SupportPhone != nil {
		b.SupportPhone = *req.SupportPhone
	}
	if req.Website != nil {
		b.Website = *req.Website
	}
	if req.Category != nil {
		b.Category = *req.Category
	}
	if req.CountrySupportEmails != nil {
		b.CountrySupportEmails = *req.CountrySupportEmails
	}

	if err := s.brands.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}
