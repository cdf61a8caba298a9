package profile

import (
	"context"
	"errors"

	"warrantly/internal/domain"

	"gorm.io/gorm"
)

type ProfileRepo interface {
	GetByUserID(ctx context.Context, userID string) (*domain.ClientProfile, error)
	Save(ctx context.Context, profile *domain.ClientProfile) error
}

type Service struct {
	profiles ProfileRepo
}

func NewService(profiles ProfileRepo) *Service {
	return &Service{profiles: profiles}
}

func (s *Service) Get(ctx context.Context, userID string) (*domain.ClientProfile, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return profile, nil
}

// Save upserts the user's profile; the first save creates it.
func (s *Service) Save(ctx context.Context, userID string, req SaveProfileRequest) (*domain.ClientProfile, error) {
	profile := &domain.ClientProfile{
		UserID:      userID,
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		TaxNumber:   req.TaxNumber,
		Address:     req.Address,
		City:        req.City,
		PostalCode:  req.PostalCode,
	}
	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, err
	}
	return s.profiles.GetByUserID(ctx, userID)
}
