package support

import (
	"context"
	"errors"
	"time"

	"warrantly/internal/domain"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type SupportRepo interface {
	Create(ctx context.Context, req *domain.SupportRequest) error
	GetByID(ctx context.Context, id string) (*domain.SupportRequest, error)
	GetByProduct(ctx context.Context, productID string) ([]domain.SupportRequest, error)
	Update(ctx context.Context, req *domain.SupportRequest) error
}

type ProductGate interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

type BrandGate interface {
	GetByID(ctx context.Context, id string) (*domain.Brand, error)
}

type Service struct {
	requests SupportRepo
	products ProductGate
	brands   BrandGate
}

func NewService(requests SupportRepo, products ProductGate, brands BrandGate) *Service {
	return &Service{requests: requests, products: products, brands: brands}
}

// Create files a support request, renders the manufacturer e-mail and logs
// the simulated dispatch. The request is persisted as sent; pending exists in
// the status enum but is never a creation default.
func (s *Service) Create(ctx context.Context, productID string, req CreateSupportRequest) (*domain.SupportRequest, error) {
	if !req.Category.Valid() || !req.Severity.Valid() {
		return nil, ErrInvalidRequest
	}

	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	b, err := s.brands.GetByID(ctx, p.BrandID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	now := time.Now()
	sr := &domain.SupportRequest{
		ProductID:        productID,
		IssueDescription: req.IssueDescription,
		Category:         req.Category,
		Severity:         req.Severity,
		Country:          req.Country,
		Status:           domain.SupportStatusSent,
		EmailSentAt:      &now,
	}

	email, err := renderEmail(b, p, sr)
	if err != nil {
		return nil, err
	}

	// Dispatch is simulated; the rendered message is logged instead of
	// handed to a mail gateway.
	log.Info().
		Str("to", email.To).
		Str("subject", email.Subject).
		Str("product_id", productID).
		Str("severity", string(req.Severity)).
		Msg("support email dispatched")
	log.Debug().Str("body", email.Body).Msg("support email body")

	if err := s.requests.Create(ctx, sr); err != nil {
		return nil, err
	}
	return sr, nil
}

func (s *Service) GetByProduct(ctx context.Context, productID string) ([]domain.SupportRequest, error) {
	return s.requests.GetByProduct(ctx, productID)
}

// UpdateStatus sets the request status. Any of the three states can be set
// explicitly; there is no automatic progression to resolved.
func (s *Service) UpdateStatus(ctx context.Context, id string, status domain.SupportStatus) (*domain.SupportRequest, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	sr, err := s.requests.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	sr.Status = status
	if err := s.requests.Update(ctx, sr); err != nil {
		return nil, err
	}
	return sr, nil
}

// RenderEmail re-renders the manufacturer e-mail for an existing request,
// for preview surfaces.
func (s *Service) RenderEmail(ctx context.Context, id string) (*Email, error) {
	sr, err := s.requests.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	p, err := s.products.GetByID(ctx, sr.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	b, err := s.brands.GetByID(ctx, p.BrandID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	email, err := renderEmail(b, p, sr)
	if err != nil {
		return nil, err
	}
	return &email, nil
}
