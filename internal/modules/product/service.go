package product

import (
	"context"
	"errors"
	"time"

	"warrantly/internal/domain"
	"warrantly/internal/warranty"

	"gorm.io/gorm"
)

type Service struct {
	products ProductRepo
	brands   BrandGate
	reviews  ReviewGate
	support  SupportGate

	// strictRefs surfaces dangling brand references in list projections
	// instead of silently dropping the affected products.
	strictRefs bool
}

func NewService(products ProductRepo, brands BrandGate, reviews ReviewGate, support SupportGate, strictRefs bool) *Service {
	return &Service{
		products:   products,
		brands:     brands,
		reviews:    reviews,
		support:    support,
		strictRefs: strictRefs,
	}
}

// Create registers a product and derives its warranty expiration from the
// purchase date.
func (s *Service) Create(ctx context.Context, req CreateProductRequest) (*domain.Product, error) {
	if len(req.Photos) > domain.MaxProductPhotos {
		return nil, ErrTooManyPhotos
	}

	if _, err := s.brands.GetByID(ctx, req.BrandID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBrandNotFound
		}
		return nil, err
	}

	p := &domain.Product{
		BrandID:            req.BrandID,
		Name:               req.Name,
		Model:              req.Model,
		SerialNumber:       req.SerialNumber,
		Category:           req.Category,
		PurchaseDate:       req.PurchaseDate,
		WarrantyExpiration: warranty.DefaultExpiration(req.PurchaseDate),
		ReceiptURL:         req.ReceiptURL,
		Photos:             req.Photos,
		Notes:              req.Notes,
	}

	if err := s.products.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Get returns the full product projection: brand, reviews, support requests
// and derived warranty status. A product whose brand no longer exists is
// reported as a dangling reference.
func (s *Service) Get(ctx context.Context, id string) (*ProductWithDetails, error) {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	withBrand, err := s.withBrand(ctx, *p)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviews.GetByProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	requests, err := s.support.GetByProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ProductWithDetails{
		ProductWithBrand: *withBrand,
		Reviews:          reviews,
		SupportRequests:  requests,
	}, nil
}

// List projects all products with their brands, newest purchase first.
// Products with a dangling brand reference are dropped, unless the service
// runs in strict mode, in which case the dangling reference is an error.
func (s *Service) List(ctx context.Context) ([]ProductWithBrand, error) {
	products, err := s.products.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]ProductWithBrand, 0, len(products))
	for _, p := range products {
		withBrand, err := s.withBrand(ctx, p)
		if err != nil {
			if errors.Is(err, ErrDanglingReference) && !s.strictRefs {
				continue
			}
			return nil, err
		}
		out = append(out, *withBrand)
	}
	return out, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateProductRequest) (*domain.Product, error) {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Model != nil {
		p.Model = *req.Model
	}
	if req.SerialNumber != nil {
		p.SerialNumber = *req.SerialNumber
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.PurchaseDate != nil {
		p.PurchaseDate = *req.PurchaseDate
		// The derived expiration follows the purchase date as long as no
		// extension overrides it.
		if !p.HasExtension {
			p.WarrantyExpiration = warranty.DefaultExpiration(p.PurchaseDate)
		}
	}
	if req.Photos != nil {
		if len(*req.Photos) > domain.MaxProductPhotos {
			return nil, ErrTooManyPhotos
		}
		p.Photos = *req.Photos
	}
	if req.ReceiptURL != nil {
		p.ReceiptURL = *req.ReceiptURL
	}
	if req.Notes != nil {
		p.Notes = *req.Notes
	}

	if err := s.products.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Extend grants an insurance extension. The extension date must push the
// expiration past the computed default term.
func (s *Service) Extend(ctx context.Context, id string, req ExtendWarrantyRequest) (*domain.Product, error) {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !req.ExtendedExpirationDate.After(warranty.DefaultExpiration(p.PurchaseDate)) {
		return nil, ErrExtensionTooEarly
	}

	warranty.ApplyExtension(p, warranty.Extension{
		ExpirationDate:    req.ExtendedExpirationDate,
		InsuranceProvider: req.InsuranceProvider,
		AgentName:         req.AgentName,
		PolicyNumber:      req.PolicyNumber,
		Cost:              req.ExtensionCost,
	})

	if err := s.products.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes the product and its reviews and support requests. Deleting
// an unknown id reports ErrNotFound, so a second delete is a clean miss.
func (s *Service) Delete(ctx context.Context, id string) error {
	found, err := s.products.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

func (s *Service) withBrand(ctx context.Context, p domain.Product) (*ProductWithBrand, error) {
	b, err := s.brands.GetByID(ctx, p.BrandID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDanglingReference
		}
		return nil, err
	}

	return &ProductWithBrand{
		Product:  p,
		Brand:    b,
		Warranty: warranty.ComputeStatus(p.WarrantyExpiration, time.Now()),
	}, nil
}
