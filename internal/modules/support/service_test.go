package support

import (
	"context"
	"testing"
	"time"

	"warrantly/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockSupportRepo struct {
	mock.Mock
}

func (m *MockSupportRepo) Create(ctx context.Context, req *domain.SupportRequest) error {
	args := m.Called(ctx, req)
	if req != nil && req.ID == "" {
		req.ID = "sr-1"
	}
	return args.Error(0)
}

func (m *MockSupportRepo) GetByID(ctx context.Context, id string) (*domain.SupportRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SupportRequest), args.Error(1)
}

func (m *MockSupportRepo) GetByProduct(ctx context.Context, productID string) ([]domain.SupportRequest, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).([]domain.SupportRequest), args.Error(1)
}

func (m *MockSupportRepo) Update(ctx context.Context, req *domain.SupportRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

type MockProductGate struct {
	mock.Mock
}

func (m *MockProductGate) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

type MockBrandGate struct {
	mock.Mock
}

func (m *MockBrandGate) GetByID(ctx context.Context, id string) (*domain.Brand, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Brand), args.Error(1)
}

func testProduct() *domain.Product {
	return &domain.Product{
		ID:                 "prod-1",
		BrandID:            "brand-1",
		Name:               "Widget",
		Model:              "W-100",
		SerialNumber:       "SN-42",
		PurchaseDate:       time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC),
		WarrantyExpiration: time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC),
	}
}

func testBrand() *domain.Brand {
	return &domain.Brand{
		ID:           "brand-1",
		Name:         "Acme",
		SupportEmail: "svc@acme.test",
		CountrySupportEmails: map[string]string{
			"DE": "svc-de@acme.test",
		},
	}
}

func TestService_Create_MarksSentImmediately(t *testing.T) {
	requests := new(MockSupportRepo)
	products := new(MockProductGate)
	brands := new(MockBrandGate)
	svc := NewService(requests, products, brands)

	products.On("GetByID", mock.Anything, "prod-1").Return(testProduct(), nil)
	brands.On("GetByID", mock.Anything, "brand-1").Return(testBrand(), nil)
	requests.On("Create", mock.Anything, mock.Anything).Return(nil)

	sr, err := svc.Create(context.Background(), "prod-1", CreateSupportRequest{
		IssueDescription: "Screen flickers after an hour of use",
		Category:         domain.SupportCategoryMalfunction,
		Severity:         domain.SeverityHigh,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.SupportStatusSent, sr.Status)
	require.NotNil(t, sr.EmailSentAt)
	requests.AssertExpectations(t)
}

func TestService_Create_RejectsUnknownEnums(t *testing.T) {
	svc := NewService(new(MockSupportRepo), new(MockProductGate), new(MockBrandGate))

	_, err := svc.Create(context.Background(), "prod-1", CreateSupportRequest{
		IssueDescription: "Broken",
		Category:         "explosion",
		Severity:         domain.SeverityLow,
	})

	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestService_Create_UnknownProduct(t *testing.T) {
	requests := new(MockSupportRepo)
	products := new(MockProductGate)
	svc := NewService(requests, products, new(MockBrandGate))

	products.On("GetByID", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(context.Background(), "ghost", CreateSupportRequest{
		IssueDescription: "Broken",
		Category:         domain.SupportCategoryDefect,
		Severity:         domain.SeverityLow,
	})

	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestRenderEmail_AddressesBrandSupport(t *testing.T) {
	sr := &domain.SupportRequest{
		IssueDescription: "Does not switch on",
		Category:         domain.SupportCategoryDefect,
		Severity:         domain.SeverityMedium,
	}

	email, err := renderEmail(testBrand(), testProduct(), sr)

	require.NoError(t, err)
	assert.Equal(t, "svc@acme.test", email.To)
	assert.Equal(t, "Warranty support request: Widget", email.Subject)
	assert.Contains(t, email.Body, "Dear Acme support team")
	assert.Contains(t, email.Body, "Widget (W-100)")
	assert.Contains(t, email.Body, "Serial number: SN-42")
	assert.Contains(t, email.Body, "Purchase date: 2023-01-15")
	assert.Contains(t, email.Body, "Does not switch on")
}

func TestRenderEmail_CountryOverride(t *testing.T) {
	sr := &domain.SupportRequest{
		IssueDescription: "Kaputt",
		Category:         domain.SupportCategoryDamage,
		Severity:         domain.SeverityLow,
		Country:          "DE",
	}

	email, err := renderEmail(testBrand(), testProduct(), sr)

	require.NoError(t, err)
	assert.Equal(t, "svc-de@acme.test", email.To)
}

func TestService_UpdateStatus(t *testing.T) {
	requests := new(MockSupportRepo)
	svc := NewService(requests, new(MockProductGate), new(MockBrandGate))

	existing := &domain.SupportRequest{ID: "sr-1", Status: domain.SupportStatusSent}
	requests.On("GetByID", mock.Anything, "sr-1").Return(existing, nil)
	requests.On("Update", mock.Anything, mock.Anything).Return(nil)

	sr, err := svc.UpdateStatus(context.Background(), "sr-1", domain.SupportStatusResolved)

	require.NoError(t, err)
	assert.Equal(t, domain.SupportStatusResolved, sr.Status)

	_, err = svc.UpdateStatus(context.Background(), "sr-1", "archived")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
