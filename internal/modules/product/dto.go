package product

import (
	"time"

	"warrantly/internal/domain"
	"warrantly/internal/warranty"
)

type CreateProductRequest struct {
	BrandID      string    `json:"brand_id" validate:"required"`
	Name         string    `json:"name" validate:"required"`
	Model        string    `json:"model,omitempty"`
	SerialNumber string    `json:"serial_number,omitempty"`
	Category     string    `json:"category,omitempty"`
	PurchaseDate time.Time `json:"purchase_date" validate:"required"`
	ReceiptURL   string    `json:"receipt_url,omitempty" validate:"omitempty,url"`
	Photos       []string  `json:"photos,omitempty"`
	Notes        string    `json:"notes,omitempty"`
}

type UpdateProductRequest struct {
	Name         *string    `json:"name,omitempty"`
	Model        *string    `json:"model,omitempty"`
	SerialNumber *string    `json:"serial_number,omitempty"`
	Category     *string    `json:"category,omitempty"`
	PurchaseDate *time.Time `json:"purchase_date,omitempty"`
	ReceiptURL   *string    `json:"receipt_url,omitempty"`
	Photos       *[]string  `json:"photos,omitempty"`
	Notes        *string    `json:"notes,omitempty"`
}

type ExtendWarrantyRequest struct {
	ExtendedExpirationDate time.Time `json:"extended_expiration_date" validate:"required"`
	InsuranceProvider      string    `json:"insurance_provider" validate:"required"`
	AgentName              string    `json:"agent_name,omitempty"`
	PolicyNumber           string    `json:"policy_number,omitempty"`
	ExtensionCost          int64     `json:"extension_cost,omitempty" validate:"gte=0"`
}

// ProductWithBrand is the read-time projection of a product joined with its
// brand and derived warranty status. This is the minimal contract the
// certificate and report renderers consume.
type ProductWithBrand struct {
	domain.Product
	Brand    *domain.Brand   `json:"brand"`
	Warranty warranty.Status `json:"warranty"`
}

type ProductWithDetails struct {
	ProductWithBrand
	Reviews         []domain.Review         `json:"reviews"`
	SupportRequests []domain.SupportRequest `json:"support_requests"`
}
