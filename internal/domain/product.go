package domain

import "time"

const MaxProductPhotos = 5

// Product is a purchased item registered under a brand. WarrantyExpiration is
// derived at creation time (purchase date + default term) and overridden when
// an insurance extension is granted.
type Product struct {
	ID           string    `json:"id" gorm:"primaryKey;size:36"`
	BrandID      string    `json:"brand_id" gorm:"size:36;not null;index"`
	Name         string    `json:"name" gorm:"size:180;not null"`
	Model        string    `json:"model" gorm:"size:140"`
	SerialNumber string    `json:"serial_number,omitempty" gorm:"size:100"`
	Category     string    `json:"category,omitempty" gorm:"size:100"`
	PurchaseDate time.Time `json:"purchase_date" gorm:"index"`

	WarrantyExpiration time.Time `json:"warranty_expiration"`

	ReceiptURL string   `json:"receipt_url,omitempty"`
	Photos     []string `json:"photos,omitempty" gorm:"serializer:json"`
	Notes      string   `json:"notes,omitempty" gorm:"type:text"`

	// Extension sub-state. When HasExtension is set, WarrantyExpiration
	// mirrors ExtendedExpirationDate.
	HasExtension           bool       `json:"has_extension"`
	ExtendedExpirationDate *time.Time `json:"extended_expiration_date,omitempty"`
	InsuranceProvider      string     `json:"insurance_provider,omitempty" gorm:"size:140"`
	AgentName              string     `json:"agent_name,omitempty" gorm:"size:140"`
	PolicyNumber           string     `json:"policy_number,omitempty" gorm:"size:100"`
	ExtensionCost          int64      `json:"extension_cost"` // smallest currency unit

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}
