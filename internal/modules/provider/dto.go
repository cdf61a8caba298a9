package provider

import "warrantly/internal/domain"

type CreateProviderRequest struct {
	Name              string          `json:"name" validate:"required"`
	Email             string          `json:"email" validate:"required,email"`
	Phone             string          `json:"phone,omitempty"`
	Website           string          `json:"website,omitempty" validate:"omitempty,url"`
	Address           string          `json:"address" validate:"required"`
	City              string          `json:"city" validate:"required"`
	District          domain.District `json:"district" validate:"required"`
	SupportedBrandIDs []string        `json:"supported_brand_ids,omitempty"`
}

type UpdateProviderRequest struct {
	Name              *string          `json:"name,omitempty"`
	Email             *string          `json:"email,omitempty" validate:"omitempty,email"`
	Phone             *string          `json:"phone,omitempty"`
	Website           *string          `json:"website,omitempty"`
	Address           *string          `json:"address,omitempty"`
	City              *string          `json:"city,omitempty"`
	District          *domain.District `json:"district,omitempty"`
	SupportedBrandIDs *[]string        `json:"supported_brand_ids,omitempty"`
}

type CreateProviderReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment,omitempty"`
}

// ProviderWithReviews joins a provider with its reviews and a derived
// 1-decimal average. The derived value carries more precision than the
// persisted integer AverageRating; precision-sensitive displays should use
// it.
type ProviderWithReviews struct {
	domain.ServiceProvider
	Reviews        []domain.ServiceProviderReview `json:"reviews"`
	DerivedAverage float64                        `json:"derived_average"`
}
