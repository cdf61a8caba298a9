package brand

type CreateBrandRequest struct {
	Name                 string            `json:"name" validate:"required"`
	LogoURL              string            `json:"logo_url,omitempty" validate:"omitempty,url"`
	SupportEmail         string            `json:"support_email" validate:"required,email"`
	SupportPhone         string            `json:"support_phone,omitempty"`
	Website              string            `json:"website,omitempty" validate:"omitempty,url"`
	Category             string            `json:"category,omitempty"`
	CountrySupportEmails map[string]string `json:"country_support_emails,omitempty" validate:"omitempty,dive,email"`
}

type UpdateBrandRequest struct {
	Name                 *string            `json:"name,omitempty"`
	LogoURL              *string            `json:"logo_url,omitempty"`
	SupportEmail         *string            `json:"support_email,omitempty" validate:"omitempty,email"`
	SupportPhone         *string            `json:"support_phone,omitempty"`
	Website              *string            `json:"website,omitempty"`
	Category             *string            `json:"category,omitempty"`
	CountrySupportEmails *map[string]string `json:"country_support_emails,omitempty"`
}
