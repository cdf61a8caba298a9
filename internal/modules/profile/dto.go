package profile

type SaveProfileRequest struct {
	FullName    string `json:"full_name" validate:"required,min=2,max=180"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,max=30"`
	TaxNumber   string `json:"tax_number" validate:"omitempty,max=30"`
	Address     string `json:"address" validate:"omitempty,max=255"`
	City        string `json:"city" validate:"omitempty,max=100"`
	PostalCode  string `json:"postal_code" validate:"omitempty,max=10"`
}
