package support

import "warrantly/internal/domain"

type CreateSupportRequest struct {
	IssueDescription string                 `json:"issue_description" validate:"required"`
	Category         domain.SupportCategory `json:"category" validate:"required"`
	Severity         domain.SupportSeverity `json:"severity" validate:"required"`
	Country          string                 `json:"country,omitempty" validate:"omitempty,len=2"`
}

type UpdateStatusRequest struct {
	Status domain.SupportStatus `json:"status" validate:"required"`
}
