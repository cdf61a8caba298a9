package domain

import "time"

type SupportCategory string

const (
	SupportCategoryMalfunction SupportCategory = "malfunction"
	SupportCategoryDefect      SupportCategory = "defect"
	SupportCategoryDamage      SupportCategory = "damage"
	SupportCategoryOther       SupportCategory = "other"
)

func (c SupportCategory) Valid() bool {
	switch c {
	case SupportCategoryMalfunction, SupportCategoryDefect, SupportCategoryDamage, SupportCategoryOther:
		return true
	}
	return false
}

type SupportSeverity string

const (
	SeverityLow    SupportSeverity = "low"
	SeverityMedium SupportSeverity = "medium"
	SeverityHigh   SupportSeverity = "high"
)

func (s SupportSeverity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	}
	return false
}

type SupportStatus string

const (
	SupportStatusPending  SupportStatus = "pending"
	SupportStatusSent     SupportStatus = "sent"
	SupportStatusResolved SupportStatus = "resolved"
)

func (s SupportStatus) Valid() bool {
	switch s {
	case SupportStatusPending, SupportStatusSent, SupportStatusResolved:
		return true
	}
	return false
}

// SupportRequest is a support case filed against a product. Creating one
// renders a manufacturer e-mail and marks the request sent; pending and
// resolved are reachable only through explicit status updates.
type SupportRequest struct {
	ID               string          `json:"id" gorm:"primaryKey;size:36"`
	ProductID        string          `json:"product_id" gorm:"size:36;not null;index"`
	IssueDescription string          `json:"issue_description" gorm:"type:text;not null"`
	Category         SupportCategory `json:"category" gorm:"size:20;not null"`
	Severity         SupportSeverity `json:"severity" gorm:"size:10;not null"`
	Status           SupportStatus   `json:"status" gorm:"size:10;not null"`

	// Country selects a per-country brand support address when set.
	Country string `json:"country,omitempty" gorm:"size:2"`

	EmailSentAt *time.Time `json:"email_sent_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (SupportRequest) TableName() string {
	return "support_requests"
}
