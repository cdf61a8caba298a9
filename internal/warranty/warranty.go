// Package warranty holds the pure warranty lifecycle computations: default
// expiration, extension overrides and days-remaining/status derivation.
package warranty

import (
	"math"
	"time"

	"warrantly/internal/domain"
)

const (
	// DefaultTermYears is the manufacturer warranty term applied at
	// product registration.
	DefaultTermYears = 3

	// ExpiringSoonDays is the display threshold below which a valid
	// warranty is flagged as expiring soon.
	ExpiringSoonDays = 90
)

// DefaultExpiration returns purchase + DefaultTermYears calendar years, same
// month and day. A Feb 29 purchase in a target year without a leap day is
// clamped to Feb 28 rather than normalized into March.
func DefaultExpiration(purchase time.Time) time.Time {
	year, month, day := purchase.Date()
	hour, min, sec := purchase.Clock()

	expiration := time.Date(year+DefaultTermYears, month, day, hour, min, sec, purchase.Nanosecond(), purchase.Location())
	if expiration.Month() != month {
		// Date normalized past the end of the target month; back up to
		// its last valid day.
		expiration = expiration.AddDate(0, 0, -expiration.Day())
	}
	return expiration
}

// Extension is an insurance-backed override of the default warranty period.
type Extension struct {
	ExpirationDate    time.Time
	InsuranceProvider string
	AgentName         string
	PolicyNumber      string
	Cost              int64
}

// ApplyExtension overwrites the product's warranty expiration with the
// extension date and records the extension metadata. Any previously computed
// expiration is discarded. Monotonicity against the default expiration is the
// caller's concern; see Product service.
func ApplyExtension(p *domain.Product, ext Extension) {
	date := ext.ExpirationDate
	p.HasExtension = true
	p.WarrantyExpiration = date
	p.ExtendedExpirationDate = &date
	p.InsuranceProvider = ext.InsuranceProvider
	p.AgentName = ext.AgentName
	p.PolicyNumber = ext.PolicyNumber
	p.ExtensionCost = ext.Cost
}

const (
	LabelValid        = "valid"
	LabelExpiringSoon = "expiring_soon"
	LabelExpired      = "expired"
)

// Status is the derived warranty state at a point in time. DaysRemaining
// keeps its sign for status determination; DisplayDays is the user-facing
// value clamped to zero.
type Status struct {
	DaysRemaining int    `json:"days_remaining"`
	DisplayDays   int    `json:"display_days"`
	Expired       bool   `json:"expired"`
	Label         string `json:"label"`
}

// ComputeStatus derives the warranty status of an expiration date relative
// to now. DaysRemaining is the ceiling of the day difference, so a warranty
// expiring later today still counts one remaining day.
func ComputeStatus(expiration, now time.Time) Status {
	days := int(math.Ceil(expiration.Sub(now).Hours() / 24))
	expired := expiration.Before(now)

	display := days
	if display < 0 {
		display = 0
	}

	label := LabelValid
	switch {
	case expired:
		label = LabelExpired
	case days <= ExpiringSoonDays:
		label = LabelExpiringSoon
	}

	return Status{
		DaysRemaining: days,
		DisplayDays:   display,
		Expired:       expired,
		Label:         label,
	}
}
