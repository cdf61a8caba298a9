package domain

import "time"

type NotificationType string

const (
	Notif90Days  NotificationType = "90days"
	Notif60Days  NotificationType = "60days"
	Notif30Days  NotificationType = "30days"
	NotifExpired NotificationType = "expired"
)

func (t NotificationType) Valid() bool {
	switch t {
	case Notif90Days, Notif60Days, Notif30Days, NotifExpired:
		return true
	}
	return false
}

// Notification is a scheduled warranty-expiration reminder for a product.
// Created by the reminder sweep, never by direct user action.
type Notification struct {
	ID        string           `json:"id" gorm:"primaryKey;size:36"`
	ProductID string           `json:"product_id" gorm:"size:36;not null;index"`
	Type      NotificationType `json:"type" gorm:"size:10;not null"`
	Sent      bool             `json:"sent" gorm:"index"`
	SentAt    *time.Time       `json:"sent_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
