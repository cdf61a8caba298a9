package repository

import (
	"context"
	"time"

	"warrantly/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *NotificationRepository) GetByProduct(ctx context.Context, productID string) ([]domain.Notification, error) {
	var notifications []domain.Notification
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

func (r *NotificationRepository) GetUnsent(ctx context.Context) ([]domain.Notification, error) {
	var notifications []domain.Notification
	err := r.db.WithContext(ctx).
		Where("sent = ?", false).
		Order("created_at ASC").
		Find(&notifications).Error
	return notifications, err
}

// Exists reports whether a reminder of this type was already created for the
// product. Keeps the reminder sweep idempotent.
func (r *NotificationRepository) Exists(ctx context.Context, productID string, t domain.NotificationType) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Notification{}).
		Where("product_id = ? AND type = ?", productID, t).
		Count(&count).Error
	return count > 0, err
}

// MarkSent flags the notification as dispatched. Returns false when the id
// is unknown.
func (r *NotificationRepository) MarkSent(ctx context.Context, id string, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.Notification{}).
		Where("id = ?", id).
		Updates(map[string]any{"sent": true, "sent_at": at})
	return res.RowsAffected > 0, res.Error
}
