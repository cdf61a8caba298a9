package notification

import (
	"context"
	"time"

	"warrantly/internal/domain"
)

type NotificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) error
	GetByProduct(ctx context.Context, productID string) ([]domain.Notification, error)
	GetUnsent(ctx context.Context) ([]domain.Notification, error)
	Exists(ctx context.Context, productID string, t domain.NotificationType) (bool, error)
	MarkSent(ctx context.Context, id string, at time.Time) (bool, error)
}

type ProductGate interface {
	GetAll(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}
