package notification

import (
	"context"
	"errors"
	"time"

	"warrantly/internal/domain"
	"warrantly/internal/warranty"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type Service struct {
	notifications NotificationRepo
	products      ProductGate
	hub           *Hub
	logger        zerolog.Logger
}

func NewService(notifications NotificationRepo, products ProductGate, hub *Hub, logger zerolog.Logger) *Service {
	return &Service{
		notifications: notifications,
		products:      products,
		hub:           hub,
		logger:        logger,
	}
}

func (s *Service) ListByProduct(ctx context.Context, productID string) ([]domain.Notification, error) {
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.notifications.GetByProduct(ctx, productID)
}

func (s *Service) ListUnsent(ctx context.Context) ([]domain.Notification, error) {
	return s.notifications.GetUnsent(ctx)
}

// dueType maps a warranty status onto the reminder tier it has entered, or ""
// when the product is not yet inside any reminder window.
func dueType(status warranty.Status) domain.NotificationType {
	switch {
	case status.Expired:
		return domain.NotifExpired
	case status.DaysRemaining <= 30:
		return domain.Notif30Days
	case status.DaysRemaining <= 60:
		return domain.Notif60Days
	case status.DaysRemaining <= 90:
		return domain.Notif90Days
	}
	return ""
}

// GenerateDue scans every product and creates the reminder for the tier it
// currently sits in. A product only ever gets one reminder per tier, so
// running the sweep repeatedly is safe.
func (s *Service) GenerateDue(ctx context.Context, now time.Time) ([]domain.Notification, error) {
	products, err := s.products.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var created []domain.Notification
	for _, product := range products {
		status := warranty.ComputeStatus(product.WarrantyExpiration, now)
		t := dueType(status)
		if t == "" {
			continue
		}

		exists, err := s.notifications.Exists(ctx, product.ID, t)
		if err != nil {
			return created, err
		}
		if exists {
			continue
		}

		n := domain.Notification{
			ProductID: product.ID,
			Type:      t,
		}
		if err := s.notifications.Create(ctx, &n); err != nil {
			return created, err
		}

		s.logger.Info().
			Str("product_id", product.ID).
			Str("type", string(t)).
			Int("days_remaining", status.DaysRemaining).
			Msg("warranty reminder created")

		created = append(created, n)
	}
	return created, nil
}

// Dispatch pushes every unsent reminder to connected clients and marks it
// sent. Returns the dispatched notifications.
func (s *Service) Dispatch(ctx context.Context, now time.Time) ([]domain.Notification, error) {
	unsent, err := s.notifications.GetUnsent(ctx)
	if err != nil {
		return nil, err
	}

	var dispatched []domain.Notification
	for _, n := range unsent {
		reached := 0
		if s.hub != nil {
			reached = s.hub.Broadcast(n)
		}

		ok, err := s.notifications.MarkSent(ctx, n.ID, now)
		if err != nil {
			return dispatched, err
		}
		if !ok {
			continue
		}

		s.logger.Info().
			Str("notification_id", n.ID).
			Str("product_id", n.ProductID).
			Str("type", string(n.Type)).
			Int("clients", reached).
			Msg("warranty reminder dispatched")

		sentAt := now
		n.Sent = true
		n.SentAt = &sentAt
		dispatched = append(dispatched, n)
	}
	return dispatched, nil
}

// MarkSent flags a single reminder as delivered outside the sweep, e.g. after
// a client acknowledged it.
func (s *Service) MarkSent(ctx context.Context, id string) error {
	ok, err := s.notifications.MarkSent(ctx, id, time.Now().UTC())
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
