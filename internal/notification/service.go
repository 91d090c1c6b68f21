package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mwansa/consoleplug/internal/sale"
	"github.com/mwansa/consoleplug/internal/stock"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=notification
type Repository interface {
	CreateNotification(ctx context.Context, n *Notification) error
	ListNotifications(ctx context.Context, unreadOnly bool) ([]*Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context) error
}

// Service stores dashboard notifications and doubles as the event sink the
// stock and sale services publish to.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Add(ctx context.Context, kind Type, title, message string) (*Notification, error) {
	if title == "" {
		return nil, fmt.Errorf("title must not be empty")
	}

	switch kind {
	case TypeInfo, TypeSuccess, TypeWarning:
	default:
		return nil, fmt.Errorf("unknown notification type: %s", kind)
	}

	n := &Notification{Type: kind, Title: title, Message: message}

	if err := s.repo.CreateNotification(ctx, n); err != nil {
		return nil, err
	}

	return n, nil
}

func (s *Service) List(ctx context.Context, unreadOnly bool) ([]*Notification, error) {
	return s.repo.ListNotifications(ctx, unreadOnly)
}

func (s *Service) MarkRead(ctx context.Context, id uuid.UUID) error {
	return s.repo.MarkRead(ctx, id)
}

func (s *Service) MarkAllRead(ctx context.Context) error {
	return s.repo.MarkAllRead(ctx)
}

// SaleRecorded implements sale.Notifier. Failures are logged, never
// propagated; a lost notification must not fail the sale.
func (s *Service) SaleRecorded(ctx context.Context, sl *sale.Sale) {
	message := fmt.Sprintf("%d x %s for %s", sl.Quantity, sl.ProductName, kwacha(sl.TotalAmount))

	if _, err := s.Add(ctx, TypeSuccess, "Sale recorded", message); err != nil {
		slog.Error("failed to store sale notification", "error", err, "sale_id", sl.ID)
	}
}

// LowStock implements stock.Notifier and the stock half of sale.Notifier.
func (s *Service) LowStock(ctx context.Context, item *stock.Item) {
	message := fmt.Sprintf("%s is down to %d units", item.ProductName, item.Quantity)

	if _, err := s.Add(ctx, TypeWarning, "Low stock", message); err != nil {
		slog.Error("failed to store low stock notification", "error", err, "stock_id", item.ID)
	}
}

func kwacha(cents int64) string {
	return fmt.Sprintf("K%d.%02d", cents/100, cents%100)
}
