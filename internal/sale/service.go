package sale

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mwansa/consoleplug/internal/dateutil"
	"github.com/mwansa/consoleplug/internal/stock"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=sale
type Repository interface {
	GetSale(ctx context.Context, id uuid.UUID) (*Sale, error)
	ListSales(ctx context.Context, filter ListFilter) ([]*Sale, error)

	BeginRecord(ctx context.Context) (RecordTx, error)
}

// RecordTx couples a sale mutation with its stock movement so the two
// cannot diverge.
type RecordTx interface {
	LockItem(ctx context.Context, stockID uuid.UUID) (*stock.Item, error)
	InsertSale(ctx context.Context, s *Sale) error
	MarkDeleted(ctx context.Context, id uuid.UUID) error
	AdjustStock(ctx context.Context, stockID uuid.UUID, delta int) error
	Commit() error
	Rollback() error
}

// Notifier receives sale events. Implementations must not block.
type Notifier interface {
	SaleRecorded(ctx context.Context, s *Sale)
	LowStock(ctx context.Context, item *stock.Item)
}

type Service struct {
	repo     Repository
	notifier Notifier
	now      func() time.Time
}

func NewService(repo Repository, notifier Notifier) *Service {
	return &Service{repo: repo, notifier: notifier, now: time.Now}
}

type RecordParams struct {
	StockID  uuid.UUID
	Quantity int
	Payment  PaymentMethod
	Notes    string
	Date     time.Time // zero value means today
}

type ListFilter struct {
	StockID   *uuid.UUID
	Payment   *PaymentMethod
	StartDate *time.Time
	EndDate   *time.Time
}

// Record validates the requested sale against current stock, snapshots the
// item's prices, and inserts the sale while decrementing the stock quantity
// in a single database transaction.
func (s *Service) Record(ctx context.Context, params RecordParams) (*Sale, error) {
	if params.Quantity <= 0 {
		return nil, fmt.Errorf("sale quantity must be positive")
	}

	if !params.Payment.Valid() {
		return nil, fmt.Errorf("unknown payment method: %s", params.Payment)
	}

	tx, err := s.repo.BeginRecord(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin record: %w", err)
	}
	defer tx.Rollback()

	item, err := tx.LockItem(ctx, params.StockID)
	if err != nil {
		return nil, fmt.Errorf("loading stock item: %w", err)
	}

	if item.Quantity < params.Quantity {
		return nil, fmt.Errorf("%w: %d available", stock.ErrInsufficientStock, item.Quantity)
	}

	now := s.now()

	date := params.Date
	if date.IsZero() {
		date = now
	}

	// The ledger keys on calendar days; the clock time goes in TimeOfDay.
	date = dateutil.Day(date)

	newSale := &Sale{
		StockID:      item.ID,
		ProductName:  item.ProductName,
		Category:     string(item.Category),
		Platform:     item.Platform,
		SerialNumber: item.SerialNumber,
		Quantity:     params.Quantity,
		BuyingPrice:  item.BuyingPrice,
		SellingPrice: item.SellingPrice,
		Payment:      params.Payment,
		Date:         date,
		TimeOfDay:    now.Format("03:04 PM"),
		Notes:        params.Notes,
	}
	newSale.TotalAmount, newSale.Profit = newSale.Derived()

	if err := tx.InsertSale(ctx, newSale); err != nil {
		return nil, fmt.Errorf("inserting sale: %w", err)
	}

	if err := tx.AdjustStock(ctx, item.ID, -params.Quantity); err != nil {
		return nil, fmt.Errorf("decrementing stock: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit record: %w", err)
	}

	if s.notifier != nil {
		s.notifier.SaleRecorded(ctx, newSale)

		item.Quantity -= params.Quantity
		if item.LowStock() {
			s.notifier.LowStock(ctx, item)
		}
	}

	return newSale, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Sale, error) {
	return s.repo.GetSale(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Sale, error) {
	return s.repo.ListSales(ctx, filter)
}

// Delete voids a sale and puts the sold quantity back on the shelf.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	sold, err := s.repo.GetSale(ctx, id)
	if err != nil {
		return err
	}

	tx, err := s.repo.BeginRecord(ctx)
	if err != nil {
		return fmt.Errorf("begin record: %w", err)
	}
	defer tx.Rollback()

	if err := tx.MarkDeleted(ctx, sold.ID); err != nil {
		return fmt.Errorf("deleting sale: %w", err)
	}

	if err := tx.AdjustStock(ctx, sold.StockID, sold.Quantity); err != nil {
		return fmt.Errorf("restoring stock: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete: %w", err)
	}

	return nil
}

// Stats are sale aggregates for the dashboard cards.
type Stats struct {
	TotalAmount int64
	TotalProfit int64
	Count       int
}

func (s *Service) Stats(ctx context.Context, filter ListFilter) (Stats, error) {
	sales, err := s.repo.ListSales(ctx, filter)
	if err != nil {
		return Stats{}, fmt.Errorf("listing sales: %w", err)
	}

	var stats Stats
	for _, sold := range sales {
		stats.TotalAmount += sold.TotalAmount
		stats.TotalProfit += sold.Profit
		stats.Count++
	}

	return stats, nil
}
