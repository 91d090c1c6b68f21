package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mwansa/consoleplug/internal/dateutil"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=stock
type Repository interface {
	CreateItem(ctx context.Context, item *Item) error
	GetItem(ctx context.Context, id uuid.UUID) (*Item, error)
	ListItems(ctx context.Context, filter ListFilter) ([]*Item, error)
	UpdateItem(ctx context.Context, item *Item) error
	AdjustQuantity(ctx context.Context, id uuid.UUID, delta int) (*Item, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error

	BeginImport(ctx context.Context) (ImportTx, error)
}

// ImportTx inserts a batch of items as one unit, so a sheet either lands
// whole or not at all.
type ImportTx interface {
	InsertItem(ctx context.Context, item *Item) error
	Commit() error
	Rollback() error
}

// Notifier receives inventory events. Implementations must not block.
type Notifier interface {
	LowStock(ctx context.Context, item *Item)
}

type Service struct {
	repo             Repository
	notifier         Notifier
	defaultThreshold int
}

func NewService(repo Repository, notifier Notifier, defaultThreshold int) *Service {
	return &Service{repo: repo, notifier: notifier, defaultThreshold: defaultThreshold}
}

type CreateParams struct {
	Category          Category
	Subcategory       string
	Platform          string
	Model             string
	ProductName       string
	SerialNumber      string
	Condition         Condition
	Quantity          int
	BuyingPrice       int64
	SellingPrice      int64
	DateAdded         time.Time
	Supplier          string
	Notes             string
	LowStockThreshold int
}

type ListFilter struct {
	Category     *Category
	Platform     *string
	LowStockOnly bool
	AddedAfter   *time.Time
	AddedBefore  *time.Time
}

// buildItem validates the params and fills in the defaults shared by Create
// and CreateBatch.
func (s *Service) buildItem(params CreateParams) (*Item, error) {
	if params.Quantity < 0 {
		return nil, fmt.Errorf("quantity must not be negative")
	}

	if params.BuyingPrice < 0 || params.SellingPrice < 0 {
		return nil, fmt.Errorf("prices must not be negative")
	}

	threshold := params.LowStockThreshold
	if threshold <= 0 {
		threshold = s.defaultThreshold
	}

	name := params.ProductName
	if name == "" {
		name = fmt.Sprintf("%s %s %s", params.Platform, params.Model, params.Subcategory)
	}

	dateAdded := params.DateAdded
	if dateAdded.IsZero() {
		dateAdded = time.Now()
	}

	return &Item{
		Category:          params.Category,
		Subcategory:       params.Subcategory,
		Platform:          params.Platform,
		Model:             params.Model,
		ProductName:       name,
		SerialNumber:      params.SerialNumber,
		Condition:         params.Condition,
		Quantity:          params.Quantity,
		BuyingPrice:       params.BuyingPrice,
		SellingPrice:      params.SellingPrice,
		DateAdded:         dateutil.Day(dateAdded),
		Supplier:          params.Supplier,
		Notes:             params.Notes,
		LowStockThreshold: threshold,
	}, nil
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Item, error) {
	item, err := s.buildItem(params)
	if err != nil {
		return nil, err
	}

	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// CreateBatch inserts a whole sheet of items in one transaction. Every row
// is validated up front, so a bad row costs nothing.
func (s *Service) CreateBatch(ctx context.Context, params []CreateParams) ([]*Item, error) {
	items := make([]*Item, 0, len(params))

	for i, p := range params {
		item, err := s.buildItem(p)
		if err != nil {
			return nil, fmt.Errorf("item %d (%s): %w", i+1, p.ProductName, err)
		}

		items = append(items, item)
	}

	tx, err := s.repo.BeginImport(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	for i, item := range items {
		if err := tx.InsertItem(ctx, item); err != nil {
			return nil, fmt.Errorf("item %d (%s): %w", i+1, item.ProductName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit import: %w", err)
	}

	return items, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Item, error) {
	return s.repo.GetItem(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Item, error) {
	return s.repo.ListItems(ctx, filter)
}

func (s *Service) Update(ctx context.Context, item *Item) error {
	item.DateAdded = dateutil.Day(item.DateAdded)

	return s.repo.UpdateItem(ctx, item)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteItem(ctx, id)
}

// Adjust changes an item's quantity by delta (negative to remove units).
// The store rejects adjustments that would take the quantity below zero.
func (s *Service) Adjust(ctx context.Context, id uuid.UUID, delta int) (*Item, error) {
	item, err := s.repo.AdjustQuantity(ctx, id, delta)
	if err != nil {
		return nil, err
	}

	if item.LowStock() && s.notifier != nil {
		s.notifier.LowStock(ctx, item)
	}

	return item, nil
}

// TotalValue is the selling value of the whole inventory. The daily report
// uses it as the default opening balance.
func (s *Service) TotalValue(ctx context.Context) (int64, error) {
	items, err := s.repo.ListItems(ctx, ListFilter{})
	if err != nil {
		return 0, fmt.Errorf("listing items: %w", err)
	}

	var total int64
	for _, item := range items {
		total += item.Value()
	}

	return total, nil
}

// LowStock lists items at or below their reorder threshold.
func (s *Service) LowStock(ctx context.Context) ([]*Item, error) {
	return s.repo.ListItems(ctx, ListFilter{LowStockOnly: true})
}

// AddedBetween lists inventory received within the inclusive calendar range,
// viewed as stock additions for the daily report.
func (s *Service) AddedBetween(ctx context.Context, start, end time.Time) ([]Addition, error) {
	items, err := s.repo.ListItems(ctx, ListFilter{AddedAfter: &start, AddedBefore: &end})
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}

	additions := make([]Addition, 0, len(items))
	for _, item := range items {
		additions = append(additions, item.AsAddition())
	}

	return additions, nil
}
