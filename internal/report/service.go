package report

import (
	"context"
	"fmt"
	"time"

	"github.com/mwansa/consoleplug/internal/dateutil"
	"github.com/mwansa/consoleplug/internal/expense"
	"github.com/mwansa/consoleplug/internal/sale"
	"github.com/mwansa/consoleplug/internal/stock"
)

//go:generate mockgen -source=service.go -destination=source_mock.go -package=report

// SaleSource provides sale records. Satisfied by *sale.Service.
type SaleSource interface {
	List(ctx context.Context, filter sale.ListFilter) ([]*sale.Sale, error)
}

// ExpenseSource provides expense records. Satisfied by *expense.Service.
type ExpenseSource interface {
	List(ctx context.Context, filter expense.ListFilter) ([]*expense.Expense, error)
}

// StockSource provides stock additions and the inventory valuation used as
// the default opening balance. Satisfied by *stock.Service.
type StockSource interface {
	AddedBetween(ctx context.Context, start, end time.Time) ([]stock.Addition, error)
	TotalValue(ctx context.Context) (int64, error)
}

// Service snapshots the three record collections and hands them to Build.
type Service struct {
	sales    SaleSource
	expenses ExpenseSource
	stock    StockSource
}

func NewService(sales SaleSource, expenses ExpenseSource, stock StockSource) *Service {
	return &Service{sales: sales, expenses: expenses, stock: stock}
}

// Generate builds the ledger report for [start, end]. When openingBalance is
// nil the current total stock value stands in, matching the dashboard's
// default report.
func (s *Service) Generate(ctx context.Context, start, end time.Time, openingBalance *int64) (*Report, error) {
	if dateKey(start) > dateKey(end) {
		return nil, &InvalidRangeError{Start: start, End: end}
	}

	// The stores compare full timestamps, so stretch the window to whole
	// days before filtering. Build still keys rows by calendar date.
	listStart, listEnd := dateutil.NormalizeRange(start, end)

	sales, err := s.sales.List(ctx, sale.ListFilter{StartDate: &listStart, EndDate: &listEnd})
	if err != nil {
		return nil, fmt.Errorf("listing sales: %w", err)
	}

	expenses, err := s.expenses.List(ctx, expense.ListFilter{StartDate: &listStart, EndDate: &listEnd})
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}

	additions, err := s.stock.AddedBetween(ctx, listStart, listEnd)
	if err != nil {
		return nil, fmt.Errorf("listing stock additions: %w", err)
	}

	opening := int64(0)

	if openingBalance != nil {
		opening = *openingBalance
	} else {
		opening, err = s.stock.TotalValue(ctx)
		if err != nil {
			return nil, fmt.Errorf("valuing stock: %w", err)
		}
	}

	return Build(sales, expenses, additions, start, end, opening)
}
