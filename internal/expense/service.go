package expense

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/mwansa/consoleplug/internal/dateutil"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=expense
type Repository interface {
	CreateExpense(ctx context.Context, e *Expense) error
	GetExpense(ctx context.Context, id uuid.UUID) (*Expense, error)
	ListExpenses(ctx context.Context, filter ListFilter) ([]*Expense, error)
	UpdateExpense(ctx context.Context, e *Expense) error
	DeleteExpense(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Item     string
	Amount   int64
	Category Category
	Date     time.Time
	Notes    string
}

type ListFilter struct {
	Category  *Category
	StartDate *time.Time
	EndDate   *time.Time
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Expense, error) {
	if params.Item == "" {
		return nil, fmt.Errorf("expense item is required")
	}

	if params.Amount <= 0 {
		return nil, fmt.Errorf("expense amount must be positive")
	}

	if !params.Category.Valid() {
		return nil, fmt.Errorf("unknown expense category: %s", params.Category)
	}

	date := params.Date
	if date.IsZero() {
		date = time.Now()
	}

	e := &Expense{
		Item:     params.Item,
		Amount:   params.Amount,
		Category: params.Category,
		Date:     dateutil.Day(date),
		Notes:    params.Notes,
	}

	if err := s.repo.CreateExpense(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Expense, error) {
	return s.repo.GetExpense(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Expense, error) {
	return s.repo.ListExpenses(ctx, filter)
}

func (s *Service) Update(ctx context.Context, e *Expense) error {
	if e.Amount <= 0 {
		return fmt.Errorf("expense amount must be positive")
	}

	e.Date = dateutil.Day(e.Date)

	return s.repo.UpdateExpense(ctx, e)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteExpense(ctx, id)
}

// CategoryTotal is the spend accumulated in one category.
type CategoryTotal struct {
	Category Category
	Amount   int64
}

// CategoryTotals sums the filtered expenses per category, largest first.
// The dashboard uses the head of the list as the "highest category" card.
func (s *Service) CategoryTotals(ctx context.Context, filter ListFilter) ([]CategoryTotal, error) {
	expenses, err := s.repo.ListExpenses(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}

	byCategory := make(map[Category]int64)
	for _, e := range expenses {
		byCategory[e.Category] += e.Amount
	}

	totals := make([]CategoryTotal, 0, len(byCategory))
	for category, amount := range byCategory {
		totals = append(totals, CategoryTotal{Category: category, Amount: amount})
	}

	// Largest spend first; ties by category name so the order is stable.
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Amount != totals[j].Amount {
			return totals[i].Amount > totals[j].Amount
		}

		return totals[i].Category < totals[j].Category
	})

	return totals, nil
}
