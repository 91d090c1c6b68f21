package cash

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mwansa/consoleplug/internal/dateutil"
	"github.com/mwansa/consoleplug/internal/expense"
	"github.com/mwansa/consoleplug/internal/sale"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=cash
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	ListTransactions(ctx context.Context, filter ListFilter) ([]*Transaction, error)
	GetReserved(ctx context.Context) (int64, error)
	SetReserved(ctx context.Context, amount int64) error
}

// SaleSource provides sale aggregates. Satisfied by *sale.Service.
type SaleSource interface {
	Stats(ctx context.Context, filter sale.ListFilter) (sale.Stats, error)
}

// ExpenseSource provides expense records. Satisfied by *expense.Service.
type ExpenseSource interface {
	List(ctx context.Context, filter expense.ListFilter) ([]*expense.Expense, error)
}

type Service struct {
	repo     Repository
	sales    SaleSource
	expenses ExpenseSource
	now      func() time.Time

	// mu serializes drawer mutations: the balance check and the write that
	// follows it are separate statements.
	mu sync.Mutex
}

func NewService(repo Repository, sales SaleSource, expenses ExpenseSource) *Service {
	return &Service{repo: repo, sales: sales, expenses: expenses, now: time.Now}
}

type ListFilter struct {
	Direction *Direction
	StartDate *time.Time
	EndDate   *time.Time
}

// TopUp records money added to the drawer.
func (s *Service) TopUp(ctx context.Context, amount int64, reason string) (*Transaction, error) {
	return s.record(ctx, DirectionTopUp, amount, reason)
}

// Withdraw records money taken out. It refuses amounts above the currently
// available cash.
func (s *Service) Withdraw(ctx context.Context, amount int64, reason string) (*Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	available, err := s.Available(ctx)
	if err != nil {
		return nil, err
	}

	if amount > available {
		return nil, fmt.Errorf("%w: %d available", ErrInsufficientCash, available)
	}

	return s.record(ctx, DirectionWithdraw, amount, reason)
}

func (s *Service) record(ctx context.Context, direction Direction, amount int64, reason string) (*Transaction, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}

	now := s.now()

	tx := &Transaction{
		Direction: direction,
		Amount:    amount,
		Reason:    reason,
		Date:      dateutil.Day(now),
		TimeOfDay: now.Format("03:04 PM"),
	}

	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx, filter)
}

// Available is the cash position: total sales minus expenses, plus top-ups,
// minus withdrawals, over the shop's whole history.
func (s *Service) Available(ctx context.Context) (int64, error) {
	return s.position(ctx, nil, nil)
}

// Trend is the cash movement over the supplied window, same formula as
// Available but range-bound. The bounds are calendar days, both inclusive.
func (s *Service) Trend(ctx context.Context, start, end time.Time) (int64, error) {
	start, end = dateutil.NormalizeRange(start, end)

	return s.position(ctx, &start, &end)
}

func (s *Service) position(ctx context.Context, start, end *time.Time) (int64, error) {
	stats, err := s.sales.Stats(ctx, sale.ListFilter{StartDate: start, EndDate: end})
	if err != nil {
		return 0, fmt.Errorf("sale stats: %w", err)
	}

	expenses, err := s.expenses.List(ctx, expense.ListFilter{StartDate: start, EndDate: end})
	if err != nil {
		return 0, fmt.Errorf("listing expenses: %w", err)
	}

	transactions, err := s.repo.ListTransactions(ctx, ListFilter{StartDate: start, EndDate: end})
	if err != nil {
		return 0, fmt.Errorf("listing cash transactions: %w", err)
	}

	position := stats.TotalAmount

	for _, e := range expenses {
		position -= e.Amount
	}

	for _, tx := range transactions {
		switch tx.Direction {
		case DirectionTopUp:
			position += tx.Amount
		case DirectionWithdraw:
			position -= tx.Amount
		}
	}

	return position, nil
}

// Summary bundles the cash overview cards.
type Summary struct {
	Available int64
	Reserved  int64
	Spendable int64
}

func (s *Service) Summarize(ctx context.Context) (Summary, error) {
	available, err := s.Available(ctx)
	if err != nil {
		return Summary{}, err
	}

	reserved, err := s.repo.GetReserved(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("getting reserved cash: %w", err)
	}

	spendable := available - reserved
	if spendable < 0 {
		spendable = 0
	}

	return Summary{Available: available, Reserved: reserved, Spendable: spendable}, nil
}

// Reserve sets aside cash that Spendable must not touch. The amount cannot
// exceed what is currently available.
func (s *Service) Reserve(ctx context.Context, amount int64) error {
	if amount < 0 {
		return fmt.Errorf("reserved amount must not be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	available, err := s.Available(ctx)
	if err != nil {
		return err
	}

	if amount > available {
		return fmt.Errorf("%w: %d available", ErrInsufficientCash, available)
	}

	return s.repo.SetReserved(ctx, amount)
}
