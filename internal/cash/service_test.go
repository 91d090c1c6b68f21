package cash_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mwansa/consoleplug/internal/cash"
	"github.com/mwansa/consoleplug/internal/expense"
	"github.com/mwansa/consoleplug/internal/sale"
)

type fixture struct {
	repo     *cash.MockRepository
	sales    *cash.MockSaleSource
	expenses *cash.MockExpenseSource
	svc      *cash.Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fixture{
		repo:     cash.NewMockRepository(ctrl),
		sales:    cash.NewMockSaleSource(ctrl),
		expenses: cash.NewMockExpenseSource(ctrl),
	}
	f.svc = cash.NewService(f.repo, f.sales, f.expenses)

	return f
}

func (f *fixture) expectPosition(salesTotal int64, expenses []*expense.Expense, txs []*cash.Transaction) {
	f.sales.EXPECT().Stats(gomock.Any(), gomock.Any()).Return(sale.Stats{TotalAmount: salesTotal}, nil)
	f.expenses.EXPECT().List(gomock.Any(), gomock.Any()).Return(expenses, nil)
	f.repo.EXPECT().ListTransactions(gomock.Any(), gomock.Any()).Return(txs, nil)
}

func TestService_Available(t *testing.T) {
	f := newFixture(t)

	f.expectPosition(
		1_000_00,
		[]*expense.Expense{{Amount: 150_00}, {Amount: 50_00}},
		[]*cash.Transaction{
			{Direction: cash.DirectionTopUp, Amount: 300_00},
			{Direction: cash.DirectionWithdraw, Amount: 100_00},
		},
	)

	available, err := f.svc.Available(context.Background())
	require.NoError(t, err)

	// 1000 - 200 + 300 - 100
	assert.Equal(t, int64(1_000_00), available)
}

func TestService_Summarize(t *testing.T) {
	f := newFixture(t)

	f.expectPosition(500_00, nil, nil)
	f.repo.EXPECT().GetReserved(gomock.Any()).Return(int64(200_00), nil)

	summary, err := f.svc.Summarize(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(500_00), summary.Available)
	assert.Equal(t, int64(200_00), summary.Reserved)
	assert.Equal(t, int64(300_00), summary.Spendable)
}

func TestService_Summarize_SpendableNeverNegative(t *testing.T) {
	f := newFixture(t)

	f.expectPosition(100_00, nil, nil)
	f.repo.EXPECT().GetReserved(gomock.Any()).Return(int64(500_00), nil)

	summary, err := f.svc.Summarize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), summary.Spendable)
}

func TestService_Withdraw(t *testing.T) {
	f := newFixture(t)

	f.expectPosition(500_00, nil, nil)
	f.repo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *cash.Transaction) error {
			assert.Equal(t, cash.DirectionWithdraw, tx.Direction)
			assert.Equal(t, int64(200_00), tx.Amount)
			assert.NotEmpty(t, tx.TimeOfDay)
			return nil
		})

	tx, err := f.svc.Withdraw(context.Background(), 200_00, "restock float")
	require.NoError(t, err)
	assert.Equal(t, "restock float", tx.Reason)
}

func TestService_TopUp_StampsCalendarDay(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *cash.Transaction) error {
			// The ledger keys on calendar days; the clock time lives in
			// TimeOfDay.
			assert.False(t, tx.Date.IsZero())
			assert.Equal(t, 0, tx.Date.Hour())
			assert.Equal(t, 0, tx.Date.Minute())
			assert.Equal(t, 0, tx.Date.Second())
			assert.NotEmpty(t, tx.TimeOfDay)
			return nil
		})

	_, err := f.svc.TopUp(context.Background(), 100_00, "opening float")
	require.NoError(t, err)
}

func TestService_Trend_CoversWholeEndDay(t *testing.T) {
	f := newFixture(t)

	end := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	f.sales.EXPECT().
		Stats(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter sale.ListFilter) (sale.Stats, error) {
			require.NotNil(t, filter.EndDate)

			afternoonSale := time.Date(2026, 3, 10, 14, 33, 0, 0, time.UTC)
			assert.False(t, afternoonSale.After(*filter.EndDate))

			return sale.Stats{TotalAmount: 500_00}, nil
		})
	f.expenses.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)
	f.repo.EXPECT().ListTransactions(gomock.Any(), gomock.Any()).Return(nil, nil)

	trend, err := f.svc.Trend(context.Background(), end.AddDate(0, 0, -7), end)
	require.NoError(t, err)
	assert.Equal(t, int64(500_00), trend)
}

func TestService_Withdraw_ConcurrentClaims(t *testing.T) {
	f := newFixture(t)

	var mu sync.Mutex

	var withdrawn []*cash.Transaction

	f.sales.EXPECT().
		Stats(gomock.Any(), gomock.Any()).
		Return(sale.Stats{TotalAmount: 100_00}, nil).
		AnyTimes()
	f.expenses.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	f.repo.EXPECT().
		ListTransactions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ cash.ListFilter) ([]*cash.Transaction, error) {
			mu.Lock()
			defer mu.Unlock()

			return append([]*cash.Transaction(nil), withdrawn...), nil
		}).
		AnyTimes()
	f.repo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *cash.Transaction) error {
			mu.Lock()
			defer mu.Unlock()

			withdrawn = append(withdrawn, tx)
			return nil
		}).
		AnyTimes()

	// The drawer holds 100. Ten racing withdrawals of 30 each can only
	// honor three of them.
	var wg sync.WaitGroup

	var succeeded atomic.Int32

	for range 10 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			if _, err := f.svc.Withdraw(context.Background(), 30_00, "race"); err == nil {
				succeeded.Add(1)
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, int32(3), succeeded.Load())
	assert.Len(t, withdrawn, 3)
}

func TestService_Withdraw_Insufficient(t *testing.T) {
	f := newFixture(t)

	f.expectPosition(100_00, nil, nil)

	_, err := f.svc.Withdraw(context.Background(), 200_00, "too much")
	assert.ErrorIs(t, err, cash.ErrInsufficientCash)
}

func TestService_TopUp_Validation(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.TopUp(context.Background(), 0, "nothing")
	assert.Error(t, err)
}

func TestService_Reserve(t *testing.T) {
	f := newFixture(t)

	f.expectPosition(500_00, nil, nil)
	f.repo.EXPECT().SetReserved(gomock.Any(), int64(300_00)).Return(nil)

	require.NoError(t, f.svc.Reserve(context.Background(), 300_00))
}

func TestService_Reserve_AboveAvailable(t *testing.T) {
	f := newFixture(t)

	f.expectPosition(100_00, nil, nil)

	err := f.svc.Reserve(context.Background(), 300_00)
	assert.ErrorIs(t, err, cash.ErrInsufficientCash)
}
