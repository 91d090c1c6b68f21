package expense_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mwansa/consoleplug/internal/expense"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    expense.CreateParams
		setupMock func(m *expense.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			params: expense.CreateParams{
				Item:     "Shop rent",
				Amount:   150000,
				Category: expense.CategoryRent,
				Date:     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			},
			setupMock: func(m *expense.MockRepository) {
				m.EXPECT().
					CreateExpense(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, e *expense.Expense) error {
						e.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name: "MissingItem",
			params: expense.CreateParams{
				Amount:   150000,
				Category: expense.CategoryRent,
			},
			wantErr: true,
		},
		{
			name: "NonPositiveAmount",
			params: expense.CreateParams{
				Item:     "Shop rent",
				Amount:   0,
				Category: expense.CategoryRent,
			},
			wantErr: true,
		},
		{
			name: "UnknownCategory",
			params: expense.CreateParams{
				Item:     "Cash Withdrawal",
				Amount:   5000,
				Category: expense.Category("withdrawal"),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := expense.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := expense.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, got.ID)
		})
	}
}

func TestService_Create_StampsCalendarDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := expense.NewMockRepository(ctrl)
	repo.EXPECT().CreateExpense(gomock.Any(), gomock.Any()).Return(nil)

	svc := expense.NewService(repo)

	got, err := svc.Create(context.Background(), expense.CreateParams{
		Item:     "Electricity",
		Amount:   50000,
		Category: expense.CategoryUtilities,
		Date:     time.Date(2026, 3, 10, 14, 33, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	// A clock-time date would drop the expense from a report ending that
	// day.
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), got.Date)
}

func TestService_Create_DefaultsDateToToday(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := expense.NewMockRepository(ctrl)
	repo.EXPECT().CreateExpense(gomock.Any(), gomock.Any()).Return(nil)

	svc := expense.NewService(repo)

	got, err := svc.Create(context.Background(), expense.CreateParams{
		Item:     "Airtime",
		Amount:   5000,
		Category: expense.CategoryUtilities,
	})
	require.NoError(t, err)

	assert.False(t, got.Date.IsZero())
	assert.Equal(t, 0, got.Date.Hour())
	assert.Equal(t, 0, got.Date.Minute())
	assert.Equal(t, 0, got.Date.Second())
}

func TestService_CategoryTotals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := expense.NewMockRepository(ctrl)
	svc := expense.NewService(repo)

	repo.EXPECT().ListExpenses(gomock.Any(), expense.ListFilter{}).Return([]*expense.Expense{
		{Category: expense.CategoryRent, Amount: 150000},
		{Category: expense.CategoryTransport, Amount: 20000},
		{Category: expense.CategoryTransport, Amount: 35000},
		{Category: expense.CategoryUtilities, Amount: 55000},
	}, nil)

	totals, err := svc.CategoryTotals(context.Background(), expense.ListFilter{})
	require.NoError(t, err)
	require.Len(t, totals, 3)

	assert.Equal(t, expense.CategoryRent, totals[0].Category)
	assert.Equal(t, int64(150000), totals[0].Amount)
	assert.Equal(t, expense.CategoryTransport, totals[1].Category)
	assert.Equal(t, int64(55000), totals[1].Amount)
	assert.Equal(t, expense.CategoryUtilities, totals[2].Category)
	assert.Equal(t, int64(55000), totals[2].Amount)
}
