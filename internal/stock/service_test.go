package stock_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mwansa/consoleplug/internal/stock"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    stock.CreateParams
		setupMock func(m *stock.MockRepository)
		check     func(t *testing.T, item *stock.Item)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			params: stock.CreateParams{
				Category:     stock.CategoryConsole,
				Platform:     "PlayStation",
				Model:        "PS5",
				ProductName:  "PlayStation PS5 Console",
				SerialNumber: "PS5-2024-001",
				Condition:    stock.ConditionNew,
				Quantity:     1,
				BuyingPrice:  450000,
				SellingPrice: 550000,
				DateAdded:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			},
			setupMock: func(m *stock.MockRepository) {
				m.EXPECT().
					CreateItem(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, item *stock.Item) error {
						item.ID = uuid.New()
						item.CreatedAt = time.Now()
						return nil
					})
			},
			check: func(t *testing.T, item *stock.Item) {
				assert.NotEmpty(t, item.ID)
				assert.Equal(t, "PlayStation PS5 Console", item.ProductName)
			},
		},
		{
			name: "DefaultThresholdApplied",
			params: stock.CreateParams{
				Category:     stock.CategoryAccessory,
				Subcategory:  "Controller",
				Platform:     "Xbox",
				Model:        "Wireless Controller",
				ProductName:  "Xbox Wireless Controller",
				Quantity:     10,
				BuyingPrice:  40000,
				SellingPrice: 60000,
				DateAdded:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			},
			setupMock: func(m *stock.MockRepository) {
				m.EXPECT().CreateItem(gomock.Any(), gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, item *stock.Item) {
				assert.Equal(t, 5, item.LowStockThreshold)
			},
		},
		{
			name: "NegativeQuantity",
			params: stock.CreateParams{
				Category: stock.CategoryConsole,
				Quantity: -1,
			},
			wantErr: true,
		},
		{
			name: "NegativePrice",
			params: stock.CreateParams{
				Category:    stock.CategoryConsole,
				Quantity:    1,
				BuyingPrice: -100,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := stock.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := stock.NewService(repo, nil, 5)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)

			if tt.check != nil {
				tt.check(t, got)
			}
		})
	}
}

func TestService_Create_StampsCalendarDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := stock.NewMockRepository(ctrl)
	repo.EXPECT().CreateItem(gomock.Any(), gomock.Any()).Return(nil)

	svc := stock.NewService(repo, nil, 5)

	item, err := svc.Create(context.Background(), stock.CreateParams{
		Category:     stock.CategoryConsole,
		ProductName:  "PlayStation PS5 Console",
		Quantity:     1,
		BuyingPrice:  450000,
		SellingPrice: 550000,
		DateAdded:    time.Date(2026, 3, 10, 14, 33, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	// Additions are keyed by calendar day; a clock time here would fall
	// outside a report range ending on the same date.
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), item.DateAdded)
}

func TestService_CreateBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := stock.NewMockRepository(ctrl)
	tx := stock.NewMockImportTx(ctrl)

	repo.EXPECT().BeginImport(gomock.Any()).Return(tx, nil)
	tx.EXPECT().
		InsertItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, item *stock.Item) error {
			item.ID = uuid.New()
			return nil
		}).
		Times(2)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	svc := stock.NewService(repo, nil, 5)

	items, err := svc.CreateBatch(context.Background(), []stock.CreateParams{
		{
			Category:     stock.CategoryConsole,
			ProductName:  "PlayStation PS5 Console",
			Quantity:     1,
			BuyingPrice:  450000,
			SellingPrice: 550000,
		},
		{
			Category:     stock.CategoryAccessory,
			ProductName:  "Xbox Wireless Controller",
			Quantity:     10,
			BuyingPrice:  40000,
			SellingPrice: 60000,
		},
	})
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.NotEmpty(t, items[0].ID)
	assert.Equal(t, "Xbox Wireless Controller", items[1].ProductName)
}

func TestService_CreateBatch_BadRowImportsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Validation runs before the transaction opens, so the repository must
	// not be touched at all.
	repo := stock.NewMockRepository(ctrl)
	svc := stock.NewService(repo, nil, 5)

	_, err := svc.CreateBatch(context.Background(), []stock.CreateParams{
		{
			Category:     stock.CategoryConsole,
			ProductName:  "PlayStation PS5 Console",
			Quantity:     1,
			BuyingPrice:  450000,
			SellingPrice: 550000,
		},
		{
			Category:    stock.CategoryAccessory,
			ProductName: "Broken Row",
			Quantity:    1,
			BuyingPrice: -100,
		},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "item 2 (Broken Row)")
}

func TestService_CreateBatch_InsertFailureRollsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := stock.NewMockRepository(ctrl)
	tx := stock.NewMockImportTx(ctrl)

	repo.EXPECT().BeginImport(gomock.Any()).Return(tx, nil)
	tx.EXPECT().InsertItem(gomock.Any(), gomock.Any()).Return(errors.New("duplicate serial"))
	tx.EXPECT().Rollback().Return(nil)

	svc := stock.NewService(repo, nil, 5)

	_, err := svc.CreateBatch(context.Background(), []stock.CreateParams{
		{
			Category:     stock.CategoryConsole,
			ProductName:  "PlayStation PS5 Console",
			Quantity:     1,
			BuyingPrice:  450000,
			SellingPrice: 550000,
		},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "item 1 (PlayStation PS5 Console)")
}

func TestService_Adjust(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := stock.NewMockRepository(ctrl)
	notifier := stock.NewMockNotifier(ctrl)
	svc := stock.NewService(repo, notifier, 5)

	id := uuid.New()
	adjusted := &stock.Item{
		ID:                id,
		ProductName:       "PlayStation DualSense Controller",
		Quantity:          2,
		LowStockThreshold: 5,
	}

	repo.EXPECT().AdjustQuantity(gomock.Any(), id, -3).Return(adjusted, nil)
	notifier.EXPECT().LowStock(gomock.Any(), adjusted)

	item, err := svc.Adjust(context.Background(), id, -3)
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)
}

func TestService_Adjust_Insufficient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := stock.NewMockRepository(ctrl)
	svc := stock.NewService(repo, nil, 5)

	id := uuid.New()
	repo.EXPECT().AdjustQuantity(gomock.Any(), id, -10).Return(nil, stock.ErrInsufficientStock)

	_, err := svc.Adjust(context.Background(), id, -10)
	assert.ErrorIs(t, err, stock.ErrInsufficientStock)
}

func TestService_TotalValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := stock.NewMockRepository(ctrl)
	svc := stock.NewService(repo, nil, 5)

	repo.EXPECT().ListItems(gomock.Any(), stock.ListFilter{}).Return([]*stock.Item{
		{Quantity: 2, SellingPrice: 550000},
		{Quantity: 8, SellingPrice: 65000},
	}, nil)

	total, err := svc.TotalValue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2*550000+8*65000), total)
}

func TestService_TotalValue_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := stock.NewMockRepository(ctrl)
	svc := stock.NewService(repo, nil, 5)

	repo.EXPECT().ListItems(gomock.Any(), stock.ListFilter{}).Return(nil, errors.New("db error"))

	_, err := svc.TotalValue(context.Background())
	assert.Error(t, err)
}

func TestService_AddedBetween(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := stock.NewMockRepository(ctrl)
	svc := stock.NewService(repo, nil, 5)

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)
	id := uuid.New()

	repo.EXPECT().
		ListItems(gomock.Any(), stock.ListFilter{AddedAfter: &start, AddedBefore: &end}).
		Return([]*stock.Item{
			{ID: id, ProductName: "Xbox Series X Console", Quantity: 1, BuyingPrice: 420000, DateAdded: start},
		}, nil)

	additions, err := svc.AddedBetween(context.Background(), start, end)
	require.NoError(t, err)
	require.Len(t, additions, 1)
	assert.Equal(t, id, additions[0].ID)
	assert.Equal(t, int64(420000), additions[0].BuyingPrice)
}

func TestItem_LowStock(t *testing.T) {
	item := &stock.Item{Quantity: 5, LowStockThreshold: 5}
	assert.True(t, item.LowStock())

	item.Quantity = 6
	assert.False(t, item.LowStock())
}
