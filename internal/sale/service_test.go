package sale_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mwansa/consoleplug/internal/sale"
	"github.com/mwansa/consoleplug/internal/stock"
)

func TestService_Record(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := sale.NewMockRepository(ctrl)
	tx := sale.NewMockRecordTx(ctrl)
	svc := sale.NewService(repo, nil)

	stockID := uuid.New()
	item := &stock.Item{
		ID:                stockID,
		Category:          stock.CategoryAccessory,
		Subcategory:       "Controller",
		Platform:          "PlayStation",
		ProductName:       "PlayStation DualSense Controller",
		Quantity:          8,
		BuyingPrice:       45000,
		SellingPrice:      65000,
		LowStockThreshold: 5,
	}

	repo.EXPECT().BeginRecord(gomock.Any()).Return(tx, nil)
	tx.EXPECT().LockItem(gomock.Any(), stockID).Return(item, nil)
	tx.EXPECT().
		InsertSale(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *sale.Sale) error {
			s.ID = uuid.New()
			s.CreatedAt = time.Now()
			return nil
		})
	tx.EXPECT().AdjustStock(gomock.Any(), stockID, -2).Return(nil)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	sold, err := svc.Record(context.Background(), sale.RecordParams{
		StockID:  stockID,
		Quantity: 2,
		Payment:  sale.PaymentCash,
	})
	require.NoError(t, err)

	assert.Equal(t, "PlayStation DualSense Controller", sold.ProductName)
	assert.Equal(t, int64(45000), sold.BuyingPrice)
	assert.Equal(t, int64(65000), sold.SellingPrice)
	assert.Equal(t, int64(130000), sold.TotalAmount)
	assert.Equal(t, int64(40000), sold.Profit)
	assert.NotEmpty(t, sold.TimeOfDay)
}

func TestService_Record_DateIsCalendarDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := sale.NewMockRepository(ctrl)
	tx := sale.NewMockRecordTx(ctrl)
	svc := sale.NewService(repo, nil)

	stockID := uuid.New()
	item := &stock.Item{ID: stockID, Quantity: 5, BuyingPrice: 40000, SellingPrice: 65000}

	repo.EXPECT().BeginRecord(gomock.Any()).Return(tx, nil)
	tx.EXPECT().LockItem(gomock.Any(), stockID).Return(item, nil)
	tx.EXPECT().InsertSale(gomock.Any(), gomock.Any()).Return(nil)
	tx.EXPECT().AdjustStock(gomock.Any(), stockID, -1).Return(nil)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	// A clock-time date must be stored as its calendar day, or a report
	// ending that day would miss the sale.
	sold, err := svc.Record(context.Background(), sale.RecordParams{
		StockID:  stockID,
		Quantity: 1,
		Payment:  sale.PaymentCash,
		Date:     time.Date(2026, 3, 10, 14, 33, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), sold.Date)
}

func TestService_Record_DefaultDateIsCalendarDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := sale.NewMockRepository(ctrl)
	tx := sale.NewMockRecordTx(ctrl)
	svc := sale.NewService(repo, nil)

	stockID := uuid.New()
	item := &stock.Item{ID: stockID, Quantity: 5, SellingPrice: 65000}

	repo.EXPECT().BeginRecord(gomock.Any()).Return(tx, nil)
	tx.EXPECT().LockItem(gomock.Any(), stockID).Return(item, nil)
	tx.EXPECT().InsertSale(gomock.Any(), gomock.Any()).Return(nil)
	tx.EXPECT().AdjustStock(gomock.Any(), stockID, -1).Return(nil)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	sold, err := svc.Record(context.Background(), sale.RecordParams{
		StockID:  stockID,
		Quantity: 1,
		Payment:  sale.PaymentCash,
	})
	require.NoError(t, err)

	assert.False(t, sold.Date.IsZero())
	assert.Equal(t, 0, sold.Date.Hour())
	assert.Equal(t, 0, sold.Date.Minute())
	assert.Equal(t, 0, sold.Date.Second())
	assert.Equal(t, time.UTC, sold.Date.Location())
}

func TestService_Record_InsufficientStock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := sale.NewMockRepository(ctrl)
	tx := sale.NewMockRecordTx(ctrl)
	svc := sale.NewService(repo, nil)

	stockID := uuid.New()
	item := &stock.Item{ID: stockID, Quantity: 1, SellingPrice: 65000}

	repo.EXPECT().BeginRecord(gomock.Any()).Return(tx, nil)
	tx.EXPECT().LockItem(gomock.Any(), stockID).Return(item, nil)
	tx.EXPECT().Rollback().Return(nil)

	_, err := svc.Record(context.Background(), sale.RecordParams{
		StockID:  stockID,
		Quantity: 3,
		Payment:  sale.PaymentCash,
	})
	assert.ErrorIs(t, err, stock.ErrInsufficientStock)
}

func TestService_Record_Validation(t *testing.T) {
	type testCase struct {
		name   string
		params sale.RecordParams
	}

	tests := []testCase{
		{
			name:   "ZeroQuantity",
			params: sale.RecordParams{StockID: uuid.New(), Quantity: 0, Payment: sale.PaymentCash},
		},
		{
			name:   "NegativeQuantity",
			params: sale.RecordParams{StockID: uuid.New(), Quantity: -1, Payment: sale.PaymentCash},
		},
		{
			name:   "UnknownPayment",
			params: sale.RecordParams{StockID: uuid.New(), Quantity: 1, Payment: sale.PaymentMethod("cheque")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := sale.NewMockRepository(ctrl)
			svc := sale.NewService(repo, nil)

			_, err := svc.Record(context.Background(), tt.params)
			assert.Error(t, err)
		})
	}
}

func TestService_Record_Notifies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := sale.NewMockRepository(ctrl)
	tx := sale.NewMockRecordTx(ctrl)
	notifier := sale.NewMockNotifier(ctrl)
	svc := sale.NewService(repo, notifier)

	stockID := uuid.New()
	item := &stock.Item{
		ID:                stockID,
		ProductName:       "Xbox Wireless Controller",
		Quantity:          6,
		BuyingPrice:       40000,
		SellingPrice:      60000,
		LowStockThreshold: 5,
	}

	repo.EXPECT().BeginRecord(gomock.Any()).Return(tx, nil)
	tx.EXPECT().LockItem(gomock.Any(), stockID).Return(item, nil)
	tx.EXPECT().InsertSale(gomock.Any(), gomock.Any()).Return(nil)
	tx.EXPECT().AdjustStock(gomock.Any(), stockID, -2).Return(nil)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	notifier.EXPECT().SaleRecorded(gomock.Any(), gomock.Any())
	// 6 - 2 = 4, at or below the threshold of 5.
	notifier.EXPECT().LowStock(gomock.Any(), gomock.Any())

	_, err := svc.Record(context.Background(), sale.RecordParams{
		StockID:  stockID,
		Quantity: 2,
		Payment:  sale.PaymentMobileMoney,
	})
	require.NoError(t, err)
}

func TestService_Delete_RestoresStock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := sale.NewMockRepository(ctrl)
	tx := sale.NewMockRecordTx(ctrl)
	svc := sale.NewService(repo, nil)

	saleID := uuid.New()
	stockID := uuid.New()
	sold := &sale.Sale{ID: saleID, StockID: stockID, Quantity: 2}

	repo.EXPECT().GetSale(gomock.Any(), saleID).Return(sold, nil)
	repo.EXPECT().BeginRecord(gomock.Any()).Return(tx, nil)
	tx.EXPECT().MarkDeleted(gomock.Any(), saleID).Return(nil)
	tx.EXPECT().AdjustStock(gomock.Any(), stockID, 2).Return(nil)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	require.NoError(t, svc.Delete(context.Background(), saleID))
}

func TestService_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := sale.NewMockRepository(ctrl)
	svc := sale.NewService(repo, nil)

	repo.EXPECT().ListSales(gomock.Any(), sale.ListFilter{}).Return([]*sale.Sale{
		{TotalAmount: 550000, Profit: 100000},
		{TotalAmount: 130000, Profit: 40000},
	}, nil)

	stats, err := svc.Stats(context.Background(), sale.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(680000), stats.TotalAmount)
	assert.Equal(t, int64(140000), stats.TotalProfit)
	assert.Equal(t, 2, stats.Count)
}

func TestService_Stats_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := sale.NewMockRepository(ctrl)
	svc := sale.NewService(repo, nil)

	repo.EXPECT().ListSales(gomock.Any(), sale.ListFilter{}).Return(nil, errors.New("db error"))

	_, err := svc.Stats(context.Background(), sale.ListFilter{})
	assert.Error(t, err)
}
