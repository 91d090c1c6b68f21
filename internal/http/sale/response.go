package sale

import (
	"time"

	"github.com/google/uuid"

	"github.com/mwansa/consoleplug/internal/sale"
)

type saleResponse struct {
	ID           uuid.UUID          `json:"id"`
	StockID      uuid.UUID          `json:"stock_id"`
	ProductName  string             `json:"product_name"`
	Category     string             `json:"category"`
	Platform     string             `json:"platform,omitempty"`
	SerialNumber string             `json:"serial_number,omitempty"`
	Quantity     int                `json:"quantity"`
	BuyingPrice  int64              `json:"buying_price"`
	SellingPrice int64              `json:"selling_price"`
	TotalAmount  int64              `json:"total_amount"`
	Profit       int64              `json:"profit"`
	Payment      sale.PaymentMethod `json:"payment"`
	Date         time.Time          `json:"date"`
	TimeOfDay    string             `json:"time_of_day"`
	Notes        string             `json:"notes,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
}

type statsResponse struct {
	TotalAmount int64 `json:"total_amount"`
	TotalProfit int64 `json:"total_profit"`
	Count       int   `json:"count"`
}

func toResponse(s *sale.Sale) saleResponse {
	return saleResponse{
		ID:           s.ID,
		StockID:      s.StockID,
		ProductName:  s.ProductName,
		Category:     s.Category,
		Platform:     s.Platform,
		SerialNumber: s.SerialNumber,
		Quantity:     s.Quantity,
		BuyingPrice:  s.BuyingPrice,
		SellingPrice: s.SellingPrice,
		TotalAmount:  s.TotalAmount,
		Profit:       s.Profit,
		Payment:      s.Payment,
		Date:         s.Date,
		TimeOfDay:    s.TimeOfDay,
		Notes:        s.Notes,
		CreatedAt:    s.CreatedAt,
	}
}

func toResponseList(sales []*sale.Sale) []saleResponse {
	resp := make([]saleResponse, len(sales))
	for i, s := range sales {
		resp[i] = toResponse(s)
	}

	return resp
}

func toStatsResponse(stats sale.Stats) statsResponse {
	return statsResponse{
		TotalAmount: stats.TotalAmount,
		TotalProfit: stats.TotalProfit,
		Count:       stats.Count,
	}
}
