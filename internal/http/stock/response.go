package stock

import (
	"time"

	"github.com/google/uuid"

	"github.com/mwansa/consoleplug/internal/stock"
)

type itemResponse struct {
	ID                uuid.UUID       `json:"id"`
	Category          stock.Category  `json:"category"`
	Subcategory       string          `json:"subcategory,omitempty"`
	Platform          string          `json:"platform,omitempty"`
	Model             string          `json:"model,omitempty"`
	ProductName       string          `json:"product_name"`
	SerialNumber      string          `json:"serial_number,omitempty"`
	Condition         stock.Condition `json:"condition"`
	Quantity          int             `json:"quantity"`
	BuyingPrice       int64           `json:"buying_price"`
	SellingPrice      int64           `json:"selling_price"`
	DateAdded         time.Time       `json:"date_added"`
	Supplier          string          `json:"supplier,omitempty"`
	Notes             string          `json:"notes,omitempty"`
	LowStockThreshold int             `json:"low_stock_threshold"`
	LowStock          bool            `json:"low_stock"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         *time.Time      `json:"updated_at,omitempty"`
}

type totalValueResponse struct {
	TotalValue int64 `json:"total_value"`
}

func toResponse(item *stock.Item) itemResponse {
	return itemResponse{
		ID:                item.ID,
		Category:          item.Category,
		Subcategory:       item.Subcategory,
		Platform:          item.Platform,
		Model:             item.Model,
		ProductName:       item.ProductName,
		SerialNumber:      item.SerialNumber,
		Condition:         item.Condition,
		Quantity:          item.Quantity,
		BuyingPrice:       item.BuyingPrice,
		SellingPrice:      item.SellingPrice,
		DateAdded:         item.DateAdded,
		Supplier:          item.Supplier,
		Notes:             item.Notes,
		LowStockThreshold: item.LowStockThreshold,
		LowStock:          item.LowStock(),
		CreatedAt:         item.CreatedAt,
		UpdatedAt:         item.UpdatedAt,
	}
}

func toResponseList(items []*stock.Item) []itemResponse {
	resp := make([]itemResponse, len(items))
	for i, item := range items {
		resp[i] = toResponse(item)
	}

	return resp
}
