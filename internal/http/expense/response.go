package expense

import (
	"time"

	"github.com/google/uuid"

	"github.com/mwansa/consoleplug/internal/expense"
)

type expenseResponse struct {
	ID        uuid.UUID        `json:"id"`
	Item      string           `json:"item"`
	Amount    int64            `json:"amount"`
	Category  expense.Category `json:"category"`
	Date      time.Time        `json:"date"`
	Notes     string           `json:"notes,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt *time.Time       `json:"updated_at,omitempty"`
}

type categoryTotalResponse struct {
	Category expense.Category `json:"category"`
	Amount   int64            `json:"amount"`
}

func toResponse(e *expense.Expense) expenseResponse {
	return expenseResponse{
		ID:        e.ID,
		Item:      e.Item,
		Amount:    e.Amount,
		Category:  e.Category,
		Date:      e.Date,
		Notes:     e.Notes,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func toResponseList(expenses []*expense.Expense) []expenseResponse {
	resp := make([]expenseResponse, len(expenses))
	for i, e := range expenses {
		resp[i] = toResponse(e)
	}

	return resp
}

func toTotalsResponse(totals []expense.CategoryTotal) []categoryTotalResponse {
	resp := make([]categoryTotalResponse, len(totals))
	for i, t := range totals {
		resp[i] = categoryTotalResponse{Category: t.Category, Amount: t.Amount}
	}

	return resp
}
