package cash

import (
	"time"

	"github.com/google/uuid"

	"github.com/mwansa/consoleplug/internal/cash"
)

type transactionResponse struct {
	ID        uuid.UUID      `json:"id"`
	Direction cash.Direction `json:"direction"`
	Amount    int64          `json:"amount"`
	Reason    string         `json:"reason,omitempty"`
	Date      time.Time      `json:"date"`
	TimeOfDay string         `json:"time_of_day"`
	CreatedAt time.Time      `json:"created_at"`
}

type summaryResponse struct {
	Available int64 `json:"available"`
	Reserved  int64 `json:"reserved"`
	Spendable int64 `json:"spendable"`
}

type trendResponse struct {
	Position int64 `json:"position"`
}

func toResponse(tx *cash.Transaction) transactionResponse {
	return transactionResponse{
		ID:        tx.ID,
		Direction: tx.Direction,
		Amount:    tx.Amount,
		Reason:    tx.Reason,
		Date:      tx.Date,
		TimeOfDay: tx.TimeOfDay,
		CreatedAt: tx.CreatedAt,
	}
}

func toResponseList(txs []*cash.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}

func toSummaryResponse(s cash.Summary) summaryResponse {
	return summaryResponse{
		Available: s.Available,
		Reserved:  s.Reserved,
		Spendable: s.Spendable,
	}
}
