// Package report builds the shop's daily ledger report: sales, expenses and
// newly received stock folded per calendar day into a running opening/closing
// balance, plus period totals for the summary cards.
//
// Build and SortRows are pure functions over in-memory records; loading the
// records and choosing the opening balance is the Service's job.
package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RecordKind names the collection a malformed record came from.
type RecordKind string

const (
	KindSale          RecordKind = "sale"
	KindExpense       RecordKind = "expense"
	KindStockAddition RecordKind = "stock_addition"
)

// InvalidRangeError is returned when the start date falls after the end date.
type InvalidRangeError struct {
	Start time.Time
	End   time.Time
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid report range: start %s is after end %s",
		e.Start.Format(time.DateOnly), e.End.Format(time.DateOnly))
}

// MalformedRecordError identifies a record whose financial fields cannot be
// trusted. The build aborts rather than skipping the record: dropping it
// silently would misstate the totals.
type MalformedRecordError struct {
	Kind   RecordKind
	ID     uuid.UUID
	Field  string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed %s record %s: %s %s", e.Kind, e.ID, e.Field, e.Reason)
}

// DailyRow is one calendar day of the ledger table. Currency fields are in
// cents. Opening and closing balances are fixed at build time by chronological
// position; re-sorting the rows never changes them.
type DailyRow struct {
	Date             time.Time `json:"date"`
	OpeningBalance   int64     `json:"opening_balance"`
	QuantitySold     int       `json:"quantity_sold"`
	TotalBuyingPrice int64     `json:"total_buying_price"`
	SalesAmount      int64     `json:"sales_amount"`
	ExpenseItems     string    `json:"expense_items"`
	ExpenseAmount    int64     `json:"expense_amount"`
	NewStockItems    string    `json:"new_stock_items"`
	NetProfit        int64     `json:"net_profit"`
	Difference       int64     `json:"difference"`
	ClosingBalance   int64     `json:"closing_balance"`
}

// Summary is the period-wide totals, independent of the per-day rows.
type Summary struct {
	TotalRevenue     int64 `json:"total_revenue"`
	TotalExpenses    int64 `json:"total_expenses"`
	NetProfit        int64 `json:"net_profit"`
	TransactionCount int   `json:"transaction_count"`
}

// Report is the built ledger: rows newest-first plus the summary.
type Report struct {
	StartDate time.Time  `json:"start_date"`
	EndDate   time.Time  `json:"end_date"`
	Rows      []DailyRow `json:"rows"`
	Summary   Summary    `json:"summary"`
}
