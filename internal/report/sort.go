package report

import (
	"fmt"
	"sort"
	"strings"
)

// SortDirection orders rows ascending or descending.
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// SortRows reorders rows in place by the named DailyRow field. The sort is
// stable, string fields compare case-insensitively, and balance fields are
// left exactly as Build computed them: balances belong to a row's
// chronological position, not its display position.
func SortRows(rows []DailyRow, field string, direction SortDirection) error {
	if direction != Ascending && direction != Descending {
		return fmt.Errorf("unknown sort direction: %q", direction)
	}

	less, err := lessFunc(field)
	if err != nil {
		return err
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if direction == Descending {
			i, j = j, i
		}

		return less(&rows[i], &rows[j])
	})

	return nil
}

func lessFunc(field string) (func(a, b *DailyRow) bool, error) {
	switch field {
	case "date":
		return func(a, b *DailyRow) bool { return a.Date.Before(b.Date) }, nil
	case "opening_balance":
		return func(a, b *DailyRow) bool { return a.OpeningBalance < b.OpeningBalance }, nil
	case "quantity_sold":
		return func(a, b *DailyRow) bool { return a.QuantitySold < b.QuantitySold }, nil
	case "total_buying_price":
		return func(a, b *DailyRow) bool { return a.TotalBuyingPrice < b.TotalBuyingPrice }, nil
	case "sales_amount":
		return func(a, b *DailyRow) bool { return a.SalesAmount < b.SalesAmount }, nil
	case "expense_items":
		return lessString(func(r *DailyRow) string { return r.ExpenseItems }), nil
	case "expense_amount":
		return func(a, b *DailyRow) bool { return a.ExpenseAmount < b.ExpenseAmount }, nil
	case "new_stock_items":
		return lessString(func(r *DailyRow) string { return r.NewStockItems }), nil
	case "net_profit":
		return func(a, b *DailyRow) bool { return a.NetProfit < b.NetProfit }, nil
	case "difference":
		return func(a, b *DailyRow) bool { return a.Difference < b.Difference }, nil
	case "closing_balance":
		return func(a, b *DailyRow) bool { return a.ClosingBalance < b.ClosingBalance }, nil
	}

	return nil, fmt.Errorf("unknown sort field: %q", field)
}

func lessString(get func(r *DailyRow) string) func(a, b *DailyRow) bool {
	return func(a, b *DailyRow) bool {
		return strings.ToLower(get(a)) < strings.ToLower(get(b))
	}
}
