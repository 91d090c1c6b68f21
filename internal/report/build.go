package report

import (
	"sort"
	"strings"
	"time"

	"github.com/mwansa/consoleplug/internal/expense"
	"github.com/mwansa/consoleplug/internal/sale"
	"github.com/mwansa/consoleplug/internal/stock"
)

// dayBucket collects one calendar day's records.
type dayBucket struct {
	sales     []*sale.Sale
	expenses  []*expense.Expense
	additions []stock.Addition
}

// Build folds the three record collections into the daily ledger for the
// inclusive calendar range [start, end]. openingBalance is the balance at the
// instant before the oldest day in range; each day's closing balance carries
// forward as the next day's opening.
//
// Records dated outside the range are ignored entirely, including for the
// balance: the report never reaches further back than the supplied opening
// balance. Days with no records in any collection produce no row.
//
// Balances are rolled forward in ascending date order and the rows reversed
// afterwards for newest-first presentation. Rolling along the display order
// instead would anchor the balance at the newest day and produce a sequence
// that does not reconcile chronologically.
func Build(
	sales []*sale.Sale,
	expenses []*expense.Expense,
	additions []stock.Addition,
	start, end time.Time,
	openingBalance int64,
) (*Report, error) {
	startKey := dateKey(start)
	endKey := dateKey(end)

	if startKey > endKey {
		return nil, &InvalidRangeError{Start: start, End: end}
	}

	if err := validate(sales, expenses, additions); err != nil {
		return nil, err
	}

	inRange := func(t time.Time) bool {
		key := dateKey(t)
		return key >= startKey && key <= endKey
	}

	days := make(map[string]*dayBucket)

	bucket := func(t time.Time) *dayBucket {
		key := dateKey(t)

		b, ok := days[key]
		if !ok {
			b = &dayBucket{}
			days[key] = b
		}

		return b
	}

	report := &Report{StartDate: start, EndDate: end}

	for _, s := range sales {
		if !inRange(s.Date) {
			continue
		}

		b := bucket(s.Date)
		b.sales = append(b.sales, s)

		report.Summary.TotalRevenue += s.TotalAmount
		report.Summary.NetProfit += s.Profit
		report.Summary.TransactionCount++
	}

	for _, e := range expenses {
		if !inRange(e.Date) {
			continue
		}

		b := bucket(e.Date)
		b.expenses = append(b.expenses, e)

		report.Summary.TotalExpenses += e.Amount
	}

	for _, a := range additions {
		if !inRange(a.DateAdded) {
			continue
		}

		b := bucket(a.DateAdded)
		b.additions = append(b.additions, a)
	}

	report.Summary.NetProfit -= report.Summary.TotalExpenses

	// Oldest first for the balance roll-forward.
	keys := make([]string, 0, len(days))
	for key := range days {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	report.Rows = make([]DailyRow, 0, len(keys))

	runningBalance := openingBalance

	for _, key := range keys {
		b := days[key]

		row := DailyRow{
			Date:           mustParseDate(key),
			OpeningBalance: runningBalance,
			ExpenseItems:   expenseLabel(b.expenses),
			NewStockItems:  additionLabel(b.additions),
		}

		var newStockValue int64

		for _, s := range b.sales {
			row.QuantitySold += s.Quantity
			row.TotalBuyingPrice += s.BuyingPrice * int64(s.Quantity)
			row.SalesAmount += s.TotalAmount
			row.NetProfit += s.Profit
		}

		for _, e := range b.expenses {
			row.ExpenseAmount += e.Amount
		}

		for _, a := range b.additions {
			newStockValue += a.BuyingPrice * int64(a.Quantity)
		}

		row.NetProfit -= row.ExpenseAmount
		row.Difference = row.SalesAmount - row.TotalBuyingPrice - row.ExpenseAmount + newStockValue
		row.ClosingBalance = row.OpeningBalance + newStockValue - row.TotalBuyingPrice +
			row.SalesAmount - row.ExpenseAmount

		runningBalance = row.ClosingBalance

		report.Rows = append(report.Rows, row)
	}

	// Newest first for display.
	for i, j := 0, len(report.Rows)-1; i < j; i, j = i+1, j-1 {
		report.Rows[i], report.Rows[j] = report.Rows[j], report.Rows[i]
	}

	return report, nil
}

func validate(sales []*sale.Sale, expenses []*expense.Expense, additions []stock.Addition) error {
	for _, s := range sales {
		switch {
		case s.Quantity <= 0:
			return &MalformedRecordError{Kind: KindSale, ID: s.ID, Field: "quantity", Reason: "must be positive"}
		case s.BuyingPrice < 0:
			return &MalformedRecordError{Kind: KindSale, ID: s.ID, Field: "buying_price", Reason: "must not be negative"}
		case s.SellingPrice < 0:
			return &MalformedRecordError{Kind: KindSale, ID: s.ID, Field: "selling_price", Reason: "must not be negative"}
		}

		totalAmount, profit := s.Derived()

		if s.TotalAmount != totalAmount {
			return &MalformedRecordError{Kind: KindSale, ID: s.ID, Field: "total_amount", Reason: "drifted from selling price and quantity"}
		}

		if s.Profit != profit {
			return &MalformedRecordError{Kind: KindSale, ID: s.ID, Field: "profit", Reason: "drifted from price margin and quantity"}
		}
	}

	for _, e := range expenses {
		if e.Amount <= 0 {
			return &MalformedRecordError{Kind: KindExpense, ID: e.ID, Field: "amount", Reason: "must be positive"}
		}
	}

	for _, a := range additions {
		if a.Quantity < 0 {
			return &MalformedRecordError{Kind: KindStockAddition, ID: a.ID, Field: "quantity", Reason: "must not be negative"}
		}

		if a.BuyingPrice < 0 {
			return &MalformedRecordError{Kind: KindStockAddition, ID: a.ID, Field: "buying_price", Reason: "must not be negative"}
		}
	}

	return nil
}

func expenseLabel(expenses []*expense.Expense) string {
	if len(expenses) == 0 {
		return "-"
	}

	items := make([]string, len(expenses))
	for i, e := range expenses {
		items[i] = e.Item
	}

	return strings.Join(items, ", ")
}

func additionLabel(additions []stock.Addition) string {
	if len(additions) == 0 {
		return "-"
	}

	names := make([]string, len(additions))
	for i, a := range additions {
		names[i] = a.ProductName
	}

	return strings.Join(names, ", ")
}

func dateKey(t time.Time) string {
	return t.Format(time.DateOnly)
}

func mustParseDate(key string) time.Time {
	t, err := time.Parse(time.DateOnly, key)
	if err != nil {
		// Keys come from dateKey, so this cannot happen.
		panic(err)
	}

	return t
}
