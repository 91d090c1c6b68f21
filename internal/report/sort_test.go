package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sortFixture(t *testing.T) []DailyRow {
	t.Helper()

	return []DailyRow{
		{Date: day(t, "2026-03-12"), OpeningBalance: 1100_00, SalesAmount: 300_00, ExpenseItems: "transport", ClosingBalance: 1380_00},
		{Date: day(t, "2026-03-11"), OpeningBalance: 1050_00, SalesAmount: 500_00, ExpenseItems: "Electricity", ClosingBalance: 1100_00},
		{Date: day(t, "2026-03-10"), OpeningBalance: 1000_00, SalesAmount: 300_00, ExpenseItems: "-", ClosingBalance: 1050_00},
	}
}

func TestSortRows_ByDateAscending(t *testing.T) {
	rows := sortFixture(t)

	require.NoError(t, SortRows(rows, "date", Ascending))

	assert.Equal(t, day(t, "2026-03-10"), rows[0].Date)
	assert.Equal(t, day(t, "2026-03-11"), rows[1].Date)
	assert.Equal(t, day(t, "2026-03-12"), rows[2].Date)
}

func TestSortRows_Stable(t *testing.T) {
	rows := sortFixture(t)

	// Two rows tie on sales amount; their newest-first order must survive.
	require.NoError(t, SortRows(rows, "sales_amount", Ascending))

	assert.Equal(t, day(t, "2026-03-12"), rows[0].Date)
	assert.Equal(t, day(t, "2026-03-10"), rows[1].Date)
	assert.Equal(t, day(t, "2026-03-11"), rows[2].Date)
}

func TestSortRows_StringsCaseInsensitive(t *testing.T) {
	rows := sortFixture(t)

	require.NoError(t, SortRows(rows, "expense_items", Ascending))

	assert.Equal(t, "-", rows[0].ExpenseItems)
	assert.Equal(t, "Electricity", rows[1].ExpenseItems)
	assert.Equal(t, "transport", rows[2].ExpenseItems)
}

func TestSortRows_Descending(t *testing.T) {
	rows := sortFixture(t)

	require.NoError(t, SortRows(rows, "closing_balance", Descending))

	assert.Equal(t, int64(1380_00), rows[0].ClosingBalance)
	assert.Equal(t, int64(1100_00), rows[1].ClosingBalance)
	assert.Equal(t, int64(1050_00), rows[2].ClosingBalance)
}

func TestSortRows_BalancesUntouched(t *testing.T) {
	rows := sortFixture(t)

	byDate := map[time.Time][2]int64{}
	for _, row := range rows {
		byDate[row.Date] = [2]int64{row.OpeningBalance, row.ClosingBalance}
	}

	require.NoError(t, SortRows(rows, "sales_amount", Descending))

	for _, row := range rows {
		want := byDate[row.Date]
		assert.Equal(t, want[0], row.OpeningBalance)
		assert.Equal(t, want[1], row.ClosingBalance)
	}
}

func TestSortRows_UnknownField(t *testing.T) {
	rows := sortFixture(t)

	err := SortRows(rows, "vibes", Ascending)

	assert.EqualError(t, err, `unknown sort field: "vibes"`)
}

func TestSortRows_UnknownDirection(t *testing.T) {
	rows := sortFixture(t)

	err := SortRows(rows, "date", SortDirection("sideways"))

	assert.EqualError(t, err, `unknown sort direction: "sideways"`)
}
