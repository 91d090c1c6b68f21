// Package export renders a built report as an Excel workbook for the
// dashboard's download button.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/mwansa/consoleplug/internal/report"
)

const sheetName = "Daily Report"

// summaryRows is the number of rows the summary block occupies, including
// the blank spacer before the table header.
const summaryRows = 6

var tableHeader = []any{
	"Date", "Opening Balance", "Qty Sold", "Total Buying Price", "Sales Amount",
	"Expense Items", "Expense Amount", "New Stock", "Net Profit", "Difference",
	"Closing Balance",
}

// Workbook renders the report into a single-sheet workbook: the summary
// block on top, then the daily rows in the order the report carries them.
func Workbook(rep *report.Report) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("renaming sheet: %w", err)
	}

	period := fmt.Sprintf("%s to %s",
		rep.StartDate.Format(time.DateOnly), rep.EndDate.Format(time.DateOnly))

	summary := [][]any{
		{"Period", period},
		{"Total Revenue", kwacha(rep.Summary.TotalRevenue)},
		{"Total Expenses", kwacha(rep.Summary.TotalExpenses)},
		{"Net Profit", kwacha(rep.Summary.NetProfit)},
		{"Transactions", rep.Summary.TransactionCount},
	}

	for i, row := range summary {
		if err := setRow(f, 1+i, row); err != nil {
			return nil, err
		}
	}

	if err := setRow(f, summaryRows+1, tableHeader); err != nil {
		return nil, err
	}

	for i, row := range rep.Rows {
		cells := []any{
			row.Date.Format(time.DateOnly),
			kwacha(row.OpeningBalance),
			row.QuantitySold,
			kwacha(row.TotalBuyingPrice),
			kwacha(row.SalesAmount),
			row.ExpenseItems,
			kwacha(row.ExpenseAmount),
			row.NewStockItems,
			kwacha(row.NetProfit),
			kwacha(row.Difference),
			kwacha(row.ClosingBalance),
		}

		if err := setRow(f, summaryRows+2+i, cells); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// Write renders the report and writes the workbook bytes to w.
func Write(w io.Writer, rep *report.Report) error {
	f, err := Workbook(rep)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}

	return nil
}

func setRow(f *excelize.File, rowNum int, cells []any) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("row %d: %w", rowNum, err)
	}

	if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
		return fmt.Errorf("row %d: %w", rowNum, err)
	}

	return nil
}

// kwacha converts cents to the unit the spreadsheet displays.
func kwacha(cents int64) float64 {
	return float64(cents) / 100
}
