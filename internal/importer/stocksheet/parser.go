package stocksheet

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	enc "github.com/mwansa/consoleplug/internal/encoding"
	"github.com/mwansa/consoleplug/internal/stock"
)

// Parser reads stock spreadsheets and produces item create params. It
// auto-detects which layout (full inventory export or a supplier's price
// list) is being used by matching column headers against known profiles.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]stock.CreateParams, error) {
	utf8r, err := enc.UTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	br := bufio.NewReader(utf8r)

	reader := csv.NewReader(br)
	reader.Comma = detectDelimiter(br)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	profile, cols, headerIdx := detectProfile(rows)
	if profile == nil {
		return nil, fmt.Errorf("no matching sheet format found: expected inventory or supplier columns")
	}

	return parseRows(profile, cols, rows[headerIdx+1:], headerIdx+1)
}

// detectDelimiter picks comma or semicolon by whichever dominates the first
// chunk of the sheet. European spreadsheet tools export semicolons.
func detectDelimiter(br *bufio.Reader) rune {
	head, _ := br.Peek(1024)

	if strings.Count(string(head), ";") > strings.Count(string(head), ",") {
		return ';'
	}

	return ','
}

// colIndex maps column names to their index in the row.
type colIndex map[string]int

func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.TrimSpace(cell)
			if name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows extracts create params from data rows using the matched profile.
// headerRowNum is the 0-based index of the header in the original file.
func parseRows(p *Profile, cols colIndex, rows [][]string, headerRowNum int) ([]stock.CreateParams, error) {
	var items []stock.CreateParams

	for i, row := range rows {
		rowNum := headerRowNum + i + 2 // 1-based, skipping header

		quantity, ok := parseQuantity(row, cols[p.QuantityCol])
		if !ok {
			// Footer or blank row.
			continue
		}

		buyingCell := cellValue(row, cols[p.BuyingCol])
		if buyingCell == "" {
			// Summary and total rows carry a count but no price.
			continue
		}

		name := optional(row, cols, p.ProductCol)
		if name == "" {
			return nil, fmt.Errorf("row %d: missing product name", rowNum)
		}

		buyingPrice, err := parsePrice(buyingCell)
		if err != nil {
			return nil, fmt.Errorf("row %d: buying price: %w", rowNum, err)
		}

		var sellingPrice int64

		if p.PriceMode == pricePair {
			sellingPrice, err = parsePrice(cellValue(row, cols[p.SellingCol]))
			if err != nil {
				return nil, fmt.Errorf("row %d: selling price: %w", rowNum, err)
			}
		}

		items = append(items, stock.CreateParams{
			Category:     parseCategory(optional(row, cols, p.CategoryCol)),
			Platform:     optional(row, cols, p.PlatformCol),
			ProductName:  name,
			SerialNumber: optional(row, cols, p.SerialCol),
			Condition:    parseCondition(optional(row, cols, p.ConditionCol)),
			Quantity:     quantity,
			BuyingPrice:  buyingPrice,
			SellingPrice: sellingPrice,
			DateAdded:    parseDate(optional(row, cols, p.DateCol)),
			Supplier:     optional(row, cols, p.SupplierCol),
			Notes:        optional(row, cols, p.NotesCol),
		})
	}

	return items, nil
}

func parseQuantity(row []string, idx int) (int, bool) {
	s := cellValue(row, idx)
	if s == "" {
		return 0, false
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}

	return n, true
}

func parseCategory(s string) stock.Category {
	switch strings.ToLower(s) {
	case "console", "consoles":
		return stock.CategoryConsole
	}

	// Supplier sheets rarely classify; accessory is the safe default and
	// gets corrected in review.
	return stock.CategoryAccessory
}

func parseCondition(s string) stock.Condition {
	switch strings.ToLower(s) {
	case "pre-owned", "pre_owned", "used":
		return stock.ConditionPreOwned
	}

	return stock.ConditionNew
}

// parseDate accepts the formats the sheets actually use. Anything else
// leaves the date zero and the stock service stamps today.
func parseDate(s string) time.Time {
	for _, layout := range []string{time.DateOnly, "02/01/2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}

	return time.Time{}
}

// optional reads a column the profile may not have.
func optional(row []string, cols colIndex, name string) string {
	if name == "" {
		return ""
	}

	idx, ok := cols[name]
	if !ok {
		return ""
	}

	return cellValue(row, idx)
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
