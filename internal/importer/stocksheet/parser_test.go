package stocksheet_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/mwansa/consoleplug/internal/importer/stocksheet"
	"github.com/mwansa/consoleplug/internal/stock"
)

func TestParser_Inventory(t *testing.T) {
	csv := `Console Plug Lusaka - stock export 2026-03-01

Product Name,Category,Platform,Condition,Serial Number,Quantity,Buying Price,Selling Price,Supplier,Date Added,Notes
PS5 Slim Disc Edition,Console,PS5,New,SN-8841-22,3,"7,800.00","9,500.00",GameHub Distributors,2026-02-27,
DualSense Controller,Accessory,PS5,New,,10,850.00,"1,150.00",GameHub Distributors,2026-02-27,white
Xbox Series S,Console,Xbox,Pre-owned,XS-0092,1,"3,200.00","4,100.00",,28/02/2026,trade-in

Total items,,,,,14,,,,,
`

	items, err := stocksheet.NewParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, items, 3)

	ps5 := items[0]
	assert.Equal(t, stock.CategoryConsole, ps5.Category)
	assert.Equal(t, "PS5", ps5.Platform)
	assert.Equal(t, "PS5 Slim Disc Edition", ps5.ProductName)
	assert.Equal(t, "SN-8841-22", ps5.SerialNumber)
	assert.Equal(t, stock.ConditionNew, ps5.Condition)
	assert.Equal(t, 3, ps5.Quantity)
	assert.Equal(t, int64(780000), ps5.BuyingPrice)
	assert.Equal(t, int64(950000), ps5.SellingPrice)
	assert.Equal(t, "GameHub Distributors", ps5.Supplier)
	assert.Equal(t, time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC), ps5.DateAdded)

	pad := items[1]
	assert.Equal(t, stock.CategoryAccessory, pad.Category)
	assert.Equal(t, int64(85000), pad.BuyingPrice)
	assert.Equal(t, "white", pad.Notes)

	xbox := items[2]
	assert.Equal(t, stock.ConditionPreOwned, xbox.Condition)
	// Dates in the sheet's other format still parse.
	assert.Equal(t, time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), xbox.DateAdded)
}

func TestParser_SupplierPriceList(t *testing.T) {
	csv := `GameHub Distributors - March price list

Item,Platform,Units,Unit Cost
Nintendo Switch 2,Switch,5,"K6,400.00"
Joy-Con Pair,Switch,12,K780.50
`

	items, err := stocksheet.NewParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "Nintendo Switch 2", items[0].ProductName)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, int64(640000), items[0].BuyingPrice)
	// Cost-only sheets leave the selling price for the shop to set.
	assert.Equal(t, int64(0), items[0].SellingPrice)
	assert.True(t, items[0].DateAdded.IsZero())

	assert.Equal(t, int64(78050), items[1].BuyingPrice)
}

func TestParser_Windows1252Sheet(t *testing.T) {
	utf8 := "Item,Platform,Units,Unit Cost\nPokémon Scarlet,Switch,4,K550.00\n"

	raw, err := charmap.Windows1252.NewEncoder().String(utf8)
	require.NoError(t, err)

	items, parseErr := stocksheet.NewParser().Parse(strings.NewReader(raw))
	require.NoError(t, parseErr)
	require.Len(t, items, 1)

	assert.Equal(t, "Pokémon Scarlet", items[0].ProductName)
}

func TestParser_MissingProductName(t *testing.T) {
	csv := `Item,Platform,Units,Unit Cost
,Switch,5,K100.00
`

	_, err := stocksheet.NewParser().Parse(strings.NewReader(csv))

	assert.EqualError(t, err, "row 2: missing product name")
}

func TestParser_BadPrice(t *testing.T) {
	csv := `Item,Platform,Units,Unit Cost
Nintendo Switch 2,Switch,5,call us
`

	_, err := stocksheet.NewParser().Parse(strings.NewReader(csv))

	assert.ErrorContains(t, err, "row 2: buying price")
}

func TestParser_UnknownLayout(t *testing.T) {
	csv := `SKU;Amount;Total
A1;2;30
`

	_, err := stocksheet.NewParser().Parse(strings.NewReader(csv))

	assert.ErrorContains(t, err, "no matching sheet format")
}
