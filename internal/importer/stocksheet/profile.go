package stocksheet

// priceMode determines how prices are extracted from a row.
type priceMode int

const (
	// pricePair means separate buying and selling price columns.
	pricePair priceMode = iota
	// priceCostOnly means only a unit cost column. The selling price is
	// left at zero for the shop to fill in after deciding the markup.
	priceCostOnly
)

// Profile describes the column layout of a stock spreadsheet format.
// Adding a new supplier's layout is just adding a new Profile to the
// profiles slice.
type Profile struct {
	Name        string
	ProductCol  string
	QuantityCol string
	PriceMode   priceMode
	BuyingCol   string
	SellingCol  string // used when PriceMode == pricePair

	// Optional columns. Empty means the profile's sheets never carry them.
	CategoryCol  string
	PlatformCol  string
	ConditionCol string
	SerialCol    string
	SupplierCol  string
	DateCol      string
	NotesCol     string
}

// requiredCols returns the column names that must be present for this
// profile to match.
func (p Profile) requiredCols() []string {
	cols := []string{p.ProductCol, p.QuantityCol, p.BuyingCol}

	if p.PriceMode == pricePair {
		cols = append(cols, p.SellingCol)
	}

	return cols
}

// profiles is the ordered list of sheet formats to try during
// auto-detection. More specific profiles come first to avoid false matches.
var profiles = []Profile{
	{
		Name:         "inventory",
		ProductCol:   "Product Name",
		QuantityCol:  "Quantity",
		PriceMode:    pricePair,
		BuyingCol:    "Buying Price",
		SellingCol:   "Selling Price",
		CategoryCol:  "Category",
		PlatformCol:  "Platform",
		ConditionCol: "Condition",
		SerialCol:    "Serial Number",
		SupplierCol:  "Supplier",
		DateCol:      "Date Added",
		NotesCol:     "Notes",
	},
	{
		Name:        "supplier",
		ProductCol:  "Item",
		QuantityCol: "Units",
		PriceMode:   priceCostOnly,
		BuyingCol:   "Unit Cost",
		PlatformCol: "Platform",
	},
}
