package stock

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound          = errors.New("stock item not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Category represents the top-level product category.
type Category string

const (
	CategoryConsole   Category = "console"
	CategoryAccessory Category = "accessory"
)

// Condition represents the physical condition of a console.
type Condition string

const (
	ConditionNew      Condition = "new"
	ConditionPreOwned Condition = "pre_owned"
)

// Item represents a product line in the shop's inventory. Prices are in cents.
type Item struct {
	ID                uuid.UUID
	Category          Category
	Subcategory       string // controller, power pack, ... for accessories
	Platform          string
	Model             string
	ProductName       string
	SerialNumber      string
	Condition         Condition
	Quantity          int
	BuyingPrice       int64
	SellingPrice      int64
	DateAdded         time.Time
	Supplier          string
	Notes             string
	LowStockThreshold int
	CreatedAt         time.Time
	UpdatedAt         *time.Time
	DeletedAt         *time.Time
}

// LowStock reports whether the item is at or below its reorder threshold.
func (i *Item) LowStock() bool {
	return i.Quantity <= i.LowStockThreshold
}

// Value is the item's total selling value (what selling the whole
// quantity would bring in).
func (i *Item) Value() int64 {
	return i.SellingPrice * int64(i.Quantity)
}

// Addition is the slice of an item relevant to valuing newly received
// inventory on a given day. The daily report consumes these.
type Addition struct {
	ID          uuid.UUID
	ProductName string
	Quantity    int
	BuyingPrice int64
	DateAdded   time.Time
}

// AsAddition views the item as a stock addition dated at DateAdded.
func (i *Item) AsAddition() Addition {
	return Addition{
		ID:          i.ID,
		ProductName: i.ProductName,
		Quantity:    i.Quantity,
		BuyingPrice: i.BuyingPrice,
		DateAdded:   i.DateAdded,
	}
}
