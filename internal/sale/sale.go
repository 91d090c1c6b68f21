package sale

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("sale not found")

// PaymentMethod is how the customer paid.
type PaymentMethod string

const (
	PaymentCash        PaymentMethod = "cash"
	PaymentMobileMoney PaymentMethod = "mobile_money"
)

// Valid reports whether m is a known payment method.
func (m PaymentMethod) Valid() bool {
	return m == PaymentCash || m == PaymentMobileMoney
}

// Sale is a completed sale. Buying and selling prices are snapshots taken
// from the stock item at the moment of sale; TotalAmount and Profit are
// derived from them and never accepted from a client. Amounts are in cents.
type Sale struct {
	ID           uuid.UUID
	StockID      uuid.UUID
	ProductName  string
	Category     string
	Platform     string
	SerialNumber string
	Quantity     int
	BuyingPrice  int64
	SellingPrice int64
	TotalAmount  int64
	Profit       int64
	Payment      PaymentMethod
	Date         time.Time
	TimeOfDay    string // display-only, e.g. "02:30 PM"
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	DeletedAt    *time.Time
}

// Derived recomputes the amounts that must always follow from the snapshot
// prices and quantity.
func (s *Sale) Derived() (totalAmount, profit int64) {
	return s.SellingPrice * int64(s.Quantity),
		(s.SellingPrice - s.BuyingPrice) * int64(s.Quantity)
}
