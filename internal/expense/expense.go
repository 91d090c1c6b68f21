package expense

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("expense not found")

// Category classifies shop expenses. Cash withdrawals and top-ups are not
// expense categories; they live in the cash package as ledger transactions.
type Category string

const (
	CategoryRent      Category = "rent"
	CategoryUtilities Category = "utilities"
	CategoryTransport Category = "transport"
	CategoryMarketing Category = "marketing"
	CategorySalaries  Category = "salaries"
	CategorySupplies  Category = "supplies"
	CategoryRepairs   Category = "repairs"
	CategoryOther     Category = "other"
)

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryRent, CategoryUtilities, CategoryTransport, CategoryMarketing,
		CategorySalaries, CategorySupplies, CategoryRepairs, CategoryOther:
		return true
	}

	return false
}

// Expense is a cost recorded against the shop. Amount is in cents and
// always positive.
type Expense struct {
	ID        uuid.UUID
	Item      string
	Amount    int64
	Category  Category
	Date      time.Time
	Notes     string
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
}
