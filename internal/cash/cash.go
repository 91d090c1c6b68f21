package cash

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound         = errors.New("cash transaction not found")
	ErrInsufficientCash = errors.New("insufficient cash available")
)

// Direction distinguishes money put into the drawer from money taken out.
// The dashboard's predecessor modeled these as expense rows with magic
// categories; here they are a first-class transaction type.
type Direction string

const (
	DirectionTopUp    Direction = "top_up"
	DirectionWithdraw Direction = "withdraw"
)

// Valid reports whether d is a known direction.
func (d Direction) Valid() bool {
	return d == DirectionTopUp || d == DirectionWithdraw
}

// Transaction is a cash movement outside of sales and expenses.
// Amount is in cents and always positive; Direction carries the sign.
type Transaction struct {
	ID        uuid.UUID
	Direction Direction
	Amount    int64
	Reason    string
	Date      time.Time
	TimeOfDay string
	CreatedAt time.Time
}
