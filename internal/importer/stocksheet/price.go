package stocksheet

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parsePrice parses a price string into cents. Accepts thousands commas
// and an optional currency prefix: "1,234.56" -> 123456, "K350" -> 35000,
// "48.50" -> 4850.
func parsePrice(s string) (int64, error) {
	clean := strings.TrimLeft(s, "K ")
	clean = strings.ReplaceAll(clean, ",", "")

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, err
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}
