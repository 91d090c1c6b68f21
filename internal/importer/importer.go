package importer

import (
	"io"

	"github.com/mwansa/consoleplug/internal/stock"
)

// Format names a supported spreadsheet layout.
type Format string

const (
	FormatStockSheet Format = "stock_sheet"
)

type Importer interface {
	Parse(r io.Reader) ([]stock.CreateParams, error)
}
