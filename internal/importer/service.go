package importer

import (
	"fmt"
	"io"

	"github.com/mwansa/consoleplug/internal/importer/stocksheet"
	"github.com/mwansa/consoleplug/internal/stock"
)

type Service struct {
	stockSheet Importer
}

func NewService() *Service {
	return &Service{
		stockSheet: stocksheet.NewParser(),
	}
}

func (s *Service) Import(format Format, r io.Reader) ([]stock.CreateParams, error) {
	var importer Importer

	switch format {
	case FormatStockSheet:
		importer = s.stockSheet
	default:
		return nil, fmt.Errorf("unknown import format: %s", format)
	}

	return importer.Parse(r)
}
