package importcsv

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mwansa/consoleplug/internal/importer"
	"github.com/mwansa/consoleplug/internal/stock"
)

type Handler struct {
	importSvc *importer.Service
	stockSvc  *stock.Service
}

func NewHandler(importSvc *importer.Service, stockSvc *stock.Service) *Handler {
	return &Handler{
		importSvc: importSvc,
		stockSvc:  stockSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/stock", h.importCSV)
}

type itemResponse struct {
	ID          uuid.UUID      `json:"id"`
	Category    stock.Category `json:"category"`
	ProductName string         `json:"product_name"`
	Quantity    int            `json:"quantity"`
	BuyingPrice int64          `json:"buying_price"`
	DateAdded   time.Time      `json:"date_added"`
}

type importSuccessResponse struct {
	Imported int            `json:"imported"`
	Items    []itemResponse `json:"items"`
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	format := importer.Format(r.FormValue("format"))
	if format == "" {
		format = importer.FormatStockSheet
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	params, err := h.importSvc.Import(format, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// The whole sheet lands in one transaction; a bad row imports nothing.
	created, err := h.stockSvc.CreateBatch(r.Context(), params)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	items := make([]itemResponse, 0, len(created))

	for _, item := range created {
		items = append(items, itemResponse{
			ID:          item.ID,
			Category:    item.Category,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			BuyingPrice: item.BuyingPrice,
			DateAdded:   item.DateAdded,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(importSuccessResponse{
		Imported: len(items),
		Items:    items,
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
