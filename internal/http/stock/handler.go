package stock

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mwansa/consoleplug/internal/stock"
)

type Handler struct {
	svc *stock.Service
}

func NewHandler(svc *stock.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/value", h.totalValue)
	r.Get("/low", h.lowStock)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Patch("/{id}/quantity", h.adjust)
	r.Delete("/{id}", h.delete)
}

type createItemRequest struct {
	Category          stock.Category  `json:"category"`
	Subcategory       string          `json:"subcategory"`
	Platform          string          `json:"platform"`
	Model             string          `json:"model"`
	ProductName       string          `json:"product_name"`
	SerialNumber      string          `json:"serial_number"`
	Condition         stock.Condition `json:"condition"`
	Quantity          int             `json:"quantity"`
	BuyingPrice       int64           `json:"buying_price"`
	SellingPrice      int64           `json:"selling_price"`
	DateAdded         time.Time       `json:"date_added"`
	Supplier          string          `json:"supplier"`
	Notes             string          `json:"notes"`
	LowStockThreshold int             `json:"low_stock_threshold"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	item, err := h.svc.Create(r.Context(), stock.CreateParams{
		Category:          req.Category,
		Subcategory:       req.Subcategory,
		Platform:          req.Platform,
		Model:             req.Model,
		ProductName:       req.ProductName,
		SerialNumber:      req.SerialNumber,
		Condition:         req.Condition,
		Quantity:          req.Quantity,
		BuyingPrice:       req.BuyingPrice,
		SellingPrice:      req.SellingPrice,
		DateAdded:         req.DateAdded,
		Supplier:          req.Supplier,
		Notes:             req.Notes,
		LowStockThreshold: req.LowStockThreshold,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(item)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := stock.ListFilter{}

	if s := r.URL.Query().Get("category"); s != "" {
		filter.Category = new(stock.Category(s))
	}

	if s := r.URL.Query().Get("platform"); s != "" {
		filter.Platform = new(s)
	}

	if r.URL.Query().Get("low_stock") == "true" {
		filter.LowStockOnly = true
	}

	items, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(items)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) totalValue(w http.ResponseWriter, r *http.Request) {
	total, err := h.svc.TotalValue(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(totalValueResponse{TotalValue: total}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) lowStock(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.LowStock(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(items)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	item, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, stock.ErrNotFound) {
			http.Error(w, "stock item not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(item)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req createItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	item, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, stock.ErrNotFound) {
			http.Error(w, "stock item not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	item.Category = req.Category
	item.Subcategory = req.Subcategory
	item.Platform = req.Platform
	item.Model = req.Model
	item.ProductName = req.ProductName
	item.SerialNumber = req.SerialNumber
	item.Condition = req.Condition
	item.Quantity = req.Quantity
	item.BuyingPrice = req.BuyingPrice
	item.SellingPrice = req.SellingPrice
	item.Supplier = req.Supplier
	item.Notes = req.Notes
	item.LowStockThreshold = req.LowStockThreshold

	if !req.DateAdded.IsZero() {
		item.DateAdded = req.DateAdded
	}

	if err := h.svc.Update(r.Context(), item); err != nil {
		if errors.Is(err, stock.ErrNotFound) {
			http.Error(w, "stock item not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(item)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type adjustRequest struct {
	Delta int `json:"delta"`
}

func (h *Handler) adjust(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req adjustRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	item, err := h.svc.Adjust(r.Context(), id, req.Delta)
	if err != nil {
		switch {
		case errors.Is(err, stock.ErrNotFound):
			http.Error(w, "stock item not found", http.StatusNotFound)
		case errors.Is(err, stock.ErrInsufficientStock):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(item)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, stock.ErrNotFound) {
			http.Error(w, "stock item not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
