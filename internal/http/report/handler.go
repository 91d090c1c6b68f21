package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mwansa/consoleplug/internal/export"
	"github.com/mwansa/consoleplug/internal/report"
)

type Handler struct {
	svc *report.Service
}

func NewHandler(svc *report.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.daily)
	r.Get("/export", h.exportDaily)
}

// generate parses the shared query parameters and builds the report.
// Writes the error response itself and returns nil when the build fails.
func (h *Handler) generate(w http.ResponseWriter, r *http.Request) *report.Report {
	query := r.URL.Query()

	start, err := time.Parse(time.DateOnly, query.Get("start_date"))
	if err != nil {
		http.Error(w, "start_date is required (YYYY-MM-DD)", http.StatusBadRequest)
		return nil
	}

	end, err := time.Parse(time.DateOnly, query.Get("end_date"))
	if err != nil {
		http.Error(w, "end_date is required (YYYY-MM-DD)", http.StatusBadRequest)
		return nil
	}

	var opening *int64

	if s := query.Get("opening_balance"); s != "" {
		cents, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			http.Error(w, "opening_balance must be an integer amount in cents", http.StatusBadRequest)
			return nil
		}

		opening = &cents
	}

	rep, err := h.svc.Generate(r.Context(), start, end, opening)
	if err != nil {
		var rangeErr *report.InvalidRangeError
		if errors.As(err, &rangeErr) {
			http.Error(w, rangeErr.Error(), http.StatusBadRequest)
			return nil
		}

		var malformed *report.MalformedRecordError
		if errors.As(err, &malformed) {
			http.Error(w, malformed.Error(), http.StatusUnprocessableEntity)
			return nil
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return nil
	}

	if field := query.Get("sort_by"); field != "" {
		direction := report.Descending
		if query.Get("sort_dir") == string(report.Ascending) {
			direction = report.Ascending
		}

		if err := report.SortRows(rep.Rows, field, direction); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return nil
		}
	}

	return rep
}

func (h *Handler) daily(w http.ResponseWriter, r *http.Request) {
	rep := h.generate(w, r)
	if rep == nil {
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(rep); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) exportDaily(w http.ResponseWriter, r *http.Request) {
	rep := h.generate(w, r)
	if rep == nil {
		return
	}

	filename := fmt.Sprintf("daily-report-%s-%s.xlsx",
		rep.StartDate.Format(time.DateOnly), rep.EndDate.Format(time.DateOnly))

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)

	if err := export.Write(w, rep); err != nil {
		slog.Error("failed to write workbook", "error", err)
	}
}
