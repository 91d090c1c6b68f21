package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/mwansa/consoleplug/internal/http/cash"
	"github.com/mwansa/consoleplug/internal/http/expense"
	"github.com/mwansa/consoleplug/internal/http/importcsv"
	"github.com/mwansa/consoleplug/internal/http/notification"
	"github.com/mwansa/consoleplug/internal/http/report"
	"github.com/mwansa/consoleplug/internal/http/sale"
	"github.com/mwansa/consoleplug/internal/http/stock"
)

func New(
	stockV1 *stock.Handler,
	salesV1 *sale.Handler,
	expensesV1 *expense.Handler,
	cashV1 *cash.Handler,
	reportsV1 *report.Handler,
	notificationsV1 *notification.Handler,
	importV1 *importcsv.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "https://*.consoleplug.shop"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/stock", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			stockV1.Routes(r)
		})

		r.Route("/sales", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			salesV1.Routes(r)
		})

		r.Route("/expenses", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			expensesV1.Routes(r)
		})

		r.Route("/cash", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			cashV1.Routes(r)
		})

		r.Route("/reports", reportsV1.Routes)

		r.Route("/notifications", notificationsV1.Routes)

		r.Route("/import", importV1.Routes)
	})

	return router
}
