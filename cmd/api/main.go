package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/mwansa/consoleplug/internal/cash"
	cashStore "github.com/mwansa/consoleplug/internal/cash/store"
	"github.com/mwansa/consoleplug/internal/config"
	"github.com/mwansa/consoleplug/internal/database"
	"github.com/mwansa/consoleplug/internal/expense"
	expenseStore "github.com/mwansa/consoleplug/internal/expense/store"
	plugHttp "github.com/mwansa/consoleplug/internal/http"
	cashHandler "github.com/mwansa/consoleplug/internal/http/cash"
	expenseHandler "github.com/mwansa/consoleplug/internal/http/expense"
	importHandler "github.com/mwansa/consoleplug/internal/http/importcsv"
	notificationHandler "github.com/mwansa/consoleplug/internal/http/notification"
	reportHandler "github.com/mwansa/consoleplug/internal/http/report"
	saleHandler "github.com/mwansa/consoleplug/internal/http/sale"
	stockHandler "github.com/mwansa/consoleplug/internal/http/stock"
	"github.com/mwansa/consoleplug/internal/importer"
	"github.com/mwansa/consoleplug/internal/notification"
	notificationStore "github.com/mwansa/consoleplug/internal/notification/store"
	"github.com/mwansa/consoleplug/internal/report"
	"github.com/mwansa/consoleplug/internal/sale"
	saleStore "github.com/mwansa/consoleplug/internal/sale/store"
	"github.com/mwansa/consoleplug/internal/stock"
	stockStore "github.com/mwansa/consoleplug/internal/stock/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	notificationService := notification.NewService(notificationStore.New(db))

	var (
		stockService   = stock.NewService(stockStore.New(db), notificationService, cfg.Shop.DefaultLowStockThreshold)
		saleService    = sale.NewService(saleStore.New(db), notificationService)
		expenseService = expense.NewService(expenseStore.New(db))
		cashService    = cash.NewService(cashStore.New(db), saleService, expenseService)
		reportService  = report.NewService(saleService, expenseService, stockService)
		importService  = importer.NewService()
	)

	var (
		stockH        = stockHandler.NewHandler(stockService)
		saleH         = saleHandler.NewHandler(saleService)
		expenseH      = expenseHandler.NewHandler(expenseService)
		cashH         = cashHandler.NewHandler(cashService)
		reportH       = reportHandler.NewHandler(reportService)
		notificationH = notificationHandler.NewHandler(notificationService)
		importH       = importHandler.NewHandler(importService, stockService)
	)

	router := plugHttp.New(stockH, saleH, expenseH, cashH, reportH, notificationH, importH)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "addr", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
