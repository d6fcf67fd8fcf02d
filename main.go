package main

import (
	"encoding/json"
	stdlog "log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/username/finreport/src/config"
	"github.com/username/finreport/src/handlers"
	"github.com/username/finreport/src/logger"
	"github.com/username/finreport/src/parsers"
	"github.com/username/finreport/src/processors"
	"github.com/username/finreport/src/services"
)

var limiter = rate.NewLimiter(rate.Every(100*time.Millisecond), 30)

func rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			logger.L.Warn("Rate limit exceeded",
				"method", r.Method,
				"path", r.URL.Path,
				"remoteAddr", r.RemoteAddr)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		allowedOrigins := map[string]bool{
			"http://localhost:3000": true,
		}

		if allowedOrigins[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding")
		} else if origin == "" {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}

		if r.Method == "OPTIONS" {
			logger.L.Debug("Handling OPTIONS preflight request", "path", r.URL.Path, "origin", origin)
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func main() {
	config.LoadConfig()
	logger.InitLogger(config.Cfg.LogLevel)
	logger.L.Info("Finreport server starting...")

	if _, err := os.Stat(config.Cfg.OperationsPath); err != nil {
		logger.L.Warn("Operations file not found at startup. Reports will fail until it exists.",
			"path", config.Cfg.OperationsPath, "error", err)
	}

	logger.L.Info("Initializing report cache...")
	reportCache := cache.New(15*time.Minute, 30*time.Minute)

	logger.L.Info("Initializing services and handlers...")
	parser, err := parsers.GetParser("operations")
	if err != nil {
		logger.L.Error("Failed to initialize operations parser", "error", err)
		os.Exit(1)
	}
	source := parsers.NewFileSource(config.Cfg.OperationsPath, parser)

	windowFilter := processors.NewWindowFilter()
	cardProcessor := processors.NewCardProcessor()
	topProcessor := processors.NewTopProcessor()
	phoneScanner := processors.NewPhoneScanner()

	currencyService := services.NewCurrencyService(
		config.Cfg.CurrencyAPIURL, config.Cfg.CurrencyAPIKey, config.Cfg.HTTPClientTimeout, reportCache)
	stockService := services.NewStockService(
		config.Cfg.StockAPIURL, config.Cfg.StockAPIKey, config.Cfg.HTTPClientTimeout, reportCache)

	dashboardService := services.NewDashboardService(
		source, windowFilter, cardProcessor, topProcessor,
		currencyService, stockService, config.Cfg.UserSettingsPath)
	reportService := services.NewReportService(source, windowFilter, reportCache)
	scanService := services.NewScanService(source, phoneScanner)

	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	reportHandler := handlers.NewReportHandler(reportService, config.Cfg.ReportsDir)
	scanHandler := handlers.NewScanHandler(scanService)

	logger.L.Info("Configuring routes...")
	rootMux := http.NewServeMux()
	apiRouter := http.NewServeMux()

	apiRouter.HandleFunc("GET /api/dashboard", dashboardHandler.HandleGetDashboard)
	apiRouter.HandleFunc("GET /api/reports/spending-by-category", reportHandler.HandleSpendingByCategory)
	apiRouter.HandleFunc("GET /api/services/mobile-transactions", scanHandler.HandleGetMobileTransactions)

	rootMux.Handle("/api/", apiRouter)

	rootMux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" && r.Method == http.MethodGet {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{"message": "Finreport backend is running"})
		} else {
			if !strings.HasPrefix(r.URL.Path, "/api/") {
				logger.L.Warn("Root level path not found", "method", r.Method, "path", r.URL.Path)
				http.NotFound(w, r)
			}
		}
	})

	logger.L.Info("Applying global middleware...")
	finalHandler := enableCORS(rateLimitMiddleware(rootMux))

	serverAddr := ":" + config.Cfg.Port
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      finalHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.L.Info("Server starting", "address", serverAddr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.L.Error("Failed to start server", "error", err)
		stdlog.Fatalf("Failed to start server: %v", err)
	} else if err == http.ErrServerClosed {
		logger.L.Info("Server stopped gracefully.")
	}
}
