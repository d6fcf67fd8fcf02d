package services

import (
	"errors"
	"time"

	"github.com/username/finreport/src/models"
)

var (
	// ErrSourceUnavailable wraps failures to read the operations export.
	ErrSourceUnavailable = errors.New("operations source unavailable")
)

// TransactionSource supplies the full in-memory transaction table.
type TransactionSource interface {
	Load() ([]models.Transaction, error)
}

// CurrencyRateProvider returns quoted rates for the requested currencies.
// A provider never fails: on any error it substitutes its fallback table.
type CurrencyRateProvider interface {
	GetRates(currencies []string) []models.CurrencyRate
}

// StockPriceProvider returns quoted prices for the requested symbols.
// A provider never fails: on any error it substitutes its fallback table.
type StockPriceProvider interface {
	GetPrices(symbols []string) []models.StockPrice
}

// DashboardService assembles the dashboard view for a reference timestamp.
type DashboardService interface {
	Assemble(reference time.Time) *models.DashboardResult
}

// ReportFunc is any operation producing a tabular report over the
// transaction table. SaveReport wraps one with persistence.
type ReportFunc func(category string, date *time.Time) ([]models.Transaction, error)

// ReportService produces windowed category reports.
type ReportService interface {
	// SpendingByCategory returns transactions of the given category in
	// the three calendar months up to date (now when date is nil).
	SpendingByCategory(category string, date *time.Time) ([]models.Transaction, error)
}

// ScanService runs the diagnostic mobile-number scan.
type ScanService interface {
	MobileTransactions() ([]map[string]any, error)
}
