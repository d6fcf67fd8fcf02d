package services

import (
	"time"

	"github.com/username/finreport/src/logger"
	"github.com/username/finreport/src/models"
	"github.com/username/finreport/src/processors"
	"github.com/username/finreport/src/utils"
)

type dashboardServiceImpl struct {
	source           TransactionSource
	windowFilter     processors.WindowFilter
	cardProcessor    processors.CardProcessor
	topProcessor     processors.TopProcessor
	currencyProvider CurrencyRateProvider
	stockProvider    StockPriceProvider
	settingsPath     string
}

func NewDashboardService(
	source TransactionSource,
	windowFilter processors.WindowFilter,
	cardProcessor processors.CardProcessor,
	topProcessor processors.TopProcessor,
	currencyProvider CurrencyRateProvider,
	stockProvider StockPriceProvider,
	settingsPath string,
) DashboardService {
	return &dashboardServiceImpl{
		source:           source,
		windowFilter:     windowFilter,
		cardProcessor:    cardProcessor,
		topProcessor:     topProcessor,
		currencyProvider: currencyProvider,
		stockProvider:    stockProvider,
		settingsPath:     settingsPath,
	}
}

// Assemble composes the dashboard for the given reference timestamp. The
// window runs from the first day of the reference month up to the
// timestamp itself. Collaborator failures degrade to empty or fallback
// data; Assemble itself never fails.
func (s *dashboardServiceImpl) Assemble(reference time.Time) *models.DashboardResult {
	start := utils.FirstOfMonth(reference)
	logger.L.Info("Assembling dashboard", "reference", reference.Format(models.ISOLayout))

	cards, topTransactions := s.analyzeCards(start, reference)

	settings := utils.LoadUserSettings(s.settingsPath)
	rates := s.currencyProvider.GetRates(settings.UserCurrencies)
	prices := s.stockProvider.GetPrices(settings.UserStocks)

	return &models.DashboardResult{
		Greeting:        greetingFor(reference),
		Cards:           cards,
		TopTransactions: topTransactions,
		CurrencyRates:   rates,
		StockPrices:     prices,
		StartDate:       models.ISOTime{Time: start},
		EndDate:         models.ISOTime{Time: reference},
	}
}

// analyzeCards computes per-card summaries and the top transactions for
// the window. If the source cannot be read the dashboard degrades to
// empty card data instead of failing.
func (s *dashboardServiceImpl) analyzeCards(start, end time.Time) ([]models.CardSummary, []models.TopTransaction) {
	transactions, err := s.source.Load()
	if err != nil {
		logger.L.Error("Failed to load operations, dashboard degrades to empty card data", "error", err)
		return []models.CardSummary{}, []models.TopTransaction{}
	}

	windowed := s.windowFilter.FilterRange(transactions, start, end)
	return s.cardProcessor.Process(windowed), s.topProcessor.Process(windowed, processors.DefaultTopCount)
}

// greetingFor maps the hour of day to a greeting. Buckets are closed on
// the lower bound and open on the upper.
func greetingFor(t time.Time) string {
	switch hour := t.Hour(); {
	case hour >= 5 && hour < 12:
		return "Good morning"
	case hour >= 12 && hour < 18:
		return "Good afternoon"
	case hour >= 18 && hour < 22:
		return "Good evening"
	default:
		return "Good night"
	}
}
