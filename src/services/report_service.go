package services

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/username/finreport/src/logger"
	"github.com/username/finreport/src/models"
	"github.com/username/finreport/src/processors"
)

const ckSpendingByCategory = "report_spending_%s_%s"

type reportServiceImpl struct {
	source       TransactionSource
	windowFilter processors.WindowFilter
	reportCache  *cache.Cache
}

func NewReportService(source TransactionSource, windowFilter processors.WindowFilter, reportCache *cache.Cache) ReportService {
	return &reportServiceImpl{
		source:       source,
		windowFilter: windowFilter,
		reportCache:  reportCache,
	}
}

func (s *reportServiceImpl) SpendingByCategory(category string, date *time.Time) ([]models.Transaction, error) {
	cacheKey := fmt.Sprintf(ckSpendingByCategory, category, dateCacheKey(date))
	if cached, found := s.reportCache.Get(cacheKey); found {
		logger.L.Debug("Cache hit for spending report", "category", category)
		return cached.([]models.Transaction), nil
	}

	transactions, err := s.source.Load()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	filtered := s.windowFilter.Filter(transactions, &category, date)
	logger.L.Info("Spending report computed", "category", category, "rows", len(filtered))

	s.reportCache.Set(cacheKey, filtered, cache.DefaultExpiration)
	return filtered, nil
}

// dateCacheKey keys the cache by day; a nil date means "today" and is
// keyed as such so it rolls over naturally.
func dateCacheKey(date *time.Time) string {
	if date == nil {
		return time.Now().Format("2006-01-02")
	}
	return date.Format("2006-01-02")
}
