package services

import (
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/patrickmn/go-cache"
	"golang.org/x/net/publicsuffix"

	"github.com/username/finreport/src/logger"
	"github.com/username/finreport/src/models"
	"github.com/username/finreport/src/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// currencyFallback is the documented substitute when no live provider is
// configured or the call fails.
var currencyFallback = []models.CurrencyRate{
	{Currency: "USD", Rate: 73.21},
	{Currency: "EUR", Rate: 87.08},
}

type liveRatesResponse struct {
	Quotes map[string]float64 `json:"quotes"`
}

// currencyServiceImpl fetches USD-based quotes from an apilayer-style
// currency_data endpoint, one attempt per call, fallback on any failure.
type currencyServiceImpl struct {
	httpClient http.Client
	apiURL     string
	apiKey     string
	quoteCache *cache.Cache
}

func NewCurrencyService(apiURL, apiKey string, timeout time.Duration, quoteCache *cache.Cache) CurrencyRateProvider {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		logger.L.Error("Failed to create cookie jar", "error", err)
	}

	return &currencyServiceImpl{
		httpClient: http.Client{Jar: jar, Timeout: timeout},
		apiURL:     apiURL,
		apiKey:     apiKey,
		quoteCache: quoteCache,
	}
}

func (s *currencyServiceImpl) GetRates(currencies []string) []models.CurrencyRate {
	if s.apiKey == "" {
		logger.L.Warn("Currency API key not set, returning fallback rates")
		return fallbackCurrencyRates()
	}

	cacheKey := "rates_" + strings.Join(currencies, ",")
	if cached, found := s.quoteCache.Get(cacheKey); found {
		logger.L.Debug("Cache hit for currency rates", "currencies", currencies)
		return cached.([]models.CurrencyRate)
	}

	url := s.apiURL + "/live?symbols=" + strings.Join(currencies, ",")
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		logger.L.Error("Failed to build currency rates request", "error", err)
		return fallbackCurrencyRates()
	}
	req.Header.Set("apikey", s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		logger.L.Error("Currency rates request failed, returning fallback rates", "error", err)
		return fallbackCurrencyRates()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.L.Error("Currency rates request returned non-OK status, returning fallback rates", "status", resp.StatusCode)
		return fallbackCurrencyRates()
	}

	var data liveRatesResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		logger.L.Error("Failed to decode currency rates response, returning fallback rates", "error", err)
		return fallbackCurrencyRates()
	}

	// Quotes are keyed as USD pairs, e.g. "USDEUR".
	rates := make([]models.CurrencyRate, 0, len(currencies))
	for _, currency := range currencies {
		rates = append(rates, models.CurrencyRate{
			Currency: currency,
			Rate:     utils.RoundFloat(data.Quotes["USD"+currency], 2),
		})
	}

	s.quoteCache.Set(cacheKey, rates, cache.DefaultExpiration)
	logger.L.Info("Currency rates fetched", "count", len(rates))
	return rates
}

func fallbackCurrencyRates() []models.CurrencyRate {
	rates := make([]models.CurrencyRate, len(currencyFallback))
	copy(rates, currencyFallback)
	return rates
}
