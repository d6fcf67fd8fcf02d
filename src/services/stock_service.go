package services

import (
	"net/http"
	"net/http/cookiejar"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/net/publicsuffix"

	"github.com/username/finreport/src/logger"
	"github.com/username/finreport/src/models"
	"github.com/username/finreport/src/utils"
)

// stockFallback is the documented substitute table for stock prices.
// Symbols outside the table default to 0.0.
var stockFallback = map[string]float64{
	"AAPL":  150.12,
	"AMZN":  3173.18,
	"GOOGL": 2742.39,
	"MSFT":  296.71,
	"TSLA":  1007.08,
}

// stockFallbackOrder fixes the output order when the whole table is used.
var stockFallbackOrder = []string{"AAPL", "AMZN", "GOOGL", "MSFT", "TSLA"}

type globalQuoteResponse struct {
	GlobalQuote struct {
		Price string `json:"05. price"`
	} `json:"Global Quote"`
}

// stockServiceImpl fetches quotes from an Alpha Vantage-style endpoint,
// one attempt per symbol, per-symbol fallback on failure.
type stockServiceImpl struct {
	httpClient http.Client
	apiURL     string
	apiKey     string
	quoteCache *cache.Cache
}

func NewStockService(apiURL, apiKey string, timeout time.Duration, quoteCache *cache.Cache) StockPriceProvider {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		logger.L.Error("Failed to create cookie jar", "error", err)
	}

	return &stockServiceImpl{
		httpClient: http.Client{Jar: jar, Timeout: timeout},
		apiURL:     apiURL,
		apiKey:     apiKey,
		quoteCache: quoteCache,
	}
}

func (s *stockServiceImpl) GetPrices(symbols []string) []models.StockPrice {
	if s.apiKey == "" {
		logger.L.Warn("Stock API key not set, returning fallback prices")
		return fallbackStockPrices()
	}

	prices := make([]models.StockPrice, 0, len(symbols))
	for _, symbol := range symbols {
		prices = append(prices, models.StockPrice{
			Stock: symbol,
			Price: s.fetchPrice(symbol),
		})
	}

	// An empty result substitutes the full fallback table, kept in the
	// same pair shape as the live path.
	if len(prices) == 0 {
		logger.L.Warn("No stock prices fetched, returning fallback prices")
		return fallbackStockPrices()
	}

	logger.L.Info("Stock prices fetched", "count", len(prices))
	return prices
}

// fetchPrice returns the live quote for one symbol, or its fallback value
// when the single attempt fails or yields a zero price.
func (s *stockServiceImpl) fetchPrice(symbol string) float64 {
	cacheKey := "stock_" + symbol
	if cached, found := s.quoteCache.Get(cacheKey); found {
		logger.L.Debug("Cache hit for stock price", "symbol", symbol)
		return cached.(float64)
	}

	url := s.apiURL + "?function=GLOBAL_QUOTE&symbol=" + symbol + "&apikey=" + s.apiKey
	resp, err := s.httpClient.Get(url)
	if err != nil {
		logger.L.Error("Stock quote request failed, using fallback price", "symbol", symbol, "error", err)
		return stockFallback[symbol]
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.L.Error("Stock quote request returned non-OK status, using fallback price", "symbol", symbol, "status", resp.StatusCode)
		return stockFallback[symbol]
	}

	var data globalQuoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		logger.L.Error("Failed to decode stock quote response, using fallback price", "symbol", symbol, "error", err)
		return stockFallback[symbol]
	}

	price, err := strconv.ParseFloat(data.GlobalQuote.Price, 64)
	if err != nil || price == 0 {
		logger.L.Warn("Stock quote missing or zero, using fallback price", "symbol", symbol)
		return stockFallback[symbol]
	}

	price = utils.RoundFloat(price, 2)
	s.quoteCache.Set(cacheKey, price, cache.DefaultExpiration)
	return price
}

func fallbackStockPrices() []models.StockPrice {
	prices := make([]models.StockPrice, 0, len(stockFallbackOrder))
	for _, symbol := range stockFallbackOrder {
		prices = append(prices, models.StockPrice{Stock: symbol, Price: stockFallback[symbol]})
	}
	return prices
}
