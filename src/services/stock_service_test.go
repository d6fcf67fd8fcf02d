package services

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/username/finreport/src/models"
)

func TestGetPricesFallbackWithoutAPIKey(t *testing.T) {
	svc := NewStockService("http://unused", "", time.Second, newQuoteCache())

	got := svc.GetPrices([]string{"AAPL"})

	want := []models.StockPrice{
		{Stock: "AAPL", Price: 150.12},
		{Stock: "AMZN", Price: 3173.18},
		{Stock: "GOOGL", Price: 2742.39},
		{Stock: "MSFT", Price: 296.71},
		{Stock: "TSLA", Price: 1007.08},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestGetPricesFromLiveProvider(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Global Quote":{"05. price":"172.4650"}}`))
	}))
	defer srv.Close()

	svc := NewStockService(srv.URL, "test-key", time.Second, newQuoteCache())
	got := svc.GetPrices([]string{"AAPL"})

	want := []models.StockPrice{{Stock: "AAPL", Price: 172.47}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestGetPricesZeroQuoteFallsBackPerSymbol(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Global Quote":{"05. price":"0.0000"}}`))
	}))
	defer srv.Close()

	svc := NewStockService(srv.URL, "test-key", time.Second, newQuoteCache())
	got := svc.GetPrices([]string{"AAPL", "UNKNOWN"})

	want := []models.StockPrice{
		{Stock: "AAPL", Price: 150.12},
		{Stock: "UNKNOWN", Price: 0.0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestGetPricesProviderErrorFallsBackPerSymbol(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	svc := NewStockService(srv.URL, "test-key", time.Second, newQuoteCache())
	got := svc.GetPrices([]string{"TSLA"})

	want := []models.StockPrice{{Stock: "TSLA", Price: 1007.08}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestGetPricesEmptySymbolsReturnsFallbackTable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("provider should not be called for an empty symbol list")
	}))
	defer srv.Close()

	svc := NewStockService(srv.URL, "test-key", time.Second, newQuoteCache())
	got := svc.GetPrices(nil)

	if !reflect.DeepEqual(got, fallbackStockPrices()) {
		t.Fatalf("expected fallback table, got %v", got)
	}
}
