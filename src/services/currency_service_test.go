package services

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/username/finreport/src/models"
)

func newQuoteCache() *cache.Cache {
	return cache.New(time.Minute, time.Minute)
}

func TestGetRatesFallbackWithoutAPIKey(t *testing.T) {
	svc := NewCurrencyService("http://unused", "", time.Second, newQuoteCache())

	got := svc.GetRates([]string{"USD", "EUR"})

	want := []models.CurrencyRate{
		{Currency: "USD", Rate: 73.21},
		{Currency: "EUR", Rate: 87.08},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestGetRatesFromLiveProvider(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("apikey") != "test-key" {
			t.Errorf("missing apikey header")
		}
		w.Write([]byte(`{"quotes":{"USDUSD":1.0,"USDEUR":0.9149}}`))
	}))
	defer srv.Close()

	svc := NewCurrencyService(srv.URL, "test-key", time.Second, newQuoteCache())
	got := svc.GetRates([]string{"USD", "EUR"})

	want := []models.CurrencyRate{
		{Currency: "USD", Rate: 1.0},
		{Currency: "EUR", Rate: 0.91},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestGetRatesFallbackOnProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := NewCurrencyService(srv.URL, "test-key", time.Second, newQuoteCache())
	got := svc.GetRates([]string{"GBP"})

	if !reflect.DeepEqual(got, fallbackCurrencyRates()) {
		t.Fatalf("expected fallback rates, got %v", got)
	}
}

func TestGetRatesFallbackOnBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	svc := NewCurrencyService(srv.URL, "test-key", time.Second, newQuoteCache())
	got := svc.GetRates([]string{"GBP"})

	if !reflect.DeepEqual(got, fallbackCurrencyRates()) {
		t.Fatalf("expected fallback rates, got %v", got)
	}
}

func TestGetRatesUsesCache(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"quotes":{"USDEUR":0.9}}`))
	}))
	defer srv.Close()

	svc := NewCurrencyService(srv.URL, "test-key", time.Second, newQuoteCache())
	svc.GetRates([]string{"EUR"})
	svc.GetRates([]string{"EUR"})

	if calls != 1 {
		t.Fatalf("provider called %d times, want 1", calls)
	}
}
