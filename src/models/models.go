package models

import "time"

// ISOLayout is the wire format for every timestamp that leaves the service.
// It matches ISO-8601 without a zone offset, e.g. "2021-12-31T16:44:00".
const ISOLayout = "2006-01-02T15:04:05"

// ISOTime is a time.Time that marshals to an ISO-8601 string.
type ISOTime struct {
	time.Time
}

func (t ISOTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(ISOLayout) + `"`), nil
}

func (t *ISOTime) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := time.Parse(ISOLayout, s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// Transaction is a single row of the operations export.
// Amount is always present; every other field may be empty in the source
// and is carried through as its zero value.
type Transaction struct {
	OperationDate ISOTime `json:"operation_date"`
	Amount        float64 `json:"amount"`
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	CardNumber    string  `json:"card_number"`

	// Extra holds source columns beyond the ones mapped above, so a
	// record can be enumerated in full for diagnostic output.
	Extra map[string]string `json:"-"`
}

// CardSummary is the aggregated spend for one card over a report window.
type CardSummary struct {
	LastDigits string  `json:"last_digits"`
	TotalSpent float64 `json:"total_spent"`
	Cashback   float64 `json:"cashback"`
}

// TopTransaction is the projection of a transaction used in top-N rankings.
type TopTransaction struct {
	Date        ISOTime `json:"date"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

type CurrencyRate struct {
	Currency string  `json:"currency"`
	Rate     float64 `json:"rate"`
}

type StockPrice struct {
	Stock string  `json:"stock"`
	Price float64 `json:"price"`
}

// DashboardResult is the composite payload for the dashboard view.
type DashboardResult struct {
	Greeting        string           `json:"greeting"`
	Cards           []CardSummary    `json:"cards"`
	TopTransactions []TopTransaction `json:"top_transactions"`
	CurrencyRates   []CurrencyRate   `json:"currency_rates"`
	StockPrices     []StockPrice     `json:"stock_prices"`
	StartDate       ISOTime          `json:"start_date"`
	EndDate         ISOTime          `json:"end_date"`
}

// UserSettings mirrors the optional user_settings.json file.
type UserSettings struct {
	UserCurrencies []string `json:"user_currencies"`
	UserStocks     []string `json:"user_stocks"`
}
