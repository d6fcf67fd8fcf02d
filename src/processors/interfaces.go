package processors

import (
	"time"

	"github.com/username/finreport/src/models"
)

// WindowFilter selects transactions inside a report window.
type WindowFilter interface {
	// Filter keeps transactions dated within the three calendar months up
	// to the reference date (both ends inclusive), optionally restricted
	// to an exact category. A nil reference means "now".
	Filter(transactions []models.Transaction, category *string, reference *time.Time) []models.Transaction

	// FilterRange keeps transactions dated within [start, end], inclusive.
	FilterRange(transactions []models.Transaction, start, end time.Time) []models.Transaction
}

// CardProcessor aggregates windowed transactions per card.
type CardProcessor interface {
	Process(transactions []models.Transaction) []models.CardSummary
}

// TopProcessor ranks transactions by amount.
type TopProcessor interface {
	Process(transactions []models.Transaction, n int) []models.TopTransaction
}

// PhoneScanner finds transactions whose description contains a mobile number.
type PhoneScanner interface {
	Matches(description string) bool
	Scan(transactions []models.Transaction) []map[string]any
}
