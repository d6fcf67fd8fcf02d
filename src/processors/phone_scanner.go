package processors

import (
	"regexp"

	"github.com/username/finreport/src/models"
)

// mobileNumberRe matches mobile numbers like "+7 (921) 111-22-33" or
// "+7 921 111 22 33", with optional parentheses and separators.
var mobileNumberRe = regexp.MustCompile(`\+7\s?\(?\d{3}\)?\s?\d{3}[-\s]?\d{2}[-\s]?\d{2}`)

type phoneScannerImpl struct{}

func NewPhoneScanner() PhoneScanner {
	return &phoneScannerImpl{}
}

// Matches reports whether the description contains a mobile number.
// An empty description never matches and never errors.
func (s *phoneScannerImpl) Matches(description string) bool {
	if description == "" {
		return false
	}
	return mobileNumberRe.MatchString(description)
}

// Scan returns every matching transaction as a full key/value record.
// The source slice is never mutated; this is a diagnostic scan.
func (s *phoneScannerImpl) Scan(transactions []models.Transaction) []map[string]any {
	var records []map[string]any
	for _, tx := range transactions {
		if !s.Matches(tx.Description) {
			continue
		}
		record := map[string]any{
			"operation_date": tx.OperationDate.Time,
			"amount":         tx.Amount,
			"category":       tx.Category,
			"description":    tx.Description,
			"card_number":    tx.CardNumber,
		}
		for column, value := range tx.Extra {
			record[column] = value
		}
		records = append(records, record)
	}
	return records
}
