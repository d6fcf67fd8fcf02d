package processors

import (
	"github.com/username/finreport/src/models"
	"github.com/username/finreport/src/utils"
)

// cashbackRate is the fraction of total spend returned as cashback.
const cashbackRate = 0.01

type cardProcessorImpl struct{}

func NewCardProcessor() CardProcessor {
	return &cardProcessorImpl{}
}

// Process groups transactions by card number and sums signed amounts, so
// refunds net against spending. Transactions without a card number form
// their own group under the empty key.
func (p *cardProcessorImpl) Process(transactions []models.Transaction) []models.CardSummary {
	totals := make(map[string]float64)
	var cards []string
	for _, tx := range transactions {
		if _, seen := totals[tx.CardNumber]; !seen {
			cards = append(cards, tx.CardNumber)
		}
		totals[tx.CardNumber] += tx.Amount
	}

	summaries := make([]models.CardSummary, 0, len(cards))
	for _, card := range cards {
		summaries = append(summaries, models.CardSummary{
			LastDigits: lastDigits(card),
			TotalSpent: utils.RoundFloat(totals[card], 2),
			Cashback:   utils.RoundFloat(totals[card]*cashbackRate, 2),
		})
	}
	return summaries
}

// lastDigits returns the trailing four characters of a card identifier,
// or the empty string when the identifier is missing.
func lastDigits(card string) string {
	runes := []rune(card)
	if len(runes) <= 4 {
		return card
	}
	return string(runes[len(runes)-4:])
}
