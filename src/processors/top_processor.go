package processors

import (
	"sort"

	"github.com/username/finreport/src/models"
)

// DefaultTopCount is how many transactions the dashboard highlights.
const DefaultTopCount = 5

type topProcessorImpl struct{}

func NewTopProcessor() TopProcessor {
	return &topProcessorImpl{}
}

// Process returns the n largest transactions by amount, ties keeping
// their original input order.
func (p *topProcessorImpl) Process(transactions []models.Transaction, n int) []models.TopTransaction {
	ranked := make([]models.Transaction, len(transactions))
	copy(ranked, transactions)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Amount > ranked[j].Amount
	})

	if n > len(ranked) {
		n = len(ranked)
	}

	top := make([]models.TopTransaction, 0, n)
	for _, tx := range ranked[:n] {
		top = append(top, models.TopTransaction{
			Date:        tx.OperationDate,
			Amount:      tx.Amount,
			Category:    tx.Category,
			Description: tx.Description,
		})
	}
	return top
}
