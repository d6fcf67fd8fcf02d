package processors

import (
	"time"

	"github.com/username/finreport/src/models"
	"github.com/username/finreport/src/utils"
)

// reportWindowMonths is the trailing window length for category reports.
const reportWindowMonths = 3

type windowFilterImpl struct{}

func NewWindowFilter() WindowFilter {
	return &windowFilterImpl{}
}

func (f *windowFilterImpl) Filter(transactions []models.Transaction, category *string, reference *time.Time) []models.Transaction {
	end := time.Now()
	if reference != nil {
		end = *reference
	}
	start := utils.MonthsBefore(end, reportWindowMonths)

	filtered := f.FilterRange(transactions, start, end)
	if category == nil {
		return filtered
	}

	matching := make([]models.Transaction, 0, len(filtered))
	for _, tx := range filtered {
		if tx.Category == *category {
			matching = append(matching, tx)
		}
	}
	return matching
}

func (f *windowFilterImpl) FilterRange(transactions []models.Transaction, start, end time.Time) []models.Transaction {
	selected := make([]models.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if tx.OperationDate.Before(start) || tx.OperationDate.After(end) {
			continue
		}
		selected = append(selected, tx)
	}
	return selected
}
