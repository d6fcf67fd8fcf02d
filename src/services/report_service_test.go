package services

import (
	"errors"
	"testing"
	"time"

	"github.com/username/finreport/src/models"
	"github.com/username/finreport/src/processors"
)

func reportTx(date time.Time, amount float64, category string) models.Transaction {
	return models.Transaction{
		OperationDate: models.ISOTime{Time: date},
		Amount:        amount,
		Category:      category,
	}
}

func TestSpendingByCategory(t *testing.T) {
	reference := time.Date(2021, 12, 31, 0, 0, 0, 0, time.UTC)
	source := stubSource{transactions: []models.Transaction{
		reportTx(time.Date(2021, 10, 5, 0, 0, 0, 0, time.UTC), -100, "Супермаркеты"),
		reportTx(time.Date(2021, 11, 5, 0, 0, 0, 0, time.UTC), -200, "Супермаркеты"),
		reportTx(time.Date(2021, 11, 6, 0, 0, 0, 0, time.UTC), -300, "Транспорт"),
		reportTx(time.Date(2021, 8, 1, 0, 0, 0, 0, time.UTC), -400, "Супермаркеты"), // before window
	}}

	svc := NewReportService(source, processors.NewWindowFilter(), newQuoteCache())
	got, err := svc.SpendingByCategory("Супермаркеты", &reference)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("got %d transactions, want 2", len(got))
	}
	if got[0].Amount != -100 || got[1].Amount != -200 {
		t.Fatalf("order not preserved: %v", got)
	}
}

func TestSpendingByCategoryCachesResult(t *testing.T) {
	reference := time.Date(2021, 12, 31, 0, 0, 0, 0, time.UTC)
	source := &countingSource{transactions: []models.Transaction{
		reportTx(time.Date(2021, 11, 5, 0, 0, 0, 0, time.UTC), -200, "Супермаркеты"),
	}}

	svc := NewReportService(source, processors.NewWindowFilter(), newQuoteCache())
	if _, err := svc.SpendingByCategory("Супермаркеты", &reference); err != nil {
		t.Fatalf("first call: %v", err)
	}
	if _, err := svc.SpendingByCategory("Супермаркеты", &reference); err != nil {
		t.Fatalf("second call: %v", err)
	}

	if source.loads != 1 {
		t.Fatalf("source loaded %d times, want 1", source.loads)
	}
}

type countingSource struct {
	transactions []models.Transaction
	loads        int
}

func (s *countingSource) Load() ([]models.Transaction, error) {
	s.loads++
	return s.transactions, nil
}

func TestSpendingByCategorySourceFailure(t *testing.T) {
	source := stubSource{err: errors.New("no such file")}
	svc := NewReportService(source, processors.NewWindowFilter(), newQuoteCache())

	_, err := svc.SpendingByCategory("Супермаркеты", nil)
	if !errors.Is(err, ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
}
