package processors

import (
	"testing"
	"time"

	"github.com/username/finreport/src/models"
)

func cardTx(card string, amount float64) models.Transaction {
	return models.Transaction{
		OperationDate: models.ISOTime{Time: time.Date(2021, 12, 15, 0, 0, 0, 0, time.UTC)},
		Amount:        amount,
		CardNumber:    card,
	}
}

func summaryByDigits(t *testing.T, summaries []models.CardSummary, digits string) models.CardSummary {
	t.Helper()
	for _, s := range summaries {
		if s.LastDigits == digits {
			return s
		}
	}
	t.Fatalf("no summary for card %q in %v", digits, summaries)
	return models.CardSummary{}
}

func TestProcessGroupsPerCard(t *testing.T) {
	transactions := []models.Transaction{
		cardTx("*7197", 10),
		cardTx("*7197", 20),
		cardTx("*4556", 30),
		cardTx("*4556", 40),
	}

	got := NewCardProcessor().Process(transactions)
	if len(got) != 2 {
		t.Fatalf("got %d summaries, want 2", len(got))
	}

	first := summaryByDigits(t, got, "7197")
	if first.TotalSpent != 30 || first.Cashback != 0.3 {
		t.Errorf("card 7197: total %v cashback %v, want 30 and 0.3", first.TotalSpent, first.Cashback)
	}
	second := summaryByDigits(t, got, "4556")
	if second.TotalSpent != 70 || second.Cashback != 0.7 {
		t.Errorf("card 4556: total %v cashback %v, want 70 and 0.7", second.TotalSpent, second.Cashback)
	}
}

func TestProcessTotalsConserveSum(t *testing.T) {
	transactions := []models.Transaction{
		cardTx("1111222233334444", 100.10),
		cardTx("1111222233334444", -20.10),
		cardTx("5555666677778888", 55.25),
		cardTx("", 12.50),
	}

	var inputSum float64
	for _, tr := range transactions {
		inputSum += tr.Amount
	}

	var outputSum float64
	for _, s := range NewCardProcessor().Process(transactions) {
		outputSum += s.TotalSpent
	}

	if diff := inputSum - outputSum; diff > 0.001 || diff < -0.001 {
		t.Fatalf("per-card totals %v do not conserve input sum %v", outputSum, inputSum)
	}
}

func TestProcessRefundsReduceTotalAndCashback(t *testing.T) {
	transactions := []models.Transaction{
		cardTx("*7197", 100),
		cardTx("*7197", -40), // refund nets against spend
	}

	got := NewCardProcessor().Process(transactions)
	if len(got) != 1 {
		t.Fatalf("got %d summaries, want 1", len(got))
	}
	if got[0].TotalSpent != 60 || got[0].Cashback != 0.6 {
		t.Fatalf("total %v cashback %v, want 60 and 0.6", got[0].TotalSpent, got[0].Cashback)
	}
}

func TestProcessMissingCardGroupsTogether(t *testing.T) {
	transactions := []models.Transaction{
		cardTx("", 10),
		cardTx("", 15),
	}

	got := NewCardProcessor().Process(transactions)
	if len(got) != 1 {
		t.Fatalf("got %d summaries, want 1", len(got))
	}
	if got[0].LastDigits != "" {
		t.Errorf("last digits = %q, want empty", got[0].LastDigits)
	}
	if got[0].TotalSpent != 25 {
		t.Errorf("total = %v, want 25", got[0].TotalSpent)
	}
}

func TestLastDigits(t *testing.T) {
	cases := []struct {
		card string
		want string
	}{
		{"1111222233334444", "4444"},
		{"*7197", "7197"},
		{"97", "97"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := lastDigits(tc.card); got != tc.want {
			t.Errorf("lastDigits(%q) = %q, want %q", tc.card, got, tc.want)
		}
	}
}
