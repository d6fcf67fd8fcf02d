package handlers

import (
	"net/http"
	"time"

	"github.com/username/finreport/src/models"
	"github.com/username/finreport/src/services"
	"github.com/username/finreport/src/utils"
)

type ReportHandler struct {
	reportService services.ReportService
	reportsDir    string
}

func NewReportHandler(reportService services.ReportService, reportsDir string) *ReportHandler {
	return &ReportHandler{reportService: reportService, reportsDir: reportsDir}
}

// HandleSpendingByCategory serves the category spending report and
// persists every successful result to a CSV export. Query parameters:
// category (required), date (optional, YYYY-MM-DD, defaults to today),
// filename (optional export name).
func (h *ReportHandler) HandleSpendingByCategory(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		utils.SendJSONError(w, "category parameter is required", http.StatusBadRequest)
		return
	}

	var date *time.Time
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			utils.SendJSONError(w, "invalid date parameter, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		date = &parsed
	}

	report := services.SaveReport(h.reportsDir, r.URL.Query().Get("filename"), h.reportService.SpendingByCategory)
	transactions, err := report(category, date)
	if err != nil {
		utils.SendJSONError(w, "failed to produce spending report: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if transactions == nil {
		transactions = []models.Transaction{}
	}

	utils.WriteJSON(w, http.StatusOK, transactions)
}
