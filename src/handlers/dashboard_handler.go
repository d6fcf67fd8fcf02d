package handlers

import (
	"net/http"
	"time"

	"github.com/username/finreport/src/models"
	"github.com/username/finreport/src/services"
	"github.com/username/finreport/src/utils"
)

type DashboardHandler struct {
	dashboardService services.DashboardService
}

func NewDashboardHandler(dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// HandleGetDashboard serves the dashboard for the reference timestamp in
// the "datetime" query parameter, defaulting to now. An invalid
// timestamp is a client error, not a silent fallback.
func (h *DashboardHandler) HandleGetDashboard(w http.ResponseWriter, r *http.Request) {
	reference := time.Now()
	if raw := r.URL.Query().Get("datetime"); raw != "" {
		parsed, err := parseReferenceTimestamp(raw)
		if err != nil {
			utils.SendJSONError(w, "invalid datetime parameter, expected ISO-8601 timestamp", http.StatusBadRequest)
			return
		}
		reference = parsed
	}

	result := h.dashboardService.Assemble(reference)
	utils.WriteJSON(w, http.StatusOK, result)
}

func parseReferenceTimestamp(raw string) (time.Time, error) {
	layouts := []string{models.ISOLayout, "2006-01-02 15:04:05", "2006-01-02"}
	var lastErr error
	for _, layout := range layouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
