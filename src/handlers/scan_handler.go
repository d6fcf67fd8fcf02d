package handlers

import (
	"net/http"

	"github.com/username/finreport/src/services"
	"github.com/username/finreport/src/utils"
)

type ScanHandler struct {
	scanService services.ScanService
}

func NewScanHandler(scanService services.ScanService) *ScanHandler {
	return &ScanHandler{scanService: scanService}
}

// HandleGetMobileTransactions serves the diagnostic scan for
// transactions whose description contains a mobile number. An unreadable
// source fails the request; there is no partial output.
func (h *ScanHandler) HandleGetMobileTransactions(w http.ResponseWriter, r *http.Request) {
	records, err := h.scanService.MobileTransactions()
	if err != nil {
		utils.SendJSONError(w, "failed to scan operations: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []map[string]any{}
	}

	utils.WriteJSON(w, http.StatusOK, records)
}
