package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/username/chainfolio/backend/src/logger"
	"github.com/username/chainfolio/backend/src/models"
	"github.com/username/chainfolio/backend/src/services"
	"github.com/username/chainfolio/backend/src/utils"
)

type LedgerHandler struct {
	conversionService services.ConversionService
}

func NewLedgerHandler(service services.ConversionService) *LedgerHandler {
	return &LedgerHandler{conversionService: service}
}

func (h *LedgerHandler) HandleGetRows(w http.ResponseWriter, r *http.Request) {
	rows, err := h.conversionService.GetLedgerRows()
	if err != nil {
		logger.L.Error("Error retrieving ledger rows from service", "error", err)
		utils.SendJSONError(w, fmt.Sprintf("Error retrieving ledger rows: %v", err), http.StatusInternalServerError)
		return
	}
	if rows == nil {
		rows = []models.CoinTrackingRow{}
	}

	w.Header().Set("Cache-Control", "no-cache, private")

	currentETag, etagErr := utils.GenerateETag(rows)
	if etagErr == nil && currentETag != "" {
		quotedETag := fmt.Sprintf("\"%s\"", currentETag)
		w.Header().Set("ETag", quotedETag)
		for _, clientETag := range strings.Split(r.Header.Get("If-None-Match"), ",") {
			if strings.TrimSpace(clientETag) == quotedETag {
				logger.L.Debug("ETag match for ledger rows", "etag", currentETag)
				w.WriteHeader(http.StatusNotModified)
				return
			}
		}
	} else {
		logger.L.Warn("Proceeding without ETag check due to ETag generation error or empty ETag", "error", etagErr)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(rows); err != nil {
		logger.L.Error("Error generating JSON response for ledger rows", "error", err)
	}
}

func (h *LedgerHandler) HandleExportCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="cointracking.csv"`)
	if err := h.conversionService.WriteCSV(w); err != nil {
		logger.L.Error("Error writing CSV export", "error", err)
	}
}

func (h *LedgerHandler) HandleGetImports(w http.ResponseWriter, r *http.Request) {
	imports, err := h.conversionService.GetImports()
	if err != nil {
		logger.L.Error("Error retrieving import history", "error", err)
		utils.SendJSONError(w, fmt.Sprintf("Error retrieving import history: %v", err), http.StatusInternalServerError)
		return
	}
	if imports == nil {
		imports = []models.ImportRecord{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(imports); err != nil {
		logger.L.Error("Error generating JSON response for imports", "error", err)
	}
}

func (h *LedgerHandler) HandleDeleteAllRows(w http.ResponseWriter, r *http.Request) {
	if err := h.conversionService.DeleteAllRows(); err != nil {
		logger.L.Error("Error deleting ledger rows", "error", err)
		utils.SendJSONError(w, fmt.Sprintf("Error deleting ledger rows: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "all ledger rows deleted"})
}
