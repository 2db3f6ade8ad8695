// src/handlers/report_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/username/propfolio/src/logger"
	"github.com/username/propfolio/src/services"
	"github.com/username/propfolio/src/utils"
)

type ReportHandler struct {
	reportService services.ReportService
}

func NewReportHandler(service services.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: service,
	}
}

// HandleGenerateReport accepts a sparse cashflow request and returns the
// fully computed report. Malformed numeric fields degrade to defaults inside
// the engine; only an unreadable body is rejected.
func (h *ReportHandler) HandleGenerateReport(w http.ResponseWriter, r *http.Request) {
	var req services.ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.L.Warn("Failed to decode report request", "error", err)
		utils.SendJSONError(w, "Invalid JSON request body", http.StatusBadRequest)
		return
	}

	result, err := h.reportService.GenerateReport(req)
	if err != nil {
		logger.L.Error("Internal error generating report", "jurisdiction", req.Jurisdiction, "error", err)
		utils.SendJSONError(w, "An internal error occurred while generating the report. Please try again later.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// HandleListReports returns archived report summaries, newest first.
func (h *ReportHandler) HandleListReports(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	summaries, err := h.reportService.ListReports(limit)
	if err != nil {
		logger.L.Error("Failed to list reports", "error", err)
		utils.SendJSONError(w, "An internal error occurred while listing reports.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summaries)
}

// HandleGetReport returns one archived report by id.
func (h *ReportHandler) HandleGetReport(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		utils.SendJSONError(w, "Invalid report id", http.StatusBadRequest)
		return
	}

	report, err := h.reportService.GetReport(id)
	if err != nil {
		if errors.Is(err, services.ErrReportNotFound) {
			utils.SendJSONError(w, "Report not found", http.StatusNotFound)
			return
		}
		logger.L.Error("Failed to fetch report", "id", id, "error", err)
		utils.SendJSONError(w, "An internal error occurred while fetching the report.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}
