package handler

import (
	"net/http"
	"time"

	"github.com/bayufn/artha/internal/usecase"
)

// ReportHandler serves the derived views computed from the current state.
type ReportHandler struct {
	reportUC *usecase.ReportUseCase
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportUC *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{reportUC: reportUC}
}

// Summary returns income, expense and balance for a period.
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.reportUC.Summary(r.Context(), periodQuery(r)))
}

// Breakdown returns period expenses grouped by category, largest first.
func (h *ReportHandler) Breakdown(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.reportUC.Breakdown(r.Context(), periodQuery(r)))
}

// Allocation returns one month's expense split across general spending,
// savings and debt payments.
func (h *ReportHandler) Allocation(w http.ResponseWriter, r *http.Request) {
	year, month := parseMonthQuery(r, time.Now())
	writeJSON(w, http.StatusOK, h.reportUC.Allocation(r.Context(), year, month))
}

// Monthly returns the per-month time series for a period.
func (h *ReportHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.reportUC.Monthly(r.Context(), periodQuery(r)))
}

// Budgets returns spending progress against each budget for a month.
func (h *ReportHandler) Budgets(w http.ResponseWriter, r *http.Request) {
	year, month := parseMonthQuery(r, time.Now())
	writeJSON(w, http.StatusOK, h.reportUC.Budgets(r.Context(), year, month))
}

// Wealth returns total assets and the spending runway.
func (h *ReportHandler) Wealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.reportUC.Wealth(r.Context()))
}
