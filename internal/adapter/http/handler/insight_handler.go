package handler

import (
	"net/http"

	"github.com/bayufn/artha/internal/adapter/http/dto"
	"github.com/bayufn/artha/internal/domain"
	"github.com/bayufn/artha/internal/usecase"
)

// InsightHandler serves AI-generated financial insights.
type InsightHandler struct {
	insightUC *usecase.InsightUseCase
}

// NewInsightHandler creates a new InsightHandler.
func NewInsightHandler(insightUC *usecase.InsightUseCase) *InsightHandler {
	return &InsightHandler{insightUC: insightUC}
}

// Get returns insights for a period. A request overtaken by a newer one
// for another period answers 409 and the client retries with the latest.
func (h *InsightHandler) Get(w http.ResponseWriter, r *http.Request) {
	label := periodQuery(r)
	if !validPeriod(label) {
		writeError(w, http.StatusBadRequest, "unknown period", label)
		return
	}

	result, err := h.insightUC.Get(r.Context(), label)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get insights", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.InsightsResponse{
		Period:   label,
		Source:   result.Source,
		Insights: result.Insights,
	})
}

func validPeriod(label string) bool {
	for _, l := range domain.PeriodLabels() {
		if l == label {
			return true
		}
	}
	return false
}
