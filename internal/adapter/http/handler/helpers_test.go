package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bayufn/artha/internal/domain"
	"github.com/bayufn/artha/internal/usecase"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", domain.ErrValidation, http.StatusBadRequest},
		{"wrapped validation", fmt.Errorf("%w: amount must be positive", domain.ErrValidation), http.StatusBadRequest},
		{"activation code", domain.ErrInvalidActivationCode, http.StatusBadRequest},
		{"transaction not found", domain.ErrTransactionNotFound, http.StatusNotFound},
		{"wallet not found", domain.ErrWalletNotFound, http.StatusNotFound},
		{"goal not found", domain.ErrGoalNotFound, http.StatusNotFound},
		{"budget not found", domain.ErrBudgetNotFound, http.StatusNotFound},
		{"category in use", domain.ErrCategoryInUse, http.StatusConflict},
		{"account inactive", domain.ErrAccountInactive, http.StatusForbidden},
		{"insight superseded", usecase.ErrInsightSuperseded, http.StatusConflict},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapDomainError(tt.err); got != tt.want {
				t.Errorf("mapDomainError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestParseMonthQuery(t *testing.T) {
	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		query     string
		wantYear  int
		wantMonth time.Month
	}{
		{"defaults to current month", "", 2024, time.March},
		{"explicit year and month", "year=2023&month=11", 2023, time.November},
		{"month out of range ignored", "year=2023&month=13", 2023, time.March},
		{"garbage ignored", "year=abc&month=xyz", 2024, time.March},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/allocation?"+tt.query, nil)
			year, month := parseMonthQuery(req, now)
			if year != tt.wantYear || month != tt.wantMonth {
				t.Errorf("got %d/%s, want %d/%s", year, month, tt.wantYear, tt.wantMonth)
			}
		})
	}
}

func TestPeriodQuery_DefaultsToThisMonth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/summary", nil)
	if got := periodQuery(req); got != domain.PeriodThisMonth {
		t.Errorf("period = %q, want %q", got, domain.PeriodThisMonth)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/reports/summary?period=1+Tahun+Terakhir", nil)
	if got := periodQuery(req); got != domain.PeriodLastYear {
		t.Errorf("period = %q, want %q", got, domain.PeriodLastYear)
	}
}
