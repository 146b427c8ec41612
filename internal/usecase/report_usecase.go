package usecase

import (
	"context"
	"time"

	"github.com/bayufn/artha/internal/domain"
	"github.com/bayufn/artha/internal/state"
)

// ReportUseCase exposes the derived views. Every report reads one snapshot
// and computes from it; nothing is cached inside the core.
type ReportUseCase struct {
	store *state.Store
	now   func() time.Time
}

// NewReportUseCase creates a new ReportUseCase.
func NewReportUseCase(store *state.Store) *ReportUseCase {
	return &ReportUseCase{store: store, now: time.Now}
}

// Summary computes the period summary for the given period label.
func (uc *ReportUseCase) Summary(ctx context.Context, label string) domain.PeriodSummary {
	snapshot := uc.store.Snapshot()
	return domain.Summarize(snapshot, domain.SinceForLabel(label, uc.now()))
}

// Breakdown groups period expenses by category.
func (uc *ReportUseCase) Breakdown(ctx context.Context, label string) []domain.CategorySpend {
	snapshot := uc.store.Snapshot()
	return domain.ExpenseByCategory(snapshot, domain.SinceForLabel(label, uc.now()))
}

// Allocation splits one month's expenses into general, savings and debt.
func (uc *ReportUseCase) Allocation(ctx context.Context, year int, month time.Month) domain.Allocation {
	return domain.AllocationForMonth(uc.store.Snapshot(), year, month)
}

// Monthly buckets the period's transactions per calendar month.
func (uc *ReportUseCase) Monthly(ctx context.Context, label string) []domain.MonthlyPoint {
	snapshot := uc.store.Snapshot()
	return domain.MonthlySeries(snapshot, domain.SinceForLabel(label, uc.now()))
}

// Budgets reports spending progress for one month's budgets.
func (uc *ReportUseCase) Budgets(ctx context.Context, year int, month time.Month) []domain.BudgetStatus {
	return domain.BudgetReport(uc.store.Snapshot(), year, month)
}

// Wealth computes total assets and runway.
func (uc *ReportUseCase) Wealth(ctx context.Context) domain.WealthMetrics {
	return domain.Wealth(uc.store.Snapshot(), uc.now())
}
