package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Derived views. Every function here is a pure read over a state snapshot;
// nothing is cached and nothing is mutated.

// PeriodSummary aggregates income and expense for transactions on or after
// a lower bound date. A zero bound covers everything.
type PeriodSummary struct {
	TotalIncome  int64 `json:"totalIncome"`
	TotalExpense int64 `json:"totalExpense"`
	Balance      int64 `json:"balance"`
}

// Summarize computes the period summary for transactions with date >= since.
func Summarize(s AppState, since time.Time) PeriodSummary {
	var out PeriodSummary
	for _, t := range s.Transactions {
		if t.Date.Before(since) {
			continue
		}
		if t.Type == TypeIncome {
			out.TotalIncome += t.Amount
		} else {
			out.TotalExpense += t.Amount
		}
	}
	out.Balance = out.TotalIncome - out.TotalExpense
	return out
}

// CategorySpend is one row of the category breakdown.
type CategorySpend struct {
	Category string `json:"category"`
	Amount   int64  `json:"amount"`
}

// ExpenseByCategory groups expense transactions with date >= since by
// category name, largest first. Ties keep category-name order so the result
// is deterministic.
func ExpenseByCategory(s AppState, since time.Time) []CategorySpend {
	totals := make(map[string]int64)
	for _, t := range s.Transactions {
		if t.Type != TypeExpense || t.Date.Before(since) {
			continue
		}
		totals[t.Category] += t.Amount
	}

	out := make([]CategorySpend, 0, len(totals))
	for name, amount := range totals {
		out = append(out, CategorySpend{Category: name, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount != out[j].Amount {
			return out[i].Amount > out[j].Amount
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// Allocation splits a month's expenses into general spending, savings
// contributions and debt payments.
type Allocation struct {
	General     int64 `json:"general"`
	Savings     int64 `json:"savings"`
	DebtPayment int64 `json:"debtPayment"`
}

// AllocationForMonth computes the expense allocation for one calendar month.
func AllocationForMonth(s AppState, year int, month time.Month) Allocation {
	var out Allocation
	for _, t := range s.Transactions {
		if t.Type != TypeExpense || t.Date.Year() != year || t.Date.Month() != month {
			continue
		}
		switch KindForCategory(t.Category) {
		case RelationGoal:
			out.Savings += t.Amount
		case RelationDebt:
			out.DebtPayment += t.Amount
		default:
			out.General += t.Amount
		}
	}
	return out
}

// MonthlyPoint is one bucket of the monthly time series.
type MonthlyPoint struct {
	Year        int        `json:"year"`
	Month       time.Month `json:"month"`
	Income      int64      `json:"income"`
	Expense     int64      `json:"expense"`
	Savings     int64      `json:"savings"`
	DebtPayment int64      `json:"debtPayment"`
}

// MonthlySeries buckets transactions with date >= since by calendar month,
// oldest bucket first. Savings and debt-payment expenses are tracked apart
// from general expense.
func MonthlySeries(s AppState, since time.Time) []MonthlyPoint {
	type key struct {
		year  int
		month time.Month
	}
	buckets := make(map[key]*MonthlyPoint)

	for _, t := range s.Transactions {
		if t.Date.Before(since) {
			continue
		}
		k := key{t.Date.Year(), t.Date.Month()}
		p, ok := buckets[k]
		if !ok {
			p = &MonthlyPoint{Year: k.year, Month: k.month}
			buckets[k] = p
		}
		if t.Type == TypeIncome {
			p.Income += t.Amount
			continue
		}
		switch KindForCategory(t.Category) {
		case RelationGoal:
			p.Savings += t.Amount
		case RelationDebt:
			p.DebtPayment += t.Amount
		default:
			p.Expense += t.Amount
		}
	}

	out := make([]MonthlyPoint, 0, len(buckets))
	for _, p := range buckets {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	return out
}

// BudgetTier colors budget progress for display. The 100% boundary belongs
// to the warning tier, not over.
type BudgetTier string

const (
	TierOK      BudgetTier = "ok"
	TierWarning BudgetTier = "warning"
	TierOver    BudgetTier = "over"
)

// BudgetStatus reports spending against one budget for a month.
type BudgetStatus struct {
	CategoryID   string          `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
	BudgetAmount int64           `json:"budgetAmount"`
	Spent        int64           `json:"spent"`
	Ratio        decimal.Decimal `json:"ratio"` // percent
	Tier         BudgetTier      `json:"tier"`
}

// BudgetReport computes spending progress for every budget in the given
// month. Spent matches expense transactions whose category equals the
// budget's category name.
func BudgetReport(s AppState, year int, month time.Month) []BudgetStatus {
	out := make([]BudgetStatus, 0, len(s.Budgets))
	for _, b := range s.Budgets {
		cat, ok := s.CategoryByID(b.CategoryID)
		if !ok {
			continue
		}

		var spent int64
		for _, t := range s.Transactions {
			if t.Type != TypeExpense || t.Category != cat.Name {
				continue
			}
			if t.Date.Year() != year || t.Date.Month() != month {
				continue
			}
			spent += t.Amount
		}

		out = append(out, BudgetStatus{
			CategoryID:   b.CategoryID,
			CategoryName: cat.Name,
			BudgetAmount: b.Amount,
			Spent:        spent,
			Ratio:        progressRatio(spent, b.Amount),
			Tier:         budgetTier(spent, b.Amount),
		})
	}
	return out
}

func progressRatio(spent, budget int64) decimal.Decimal {
	if budget == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(spent).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(budget))
}

func budgetTier(spent, budget int64) BudgetTier {
	if budget <= 0 {
		return TierOK
	}
	ratio := progressRatio(spent, budget)
	switch {
	case ratio.GreaterThan(decimal.NewFromInt(100)):
		return TierOver
	case ratio.GreaterThanOrEqual(decimal.NewFromInt(75)):
		return TierWarning
	default:
		return TierOK
	}
}

// WealthMetrics summarizes total assets and how long they would last at the
// recent spending rate.
type WealthMetrics struct {
	TotalAssets       int64           `json:"totalAssets"`
	AvgMonthlyExpense decimal.Decimal `json:"avgMonthlyExpense"`
	RunwayMonths      int64           `json:"runwayMonths"`
}

// Wealth computes total wallet assets and the runway in whole months based
// on the average expense of the trailing three months. Runway is zero when
// there is no recent spending.
func Wealth(s AppState, now time.Time) WealthMetrics {
	var total int64
	for _, w := range s.Wallets {
		total += w.Balance
	}

	cutoff := now.AddDate(0, -3, 0)
	var recent int64
	for _, t := range s.Transactions {
		if t.Type == TypeExpense && !t.Date.Before(cutoff) {
			recent += t.Amount
		}
	}

	avg := decimal.NewFromInt(recent).Div(decimal.NewFromInt(3))
	out := WealthMetrics{TotalAssets: total, AvgMonthlyExpense: avg}
	if avg.IsPositive() {
		out.RunwayMonths = decimal.NewFromInt(total).Div(avg).Floor().IntPart()
	}
	return out
}
