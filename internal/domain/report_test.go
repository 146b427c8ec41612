package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func reportState() AppState {
	return AppState{
		Wallets: []Wallet{
			{ID: "w-1", Name: "Bank", Balance: 9_000_000},
			{ID: "w-2", Name: "Tunai", Balance: 1_000_000},
		},
		Categories: []Category{
			{ID: "c-1", Name: "Makan", Type: TypeExpense},
			{ID: "c-2", Name: "Transportasi", Type: TypeExpense},
		},
		Budgets: []Budget{
			{CategoryID: "c-1", Amount: 1_000_000},
		},
		Transactions: []Transaction{
			{ID: "t-1", Type: TypeIncome, Category: "Gaji", Amount: 5_000_000, Date: date(2024, time.March, 1)},
			{ID: "t-2", Type: TypeExpense, Category: "Makan", Amount: 750_000, Date: date(2024, time.March, 5)},
			{ID: "t-3", Type: TypeExpense, Category: CategorySavings, Amount: 500_000, Date: date(2024, time.March, 10), RelatedID: "g-1"},
			{ID: "t-4", Type: TypeExpense, Category: CategoryDebt, Amount: 300_000, Date: date(2024, time.March, 15), RelatedID: "d-1"},
			{ID: "t-5", Type: TypeExpense, Category: "Makan", Amount: 200_000, Date: date(2024, time.February, 20)},
		},
	}
}

func TestSummarize(t *testing.T) {
	s := reportState()

	got := Summarize(s, date(2024, time.March, 1))
	if got.TotalIncome != 5_000_000 {
		t.Errorf("income = %d, want 5000000", got.TotalIncome)
	}
	if got.TotalExpense != 1_550_000 {
		t.Errorf("expense = %d, want 1550000", got.TotalExpense)
	}
	if got.Balance != 3_450_000 {
		t.Errorf("balance = %d, want 3450000", got.Balance)
	}

	// zero bound covers everything
	all := Summarize(s, time.Time{})
	if all.TotalExpense != 1_750_000 {
		t.Errorf("all-time expense = %d, want 1750000", all.TotalExpense)
	}
}

func TestExpenseByCategory(t *testing.T) {
	got := ExpenseByCategory(reportState(), date(2024, time.February, 1))

	want := []CategorySpend{
		{Category: "Makan", Amount: 950_000},
		{Category: CategorySavings, Amount: 500_000},
		{Category: CategoryDebt, Amount: 300_000},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d rows, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestAllocationForMonth(t *testing.T) {
	got := AllocationForMonth(reportState(), 2024, time.March)

	if got.General != 750_000 {
		t.Errorf("general = %d, want 750000", got.General)
	}
	if got.Savings != 500_000 {
		t.Errorf("savings = %d, want 500000", got.Savings)
	}
	if got.DebtPayment != 300_000 {
		t.Errorf("debt payment = %d, want 300000", got.DebtPayment)
	}
}

func TestMonthlySeries(t *testing.T) {
	got := MonthlySeries(reportState(), time.Time{})

	if len(got) != 2 {
		t.Fatalf("got %d points, want 2", len(got))
	}
	if got[0].Month != time.February || got[1].Month != time.March {
		t.Fatalf("months = [%v %v], want chronological", got[0].Month, got[1].Month)
	}
	march := got[1]
	if march.Income != 5_000_000 || march.Expense != 750_000 {
		t.Errorf("march income/expense = %d/%d", march.Income, march.Expense)
	}
	if march.Savings != 500_000 || march.DebtPayment != 300_000 {
		t.Errorf("march savings/debt = %d/%d", march.Savings, march.DebtPayment)
	}
}

func TestBudgetReport(t *testing.T) {
	got := BudgetReport(reportState(), 2024, time.March)

	if len(got) != 1 {
		t.Fatalf("got %d statuses, want 1", len(got))
	}
	st := got[0]
	if st.CategoryName != "Makan" {
		t.Errorf("category = %q", st.CategoryName)
	}
	if st.Spent != 750_000 {
		t.Errorf("spent = %d, want 750000", st.Spent)
	}
	if st.Tier != TierWarning {
		t.Errorf("tier = %q, want warning at 75%%", st.Tier)
	}
}

func TestBudgetTier_Boundaries(t *testing.T) {
	tests := []struct {
		name   string
		spent  int64
		budget int64
		want   BudgetTier
	}{
		{"under threshold", 740_000, 1_000_000, TierOK},
		{"at 75 percent", 750_000, 1_000_000, TierWarning},
		{"at exactly 100 percent", 1_000_000, 1_000_000, TierWarning},
		{"just over 100 percent", 1_000_001, 1_000_000, TierOver},
		{"zero budget", 500, 0, TierOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := budgetTier(tt.spent, tt.budget); got != tt.want {
				t.Errorf("budgetTier(%d, %d) = %q, want %q", tt.spent, tt.budget, got, tt.want)
			}
		})
	}
}

func TestBudgetReport_SkipsDanglingCategory(t *testing.T) {
	s := reportState()
	s.Budgets = append(s.Budgets, Budget{CategoryID: "c-404", Amount: 100})

	got := BudgetReport(s, 2024, time.March)
	if len(got) != 1 {
		t.Fatalf("got %d statuses, want 1", len(got))
	}
}

func TestWealth(t *testing.T) {
	s := reportState()
	now := date(2024, time.March, 20)

	got := Wealth(s, now)
	if got.TotalAssets != 10_000_000 {
		t.Errorf("total assets = %d, want 10000000", got.TotalAssets)
	}

	// 1,750,000 spent inside the trailing three months.
	wantAvg := decimal.NewFromInt(1_750_000).Div(decimal.NewFromInt(3))
	if !got.AvgMonthlyExpense.Equal(wantAvg) {
		t.Errorf("avg expense = %s, want %s", got.AvgMonthlyExpense, wantAvg)
	}

	// floor(10,000,000 / 583,333.33) = 17
	if got.RunwayMonths != 17 {
		t.Errorf("runway = %d months, want 17", got.RunwayMonths)
	}
}

func TestWealth_NoRecentSpending(t *testing.T) {
	s := reportState()
	s.Transactions = nil

	got := Wealth(s, date(2024, time.March, 20))
	if got.RunwayMonths != 0 {
		t.Errorf("runway = %d, want 0 with no spending", got.RunwayMonths)
	}
}
