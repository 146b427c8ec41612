package domain

import "fmt"

// Reference-entity mutations. Saving is an upsert keyed by id; deleting
// removes the entity only, never its transactions.

// SaveWallet inserts or replaces a wallet.
func SaveWallet(w Wallet) Mutation {
	return func(s AppState) (AppState, error) {
		if w.ID == "" || w.Name == "" {
			return s, fmt.Errorf("%w: wallet id and name are required", ErrValidation)
		}
		next := s.Clone()
		next.Wallets = upsertWallet(next.Wallets, w)
		return next, nil
	}
}

// DeleteWallet removes a wallet. Transactions referencing it are kept;
// their wallet effects simply have nothing left to touch.
func DeleteWallet(id string) Mutation {
	return func(s AppState) (AppState, error) {
		if _, ok := s.Wallet(id); !ok {
			return s, ErrWalletNotFound
		}
		next := s.Clone()
		next.Wallets = deleteWallet(next.Wallets, id)
		return next, nil
	}
}

// SaveGoal inserts or replaces a savings goal.
func SaveGoal(g FinancialGoal) Mutation {
	return func(s AppState) (AppState, error) {
		if g.ID == "" || g.Name == "" {
			return s, fmt.Errorf("%w: goal id and name are required", ErrValidation)
		}
		if g.TargetAmount <= 0 {
			return s, fmt.Errorf("%w: goal target must be positive", ErrValidation)
		}
		// The accumulator moves only through transaction effects.
		if existing, ok := s.Goal(g.ID); ok {
			g.CurrentAmount = existing.CurrentAmount
		}
		next := s.Clone()
		next.Goals = upsertGoal(next.Goals, g)
		return next, nil
	}
}

// DeleteGoal removes a goal without cascading to its transactions.
func DeleteGoal(id string) Mutation {
	return func(s AppState) (AppState, error) {
		if _, ok := s.Goal(id); !ok {
			return s, ErrGoalNotFound
		}
		next := s.Clone()
		next.Goals = deleteGoal(next.Goals, id)
		return next, nil
	}
}

// SaveBill inserts or replaces a bill.
func SaveBill(b Bill) Mutation {
	return func(s AppState) (AppState, error) {
		if b.ID == "" || b.Name == "" {
			return s, fmt.Errorf("%w: bill id and name are required", ErrValidation)
		}
		if b.DueDate < 1 || b.DueDate > 31 {
			return s, fmt.Errorf("%w: bill due date must be a day of month (1-31)", ErrValidation)
		}
		next := s.Clone()
		next.Bills = upsertBill(next.Bills, b)
		return next, nil
	}
}

// DeleteBill removes a bill.
func DeleteBill(id string) Mutation {
	return func(s AppState) (AppState, error) {
		if _, ok := s.BillByID(id); !ok {
			return s, ErrBillNotFound
		}
		next := s.Clone()
		next.Bills = deleteBill(next.Bills, id)
		return next, nil
	}
}

// SaveDebt inserts or replaces a debt.
func SaveDebt(d Debt) Mutation {
	return func(s AppState) (AppState, error) {
		if d.ID == "" || d.Name == "" {
			return s, fmt.Errorf("%w: debt id and name are required", ErrValidation)
		}
		if d.TotalAmount <= 0 {
			return s, fmt.Errorf("%w: debt total must be positive", ErrValidation)
		}
		if existing, ok := s.DebtByID(d.ID); ok {
			d.PaidAmount = existing.PaidAmount
		}
		next := s.Clone()
		next.Debts = upsertDebt(next.Debts, d)
		return next, nil
	}
}

// DeleteDebt removes a debt.
func DeleteDebt(id string) Mutation {
	return func(s AppState) (AppState, error) {
		if _, ok := s.DebtByID(id); !ok {
			return s, ErrDebtNotFound
		}
		next := s.Clone()
		next.Debts = deleteDebt(next.Debts, id)
		return next, nil
	}
}

// SaveCategory inserts or replaces a category.
func SaveCategory(c Category) Mutation {
	return func(s AppState) (AppState, error) {
		if c.ID == "" || c.Name == "" {
			return s, fmt.Errorf("%w: category id and name are required", ErrValidation)
		}
		if c.Type != TypeIncome && c.Type != TypeExpense {
			return s, fmt.Errorf("%w: unknown category type %q", ErrValidation, c.Type)
		}
		next := s.Clone()
		next.Categories = upsertCategory(next.Categories, c)
		return next, nil
	}
}

// DeleteCategory removes a category unless a budget still references it.
func DeleteCategory(id string) Mutation {
	return func(s AppState) (AppState, error) {
		if _, ok := s.CategoryByID(id); !ok {
			return s, ErrCategoryNotFound
		}
		for _, b := range s.Budgets {
			if b.CategoryID == id {
				return s, ErrCategoryInUse
			}
		}
		next := s.Clone()
		next.Categories = deleteCategory(next.Categories, id)
		return next, nil
	}
}

// SetBudget inserts or replaces the budget for a category.
func SetBudget(b Budget) Mutation {
	return func(s AppState) (AppState, error) {
		if _, ok := s.CategoryByID(b.CategoryID); !ok {
			return s, fmt.Errorf("%w: category %q does not exist", ErrValidation, b.CategoryID)
		}
		if b.Amount <= 0 {
			return s, fmt.Errorf("%w: budget amount must be positive", ErrValidation)
		}
		next := s.Clone()
		for i := range next.Budgets {
			if next.Budgets[i].CategoryID == b.CategoryID {
				next.Budgets[i] = b
				return next, nil
			}
		}
		next.Budgets = append(next.Budgets, b)
		return next, nil
	}
}

// DeleteBudget removes the budget keyed by category id.
func DeleteBudget(categoryID string) Mutation {
	return func(s AppState) (AppState, error) {
		next := s.Clone()
		for i := range next.Budgets {
			if next.Budgets[i].CategoryID == categoryID {
				next.Budgets = append(next.Budgets[:i], next.Budgets[i+1:]...)
				return next, nil
			}
		}
		return s, ErrBudgetNotFound
	}
}

func upsertWallet(ws []Wallet, w Wallet) []Wallet {
	for i := range ws {
		if ws[i].ID == w.ID {
			ws[i] = w
			return ws
		}
	}
	return append(ws, w)
}

func deleteWallet(ws []Wallet, id string) []Wallet {
	out := ws[:0]
	for _, w := range ws {
		if w.ID != id {
			out = append(out, w)
		}
	}
	return out
}

func upsertGoal(gs []FinancialGoal, g FinancialGoal) []FinancialGoal {
	for i := range gs {
		if gs[i].ID == g.ID {
			gs[i] = g
			return gs
		}
	}
	return append(gs, g)
}

func deleteGoal(gs []FinancialGoal, id string) []FinancialGoal {
	out := gs[:0]
	for _, g := range gs {
		if g.ID != id {
			out = append(out, g)
		}
	}
	return out
}

func upsertBill(bs []Bill, b Bill) []Bill {
	for i := range bs {
		if bs[i].ID == b.ID {
			bs[i] = b
			return bs
		}
	}
	return append(bs, b)
}

func deleteBill(bs []Bill, id string) []Bill {
	out := bs[:0]
	for _, b := range bs {
		if b.ID != id {
			out = append(out, b)
		}
	}
	return out
}

func upsertDebt(ds []Debt, d Debt) []Debt {
	for i := range ds {
		if ds[i].ID == d.ID {
			ds[i] = d
			return ds
		}
	}
	return append(ds, d)
}

func deleteDebt(ds []Debt, id string) []Debt {
	out := ds[:0]
	for _, d := range ds {
		if d.ID != id {
			out = append(out, d)
		}
	}
	return out
}

func upsertCategory(cs []Category, c Category) []Category {
	for i := range cs {
		if cs[i].ID == c.ID {
			cs[i] = c
			return cs
		}
	}
	return append(cs, c)
}

func deleteCategory(cs []Category, id string) []Category {
	out := cs[:0]
	for _, c := range cs {
		if c.ID != id {
			out = append(out, c)
		}
	}
	return out
}
