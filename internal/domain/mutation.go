package domain

import (
	"fmt"
	"sort"
)

// Mutation is a pure state transition. Implementations must not modify the
// input state; they return a new state or an error with the input unchanged.
type Mutation func(AppState) (AppState, error)

// resolveTransaction builds the stored transaction from a validated intent.
// Relation-backed expenses get the canonical category label and a derived
// description; everything else keeps the caller-supplied values. A general
// expense never keeps a relation reference.
func resolveTransaction(s AppState, id string, intent TransactionIntent) Transaction {
	t := Transaction{
		ID:          id,
		Type:        intent.Type,
		Category:    intent.Category,
		Amount:      intent.Amount,
		Date:        intent.Date,
		Description: intent.Description,
		WalletID:    intent.WalletID,
	}

	if intent.Type != TypeExpense {
		return t
	}

	switch KindForCategory(intent.Category) {
	case RelationBill:
		if bill, ok := s.BillByID(intent.RelatedID); ok {
			t.Category = CategoryBill
			t.Description = "Bayar Tagihan: " + bill.Name
			t.RelatedID = intent.RelatedID
		}
	case RelationGoal:
		if goal, ok := s.Goal(intent.RelatedID); ok {
			t.Category = CategorySavings
			t.Description = "Investasi/Tabungan untuk " + goal.Name
			t.RelatedID = intent.RelatedID
		}
	case RelationDebt:
		if debt, ok := s.DebtByID(intent.RelatedID); ok {
			t.Category = CategoryDebt
			t.Description = "Bayar Utang: " + debt.Name
			t.RelatedID = intent.RelatedID
		}
	}

	return t
}

// applyEffect adjusts the accumulators touched by t. sign is +1 to apply the
// transaction's effect and -1 to reverse it. Entities that no longer exist
// are skipped, so reversing a transaction whose wallet or goal was deleted
// is a no-op for that entity.
func applyEffect(s *AppState, t Transaction, sign int64) {
	delta := sign * t.Amount

	if t.WalletID != "" {
		for i := range s.Wallets {
			if s.Wallets[i].ID != t.WalletID {
				continue
			}
			if t.Type == TypeIncome {
				s.Wallets[i].Balance += delta
			} else {
				s.Wallets[i].Balance -= delta
			}
		}
	}

	if t.Type != TypeExpense || t.RelatedID == "" {
		return
	}

	switch t.RelationKind() {
	case RelationGoal:
		for i := range s.Goals {
			if s.Goals[i].ID == t.RelatedID {
				s.Goals[i].CurrentAmount += delta
			}
		}
	case RelationDebt:
		for i := range s.Debts {
			if s.Debts[i].ID == t.RelatedID {
				s.Debts[i].PaidAmount += delta
			}
		}
	}
	// Bills carry no accumulator; a bill payment only affects the wallet.
}

// sortTransactions orders by date descending. The sort is stable: equal
// dates keep their existing relative order.
func sortTransactions(txs []Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date.After(txs[j].Date)
	})
}

// CreateTransaction returns a mutation that validates the intent, applies
// its forward effect to the referenced accumulators and inserts the
// transaction. The transaction list stays sorted by date descending.
func CreateTransaction(id string, intent TransactionIntent) Mutation {
	return func(s AppState) (AppState, error) {
		if err := ValidateIntent(s, intent); err != nil {
			return s, err
		}
		if _, ok := s.TransactionByID(id); ok {
			return s, fmt.Errorf("%w: transaction id %q already exists", ErrValidation, id)
		}

		next := s.Clone()
		t := resolveTransaction(next, id, intent)
		applyEffect(&next, t, +1)

		next.Transactions = append([]Transaction{t}, next.Transactions...)
		sortTransactions(next.Transactions)
		return next, nil
	}
}

// UpdateTransaction returns a mutation that reverses the stored
// transaction's effect using its original wallet, category and relation,
// then applies the new intent's effect using the new values. Entities
// referenced by neither side are untouched.
func UpdateTransaction(id string, intent TransactionIntent) Mutation {
	return func(s AppState) (AppState, error) {
		original, ok := s.TransactionByID(id)
		if !ok {
			return s, ErrTransactionNotFound
		}
		if err := ValidateIntent(s, intent); err != nil {
			return s, err
		}

		next := s.Clone()
		applyEffect(&next, original, -1)

		updated := resolveTransaction(next, id, intent)
		applyEffect(&next, updated, +1)

		for i := range next.Transactions {
			if next.Transactions[i].ID == id {
				next.Transactions[i] = updated
			}
		}
		sortTransactions(next.Transactions)
		return next, nil
	}
}

// DeleteTransaction returns a mutation that reverses the stored
// transaction's effect and removes it. Entity deletion never cascades.
func DeleteTransaction(id string) Mutation {
	return func(s AppState) (AppState, error) {
		t, ok := s.TransactionByID(id)
		if !ok {
			return s, ErrTransactionNotFound
		}

		next := s.Clone()
		applyEffect(&next, t, -1)

		kept := next.Transactions[:0]
		for _, tx := range next.Transactions {
			if tx.ID != id {
				kept = append(kept, tx)
			}
		}
		next.Transactions = kept
		return next, nil
	}
}
