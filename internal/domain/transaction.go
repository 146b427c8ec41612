package domain

import (
	"time"
)

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Canonical expense category labels. Relation-backed expenses always carry
// one of these; the label is derived from the relation kind, never typed by
// the user.
const (
	CategoryGeneral = "Umum"
	CategoryBill    = "Tagihan"
	CategorySavings = "Investasi/Tabungan"
	CategoryDebt    = "Utang"
)

// RelationKind tags which entity, if any, an expense pays toward.
type RelationKind string

const (
	RelationGeneral RelationKind = "general"
	RelationBill    RelationKind = "bill"
	RelationGoal    RelationKind = "goal"
	RelationDebt    RelationKind = "debt"
)

// KindForCategory maps a category name to the relation kind it implies.
// Non-canonical names are general expenses.
func KindForCategory(category string) RelationKind {
	switch category {
	case CategoryBill:
		return RelationBill
	case CategorySavings:
		return RelationGoal
	case CategoryDebt:
		return RelationDebt
	default:
		return RelationGeneral
	}
}

// CategoryLabel returns the canonical category name for a relation kind.
// General has no canonical label; the user-supplied category stands.
func (k RelationKind) CategoryLabel() string {
	switch k {
	case RelationBill:
		return CategoryBill
	case RelationGoal:
		return CategorySavings
	case RelationDebt:
		return CategoryDebt
	default:
		return ""
	}
}

// Transaction is a single income or expense event. Amounts are integers in
// the smallest currency unit. RelatedID links an expense to exactly one
// Bill, Goal or Debt, selected by the relation kind of its category.
type Transaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Amount      int64           `json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	RelatedID   string          `json:"relatedId,omitempty"`
	WalletID    string          `json:"walletId,omitempty"`
}

// RelationKind returns the relation kind implied by the transaction's
// category. Income transactions are always general.
func (t Transaction) RelationKind() RelationKind {
	if t.Type != TypeExpense {
		return RelationGeneral
	}
	return KindForCategory(t.Category)
}

// TransactionIntent is a caller-supplied request to create or replace a
// transaction, before validation.
type TransactionIntent struct {
	Type        TransactionType
	Amount      int64
	Category    string
	Date        time.Time
	Description string
	RelatedID   string
	WalletID    string
}
