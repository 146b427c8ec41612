package dto

import (
	"time"

	"github.com/bayufn/artha/internal/domain"
)

// TransactionRequest represents a request to create or update a transaction.
type TransactionRequest struct {
	Type        string    `json:"type"`
	Amount      int64     `json:"amount"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	RelatedID   string    `json:"relatedId,omitempty"`
	WalletID    string    `json:"walletId,omitempty"`
}

// ToIntent converts to a domain transaction intent.
func (r *TransactionRequest) ToIntent() domain.TransactionIntent {
	return domain.TransactionIntent{
		Type:        domain.TransactionType(r.Type),
		Amount:      r.Amount,
		Category:    r.Category,
		Date:        r.Date,
		Description: r.Description,
		RelatedID:   r.RelatedID,
		WalletID:    r.WalletID,
	}
}

// WalletRequest represents a request to create or update a wallet.
type WalletRequest struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Balance int64  `json:"balance"`
	Icon    string `json:"icon,omitempty"`
}

// ToDomain converts to a domain wallet.
func (r *WalletRequest) ToDomain() domain.Wallet {
	return domain.Wallet{
		ID:      r.ID,
		Name:    r.Name,
		Type:    r.Type,
		Balance: r.Balance,
		Icon:    r.Icon,
	}
}

// GoalRequest represents a request to create or update a savings goal.
type GoalRequest struct {
	ID           string `json:"id,omitempty"`
	Name         string `json:"name"`
	TargetAmount int64  `json:"targetAmount"`
}

// ToDomain converts to a domain goal.
func (r *GoalRequest) ToDomain() domain.FinancialGoal {
	return domain.FinancialGoal{
		ID:           r.ID,
		Name:         r.Name,
		TargetAmount: r.TargetAmount,
	}
}

// BillRequest represents a request to create or update a bill.
type BillRequest struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name"`
	Amount  int64  `json:"amount"`
	DueDate int    `json:"dueDate"`
}

// ToDomain converts to a domain bill.
func (r *BillRequest) ToDomain() domain.Bill {
	return domain.Bill{
		ID:      r.ID,
		Name:    r.Name,
		Amount:  r.Amount,
		DueDate: r.DueDate,
	}
}

// DebtRequest represents a request to create or update a debt.
type DebtRequest struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	TotalAmount int64  `json:"totalAmount"`
}

// ToDomain converts to a domain debt.
func (r *DebtRequest) ToDomain() domain.Debt {
	return domain.Debt{
		ID:          r.ID,
		Name:        r.Name,
		TotalAmount: r.TotalAmount,
	}
}

// CategoryRequest represents a request to create or update a category.
type CategoryRequest struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// ToDomain converts to a domain category.
func (r *CategoryRequest) ToDomain() domain.Category {
	return domain.Category{
		ID:   r.ID,
		Name: r.Name,
		Type: domain.TransactionType(r.Type),
	}
}

// BudgetRequest represents a request to set a category budget.
type BudgetRequest struct {
	CategoryID string `json:"categoryId"`
	Amount     int64  `json:"amount"`
}

// ToDomain converts to a domain budget.
func (r *BudgetRequest) ToDomain() domain.Budget {
	return domain.Budget{
		CategoryID: r.CategoryID,
		Amount:     r.Amount,
	}
}

// ActivateRequest carries the account activation code.
type ActivateRequest struct {
	Code string `json:"code"`
}
