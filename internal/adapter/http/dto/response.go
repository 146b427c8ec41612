package dto

import (
	"github.com/bayufn/artha/internal/domain"
)

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// StateResponse is the full application state plus account status, the
// payload a client needs to render everything in one request.
type StateResponse struct {
	Activated     bool                   `json:"activated"`
	Transactions  []domain.Transaction   `json:"transactions"`
	Categories    []domain.Category      `json:"categories"`
	Budgets       []domain.Budget        `json:"budgets"`
	Goals         []domain.FinancialGoal `json:"goals"`
	Bills         []domain.Bill          `json:"bills"`
	Debts         []domain.Debt          `json:"debts"`
	Wallets       []domain.Wallet        `json:"wallets"`
	Notifications []domain.Notification  `json:"notifications"`
}

// StateFromDomain converts the state snapshot to a response.
func StateFromDomain(s domain.AppState, activated bool) StateResponse {
	return StateResponse{
		Activated:     activated,
		Transactions:  s.Transactions,
		Categories:    s.Categories,
		Budgets:       s.Budgets,
		Goals:         s.Goals,
		Bills:         s.Bills,
		Debts:         s.Debts,
		Wallets:       s.Wallets,
		Notifications: s.Notifications,
	}
}

// InsightsResponse carries the insight list plus its origin.
type InsightsResponse struct {
	Period   string           `json:"period"`
	Source   string           `json:"source"`
	Insights []domain.Insight `json:"insights"`
}

// NotificationsResponse wraps the notification list.
type NotificationsResponse struct {
	Notifications []domain.Notification `json:"notifications"`
}
