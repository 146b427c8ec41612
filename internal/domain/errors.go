package domain

import "errors"

var (
	// ErrValidation covers intents that fail precondition checks. State is
	// never touched when it is returned.
	ErrValidation = errors.New("invalid intent")

	// Lookup errors
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrWalletNotFound      = errors.New("wallet not found")
	ErrGoalNotFound        = errors.New("goal not found")
	ErrDebtNotFound        = errors.New("debt not found")
	ErrBillNotFound        = errors.New("bill not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrBudgetNotFound      = errors.New("budget not found")

	// ErrCategoryInUse blocks deleting a category that a budget references.
	ErrCategoryInUse = errors.New("category is referenced by a budget")

	// ErrAccountInactive rejects mutations while the account activation gate
	// is closed.
	ErrAccountInactive = errors.New("account is not activated")

	// ErrInvalidActivationCode rejects activation attempts with a wrong code.
	ErrInvalidActivationCode = errors.New("invalid activation code")
)
