package domain

import "fmt"

// ValidateIntent checks a transaction intent against the current state.
// Every error wraps ErrValidation; nothing is mutated.
func ValidateIntent(s AppState, intent TransactionIntent) error {
	if intent.Type != TypeIncome && intent.Type != TypeExpense {
		return fmt.Errorf("%w: unknown transaction type %q", ErrValidation, intent.Type)
	}

	if intent.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrValidation)
	}

	if intent.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}

	if intent.WalletID == "" {
		return fmt.Errorf("%w: wallet is required", ErrValidation)
	}

	if _, ok := s.Wallet(intent.WalletID); !ok {
		return fmt.Errorf("%w: wallet %q does not exist", ErrValidation, intent.WalletID)
	}

	if intent.Type == TypeIncome {
		if intent.Category == "" {
			return fmt.Errorf("%w: category is required for income", ErrValidation)
		}
		return nil
	}

	switch KindForCategory(intent.Category) {
	case RelationGeneral:
		if intent.Category == "" {
			return fmt.Errorf("%w: category is required for expense", ErrValidation)
		}
	case RelationBill:
		if intent.RelatedID == "" {
			return fmt.Errorf("%w: bill reference is required", ErrValidation)
		}
		if _, ok := s.BillByID(intent.RelatedID); !ok {
			return fmt.Errorf("%w: bill %q does not exist", ErrValidation, intent.RelatedID)
		}
	case RelationGoal:
		if intent.RelatedID == "" {
			return fmt.Errorf("%w: savings goal reference is required", ErrValidation)
		}
		if _, ok := s.Goal(intent.RelatedID); !ok {
			return fmt.Errorf("%w: goal %q does not exist", ErrValidation, intent.RelatedID)
		}
	case RelationDebt:
		if intent.RelatedID == "" {
			return fmt.Errorf("%w: debt reference is required", ErrValidation)
		}
		if _, ok := s.DebtByID(intent.RelatedID); !ok {
			return fmt.Errorf("%w: debt %q does not exist", ErrValidation, intent.RelatedID)
		}
	}

	return nil
}
