package usecase

import (
	"context"
	"time"

	"github.com/bayufn/artha/internal/domain"
	"github.com/bayufn/artha/internal/state"
)

// CatalogUseCase manages the reference entities a transaction can point at:
// wallets, goals, bills, debts, categories and budgets.
type CatalogUseCase struct {
	store *state.Store
	idGen IDGenerator
}

// NewCatalogUseCase creates a new CatalogUseCase.
func NewCatalogUseCase(store *state.Store, idGen IDGenerator) *CatalogUseCase {
	return &CatalogUseCase{store: store, idGen: idGen}
}

// SaveWallet upserts a wallet, assigning an id when missing.
func (uc *CatalogUseCase) SaveWallet(ctx context.Context, w domain.Wallet) (domain.Wallet, error) {
	if w.ID == "" {
		w.ID = uc.idGen.Generate()
	}
	if _, err := uc.store.Apply(domain.SaveWallet(w)); err != nil {
		return domain.Wallet{}, err
	}
	return w, nil
}

// DeleteWallet removes a wallet.
func (uc *CatalogUseCase) DeleteWallet(ctx context.Context, id string) error {
	_, err := uc.store.Apply(domain.DeleteWallet(id))
	return err
}

// SaveGoal upserts a savings goal, assigning an id when missing.
func (uc *CatalogUseCase) SaveGoal(ctx context.Context, g domain.FinancialGoal) (domain.FinancialGoal, error) {
	if g.ID == "" {
		g.ID = uc.idGen.Generate()
	}
	if _, err := uc.store.Apply(domain.SaveGoal(g)); err != nil {
		return domain.FinancialGoal{}, err
	}
	next := uc.store.Snapshot()
	saved, _ := next.Goal(g.ID)
	return saved, nil
}

// DeleteGoal removes a goal; its transactions are untouched.
func (uc *CatalogUseCase) DeleteGoal(ctx context.Context, id string) error {
	_, err := uc.store.Apply(domain.DeleteGoal(id))
	return err
}

// SaveBill upserts a bill, assigning an id when missing.
func (uc *CatalogUseCase) SaveBill(ctx context.Context, b domain.Bill) (domain.Bill, error) {
	if b.ID == "" {
		b.ID = uc.idGen.Generate()
	}
	if _, err := uc.store.Apply(domain.SaveBill(b)); err != nil {
		return domain.Bill{}, err
	}
	return b, nil
}

// DeleteBill removes a bill.
func (uc *CatalogUseCase) DeleteBill(ctx context.Context, id string) error {
	_, err := uc.store.Apply(domain.DeleteBill(id))
	return err
}

// SaveDebt upserts a debt, assigning an id when missing.
func (uc *CatalogUseCase) SaveDebt(ctx context.Context, d domain.Debt) (domain.Debt, error) {
	if d.ID == "" {
		d.ID = uc.idGen.Generate()
	}
	if _, err := uc.store.Apply(domain.SaveDebt(d)); err != nil {
		return domain.Debt{}, err
	}
	return d, nil
}

// DeleteDebt removes a debt.
func (uc *CatalogUseCase) DeleteDebt(ctx context.Context, id string) error {
	_, err := uc.store.Apply(domain.DeleteDebt(id))
	return err
}

// SaveCategory upserts a category, assigning an id when missing.
func (uc *CatalogUseCase) SaveCategory(ctx context.Context, c domain.Category) (domain.Category, error) {
	if c.ID == "" {
		c.ID = uc.idGen.Generate()
	}
	if _, err := uc.store.Apply(domain.SaveCategory(c)); err != nil {
		return domain.Category{}, err
	}
	return c, nil
}

// DeleteCategory removes a category. It fails with ErrCategoryInUse while a
// budget references the category.
func (uc *CatalogUseCase) DeleteCategory(ctx context.Context, id string) error {
	_, err := uc.store.Apply(domain.DeleteCategory(id))
	return err
}

// SetBudget upserts the budget for a category.
func (uc *CatalogUseCase) SetBudget(ctx context.Context, b domain.Budget) error {
	_, err := uc.store.Apply(domain.SetBudget(b))
	return err
}

// DeleteBudget removes the budget keyed by category id.
func (uc *CatalogUseCase) DeleteBudget(ctx context.Context, categoryID string) error {
	_, err := uc.store.Apply(domain.DeleteBudget(categoryID))
	return err
}

// RefreshBillReminders appends due-date notifications for upcoming bills.
// It returns the notifications added in this pass.
func (uc *CatalogUseCase) RefreshBillReminders(ctx context.Context, now time.Time) ([]domain.Notification, error) {
	snapshot := uc.store.Snapshot()
	notifs := domain.UpcomingBillNotifications(snapshot, now)
	if len(notifs) == 0 {
		return nil, nil
	}
	if _, err := uc.store.Apply(domain.AddNotifications(notifs)); err != nil {
		return nil, err
	}
	return notifs, nil
}

// DismissNotification removes one notification.
func (uc *CatalogUseCase) DismissNotification(ctx context.Context, id string) error {
	_, err := uc.store.Apply(domain.DismissNotification(id))
	return err
}
