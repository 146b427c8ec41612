package usecase

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/bayufn/artha/internal/domain"
)

// ActivationUseCase tracks whether the account is unlocked. The flag is
// loaded once at startup and flipped at most once afterwards.
type ActivationUseCase struct {
	repo      ActivationRepository
	userID    string
	code      string
	activated atomic.Bool
}

// NewActivationUseCase creates a new ActivationUseCase seeded with the
// activation state loaded from the repository.
func NewActivationUseCase(repo ActivationRepository, userID, code string, activated bool) *ActivationUseCase {
	uc := &ActivationUseCase{repo: repo, userID: userID, code: code}
	uc.activated.Store(activated)
	return uc
}

// Activated reports whether the account is unlocked.
func (uc *ActivationUseCase) Activated() bool {
	return uc.activated.Load()
}

// Activate unlocks the account when the code matches. Activating an already
// active account is a no-op.
func (uc *ActivationUseCase) Activate(ctx context.Context, code string) error {
	if strings.TrimSpace(code) == "" || !strings.EqualFold(strings.TrimSpace(code), uc.code) {
		return domain.ErrInvalidActivationCode
	}
	if uc.activated.Load() {
		return nil
	}
	if err := uc.repo.SetActivated(ctx, uc.userID, true); err != nil {
		return err
	}
	uc.activated.Store(true)
	return nil
}
