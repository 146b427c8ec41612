package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/bayufn/artha/internal/domain"
	"github.com/bayufn/artha/internal/usecase"
	"github.com/bayufn/artha/internal/usecase/mocks"
)

func TestActivationUseCase_Activate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockActivationRepository(ctrl)
	repo.EXPECT().SetActivated(gomock.Any(), "local", true).Return(nil)

	uc := usecase.NewActivationUseCase(repo, "local", "ARTHA-2024", false)
	if uc.Activated() {
		t.Fatal("account active before activation")
	}

	if err := uc.Activate(context.Background(), "artha-2024"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !uc.Activated() {
		t.Error("account still inactive after activation")
	}

	// repeat activation is a no-op, no second repo call
	if err := uc.Activate(context.Background(), "ARTHA-2024"); err != nil {
		t.Fatalf("repeat activation: %v", err)
	}
}

func TestActivationUseCase_WrongCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockActivationRepository(ctrl)
	uc := usecase.NewActivationUseCase(repo, "local", "ARTHA-2024", false)

	for _, code := range []string{"", "   ", "wrong"} {
		if err := uc.Activate(context.Background(), code); !errors.Is(err, domain.ErrInvalidActivationCode) {
			t.Errorf("code %q: error = %v, want ErrInvalidActivationCode", code, err)
		}
	}
	if uc.Activated() {
		t.Error("wrong code activated the account")
	}
}

func TestActivationUseCase_RepoFailureKeepsInactive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockActivationRepository(ctrl)
	repo.EXPECT().SetActivated(gomock.Any(), "local", true).Return(errors.New("db down"))

	uc := usecase.NewActivationUseCase(repo, "local", "ARTHA-2024", false)
	if err := uc.Activate(context.Background(), "ARTHA-2024"); err == nil {
		t.Fatal("expected error")
	}
	if uc.Activated() {
		t.Error("account activated despite persistence failure")
	}
}
