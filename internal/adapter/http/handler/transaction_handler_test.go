package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/bayufn/artha/internal/domain"
	"github.com/bayufn/artha/internal/state"
	"github.com/bayufn/artha/internal/usecase"
)

type fixedIDGen struct{ n int }

func (g *fixedIDGen) Generate() string {
	g.n++
	return fmt.Sprintf("tx-%d", g.n)
}

func newTransactionHandler(t *testing.T) (*TransactionHandler, *state.Store) {
	t.Helper()

	store := state.New(domain.AppState{
		Wallets:    []domain.Wallet{{ID: "w-1", Name: "Bank", Type: "bank", Balance: 1_000_000}},
		Categories: domain.DefaultCategories(),
	})
	uc := usecase.NewTransactionUseCase(store, &fixedIDGen{}, nil, zerolog.Nop())
	return NewTransactionHandler(uc), store
}

func TestTransactionHandler_Create(t *testing.T) {
	h, store := newTransactionHandler(t)

	body := `{"type":"income","amount":500000,"category":"Gaji","date":"2024-03-01T00:00:00Z","walletId":"w-1"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", strings.NewReader(body))

	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}

	var created domain.Transaction
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.ID != "tx-1" {
		t.Errorf("id = %q, want tx-1", created.ID)
	}
	if created.Amount != 500_000 {
		t.Errorf("amount = %d, want 500000", created.Amount)
	}
	if got := store.Snapshot().Wallets[0].Balance; got != 1_500_000 {
		t.Errorf("wallet balance = %d, want 1500000", got)
	}
}

func TestTransactionHandler_Create_InvalidBody(t *testing.T) {
	h, _ := newTransactionHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", strings.NewReader("{not json"))

	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTransactionHandler_Create_ValidationError(t *testing.T) {
	h, store := newTransactionHandler(t)

	body := `{"type":"expense","amount":100000,"category":"Belanja","date":"2024-03-01T00:00:00Z","walletId":"missing"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", strings.NewReader(body))

	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d (%s)", rec.Code, rec.Body.String())
	}
	if got := len(store.Snapshot().Transactions); got != 0 {
		t.Errorf("transactions recorded = %d, want 0", got)
	}
}

func TestTransactionHandler_List(t *testing.T) {
	h, store := newTransactionHandler(t)

	for day := 1; day <= 3; day++ {
		_, err := store.Apply(domain.CreateTransaction(fmt.Sprintf("seed-%d", day), domain.TransactionIntent{
			Type:     domain.TypeIncome,
			Amount:   1000,
			Category: "Gaji",
			Date:     time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC),
			WalletID: "w-1",
		}))
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)

	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var listed []domain.Transaction
	if err := json.Unmarshal(rec.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(listed) != 3 {
		t.Fatalf("got %d transactions, want 3", len(listed))
	}
	if listed[0].ID != "seed-3" {
		t.Errorf("first id = %q, want seed-3 (newest date first)", listed[0].ID)
	}
}
