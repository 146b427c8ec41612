package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bayufn/artha/internal/adapter/http/handler"
	"github.com/bayufn/artha/internal/domain"
	"github.com/bayufn/artha/internal/state"
	"github.com/bayufn/artha/internal/usecase"
)

type seqIDGen struct{ n int }

func (g *seqIDGen) Generate() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

type nopActivationRepo struct{}

func (nopActivationRepo) SetActivated(ctx context.Context, userID string, activated bool) error {
	return nil
}

func newTestRouter(t *testing.T, activated bool) (http.Handler, *state.Store) {
	t.Helper()

	store := state.New(domain.AppState{
		Wallets:    []domain.Wallet{{ID: "w-1", Name: "Bank", Type: "bank", Balance: 1_000_000}},
		Categories: domain.DefaultCategories(),
	})
	idGen := &seqIDGen{}
	logger := zerolog.Nop()

	transactionUC := usecase.NewTransactionUseCase(store, idGen, nil, logger)
	catalogUC := usecase.NewCatalogUseCase(store, idGen)
	reportUC := usecase.NewReportUseCase(store)
	insightUC := usecase.NewInsightUseCase(store, nil, nil, 0, logger)
	activationUC := usecase.NewActivationUseCase(nopActivationRepo{}, "local", "SECRET", activated)

	router := NewRouter(RouterConfig{
		Logger:             logger,
		TransactionHandler: handler.NewTransactionHandler(transactionUC),
		CatalogHandler:     handler.NewCatalogHandler(catalogUC),
		ReportHandler:      handler.NewReportHandler(reportUC),
		InsightHandler:     handler.NewInsightHandler(insightUC),
		StateHandler:       handler.NewStateHandler(store, activationUC),
		HealthHandler:      handler.NewHealthHandler(nil, nil),
		ActivationGate:     activationUC,
	})
	return router, store
}

func do(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router, _ := newTestRouter(t, true)

	if rec := do(router, http.MethodGet, "/health", ""); rec.Code != http.StatusOK {
		t.Fatalf("expected /health to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_MetricsEndpointAvailable(t *testing.T) {
	router, _ := newTestRouter(t, true)

	if rec := do(router, http.MethodGet, "/metrics", ""); rec.Code != http.StatusOK {
		t.Fatalf("expected /metrics to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_TransactionLifecycle(t *testing.T) {
	router, store := newTestRouter(t, true)

	rec := do(router, http.MethodPost, "/api/v1/transactions",
		`{"type":"income","amount":500000,"category":"Gaji","date":"2024-03-01T00:00:00Z","walletId":"w-1"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}

	var created domain.Transaction
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.ID == "" {
		t.Fatal("created transaction has no id")
	}

	if got := store.Snapshot().Wallets[0].Balance; got != 1_500_000 {
		t.Errorf("balance = %d, want 1500000", got)
	}

	rec = do(router, http.MethodPut, "/api/v1/transactions/"+created.ID,
		`{"type":"income","amount":250000,"category":"Gaji","date":"2024-03-01T00:00:00Z","walletId":"w-1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	if got := store.Snapshot().Wallets[0].Balance; got != 1_250_000 {
		t.Errorf("balance after update = %d, want 1250000", got)
	}

	if rec = do(router, http.MethodGet, "/api/v1/transactions", ""); rec.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", rec.Code)
	}

	if rec = do(router, http.MethodDelete, "/api/v1/transactions/"+created.ID, ""); rec.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", rec.Code)
	}
	if got := store.Snapshot().Wallets[0].Balance; got != 1_000_000 {
		t.Errorf("balance after delete = %d, want 1000000 restored", got)
	}
}

func TestNewRouter_ValidationErrorsMapTo400(t *testing.T) {
	router, _ := newTestRouter(t, true)

	rec := do(router, http.MethodPost, "/api/v1/transactions",
		`{"type":"income","amount":0,"category":"Gaji","date":"2024-03-01T00:00:00Z","walletId":"w-1"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestNewRouter_UnknownTransactionMapsTo404(t *testing.T) {
	router, _ := newTestRouter(t, true)

	if rec := do(router, http.MethodDelete, "/api/v1/transactions/missing", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestNewRouter_ActivationGateBlocksMutations(t *testing.T) {
	router, _ := newTestRouter(t, false)

	// reads stay open
	if rec := do(router, http.MethodGet, "/api/v1/state", ""); rec.Code != http.StatusOK {
		t.Fatalf("state read: expected 200, got %d", rec.Code)
	}
	if rec := do(router, http.MethodGet, "/api/v1/reports/summary", ""); rec.Code != http.StatusOK {
		t.Fatalf("report read: expected 200, got %d", rec.Code)
	}

	// writes are blocked
	rec := do(router, http.MethodPost, "/api/v1/transactions",
		`{"type":"income","amount":1000,"category":"Gaji","date":"2024-03-01T00:00:00Z","walletId":"w-1"}`)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 while locked, got %d", rec.Code)
	}

	// wrong code keeps the gate closed
	if rec := do(router, http.MethodPost, "/api/v1/activate", `{"code":"nope"}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("wrong code: expected 400, got %d", rec.Code)
	}

	// right code opens it
	if rec := do(router, http.MethodPost, "/api/v1/activate", `{"code":"SECRET"}`); rec.Code != http.StatusOK {
		t.Fatalf("activate: expected 200, got %d", rec.Code)
	}
	rec = do(router, http.MethodPost, "/api/v1/transactions",
		`{"type":"income","amount":1000,"category":"Gaji","date":"2024-03-01T00:00:00Z","walletId":"w-1"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 after activation, got %d", rec.Code)
	}
}

func TestNewRouter_Reports(t *testing.T) {
	router, _ := newTestRouter(t, true)

	for _, path := range []string{
		"/api/v1/reports/summary?period=Bulan%20Ini",
		"/api/v1/reports/breakdown",
		"/api/v1/reports/allocation?year=2024&month=3",
		"/api/v1/reports/monthly",
		"/api/v1/reports/budgets",
		"/api/v1/reports/wealth",
	} {
		if rec := do(router, http.MethodGet, path, ""); rec.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, rec.Code)
		}
	}
}

func TestNewRouter_InsightsFallback(t *testing.T) {
	router, _ := newTestRouter(t, true)

	rec := do(router, http.MethodGet, "/api/v1/insights?period=Bulan%20Ini", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	var resp struct {
		Source   string           `json:"source"`
		Insights []domain.Insight `json:"insights"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Source != "fallback" {
		t.Errorf("source = %q, want fallback without a provider", resp.Source)
	}
	if len(resp.Insights) == 0 {
		t.Error("no insights returned")
	}

	if rec := do(router, http.MethodGet, "/api/v1/insights?period=Unknown", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("unknown period: expected 400, got %d", rec.Code)
	}
}

func TestNewRouter_CatalogRoutes(t *testing.T) {
	router, store := newTestRouter(t, true)

	rec := do(router, http.MethodPost, "/api/v1/wallets", `{"name":"Tunai","type":"cash","balance":50000}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("save wallet: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var w domain.Wallet
	if err := json.Unmarshal(rec.Body.Bytes(), &w); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if w.ID == "" {
		t.Fatal("wallet id not assigned")
	}

	if rec := do(router, http.MethodPost, "/api/v1/bills", `{"name":"Internet","amount":300000,"dueDate":15}`); rec.Code != http.StatusOK {
		t.Fatalf("save bill: expected 200, got %d", rec.Code)
	}
	if rec := do(router, http.MethodPut, "/api/v1/budgets", `{"categoryId":"exp-1","amount":1000000}`); rec.Code != http.StatusOK {
		t.Fatalf("set budget: expected 200, got %d", rec.Code)
	}

	// a budgeted category cannot be deleted
	if rec := do(router, http.MethodDelete, "/api/v1/categories/exp-1", ""); rec.Code != http.StatusConflict {
		t.Fatalf("delete budgeted category: expected 409, got %d", rec.Code)
	}

	if rec := do(router, http.MethodDelete, "/api/v1/wallets/"+w.ID, ""); rec.Code != http.StatusNoContent {
		t.Fatalf("delete wallet: expected 204, got %d", rec.Code)
	}
	if _, ok := store.Snapshot().Wallet(w.ID); ok {
		t.Error("wallet still in store")
	}
}

func TestNewRouter_StateSnapshot(t *testing.T) {
	router, _ := newTestRouter(t, true)

	rec := do(router, http.MethodGet, "/api/v1/state", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Activated bool            `json:"activated"`
		Wallets   []domain.Wallet `json:"wallets"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Activated {
		t.Error("activated = false, want true")
	}
	if len(resp.Wallets) != 1 {
		t.Errorf("wallets = %d, want 1", len(resp.Wallets))
	}
}
