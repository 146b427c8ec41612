package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bayufn/artha/internal/domain"
)

// StateRepository implements usecase.StateRepository over a single JSONB
// document per user. The document is replaced wholesale on save, matching
// the whole-aggregate ownership of the state store.
type StateRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewStateRepository creates a new StateRepository.
func NewStateRepository(pool *pgxpool.Pool, retrier *Retrier) *StateRepository {
	return &StateRepository{pool: pool, retrier: retrier}
}

// persistedState is the stored payload. Volatile fields (notifications and
// the API credential) never reach the database.
type persistedState struct {
	Transactions []domain.Transaction   `json:"transactions"`
	Categories   []domain.Category      `json:"categories"`
	Budgets      []domain.Budget        `json:"budgets"`
	Goals        []domain.FinancialGoal `json:"goals"`
	Bills        []domain.Bill          `json:"bills"`
	Debts        []domain.Debt          `json:"debts"`
	Wallets      []domain.Wallet        `json:"wallets"`
}

// Load fetches the state document and activation flag for a user. A user
// seen for the first time gets a fresh inactive row with the default
// category taxonomy.
func (r *StateRepository) Load(ctx context.Context, userID string) (domain.AppState, bool, error) {
	var (
		doc       []byte
		activated bool
	)

	err := r.pool.QueryRow(ctx,
		`SELECT document, activated FROM app_states WHERE user_id = $1`,
		userID,
	).Scan(&doc, &activated)

	if errors.Is(err, pgx.ErrNoRows) {
		initial := domain.NewAppState()
		if err := r.insertInitial(ctx, userID, initial); err != nil {
			return domain.AppState{}, false, err
		}
		return initial, false, nil
	}
	if err != nil {
		return domain.AppState{}, false, fmt.Errorf("load state: %w", err)
	}

	var stored persistedState
	if err := json.Unmarshal(doc, &stored); err != nil {
		return domain.AppState{}, false, fmt.Errorf("decode state document: %w", err)
	}

	st := domain.AppState{
		Transactions: stored.Transactions,
		Categories:   stored.Categories,
		Budgets:      stored.Budgets,
		Goals:        stored.Goals,
		Bills:        stored.Bills,
		Debts:        stored.Debts,
		Wallets:      stored.Wallets,
	}
	if len(st.Categories) == 0 {
		st.Categories = domain.DefaultCategories()
	}
	return st, activated, nil
}

// Save upserts the state document, stripping volatile fields. Transient
// database errors are retried with exponential backoff; any error that
// survives the retries is returned for the caller to log.
func (r *StateRepository) Save(ctx context.Context, userID string, st domain.AppState) error {
	doc, err := json.Marshal(persistedState{
		Transactions: st.Transactions,
		Categories:   st.Categories,
		Budgets:      st.Budgets,
		Goals:        st.Goals,
		Bills:        st.Bills,
		Debts:        st.Debts,
		Wallets:      st.Wallets,
	})
	if err != nil {
		return fmt.Errorf("encode state document: %w", err)
	}

	save := func() error {
		_, err := r.pool.Exec(ctx,
			`INSERT INTO app_states (user_id, document, updated_at)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (user_id)
			 DO UPDATE SET document = EXCLUDED.document, updated_at = EXCLUDED.updated_at`,
			userID, doc, time.Now().UTC(),
		)
		return err
	}

	if r.retrier != nil {
		return r.retrier.Retry(ctx, save)
	}
	return save()
}

// SetActivated flips the account activation gate.
func (r *StateRepository) SetActivated(ctx context.Context, userID string, activated bool) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE app_states SET activated = $2, updated_at = $3 WHERE user_id = $1`,
		userID, activated, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("set activation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("set activation: user %q has no state row", userID)
	}
	return nil
}

func (r *StateRepository) insertInitial(ctx context.Context, userID string, st domain.AppState) error {
	doc, err := json.Marshal(persistedState{
		Transactions: st.Transactions,
		Categories:   st.Categories,
		Budgets:      st.Budgets,
		Goals:        st.Goals,
		Bills:        st.Bills,
		Debts:        st.Debts,
		Wallets:      st.Wallets,
	})
	if err != nil {
		return fmt.Errorf("encode initial state: %w", err)
	}

	_, err = r.pool.Exec(ctx,
		`INSERT INTO app_states (user_id, activated, document, updated_at)
		 VALUES ($1, false, $2, $3)
		 ON CONFLICT (user_id) DO NOTHING`,
		userID, doc, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert initial state: %w", err)
	}
	return nil
}
