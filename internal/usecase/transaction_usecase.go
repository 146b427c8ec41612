package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bayufn/artha/internal/domain"
	"github.com/bayufn/artha/internal/state"
)

// TransactionUseCase applies transaction mutations to the state store and
// invalidates cached insights after every successful mutation.
type TransactionUseCase struct {
	store  *state.Store
	idGen  IDGenerator
	cache  Cache
	logger zerolog.Logger
}

// NewTransactionUseCase creates a new TransactionUseCase. cache may be nil
// when no insight cache is configured.
func NewTransactionUseCase(store *state.Store, idGen IDGenerator, cache Cache, logger zerolog.Logger) *TransactionUseCase {
	return &TransactionUseCase{
		store:  store,
		idGen:  idGen,
		cache:  cache,
		logger: logger,
	}
}

// Create validates the intent and applies it as a new transaction.
func (uc *TransactionUseCase) Create(ctx context.Context, intent domain.TransactionIntent) (domain.Transaction, error) {
	id := uc.idGen.Generate()

	next, err := uc.store.Apply(domain.CreateTransaction(id, intent))
	if err != nil {
		return domain.Transaction{}, err
	}

	uc.invalidateInsights(ctx)

	t, _ := next.TransactionByID(id)
	return t, nil
}

// Update replaces the transaction with the given id, reversing the original
// effect before applying the new one.
func (uc *TransactionUseCase) Update(ctx context.Context, id string, intent domain.TransactionIntent) (domain.Transaction, error) {
	next, err := uc.store.Apply(domain.UpdateTransaction(id, intent))
	if err != nil {
		return domain.Transaction{}, err
	}

	uc.invalidateInsights(ctx)

	t, _ := next.TransactionByID(id)
	return t, nil
}

// Delete reverses and removes the transaction with the given id.
func (uc *TransactionUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.store.Apply(domain.DeleteTransaction(id)); err != nil {
		return err
	}

	uc.invalidateInsights(ctx)
	return nil
}

// List returns the current transaction collection, newest date first.
func (uc *TransactionUseCase) List(ctx context.Context) []domain.Transaction {
	return uc.store.Snapshot().Transactions
}

// Get returns one transaction by id.
func (uc *TransactionUseCase) Get(ctx context.Context, id string) (domain.Transaction, error) {
	t, ok := uc.store.Snapshot().TransactionByID(id)
	if !ok {
		return domain.Transaction{}, domain.ErrTransactionNotFound
	}
	return t, nil
}

// invalidateInsights drops every cached insight period. Failures are logged
// and swallowed: the cache entries expire on their own TTL anyway.
func (uc *TransactionUseCase) invalidateInsights(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	for _, label := range domain.PeriodLabels() {
		if err := uc.cache.Delete(ctx, insightCacheKey(label)); err != nil {
			uc.logger.Warn().Err(err).Str("period", label).Msg("failed to invalidate insight cache")
		}
	}
}
