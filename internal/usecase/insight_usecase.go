package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/bayufn/artha/internal/domain"
	"github.com/bayufn/artha/internal/state"
)

// ErrInsightSuperseded is returned when a newer insight request started
// while this one was waiting on the provider. The stale result is dropped.
var ErrInsightSuperseded = errors.New("insight request superseded")

// InsightResult carries the insights plus where they came from.
type InsightResult struct {
	Insights []domain.Insight `json:"insights"`
	Source   string           `json:"source"` // "cache", "provider" or "fallback"
}

// InsightUseCase fetches insights for a period, caching provider results
// and serving locally derived fallbacks when the provider fails.
type InsightUseCase struct {
	store    *state.Store
	provider InsightProvider
	cache    Cache
	ttl      time.Duration
	logger   zerolog.Logger
	now      func() time.Time

	// seq implements last-request-wins across concurrent period switches.
	seq atomic.Uint64
}

// NewInsightUseCase creates a new InsightUseCase. provider and cache may be
// nil; either absence degrades to fallback insights.
func NewInsightUseCase(store *state.Store, provider InsightProvider, cache Cache, ttl time.Duration, logger zerolog.Logger) *InsightUseCase {
	return &InsightUseCase{
		store:    store,
		provider: provider,
		cache:    cache,
		ttl:      ttl,
		logger:   logger,
		now:      time.Now,
	}
}

// Get returns insights for a period label. Cached results are served first;
// otherwise the provider is called and its result cached for the TTL. A
// provider failure degrades to the fallback set, and a response that
// resolves after a newer request started is discarded.
func (uc *InsightUseCase) Get(ctx context.Context, label string) (InsightResult, error) {
	reqID := uc.seq.Add(1)

	if cached, ok := uc.cachedInsights(ctx, label); ok {
		return InsightResult{Insights: cached, Source: "cache"}, nil
	}

	snapshot, version := uc.store.SnapshotVersion()

	if uc.provider == nil {
		return InsightResult{
			Insights: domain.FallbackInsights(snapshot, label, uc.now()),
			Source:   "fallback",
		}, nil
	}

	payload := domain.BuildInsightPayload(snapshot, label, uc.now())
	insights, err := uc.provider.Generate(ctx, payload)

	if uc.seq.Load() != reqID {
		return InsightResult{}, ErrInsightSuperseded
	}

	if err != nil {
		uc.logger.Warn().Err(err).Str("period", label).Msg("insight provider failed, serving fallback")
		return InsightResult{
			Insights: domain.FallbackInsights(snapshot, label, uc.now()),
			Source:   "fallback",
		}, nil
	}

	// Cache only when no mutation raced the fetch; a mutation already
	// invalidated this key and the result describes the older state.
	if uc.store.Version() == version {
		uc.storeInsights(ctx, label, insights)
	}

	return InsightResult{Insights: insights, Source: "provider"}, nil
}

func (uc *InsightUseCase) cachedInsights(ctx context.Context, label string) ([]domain.Insight, bool) {
	if uc.cache == nil {
		return nil, false
	}

	raw, err := uc.cache.Get(ctx, insightCacheKey(label))
	if err != nil || raw == "" {
		return nil, false
	}

	var insights []domain.Insight
	if err := json.Unmarshal([]byte(raw), &insights); err != nil {
		uc.logger.Warn().Err(err).Str("period", label).Msg("dropping corrupt insight cache entry")
		return nil, false
	}
	return insights, true
}

func (uc *InsightUseCase) storeInsights(ctx context.Context, label string, insights []domain.Insight) {
	if uc.cache == nil {
		return
	}

	raw, err := json.Marshal(insights)
	if err != nil {
		return
	}
	if err := uc.cache.Set(ctx, insightCacheKey(label), string(raw), uc.ttl); err != nil {
		uc.logger.Warn().Err(err).Str("period", label).Msg("failed to cache insights")
	}
}

func insightCacheKey(label string) string {
	return "insights:" + label
}
