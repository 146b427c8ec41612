// Package syncer pushes state snapshots to the persistence bridge. It is
// deliberately decoupled from the mutation path: saves are asynchronous,
// debounced and best-effort, and a failed save never rolls back the
// in-memory state.
package syncer

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/bayufn/artha/internal/infrastructure/metrics"
	"github.com/bayufn/artha/internal/state"
	"github.com/bayufn/artha/internal/usecase"
)

const defaultDebounce = 2 * time.Second

// Syncer watches the store's change signal and saves the newest snapshot
// after a quiet period (trailing-edge debounce). Rapid mutation bursts
// therefore collapse into a single save of the final state.
type Syncer struct {
	store    *state.Store
	repo     usecase.StateRepository
	userID   string
	debounce time.Duration
	metrics  *metrics.Metrics
	logger   zerolog.Logger
}

// New creates a Syncer. A non-positive debounce falls back to the default.
func New(store *state.Store, repo usecase.StateRepository, userID string, debounce time.Duration, m *metrics.Metrics, logger zerolog.Logger) *Syncer {
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	return &Syncer{
		store:    store,
		repo:     repo,
		userID:   userID,
		debounce: debounce,
		metrics:  m,
		logger:   logger,
	}
}

// Run processes change signals until the context is cancelled. On shutdown
// it flushes one final save so the latest state is not lost.
func (s *Syncer) Run(ctx context.Context) error {
	s.logger.Info().Dur("debounce", s.debounce).Msg("state syncer started")

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("state syncer shutting down")
			s.flush()
			return ctx.Err()
		case <-s.store.Changes():
			if !s.settle(ctx) {
				s.flush()
				return ctx.Err()
			}
			s.save(ctx)
		}
	}
}

// settle waits for the debounce window to pass without further changes.
// It reports false when the context was cancelled while waiting.
func (s *Syncer) settle(ctx context.Context) bool {
	timer := time.NewTimer(s.debounce)
	defer timer.Stop()

	for {
		select {
		case <-s.store.Changes():
			if !timer.Stop() {
				<-timer.C
			}
			timer.Reset(s.debounce)
		case <-timer.C:
			return true
		case <-ctx.Done():
			return false
		}
	}
}

// flush saves once with a fresh timeout, used during shutdown when the run
// context is already cancelled.
func (s *Syncer) flush() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.save(ctx)
}

func (s *Syncer) save(ctx context.Context) {
	snapshot, version := s.store.SnapshotVersion()

	start := time.Now()
	err := s.repo.Save(ctx, s.userID, snapshot)
	s.observe(time.Since(start), version, err)

	if err != nil {
		// Optimistic local-first: the in-memory state stays authoritative.
		s.logger.Error().Err(err).Uint64("version", version).Msg("state save failed")
		return
	}
	s.logger.Debug().Uint64("version", version).Msg("state saved")
}

func (s *Syncer) observe(d time.Duration, version uint64, err error) {
	if s.metrics == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	s.metrics.StateSaves.With(prometheus.Labels{"status": status}).Inc()
	s.metrics.StateSaveDuration.Observe(d.Seconds())
	if err == nil {
		s.metrics.StateVersion.Set(float64(version))
	}
}
