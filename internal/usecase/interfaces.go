//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks
package usecase

import (
	"context"
	"time"

	"github.com/bayufn/artha/internal/domain"
)

// StateRepository is the persistence bridge: it loads and saves the whole
// state document for a user. Save receives the full snapshot; the adapter
// is responsible for stripping volatile fields from the persisted payload.
type StateRepository interface {
	// Load returns the stored state and the account activation flag.
	Load(ctx context.Context, userID string) (domain.AppState, bool, error)
	Save(ctx context.Context, userID string, state domain.AppState) error
}

// ActivationRepository persists the account activation flag.
type ActivationRepository interface {
	SetActivated(ctx context.Context, userID string, activated bool) error
}

// InsightProvider turns a data summary into natural-language insights. It is
// an opaque external service; failures are expected and handled by falling
// back to locally derived insights.
type InsightProvider interface {
	Generate(ctx context.Context, payload domain.InsightPayload) ([]domain.Insight, error)
}

// Cache is a key-value cache with per-entry TTL, used for insight results.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}
