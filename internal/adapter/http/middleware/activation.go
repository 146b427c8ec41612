package middleware

import (
	"net/http"
)

// ActivationGate reports whether the account is unlocked.
type ActivationGate interface {
	Activated() bool
}

// ActivationMiddleware blocks mutating requests while the account is not
// activated. Reads stay open so the client can render the locked state.
type ActivationMiddleware struct {
	gate ActivationGate
}

// NewActivationMiddleware creates a new ActivationMiddleware.
func NewActivationMiddleware(gate ActivationGate) *ActivationMiddleware {
	return &ActivationMiddleware{gate: gate}
}

// Wrap wraps an http.Handler with the activation check.
func (m *ActivationMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && !m.gate.Activated() {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"error":"account is not activated"}`))
			return
		}

		next.ServeHTTP(w, r)
	})
}
