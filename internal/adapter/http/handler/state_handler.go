package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bayufn/artha/internal/adapter/http/dto"
	"github.com/bayufn/artha/internal/state"
	"github.com/bayufn/artha/internal/usecase"
)

// StateHandler serves the full state snapshot and the activation endpoint.
type StateHandler struct {
	store        *state.Store
	activationUC *usecase.ActivationUseCase
}

// NewStateHandler creates a new StateHandler.
func NewStateHandler(store *state.Store, activationUC *usecase.ActivationUseCase) *StateHandler {
	return &StateHandler{store: store, activationUC: activationUC}
}

// Get returns the full application state in one payload.
func (h *StateHandler) Get(w http.ResponseWriter, r *http.Request) {
	snapshot := h.store.Snapshot()
	writeJSON(w, http.StatusOK, dto.StateFromDomain(snapshot, h.activationUC.Activated()))
}

// Activate unlocks the account with an activation code.
func (h *StateHandler) Activate(w http.ResponseWriter, r *http.Request) {
	var req dto.ActivateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.activationUC.Activate(r.Context(), req.Code); err != nil {
		writeError(w, mapDomainError(err), "failed to activate account", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"activated": true})
}
