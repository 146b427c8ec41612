package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bayufn/artha/internal/adapter/http/dto"
	"github.com/bayufn/artha/internal/usecase"
)

// CatalogHandler handles wallet, goal, bill, debt, category and budget
// HTTP requests.
type CatalogHandler struct {
	catalogUC *usecase.CatalogUseCase
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogUC *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{catalogUC: catalogUC}
}

// SaveWallet creates or updates a wallet.
func (h *CatalogHandler) SaveWallet(w http.ResponseWriter, r *http.Request) {
	var req dto.WalletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	wallet, err := h.catalogUC.SaveWallet(r.Context(), req.ToDomain())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to save wallet", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, wallet)
}

// DeleteWallet removes a wallet.
func (h *CatalogHandler) DeleteWallet(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogUC.DeleteWallet(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, mapDomainError(err), "failed to delete wallet", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SaveGoal creates or updates a savings goal.
func (h *CatalogHandler) SaveGoal(w http.ResponseWriter, r *http.Request) {
	var req dto.GoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	goal, err := h.catalogUC.SaveGoal(r.Context(), req.ToDomain())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to save goal", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, goal)
}

// DeleteGoal removes a goal.
func (h *CatalogHandler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogUC.DeleteGoal(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, mapDomainError(err), "failed to delete goal", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SaveBill creates or updates a bill.
func (h *CatalogHandler) SaveBill(w http.ResponseWriter, r *http.Request) {
	var req dto.BillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	bill, err := h.catalogUC.SaveBill(r.Context(), req.ToDomain())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to save bill", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, bill)
}

// DeleteBill removes a bill.
func (h *CatalogHandler) DeleteBill(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogUC.DeleteBill(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, mapDomainError(err), "failed to delete bill", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SaveDebt creates or updates a debt.
func (h *CatalogHandler) SaveDebt(w http.ResponseWriter, r *http.Request) {
	var req dto.DebtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	debt, err := h.catalogUC.SaveDebt(r.Context(), req.ToDomain())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to save debt", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, debt)
}

// DeleteDebt removes a debt.
func (h *CatalogHandler) DeleteDebt(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogUC.DeleteDebt(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, mapDomainError(err), "failed to delete debt", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SaveCategory creates or updates a category.
func (h *CatalogHandler) SaveCategory(w http.ResponseWriter, r *http.Request) {
	var req dto.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	category, err := h.catalogUC.SaveCategory(r.Context(), req.ToDomain())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to save category", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, category)
}

// DeleteCategory removes a category unless a budget references it.
func (h *CatalogHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogUC.DeleteCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, mapDomainError(err), "failed to delete category", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetBudget creates or replaces a category budget.
func (h *CatalogHandler) SetBudget(w http.ResponseWriter, r *http.Request) {
	var req dto.BudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	budget := req.ToDomain()
	if err := h.catalogUC.SetBudget(r.Context(), budget); err != nil {
		writeError(w, mapDomainError(err), "failed to set budget", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, budget)
}

// DeleteBudget removes a category budget.
func (h *CatalogHandler) DeleteBudget(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogUC.DeleteBudget(r.Context(), chi.URLParam(r, "categoryId")); err != nil {
		writeError(w, mapDomainError(err), "failed to delete budget", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RefreshNotifications regenerates upcoming bill reminders and returns the
// current notification list.
func (h *CatalogHandler) RefreshNotifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.catalogUC.RefreshBillReminders(r.Context(), time.Now())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to refresh notifications", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.NotificationsResponse{Notifications: notifications})
}

// DismissNotification removes one notification.
func (h *CatalogHandler) DismissNotification(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogUC.DismissNotification(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, mapDomainError(err), "failed to dismiss notification", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
