package handler

import (
	"net/http"

	"fintrack/internal/models"
)

// CreateExpense handles POST /api/expenses.
func (h *Handler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	var req models.ExpenseRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	exp, err := h.svc.CreateExpense(r.Context(), owner, &req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"expense": exp})
}

// ListExpenses handles GET /api/expenses?month&year.
func (h *Handler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	year, err := intQuery(r, "year")
	if err != nil {
		h.writeError(w, err)
		return
	}
	month, err := intQuery(r, "month")
	if err != nil {
		h.writeError(w, err)
		return
	}
	expenses, err := h.svc.ListExpenses(r.Context(), owner, year, month)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"expenses": expenses})
}

// ExpenseStats handles GET /api/expenses/stats?month&year.
func (h *Handler) ExpenseStats(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	year, err := intQuery(r, "year")
	if err != nil {
		h.writeError(w, err)
		return
	}
	month, err := intQuery(r, "month")
	if err != nil {
		h.writeError(w, err)
		return
	}
	stats, err := h.svc.ExpenseStats(r.Context(), owner, year, month)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// DeleteExpense handles DELETE /api/expenses/{id}.
func (h *Handler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if err := h.svc.DeleteExpense(r.Context(), owner, id); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "expense deleted"})
}
