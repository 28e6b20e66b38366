package handler

import (
	"net/http"

	"fintrack/internal/models"
)

// CreateBigExpense handles POST /api/big-expenses.
func (h *Handler) CreateBigExpense(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	var req models.BigExpenseRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	exp, err := h.svc.CreateBigExpense(r.Context(), owner, &req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"expense": exp})
}

// ListBigExpenses handles GET /api/big-expenses?month&year.
func (h *Handler) ListBigExpenses(w http.ResponseWriter, r *http.Request) {
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
	expenses, err := h.svc.ListBigExpenses(r.Context(), owner, year, month)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"expenses": expenses})
}

// UpdateBigExpense handles PATCH /api/big-expenses/{id}.
func (h *Handler) UpdateBigExpense(w http.ResponseWriter, r *http.Request) {
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
	var req models.BigExpenseUpdate
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	if err := h.svc.UpdateBigExpense(r.Context(), owner, id, &req); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "expense updated"})
}

// DeleteBigExpense handles DELETE /api/big-expenses/{id}.
func (h *Handler) DeleteBigExpense(w http.ResponseWriter, r *http.Request) {
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
	if err := h.svc.DeleteBigExpense(r.Context(), owner, id); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "expense deleted"})
}
