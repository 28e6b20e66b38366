package handler

import (
	"net/http"
	"time"

	"fintrack/internal/models"
)

// CreateLoan handles POST /api/loans.
func (h *Handler) CreateLoan(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	var req models.LoanRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	loan, err := h.svc.CreateLoan(r.Context(), owner, &req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"loan": loan})
}

// ListLoans handles GET /api/loans?status.
func (h *Handler) ListLoans(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	loans, err := h.svc.ListLoans(r.Context(), owner, r.URL.Query().Get("status"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"loans": loans})
}

// UpdateLoanStatus handles PATCH /api/loans/{id}/status.
func (h *Handler) UpdateLoanStatus(w http.ResponseWriter, r *http.Request) {
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
	var req models.LoanStatusUpdate
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	if err := h.svc.UpdateLoanStatus(r.Context(), owner, id, &req); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "loan status updated"})
}

// DeleteLoan handles DELETE /api/loans/{id}.
func (h *Handler) DeleteLoan(w http.ResponseWriter, r *http.Request) {
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
	if err := h.svc.DeleteLoan(r.Context(), owner, id); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "loan deleted"})
}

// LoanReminders handles GET /api/loans/reminders.
func (h *Handler) LoanReminders(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	reminders, err := h.svc.DueReminders(r.Context(), owner, time.Now().UTC())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"reminders": reminders})
}
