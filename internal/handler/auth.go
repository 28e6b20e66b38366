package handler

import (
	"net/http"

	"fintrack/internal/apperr"
	"fintrack/internal/middleware"
	"fintrack/internal/models"
)

// ownerID returns the authenticated caller's id from the request context.
func ownerID(r *http.Request) (int64, error) {
	id, ok := middleware.UserID(r.Context())
	if !ok {
		return 0, apperr.Authf("missing user identity")
	}
	return id, nil
}

// Signup handles POST /api/auth/signup.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	result, err := h.svc.Signup(r.Context(), &req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

// Login handles POST /api/auth/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	result, err := h.svc.Login(r.Context(), &req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Verify handles GET /api/auth/verify. The token was already validated by
// the auth middleware; this resolves the account behind it.
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	id, err := ownerID(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	user, err := h.svc.VerifyUser(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}
