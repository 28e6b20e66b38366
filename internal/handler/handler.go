package handler

import (
	"net/http"

	"fintrack/internal/integrations/cbr"
	"fintrack/internal/service"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// Handler translates HTTP requests into service calls and service errors
// into status codes.
type Handler struct {
	svc   *service.Service
	rates *cbr.Client
	log   *logrus.Logger
}

// NewHandler initializes a new handler. The rates client may be nil, in
// which case the key-rate endpoint reports unavailability.
func NewHandler(svc *service.Service, rates *cbr.Client, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, rates: rates, log: log}
}

// Register wires all routes under /api. Protected subroutes go through the
// given auth middleware.
func (h *Handler) Register(r *mux.Router, auth mux.MiddlewareFunc) {
	api := r.PathPrefix("/api").Subrouter()

	// Public routes
	api.HandleFunc("/status", h.Status).Methods("GET")
	api.HandleFunc("/auth/signup", h.Signup).Methods("POST")
	api.HandleFunc("/auth/login", h.Login).Methods("POST")
	api.HandleFunc("/key-rate", h.KeyRate).Methods("GET")

	// Protected routes
	protected := api.PathPrefix("/").Subrouter()
	protected.Use(auth)
	protected.HandleFunc("/auth/verify", h.Verify).Methods("GET")

	protected.HandleFunc("/expenses", h.CreateExpense).Methods("POST")
	protected.HandleFunc("/expenses", h.ListExpenses).Methods("GET")
	protected.HandleFunc("/expenses/stats", h.ExpenseStats).Methods("GET")
	protected.HandleFunc("/expenses/{id:[0-9]+}", h.DeleteExpense).Methods("DELETE")

	protected.HandleFunc("/big-expenses", h.CreateBigExpense).Methods("POST")
	protected.HandleFunc("/big-expenses", h.ListBigExpenses).Methods("GET")
	protected.HandleFunc("/big-expenses/{id:[0-9]+}", h.UpdateBigExpense).Methods("PATCH")
	protected.HandleFunc("/big-expenses/{id:[0-9]+}", h.DeleteBigExpense).Methods("DELETE")

	protected.HandleFunc("/loans", h.CreateLoan).Methods("POST")
	protected.HandleFunc("/loans", h.ListLoans).Methods("GET")
	protected.HandleFunc("/loans/reminders", h.LoanReminders).Methods("GET")
	protected.HandleFunc("/loans/{id:[0-9]+}/status", h.UpdateLoanStatus).Methods("PATCH")
	protected.HandleFunc("/loans/{id:[0-9]+}", h.DeleteLoan).Methods("DELETE")
}

// Status is a liveness probe.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "API is running"})
}

// KeyRate returns the current central bank key rate.
func (h *Handler) KeyRate(w http.ResponseWriter, r *http.Request) {
	if h.rates == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "key rate lookup not configured"})
		return
	}
	rate, err := h.rates.KeyRate(r.Context())
	if err != nil {
		h.log.Errorf("Key rate lookup failed: %v", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "key rate unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]float64{"key_rate": rate})
}
