package models

import (
	"encoding/json"
	"strings"
	"time"

	"fintrack/internal/apperr"
)

// Layouts accepted for caller-supplied dates, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate parses an ISO-8601 date or timestamp. Values without a zone are
// taken as UTC.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, apperr.Validationf("invalid date %q, expected ISO-8601", s)
}

// parseAmount converts a JSON number (or numeric string) into a positive
// float64.
func parseAmount(n json.Number) (float64, error) {
	if n == "" {
		return 0, apperr.Validationf("amount is required")
	}
	v, err := n.Float64()
	if err != nil {
		return 0, apperr.Validationf("amount must be a number")
	}
	if v <= 0 {
		return 0, apperr.Validationf("amount must be positive")
	}
	return v, nil
}

// SignupRequest is the payload for POST /api/auth/signup.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (r *SignupRequest) Validate() error {
	if r.Email == "" || r.Password == "" || r.Name == "" {
		return apperr.Validationf("email, password and name are required")
	}
	return nil
}

// LoginRequest is the payload for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	if r.Email == "" || r.Password == "" {
		return apperr.Validationf("email and password are required")
	}
	return nil
}

// ExpenseRequest is the payload for POST /api/expenses.
type ExpenseRequest struct {
	Title       string      `json:"title"`
	Amount      json.Number `json:"amount"`
	Category    string      `json:"category"`
	Date        string      `json:"date"`
	Description string      `json:"description"`
}

// Expense validates the payload and builds the domain record. The owner and
// creation time are stamped by the service.
func (r *ExpenseRequest) Expense() (*Expense, error) {
	if r.Title == "" {
		return nil, apperr.Validationf("title is required")
	}
	if r.Category == "" {
		return nil, apperr.Validationf("category is required")
	}
	amount, err := parseAmount(r.Amount)
	if err != nil {
		return nil, err
	}
	if r.Date == "" {
		return nil, apperr.Validationf("date is required")
	}
	date, err := ParseDate(r.Date)
	if err != nil {
		return nil, err
	}
	return &Expense{
		Title:       r.Title,
		Amount:      amount,
		Category:    r.Category,
		Date:        date,
		Description: r.Description,
	}, nil
}

// BigExpenseRequest is the payload for POST /api/big-expenses.
type BigExpenseRequest struct {
	ExpenseRequest
	Status string `json:"status"`
}

// BigExpense validates the payload and builds the domain record. An absent
// status defaults to planned.
func (r *BigExpenseRequest) BigExpense() (*BigExpense, error) {
	exp, err := r.Expense()
	if err != nil {
		return nil, err
	}
	status := r.Status
	if status == "" {
		status = BigExpensePlanned
	}
	if !ValidBigExpenseStatus(status) {
		return nil, apperr.Validationf("status must be %q or %q", BigExpensePlanned, BigExpensePaid)
	}
	return &BigExpense{
		Title:       exp.Title,
		Amount:      exp.Amount,
		Category:    exp.Category,
		Date:        exp.Date,
		Description: exp.Description,
		Status:      status,
	}, nil
}

// BigExpenseUpdate is the payload for PATCH /api/big-expenses/{id}. Only
// fields present in the request are applied; everything outside the
// allow-list is ignored.
type BigExpenseUpdate struct {
	Title    *string      `json:"title"`
	Amount   *json.Number `json:"amount"`
	Category *string      `json:"category"`
	Status   *string      `json:"status"`
}

// Changes validates the update and returns the column changes to apply.
func (u *BigExpenseUpdate) Changes() (map[string]any, error) {
	changes := map[string]any{}
	if u.Title != nil {
		if *u.Title == "" {
			return nil, apperr.Validationf("title must not be empty")
		}
		changes["title"] = *u.Title
	}
	if u.Amount != nil {
		amount, err := parseAmount(*u.Amount)
		if err != nil {
			return nil, err
		}
		changes["amount"] = amount
	}
	if u.Category != nil {
		if *u.Category == "" {
			return nil, apperr.Validationf("category must not be empty")
		}
		changes["category"] = *u.Category
	}
	if u.Status != nil {
		if !ValidBigExpenseStatus(*u.Status) {
			return nil, apperr.Validationf("status must be %q or %q", BigExpensePlanned, BigExpensePaid)
		}
		changes["status"] = *u.Status
	}
	if len(changes) == 0 {
		return nil, apperr.Validationf("no updatable fields provided")
	}
	return changes, nil
}

// LoanRequest is the payload for POST /api/loans.
type LoanRequest struct {
	PersonName   string      `json:"person_name"`
	Amount       json.Number `json:"amount"`
	Date         string      `json:"date"`
	ReminderDate string      `json:"reminder_date"`
	Description  string      `json:"description"`
}

// Loan validates the payload and builds the domain record. Status is always
// stamped pending on creation.
func (r *LoanRequest) Loan() (*Loan, error) {
	if strings.TrimSpace(r.PersonName) == "" {
		return nil, apperr.Validationf("person_name is required")
	}
	amount, err := parseAmount(r.Amount)
	if err != nil {
		return nil, err
	}
	if r.Date == "" {
		return nil, apperr.Validationf("date is required")
	}
	date, err := ParseDate(r.Date)
	if err != nil {
		return nil, err
	}
	loan := &Loan{
		PersonName:  r.PersonName,
		Amount:      amount,
		Date:        date,
		Description: r.Description,
		Status:      LoanPending,
	}
	if r.ReminderDate != "" {
		reminder, err := ParseDate(r.ReminderDate)
		if err != nil {
			return nil, err
		}
		loan.ReminderDate = &reminder
	}
	return loan, nil
}

// LoanStatusUpdate is the payload for PATCH /api/loans/{id}/status.
type LoanStatusUpdate struct {
	Status string `json:"status"`
}

func (u *LoanStatusUpdate) Validate() error {
	if strings.TrimSpace(u.Status) == "" {
		return apperr.Validationf("status is required")
	}
	return nil
}
