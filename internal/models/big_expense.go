package models

import "time"

// Big expense statuses.
const (
	BigExpensePlanned = "planned"
	BigExpensePaid    = "paid"
)

// BigExpense represents a planned large purchase. It carries the same shape
// as Expense plus a planned/paid status.
type BigExpense struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Title       string    `json:"title"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// ValidBigExpenseStatus reports whether s is a recognized status.
func ValidBigExpenseStatus(s string) bool {
	return s == BigExpensePlanned || s == BigExpensePaid
}
