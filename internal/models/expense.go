package models

import "time"

// Expense represents a single logged expense.
type Expense struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Title       string    `json:"title"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// ExpenseStats aggregates a filtered expense set.
type ExpenseStats struct {
	Total      float64            `json:"total"`
	ByCategory map[string]float64 `json:"by_category"`
	Count      int                `json:"count"`
}
