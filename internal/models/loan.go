package models

import "time"

// LoanPending is the status stamped on every new loan. Further transitions
// are caller-driven and not restricted to a fixed set.
const LoanPending = "pending"

// Loan represents money lent to a person, with an optional reminder.
type Loan struct {
	ID           int64      `json:"id"`
	UserID       int64      `json:"user_id"`
	PersonName   string     `json:"person_name"`
	Amount       float64    `json:"amount"`
	Date         time.Time  `json:"date"`
	ReminderDate *time.Time `json:"reminder_date,omitempty"`
	Description  string     `json:"description"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
}

// ReminderDue reports whether the loan's reminder has elapsed at the given
// instant. Loans without a reminder date are never due.
func (l *Loan) ReminderDue(now time.Time) bool {
	return l.Status == LoanPending && l.ReminderDate != nil && !l.ReminderDate.After(now)
}
