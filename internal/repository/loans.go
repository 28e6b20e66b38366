package repository

import (
	"context"
	"fmt"
	"time"

	"fintrack/internal/apperr"
	"fintrack/internal/models"
)

// CreateLoan inserts a new loan for its owner.
func (r *Repository) CreateLoan(ctx context.Context, loan *models.Loan) error {
	query := `
		INSERT INTO loans (user_id, person_name, amount, date, reminder_date, description, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query,
		loan.UserID, loan.PersonName, loan.Amount, loan.Date, loan.ReminderDate,
		loan.Description, loan.Status).
		Scan(&loan.ID, &loan.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create loan: %w", err)
	}
	return nil
}

// ListLoans returns the owner's loans, optionally filtered by status, most
// recent first.
func (r *Repository) ListLoans(ctx context.Context, userID int64, status string) ([]models.Loan, error) {
	query := `
		SELECT id, user_id, person_name, amount, date, reminder_date, description, status, created_at
		FROM loans
		WHERE user_id = $1`
	args := []any{userID}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY date DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	defer rows.Close()

	loans := []models.Loan{}
	for rows.Next() {
		var loan models.Loan
		if err := rows.Scan(&loan.ID, &loan.UserID, &loan.PersonName, &loan.Amount, &loan.Date,
			&loan.ReminderDate, &loan.Description, &loan.Status, &loan.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan loan: %w", err)
		}
		loans = append(loans, loan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read loans: %w", err)
	}
	return loans, nil
}

// UpdateLoanStatus sets the status of the owner's loan.
func (r *Repository) UpdateLoanStatus(ctx context.Context, userID, id int64, status string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE loans SET status = $1 WHERE id = $2 AND user_id = $3`, status, id, userID)
	if err != nil {
		return fmt.Errorf("failed to update loan status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update loan status: %w", err)
	}
	if affected == 0 {
		return apperr.NotFoundf("loan not found")
	}
	return nil
}

// DeleteLoan removes the owner's loan.
func (r *Repository) DeleteLoan(ctx context.Context, userID, id int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM loans WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete loan: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete loan: %w", err)
	}
	if affected == 0 {
		return apperr.NotFoundf("loan not found")
	}
	return nil
}

// ReminderNotice pairs a due loan with its owner's contact details for the
// reminder mailer.
type ReminderNotice struct {
	Loan      models.Loan
	UserEmail string
	UserName  string
}

// LoansDueForReminder returns pending loans across all users whose reminder
// date has elapsed and that have not been mailed yet, most overdue first.
func (r *Repository) LoansDueForReminder(ctx context.Context, now time.Time) ([]ReminderNotice, error) {
	query := `
		SELECT l.id, l.user_id, l.person_name, l.amount, l.date, l.reminder_date,
		       l.description, l.status, l.created_at, u.email, u.name
		FROM loans l
		JOIN users u ON u.id = l.user_id
		WHERE l.status = $1 AND l.reminder_date IS NOT NULL
		  AND l.reminder_date <= $2 AND NOT l.reminder_sent
		ORDER BY l.reminder_date ASC`
	rows, err := r.db.QueryContext(ctx, query, models.LoanPending, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list due reminders: %w", err)
	}
	defer rows.Close()

	notices := []ReminderNotice{}
	for rows.Next() {
		var n ReminderNotice
		if err := rows.Scan(&n.Loan.ID, &n.Loan.UserID, &n.Loan.PersonName, &n.Loan.Amount,
			&n.Loan.Date, &n.Loan.ReminderDate, &n.Loan.Description, &n.Loan.Status,
			&n.Loan.CreatedAt, &n.UserEmail, &n.UserName); err != nil {
			return nil, fmt.Errorf("failed to scan due reminder: %w", err)
		}
		notices = append(notices, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read due reminders: %w", err)
	}
	return notices, nil
}

// MarkReminderSent records that the loan's reminder mail went out so it is
// not mailed again.
func (r *Repository) MarkReminderSent(ctx context.Context, loanID int64) error {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE loans SET reminder_sent = TRUE WHERE id = $1`, loanID); err != nil {
		return fmt.Errorf("failed to mark reminder sent: %w", err)
	}
	return nil
}
