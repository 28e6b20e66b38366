package repository

import (
	"context"
	"fmt"

	"fintrack/internal/apperr"
	"fintrack/internal/models"
)

// CreateExpense inserts a new expense for its owner.
func (r *Repository) CreateExpense(ctx context.Context, exp *models.Expense) error {
	query := `
		INSERT INTO expenses (user_id, title, amount, category, date, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query,
		exp.UserID, exp.Title, exp.Amount, exp.Category, exp.Date, exp.Description).
		Scan(&exp.ID, &exp.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

// ListExpenses returns the owner's expenses, optionally restricted to a
// half-open date range, most recent first.
func (r *Repository) ListExpenses(ctx context.Context, userID int64, dr *models.DateRange) ([]models.Expense, error) {
	query := `
		SELECT id, user_id, title, amount, category, date, description, created_at
		FROM expenses
		WHERE user_id = $1`
	args := []any{userID}
	if dr != nil {
		query += ` AND date >= $2 AND date < $3`
		args = append(args, dr.Start, dr.End)
	}
	query += ` ORDER BY date DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	expenses := []models.Expense{}
	for rows.Next() {
		var exp models.Expense
		if err := rows.Scan(&exp.ID, &exp.UserID, &exp.Title, &exp.Amount,
			&exp.Category, &exp.Date, &exp.Description, &exp.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, exp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read expenses: %w", err)
	}
	return expenses, nil
}

// DeleteExpense removes the owner's expense. A miss on either id or owner is
// reported as not found.
func (r *Repository) DeleteExpense(ctx context.Context, userID, id int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM expenses WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if affected == 0 {
		return apperr.NotFoundf("expense not found")
	}
	return nil
}
