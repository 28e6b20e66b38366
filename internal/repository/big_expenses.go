package repository

import (
	"context"
	"fmt"

	"fintrack/internal/apperr"
	"fintrack/internal/models"
)

// CreateBigExpense inserts a new big expense for its owner.
func (r *Repository) CreateBigExpense(ctx context.Context, exp *models.BigExpense) error {
	query := `
		INSERT INTO big_expenses (user_id, title, amount, category, date, description, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query,
		exp.UserID, exp.Title, exp.Amount, exp.Category, exp.Date, exp.Description, exp.Status).
		Scan(&exp.ID, &exp.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create big expense: %w", err)
	}
	return nil
}

// ListBigExpenses returns the owner's big expenses, optionally restricted to
// a half-open date range, most recent first.
func (r *Repository) ListBigExpenses(ctx context.Context, userID int64, dr *models.DateRange) ([]models.BigExpense, error) {
	query := `
		SELECT id, user_id, title, amount, category, date, description, status, created_at
		FROM big_expenses
		WHERE user_id = $1`
	args := []any{userID}
	if dr != nil {
		query += ` AND date >= $2 AND date < $3`
		args = append(args, dr.Start, dr.End)
	}
	query += ` ORDER BY date DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list big expenses: %w", err)
	}
	defer rows.Close()

	expenses := []models.BigExpense{}
	for rows.Next() {
		var exp models.BigExpense
		if err := rows.Scan(&exp.ID, &exp.UserID, &exp.Title, &exp.Amount, &exp.Category,
			&exp.Date, &exp.Description, &exp.Status, &exp.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan big expense: %w", err)
		}
		expenses = append(expenses, exp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read big expenses: %w", err)
	}
	return expenses, nil
}

// UpdateBigExpense applies validated column changes to the owner's big
// expense.
func (r *Repository) UpdateBigExpense(ctx context.Context, userID, id int64, changes map[string]any) error {
	set, args := buildSet(changes)
	args = append(args, id, userID)
	query := fmt.Sprintf(`UPDATE big_expenses SET %s WHERE id = $%d AND user_id = $%d`,
		set, len(args)-1, len(args))

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update big expense: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update big expense: %w", err)
	}
	if affected == 0 {
		return apperr.NotFoundf("big expense not found")
	}
	return nil
}

// DeleteBigExpense removes the owner's big expense.
func (r *Repository) DeleteBigExpense(ctx context.Context, userID, id int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM big_expenses WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete big expense: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete big expense: %w", err)
	}
	if affected == 0 {
		return apperr.NotFoundf("big expense not found")
	}
	return nil
}
