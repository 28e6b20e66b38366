package service

import (
	"context"

	"fintrack/internal/apperr"
	"fintrack/internal/models"
)

// RangeFromQuery turns month/year query parameters into a half-open date
// range. A zero year means no filter; a month without a year is ignored,
// matching the list endpoints' contract.
func RangeFromQuery(year, month int) (*models.DateRange, error) {
	if month != 0 && (month < 1 || month > 12) {
		return nil, apperr.Validationf("month must be between 1 and 12")
	}
	if year == 0 {
		return nil, nil
	}
	if month != 0 {
		r := models.MonthRange(year, month)
		return &r, nil
	}
	r := models.YearRange(year)
	return &r, nil
}

// CreateExpense validates and stores a new expense for the owner.
func (s *Service) CreateExpense(ctx context.Context, ownerID int64, req *models.ExpenseRequest) (*models.Expense, error) {
	exp, err := req.Expense()
	if err != nil {
		return nil, err
	}
	exp.UserID = ownerID
	if err := s.store.CreateExpense(ctx, exp); err != nil {
		return nil, err
	}
	s.log.Infof("Expense created for user %d: %s", ownerID, exp.Title)
	return exp, nil
}

// ListExpenses returns the owner's expenses for an optional month/year
// window, most recent first.
func (s *Service) ListExpenses(ctx context.Context, ownerID int64, year, month int) ([]models.Expense, error) {
	dr, err := RangeFromQuery(year, month)
	if err != nil {
		return nil, err
	}
	return s.store.ListExpenses(ctx, ownerID, dr)
}

// DeleteExpense removes the owner's expense.
func (s *Service) DeleteExpense(ctx context.Context, ownerID, id int64) error {
	return s.store.DeleteExpense(ctx, ownerID, id)
}

// ExpenseStats aggregates the owner's expenses over the same month/year
// window the list endpoint uses: the grand total, a per-category breakdown
// and the match count. An empty match yields zeroes, not an error.
func (s *Service) ExpenseStats(ctx context.Context, ownerID int64, year, month int) (*models.ExpenseStats, error) {
	dr, err := RangeFromQuery(year, month)
	if err != nil {
		return nil, err
	}
	expenses, err := s.store.ListExpenses(ctx, ownerID, dr)
	if err != nil {
		return nil, err
	}

	stats := &models.ExpenseStats{ByCategory: map[string]float64{}}
	for _, exp := range expenses {
		stats.Total += exp.Amount
		stats.ByCategory[exp.Category] += exp.Amount
		stats.Count++
	}
	return stats, nil
}
