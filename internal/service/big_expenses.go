package service

import (
	"context"

	"fintrack/internal/models"
)

// CreateBigExpense validates and stores a new big expense for the owner.
func (s *Service) CreateBigExpense(ctx context.Context, ownerID int64, req *models.BigExpenseRequest) (*models.BigExpense, error) {
	exp, err := req.BigExpense()
	if err != nil {
		return nil, err
	}
	exp.UserID = ownerID
	if err := s.store.CreateBigExpense(ctx, exp); err != nil {
		return nil, err
	}
	s.log.Infof("Big expense created for user %d: %s", ownerID, exp.Title)
	return exp, nil
}

// ListBigExpenses returns the owner's big expenses for an optional
// month/year window, most recent first.
func (s *Service) ListBigExpenses(ctx context.Context, ownerID int64, year, month int) ([]models.BigExpense, error) {
	dr, err := RangeFromQuery(year, month)
	if err != nil {
		return nil, err
	}
	return s.store.ListBigExpenses(ctx, ownerID, dr)
}

// UpdateBigExpense applies a partial update to the owner's big expense.
// Only the allow-listed fields present in the request are touched.
func (s *Service) UpdateBigExpense(ctx context.Context, ownerID, id int64, req *models.BigExpenseUpdate) error {
	changes, err := req.Changes()
	if err != nil {
		return err
	}
	return s.store.UpdateBigExpense(ctx, ownerID, id, changes)
}

// DeleteBigExpense removes the owner's big expense.
func (s *Service) DeleteBigExpense(ctx context.Context, ownerID, id int64) error {
	return s.store.DeleteBigExpense(ctx, ownerID, id)
}
