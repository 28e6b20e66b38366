package service

import (
	"context"
	"sort"
	"time"

	"fintrack/internal/models"
)

// CreateLoan validates and stores a new loan for the owner. New loans are
// always pending.
func (s *Service) CreateLoan(ctx context.Context, ownerID int64, req *models.LoanRequest) (*models.Loan, error) {
	loan, err := req.Loan()
	if err != nil {
		return nil, err
	}
	loan.UserID = ownerID
	if err := s.store.CreateLoan(ctx, loan); err != nil {
		return nil, err
	}
	s.log.Infof("Loan created for user %d: %s", ownerID, loan.PersonName)
	return loan, nil
}

// ListLoans returns the owner's loans, optionally filtered by status, most
// recent first.
func (s *Service) ListLoans(ctx context.Context, ownerID int64, status string) ([]models.Loan, error) {
	return s.store.ListLoans(ctx, ownerID, status)
}

// UpdateLoanStatus sets the status of the owner's loan. The status value is
// caller-defined; only emptiness is rejected.
func (s *Service) UpdateLoanStatus(ctx context.Context, ownerID, id int64, req *models.LoanStatusUpdate) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.store.UpdateLoanStatus(ctx, ownerID, id, req.Status)
}

// DeleteLoan removes the owner's loan.
func (s *Service) DeleteLoan(ctx context.Context, ownerID, id int64) error {
	return s.store.DeleteLoan(ctx, ownerID, id)
}

// DueReminders returns the owner's pending loans whose reminder date has
// elapsed, most overdue first. Loans without a reminder date never appear.
func (s *Service) DueReminders(ctx context.Context, ownerID int64, nowAt time.Time) ([]models.Loan, error) {
	loans, err := s.store.ListLoans(ctx, ownerID, models.LoanPending)
	if err != nil {
		return nil, err
	}

	due := []models.Loan{}
	for _, loan := range loans {
		if loan.ReminderDue(nowAt) {
			due = append(due, loan)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		return due[i].ReminderDate.Before(*due[j].ReminderDate)
	})
	return due, nil
}
