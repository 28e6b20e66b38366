// Package service holds the business logic. Every record operation takes
// the authenticated owner's id explicitly and passes it into the store, so
// no read or write can escape the caller's own data.
package service

import (
	"context"

	"fintrack/internal/config"
	"fintrack/internal/models"

	"github.com/sirupsen/logrus"
)

// UserStore persists user accounts.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByID(ctx context.Context, id int64) (*models.User, error)
}

// ExpenseStore persists owner-scoped expenses.
type ExpenseStore interface {
	CreateExpense(ctx context.Context, exp *models.Expense) error
	ListExpenses(ctx context.Context, userID int64, dr *models.DateRange) ([]models.Expense, error)
	DeleteExpense(ctx context.Context, userID, id int64) error
}

// BigExpenseStore persists owner-scoped big expenses.
type BigExpenseStore interface {
	CreateBigExpense(ctx context.Context, exp *models.BigExpense) error
	ListBigExpenses(ctx context.Context, userID int64, dr *models.DateRange) ([]models.BigExpense, error)
	UpdateBigExpense(ctx context.Context, userID, id int64, changes map[string]any) error
	DeleteBigExpense(ctx context.Context, userID, id int64) error
}

// LoanStore persists owner-scoped loans.
type LoanStore interface {
	CreateLoan(ctx context.Context, loan *models.Loan) error
	ListLoans(ctx context.Context, userID int64, status string) ([]models.Loan, error)
	UpdateLoanStatus(ctx context.Context, userID, id int64, status string) error
	DeleteLoan(ctx context.Context, userID, id int64) error
}

// Store is the full persistence surface the service depends on.
// *repository.Repository satisfies it; tests use in-memory fakes.
type Store interface {
	UserStore
	ExpenseStore
	BigExpenseStore
	LoanStore
}

// Service handles business logic
type Service struct {
	store Store
	log   *logrus.Logger
	cfg   *config.Config
}

// NewService initializes a new service
func NewService(store Store, log *logrus.Logger, cfg *config.Config) *Service {
	return &Service{store: store, log: log, cfg: cfg}
}
