package service_test

import (
	"context"
	"sort"

	"fintrack/internal/apperr"
	"fintrack/internal/models"
)

// fakeStore is an in-memory Store honoring the repository contract: owner
// scoping on every record operation, half-open date ranges, descending date
// order, not-found on scoping misses and conflict on duplicate emails.
type fakeStore struct {
	nextID   int64
	users    []models.User
	expenses []models.Expense
	bigs     []models.BigExpense
	loans    []models.Loan
}

func newFakeStore() *fakeStore { return &fakeStore{} }

func (f *fakeStore) id() int64 {
	f.nextID++
	return f.nextID
}

func (f *fakeStore) CreateUser(_ context.Context, user *models.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return apperr.Conflictf("email already exists")
		}
	}
	user.ID = f.id()
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeStore) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, apperr.NotFoundf("user not found")
}

func (f *fakeStore) FindUserByID(_ context.Context, id int64) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, apperr.NotFoundf("user not found")
}

func (f *fakeStore) CreateExpense(_ context.Context, exp *models.Expense) error {
	exp.ID = f.id()
	f.expenses = append(f.expenses, *exp)
	return nil
}

func (f *fakeStore) ListExpenses(_ context.Context, userID int64, dr *models.DateRange) ([]models.Expense, error) {
	out := []models.Expense{}
	for _, e := range f.expenses {
		if e.UserID != userID {
			continue
		}
		if dr != nil && !dr.Contains(e.Date) {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (f *fakeStore) DeleteExpense(_ context.Context, userID, id int64) error {
	for i, e := range f.expenses {
		if e.ID == id && e.UserID == userID {
			f.expenses = append(f.expenses[:i], f.expenses[i+1:]...)
			return nil
		}
	}
	return apperr.NotFoundf("expense not found")
}

func (f *fakeStore) CreateBigExpense(_ context.Context, exp *models.BigExpense) error {
	exp.ID = f.id()
	f.bigs = append(f.bigs, *exp)
	return nil
}

func (f *fakeStore) ListBigExpenses(_ context.Context, userID int64, dr *models.DateRange) ([]models.BigExpense, error) {
	out := []models.BigExpense{}
	for _, e := range f.bigs {
		if e.UserID != userID {
			continue
		}
		if dr != nil && !dr.Contains(e.Date) {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (f *fakeStore) UpdateBigExpense(_ context.Context, userID, id int64, changes map[string]any) error {
	for i, e := range f.bigs {
		if e.ID != id || e.UserID != userID {
			continue
		}
		if v, ok := changes["title"]; ok {
			e.Title = v.(string)
		}
		if v, ok := changes["amount"]; ok {
			e.Amount = v.(float64)
		}
		if v, ok := changes["category"]; ok {
			e.Category = v.(string)
		}
		if v, ok := changes["status"]; ok {
			e.Status = v.(string)
		}
		f.bigs[i] = e
		return nil
	}
	return apperr.NotFoundf("big expense not found")
}

func (f *fakeStore) DeleteBigExpense(_ context.Context, userID, id int64) error {
	for i, e := range f.bigs {
		if e.ID == id && e.UserID == userID {
			f.bigs = append(f.bigs[:i], f.bigs[i+1:]...)
			return nil
		}
	}
	return apperr.NotFoundf("big expense not found")
}

func (f *fakeStore) CreateLoan(_ context.Context, loan *models.Loan) error {
	loan.ID = f.id()
	f.loans = append(f.loans, *loan)
	return nil
}

func (f *fakeStore) ListLoans(_ context.Context, userID int64, status string) ([]models.Loan, error) {
	out := []models.Loan{}
	for _, l := range f.loans {
		if l.UserID != userID {
			continue
		}
		if status != "" && l.Status != status {
			continue
		}
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (f *fakeStore) UpdateLoanStatus(_ context.Context, userID, id int64, status string) error {
	for i, l := range f.loans {
		if l.ID == id && l.UserID == userID {
			f.loans[i].Status = status
			return nil
		}
	}
	return apperr.NotFoundf("loan not found")
}

func (f *fakeStore) DeleteLoan(_ context.Context, userID, id int64) error {
	for i, l := range f.loans {
		if l.ID == id && l.UserID == userID {
			f.loans = append(f.loans[:i], f.loans[i+1:]...)
			return nil
		}
	}
	return apperr.NotFoundf("loan not found")
}
