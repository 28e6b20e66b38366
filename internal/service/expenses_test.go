package service_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"fintrack/internal/apperr"
	"fintrack/internal/models"
	"fintrack/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expenseReq(title, amount, date string) *models.ExpenseRequest {
	return &models.ExpenseRequest{
		Title:    title,
		Amount:   json.Number(amount),
		Category: "food",
		Date:     date,
	}
}

func TestCreateExpenseValidation(t *testing.T) {
	svc := newTestService(newFakeStore())
	ctx := context.Background()

	cases := map[string]*models.ExpenseRequest{
		"missing title":    expenseReq("", "10", "2024-03-15T00:00:00Z"),
		"missing amount":   {Title: "x", Category: "food", Date: "2024-03-15T00:00:00Z"},
		"zero amount":      expenseReq("x", "0", "2024-03-15T00:00:00Z"),
		"negative amount":  expenseReq("x", "-5", "2024-03-15T00:00:00Z"),
		"missing date":     expenseReq("x", "10", ""),
		"malformed date":   expenseReq("x", "10", "15/03/2024"),
		"missing category": {Title: "x", Amount: "10", Date: "2024-03-15T00:00:00Z"},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.CreateExpense(ctx, 1, req)
			require.Error(t, err)
			assert.Equal(t, apperr.Validation, apperr.KindOf(err))
		})
	}
}

func TestExpenseDateRoundTrip(t *testing.T) {
	svc := newTestService(newFakeStore())

	exp, err := svc.CreateExpense(context.Background(), 1, expenseReq("lunch", "10.50", "2024-03-15T00:00:00Z"))
	require.NoError(t, err)

	want := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	assert.True(t, exp.Date.Equal(want))

	listed, err := svc.ListExpenses(context.Background(), 1, 0, 0)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.True(t, listed[0].Date.Equal(want))
}

func TestListExpensesOwnerIsolation(t *testing.T) {
	svc := newTestService(newFakeStore())
	ctx := context.Background()

	_, err := svc.CreateExpense(ctx, 1, expenseReq("mine", "10", "2024-03-15T00:00:00Z"))
	require.NoError(t, err)
	other, err := svc.CreateExpense(ctx, 2, expenseReq("theirs", "20", "2024-03-16T00:00:00Z"))
	require.NoError(t, err)

	listed, err := svc.ListExpenses(ctx, 1, 0, 0)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "mine", listed[0].Title)

	// Deleting another user's record reads as not found, never forbidden
	err = svc.DeleteExpense(ctx, 1, other.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestListExpensesDecemberRange(t *testing.T) {
	svc := newTestService(newFakeStore())
	ctx := context.Background()

	_, err := svc.CreateExpense(ctx, 1, expenseReq("dec 1", "10", "2024-12-01T00:00:00Z"))
	require.NoError(t, err)
	_, err = svc.CreateExpense(ctx, 1, expenseReq("dec 31", "10", "2024-12-31T23:59:59Z"))
	require.NoError(t, err)
	_, err = svc.CreateExpense(ctx, 1, expenseReq("jan 1", "10", "2025-01-01T00:00:00Z"))
	require.NoError(t, err)

	listed, err := svc.ListExpenses(ctx, 1, 2024, 12)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	// Most recent first
	assert.Equal(t, "dec 31", listed[0].Title)
	assert.Equal(t, "dec 1", listed[1].Title)
}

func TestListExpensesYearRange(t *testing.T) {
	svc := newTestService(newFakeStore())
	ctx := context.Background()

	_, err := svc.CreateExpense(ctx, 1, expenseReq("2023", "10", "2023-06-15T00:00:00Z"))
	require.NoError(t, err)
	_, err = svc.CreateExpense(ctx, 1, expenseReq("2024", "10", "2024-06-15T00:00:00Z"))
	require.NoError(t, err)

	listed, err := svc.ListExpenses(ctx, 1, 2024, 0)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "2024", listed[0].Title)
}

func TestListExpensesInvalidMonth(t *testing.T) {
	svc := newTestService(newFakeStore())

	_, err := svc.ListExpenses(context.Background(), 1, 2024, 13)
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
}

func TestExpenseStats(t *testing.T) {
	svc := newTestService(newFakeStore())
	ctx := context.Background()

	_, err := svc.CreateExpense(ctx, 1, expenseReq("lunch", "10.50", "2024-03-15T00:00:00Z"))
	require.NoError(t, err)
	_, err = svc.CreateExpense(ctx, 1, expenseReq("coffee", "5.25", "2024-03-20T00:00:00Z"))
	require.NoError(t, err)
	// Outside the window
	_, err = svc.CreateExpense(ctx, 1, expenseReq("april", "100", "2024-04-01T00:00:00Z"))
	require.NoError(t, err)
	// Another user
	_, err = svc.CreateExpense(ctx, 2, expenseReq("other", "100", "2024-03-10T00:00:00Z"))
	require.NoError(t, err)

	stats, err := svc.ExpenseStats(ctx, 1, 2024, 3)
	require.NoError(t, err)
	assert.InDelta(t, 15.75, stats.Total, 1e-9)
	assert.Equal(t, 2, stats.Count)
	require.Contains(t, stats.ByCategory, "food")
	assert.InDelta(t, 15.75, stats.ByCategory["food"], 1e-9)
}

func TestExpenseStatsEmpty(t *testing.T) {
	svc := newTestService(newFakeStore())

	stats, err := svc.ExpenseStats(context.Background(), 1, 2024, 3)
	require.NoError(t, err)
	assert.Zero(t, stats.Total)
	assert.Zero(t, stats.Count)
	assert.Empty(t, stats.ByCategory)
	assert.NotNil(t, stats.ByCategory)
}

func TestExpenseStatsGroupsByExactCategory(t *testing.T) {
	svc := newTestService(newFakeStore())
	ctx := context.Background()

	create := func(category, amount string) {
		_, err := svc.CreateExpense(ctx, 1, &models.ExpenseRequest{
			Title:    "x",
			Amount:   json.Number(amount),
			Category: category,
			Date:     "2024-03-15T00:00:00Z",
		})
		require.NoError(t, err)
	}
	create("food", "10")
	create("Food", "20")
	create("food", "2.50")

	stats, err := svc.ExpenseStats(ctx, 1, 2024, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Count)
	assert.InDelta(t, 12.50, stats.ByCategory["food"], 1e-9)
	assert.InDelta(t, 20, stats.ByCategory["Food"], 1e-9)
}

func TestRangeFromQuery(t *testing.T) {
	dr, err := service.RangeFromQuery(0, 0)
	require.NoError(t, err)
	assert.Nil(t, dr)

	// Month without a year is ignored
	dr, err = service.RangeFromQuery(0, 5)
	require.NoError(t, err)
	assert.Nil(t, dr)

	dr, err = service.RangeFromQuery(2024, 12)
	require.NoError(t, err)
	require.NotNil(t, dr)
	assert.Equal(t, time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), dr.Start)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), dr.End)

	_, err = service.RangeFromQuery(2024, 13)
	require.Error(t, err)
}
