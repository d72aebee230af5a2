package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finance-tracker/internal/domain"
	"finance-tracker/internal/testutil"
)

func TestBudgetService_SetBudgetTwiceKeepsLatest(t *testing.T) {
	ctx := context.Background()
	svc := NewBudgetService(testutil.NewMockBudgetRepository())
	june := domain.Period{Year: 2024, Month: 6}

	first, err := svc.SetBudget(ctx, 1, "Food", decimal.NewFromInt(1000), june)
	require.NoError(t, err)
	second, err := svc.SetBudget(ctx, 1, "Food", decimal.NewFromInt(1200), june)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	budgets, err := svc.BudgetsFor(ctx, 1, june)
	require.NoError(t, err)
	require.Len(t, budgets, 1)
	assert.Equal(t, "1200.00", budgets[0].Amount.StringFixed(2))
}

func TestBudgetService_BudgetsForIsolatesPeriodAndUser(t *testing.T) {
	ctx := context.Background()
	svc := NewBudgetService(testutil.NewMockBudgetRepository())

	_, err := svc.SetBudget(ctx, 1, "Food", decimal.NewFromInt(1000), domain.Period{Year: 2024, Month: 6})
	require.NoError(t, err)
	_, err = svc.SetBudget(ctx, 1, "Food", decimal.NewFromInt(500), domain.Period{Year: 2024, Month: 7})
	require.NoError(t, err)
	_, err = svc.SetBudget(ctx, 2, "Food", decimal.NewFromInt(10), domain.Period{Year: 2024, Month: 6})
	require.NoError(t, err)

	budgets, err := svc.BudgetsFor(ctx, 1, domain.Period{Year: 2024, Month: 7})
	require.NoError(t, err)
	require.Len(t, budgets, 1)
	assert.Equal(t, "500", budgets[0].Amount.String())
}
