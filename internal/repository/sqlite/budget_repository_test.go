package sqlite

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finance-tracker/internal/domain"
)

func TestBudgetRepository_UpsertOverwrites(t *testing.T) {
	ctx := context.Background()
	repo := NewBudgetRepository(openTestDB(t))
	june := domain.Period{Year: 2024, Month: 6}

	first := &domain.Budget{UserID: 1, Category: "Food", Amount: decimal.NewFromInt(1000), Month: 6, Year: 2024}
	require.NoError(t, repo.Upsert(ctx, first))
	assert.Positive(t, first.ID)

	second := &domain.Budget{UserID: 1, Category: "Food", Amount: decimal.NewFromInt(800), Month: 6, Year: 2024}
	require.NoError(t, repo.Upsert(ctx, second))
	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.Amount.Equal(decimal.NewFromInt(800)))

	budgets, err := repo.ListByPeriod(ctx, 1, june)
	require.NoError(t, err)
	require.Len(t, budgets, 1)
	assert.Equal(t, "800.00", budgets[0].Amount.StringFixed(2))
}

func TestBudgetRepository_ListByPeriodFilters(t *testing.T) {
	ctx := context.Background()
	repo := NewBudgetRepository(openTestDB(t))

	rows := []*domain.Budget{
		{UserID: 1, Category: "Transport", Amount: decimal.NewFromInt(200), Month: 6, Year: 2024},
		{UserID: 1, Category: "Food", Amount: decimal.NewFromInt(1000), Month: 6, Year: 2024},
		{UserID: 1, Category: "Food", Amount: decimal.NewFromInt(900), Month: 7, Year: 2024},
		{UserID: 1, Category: "Food", Amount: decimal.NewFromInt(700), Month: 6, Year: 2023},
		{UserID: 2, Category: "Food", Amount: decimal.NewFromInt(50), Month: 6, Year: 2024},
	}
	for _, b := range rows {
		require.NoError(t, repo.Upsert(ctx, b))
	}

	budgets, err := repo.ListByPeriod(ctx, 1, domain.Period{Year: 2024, Month: 6})
	require.NoError(t, err)
	require.Len(t, budgets, 2)
	assert.Equal(t, "Transport", budgets[0].Category)
	assert.Equal(t, "Food", budgets[1].Category)
}

func TestBudgetRepository_ConcurrentUpsertsKeepOneRow(t *testing.T) {
	ctx := context.Background()
	repo := NewBudgetRepository(openTestDB(t))

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(amount int64) {
			defer wg.Done()
			errs <- repo.Upsert(ctx, &domain.Budget{UserID: 1, Category: "Food", Amount: decimal.NewFromInt(amount), Month: 6, Year: 2024})
		}(int64(i))
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	budgets, err := repo.ListByPeriod(ctx, 1, domain.Period{Year: 2024, Month: 6})
	require.NoError(t, err)
	assert.Len(t, budgets, 1)
}
