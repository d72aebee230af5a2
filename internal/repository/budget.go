package repository

import (
	"context"

	"finance-tracker/internal/domain"
)

// BudgetRepository stores one budget per (user, category, month, year).
type BudgetRepository interface {
	// Upsert inserts the budget or overwrites the amount of the existing row with the
	// same key in a single statement. The stored row is written back into budget.
	Upsert(ctx context.Context, budget *domain.Budget) error
	ListByPeriod(ctx context.Context, userID int64, period domain.Period) ([]domain.Budget, error)
}
