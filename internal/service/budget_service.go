package service

import (
	"context"

	"github.com/shopspring/decimal"

	"finance-tracker/internal/domain"
	"finance-tracker/internal/repository"
)

// BudgetService manages monthly category budgets.
type BudgetService interface {
	SetBudget(ctx context.Context, userID int64, category string, amount decimal.Decimal, period domain.Period) (*domain.Budget, error)
	BudgetsFor(ctx context.Context, userID int64, period domain.Period) ([]domain.Budget, error)
}

type budgetService struct {
	budgets repository.BudgetRepository
}

func NewBudgetService(budgets repository.BudgetRepository) BudgetService {
	return &budgetService{budgets: budgets}
}

// SetBudget creates the budget for the category and period, or replaces its amount.
func (s *budgetService) SetBudget(ctx context.Context, userID int64, category string, amount decimal.Decimal, period domain.Period) (*domain.Budget, error) {
	budget := &domain.Budget{
		UserID:   userID,
		Category: category,
		Amount:   amount,
		Month:    period.Month,
		Year:     period.Year,
	}
	if err := s.budgets.Upsert(ctx, budget); err != nil {
		return nil, err
	}
	return budget, nil
}

func (s *budgetService) BudgetsFor(ctx context.Context, userID int64, period domain.Period) ([]domain.Budget, error) {
	return s.budgets.ListByPeriod(ctx, userID, period)
}
