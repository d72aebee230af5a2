package service

import (
	"context"

	"github.com/shopspring/decimal"

	"finance-tracker/internal/domain"
	"finance-tracker/internal/repository"
)

// SpendingService aggregates expense entries per category.
type SpendingService interface {
	// SpendByCategory sums the period's expenses per category. Categories without
	// expenses are absent from the result.
	SpendByCategory(ctx context.Context, userID int64, period domain.Period) (map[string]decimal.Decimal, error)
	// ExpenseTotals sums all recorded expenses per category regardless of date.
	ExpenseTotals(ctx context.Context, userID int64) (map[string]decimal.Decimal, error)
}

type spendingService struct {
	entries repository.EntryRepository
}

func NewSpendingService(entries repository.EntryRepository) SpendingService {
	return &spendingService{entries: entries}
}

func (s *spendingService) SpendByCategory(ctx context.Context, userID int64, period domain.Period) (map[string]decimal.Decimal, error) {
	entries, err := s.entries.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return sumExpenses(entries, func(e domain.Entry) bool { return e.InPeriod(period) }), nil
}

func (s *spendingService) ExpenseTotals(ctx context.Context, userID int64) (map[string]decimal.Decimal, error) {
	entries, err := s.entries.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return sumExpenses(entries, func(domain.Entry) bool { return true }), nil
}

func sumExpenses(entries []domain.Entry, keep func(domain.Entry) bool) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, e := range entries {
		if e.Type != domain.EntryTypeExpense || !keep(e) {
			continue
		}
		totals[e.Category] = totals[e.Category].Add(e.Amount)
	}
	return totals
}
