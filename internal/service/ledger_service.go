package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"finance-tracker/internal/domain"
	"finance-tracker/internal/repository"
)

// LedgerService records and lists income and expense entries.
type LedgerService interface {
	AddEntry(ctx context.Context, userID int64, typ domain.EntryType, category string, amount decimal.Decimal, date time.Time) (*domain.Entry, error)
	EntriesFor(ctx context.Context, userID int64) ([]domain.Entry, error)
	EntriesForPeriod(ctx context.Context, userID int64, period domain.Period) ([]domain.Entry, error)
}

type ledgerService struct {
	entries repository.EntryRepository
}

func NewLedgerService(entries repository.EntryRepository) LedgerService {
	return &ledgerService{entries: entries}
}

// AddEntry stores the entry as given. Category membership and amount sign are the
// caller's concern.
func (s *ledgerService) AddEntry(ctx context.Context, userID int64, typ domain.EntryType, category string, amount decimal.Decimal, date time.Time) (*domain.Entry, error) {
	entry := &domain.Entry{
		UserID:   userID,
		Type:     typ,
		Category: category,
		Amount:   amount,
		Date:     time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
	}
	if _, err := s.entries.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *ledgerService) EntriesFor(ctx context.Context, userID int64) ([]domain.Entry, error) {
	return s.entries.ListByUser(ctx, userID)
}

func (s *ledgerService) EntriesForPeriod(ctx context.Context, userID int64, period domain.Period) ([]domain.Entry, error) {
	entries, err := s.entries.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	filtered := entries[:0]
	for _, e := range entries {
		if e.InPeriod(period) {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}
