package repository

import (
	"context"

	"finance-tracker/internal/domain"
)

// EntryRepository stores ledger entries. Entries are never updated or deleted.
type EntryRepository interface {
	Create(ctx context.Context, entry *domain.Entry) (int64, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Entry, error)
}
