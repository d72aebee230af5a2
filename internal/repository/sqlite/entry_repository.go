package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"finance-tracker/internal/domain"
	"finance-tracker/internal/repository"
)

type EntryRepository struct {
	db *sql.DB
}

func NewEntryRepository(db *sql.DB) repository.EntryRepository {
	return &EntryRepository{db: db}
}

func (r *EntryRepository) Create(ctx context.Context, entry *domain.Entry) (int64, error) {
	entry.CreatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx, `
INSERT INTO entries (user_id, type, category, amount, date, created_at)
VALUES (?, ?, ?, ?, ?, ?)`,
		entry.UserID,
		string(entry.Type),
		entry.Category,
		entry.Amount.String(),
		entry.Date.Format(domain.DateLayout),
		entry.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert entry: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("entry last insert id: %w", err)
	}
	entry.ID = id
	return id, nil
}

func (r *EntryRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Entry, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, user_id, type, category, amount, date, created_at
FROM entries
WHERE user_id = ?
ORDER BY date ASC, id ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return entries, nil
}

func scanEntry(row interface {
	Scan(dest ...any) error
}) (*domain.Entry, error) {
	var (
		entry  domain.Entry
		typ    string
		amount string
		date   string
	)
	if err := row.Scan(
		&entry.ID,
		&entry.UserID,
		&typ,
		&entry.Category,
		&amount,
		&date,
		&entry.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("scan entry: %w", err)
	}

	entry.Type = domain.EntryType(typ)

	var err error
	if entry.Amount, err = decimal.NewFromString(amount); err != nil {
		return nil, fmt.Errorf("parse entry %d amount: %w", entry.ID, err)
	}
	if entry.Date, err = time.Parse(domain.DateLayout, date); err != nil {
		return nil, fmt.Errorf("parse entry %d date: %w", entry.ID, err)
	}
	return &entry, nil
}
