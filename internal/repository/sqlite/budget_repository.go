package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"finance-tracker/internal/domain"
	"finance-tracker/internal/repository"
)

type BudgetRepository struct {
	db *sql.DB
}

func NewBudgetRepository(db *sql.DB) repository.BudgetRepository {
	return &BudgetRepository{db: db}
}

func (r *BudgetRepository) Upsert(ctx context.Context, budget *domain.Budget) error {
	now := time.Now().UTC()

	var id int64
	err := r.db.QueryRowContext(ctx, `
INSERT INTO budgets (user_id, category, amount, month, year, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(user_id, category, month, year)
DO UPDATE SET amount = excluded.amount, updated_at = excluded.updated_at
RETURNING id`,
		budget.UserID,
		budget.Category,
		budget.Amount.String(),
		budget.Month,
		budget.Year,
		now,
		now,
	).Scan(&id)
	if err != nil {
		return fmt.Errorf("upsert budget: %w", err)
	}

	stored, err := r.get(ctx, id)
	if err != nil {
		return err
	}
	*budget = *stored
	return nil
}

func (r *BudgetRepository) ListByPeriod(ctx context.Context, userID int64, period domain.Period) ([]domain.Budget, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, user_id, category, amount, month, year, created_at, updated_at
FROM budgets
WHERE user_id = ? AND year = ? AND month = ?
ORDER BY id ASC`, userID, period.Year, period.Month)
	if err != nil {
		return nil, fmt.Errorf("query budgets: %w", err)
	}
	defer rows.Close()

	var budgets []domain.Budget
	for rows.Next() {
		budget, err := scanBudget(rows)
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, *budget)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate budgets: %w", err)
	}
	return budgets, nil
}

func (r *BudgetRepository) get(ctx context.Context, id int64) (*domain.Budget, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, user_id, category, amount, month, year, created_at, updated_at
FROM budgets
WHERE id = ?`, id)
	budget, err := scanBudget(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("budget %d: %w", id, repository.ErrNotFound)
	}
	return budget, err
}

func scanBudget(row interface {
	Scan(dest ...any) error
}) (*domain.Budget, error) {
	var (
		budget domain.Budget
		amount string
	)
	if err := row.Scan(
		&budget.ID,
		&budget.UserID,
		&budget.Category,
		&amount,
		&budget.Month,
		&budget.Year,
		&budget.CreatedAt,
		&budget.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("scan budget: %w", err)
	}

	var err error
	if budget.Amount, err = decimal.NewFromString(amount); err != nil {
		return nil, fmt.Errorf("parse budget %d amount: %w", budget.ID, err)
	}
	return &budget, nil
}
