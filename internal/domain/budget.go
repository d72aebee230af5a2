package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is a spending cap for one category in one calendar month.
// (UserID, Category, Month, Year) is unique.
type Budget struct {
	ID        int64
	UserID    int64
	Category  string
	Amount    decimal.Decimal
	Month     int
	Year      int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BudgetProgress is how much of a budget the period's expenses have consumed.
type BudgetProgress struct {
	Budget   Budget
	Used     decimal.Decimal
	Progress decimal.Decimal // in [0, 1]
}
