package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the ISO-8601 calendar date format entries are stored and exchanged in.
const DateLayout = "2006-01-02"

type EntryType string

const (
	EntryTypeIncome  EntryType = "income"
	EntryTypeExpense EntryType = "expense"
)

// ParseEntryType accepts "income" or "expense" in any case.
func ParseEntryType(s string) (EntryType, error) {
	switch t := EntryType(strings.ToLower(strings.TrimSpace(s))); t {
	case EntryTypeIncome, EntryTypeExpense:
		return t, nil
	default:
		return "", fmt.Errorf("unknown entry type %q", s)
	}
}

// Entry is a single immutable income or expense record owned by one user.
type Entry struct {
	ID        int64
	UserID    int64
	Type      EntryType
	Category  string
	Amount    decimal.Decimal
	Date      time.Time
	CreatedAt time.Time
}

// InPeriod reports whether the entry date falls in the given calendar month.
func (e Entry) InPeriod(p Period) bool {
	return e.Date.Year() == p.Year && int(e.Date.Month()) == p.Month
}
