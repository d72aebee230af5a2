package alerts

import (
	"context"
	"encoding/json"
	"time"
)

// BudgetAlert carries the budget notifications raised for a user after a ledger change.
type BudgetAlert struct {
	UserID    int64     `json:"user_id"`
	Year      int       `json:"year"`
	Month     int       `json:"month"`
	Messages  []string  `json:"messages"`
	Timestamp time.Time `json:"timestamp"`
}

func (a BudgetAlert) ToJSON() ([]byte, error) {
	return json.Marshal(a)
}

// Publisher delivers budget alerts to interested consumers.
type Publisher interface {
	Publish(ctx context.Context, alert BudgetAlert) error
	Close() error
}

// Nop drops every alert. It is used when no broker is configured.
type Nop struct{}

func (Nop) Publish(context.Context, BudgetAlert) error { return nil }
func (Nop) Close() error                               { return nil }
