package http

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"finance-tracker/internal/domain"
	"finance-tracker/internal/storage"
)

type UserResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	CreatedAt string `json:"created_at"`
}

type EntryResponse struct {
	ID       int64            `json:"id"`
	Type     domain.EntryType `json:"type"`
	Category string           `json:"category"`
	Amount   string           `json:"amount"`
	Date     string           `json:"date"`
}

type BudgetResponse struct {
	ID       int64  `json:"id"`
	Category string `json:"category"`
	Amount   string `json:"amount"`
	Year     int    `json:"year"`
	Month    int    `json:"month"`
}

type BudgetProgressResponse struct {
	BudgetResponse
	Used     string `json:"used"`
	Progress string `json:"progress"`
}

type NotificationResponse struct {
	Category string           `json:"category"`
	Tier     domain.AlertTier `json:"tier"`
	Used     string           `json:"used"`
	Amount   string           `json:"amount"`
	Percent  string           `json:"percent"`
	Message  string           `json:"message"`
}

type CategoryTotalResponse struct {
	Category string `json:"category"`
	Total    string `json:"total"`
}

type StatementObjectResponse struct {
	Key          string  `json:"key"`
	Size         int64   `json:"size"`
	LastModified *string `json:"last_modified,omitempty"`
}

func userToResponse(u domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

func entryToResponse(e domain.Entry) EntryResponse {
	return EntryResponse{
		ID:       e.ID,
		Type:     e.Type,
		Category: e.Category,
		Amount:   e.Amount.StringFixed(2),
		Date:     e.Date.Format(domain.DateLayout),
	}
}

func budgetToResponse(b domain.Budget) BudgetResponse {
	return BudgetResponse{
		ID:       b.ID,
		Category: b.Category,
		Amount:   b.Amount.StringFixed(2),
		Year:     b.Year,
		Month:    b.Month,
	}
}

func progressToResponse(p domain.BudgetProgress) BudgetProgressResponse {
	return BudgetProgressResponse{
		BudgetResponse: budgetToResponse(p.Budget),
		Used:           p.Used.StringFixed(2),
		Progress:       p.Progress.StringFixed(2),
	}
}

func notificationToResponse(n domain.Notification) NotificationResponse {
	return NotificationResponse{
		Category: n.Category,
		Tier:     n.Tier,
		Used:     n.Used.StringFixed(2),
		Amount:   n.Amount.StringFixed(2),
		Percent:  n.Percent.StringFixedBank(0),
		Message:  n.Message(),
	}
}

func objectToResponse(obj storage.ObjectInfo) StatementObjectResponse {
	resp := StatementObjectResponse{
		Key:  obj.Key,
		Size: obj.Size,
	}
	if obj.LastModified != nil && !obj.LastModified.IsZero() {
		v := obj.LastModified.Format(time.RFC3339)
		resp.LastModified = &v
	}
	return resp
}

// totalsToResponse orders categories by name so responses are stable.
func totalsToResponse(totals map[string]decimal.Decimal) ([]CategoryTotalResponse, string) {
	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)

	sum := decimal.Zero
	resp := make([]CategoryTotalResponse, len(names))
	for i, name := range names {
		resp[i] = CategoryTotalResponse{Category: name, Total: totals[name].StringFixed(2)}
		sum = sum.Add(totals[name])
	}
	return resp, sum.StringFixed(2)
}
