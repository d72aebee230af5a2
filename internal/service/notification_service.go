package service

import (
	"context"

	"github.com/shopspring/decimal"

	"finance-tracker/internal/domain"
	"finance-tracker/internal/repository"
)

var (
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
)

// alertThresholds are checked from the highest down; the first match wins.
var alertThresholds = []struct {
	percent int64
	tier    domain.AlertTier
}{
	{100, domain.TierExceeded},
	{75, domain.TierAlmost},
	{50, domain.TierWarning},
	{25, domain.TierEarly},
}

// NotificationService compares period spending with budgets.
type NotificationService interface {
	// Notifications returns one alert per budget whose usage reached a tier, in budget
	// store order. Budgets with a zero amount never alert.
	Notifications(ctx context.Context, userID int64, period domain.Period) ([]domain.Notification, error)
	// Messages is Notifications rendered to text.
	Messages(ctx context.Context, userID int64, period domain.Period) ([]string, error)
	// Overview reports usage for every budget of the period. Usage counts only the
	// period's expenses, the same figure alerts use; all-time spend would fill every
	// bar after the first month.
	Overview(ctx context.Context, userID int64, period domain.Period) ([]domain.BudgetProgress, error)
}

type notificationService struct {
	budgets  repository.BudgetRepository
	spending SpendingService
}

func NewNotificationService(budgets repository.BudgetRepository, spending SpendingService) NotificationService {
	return &notificationService{
		budgets:  budgets,
		spending: spending,
	}
}

func (s *notificationService) Notifications(ctx context.Context, userID int64, period domain.Period) ([]domain.Notification, error) {
	budgets, err := s.budgets.ListByPeriod(ctx, userID, period)
	if err != nil {
		return nil, err
	}
	if len(budgets) == 0 {
		return []domain.Notification{}, nil
	}

	spent, err := s.spending.SpendByCategory(ctx, userID, period)
	if err != nil {
		return nil, err
	}

	notifications := make([]domain.Notification, 0, len(budgets))
	for _, b := range budgets {
		if n, ok := evaluate(b, spent[b.Category]); ok {
			notifications = append(notifications, n)
		}
	}
	return notifications, nil
}

func (s *notificationService) Messages(ctx context.Context, userID int64, period domain.Period) ([]string, error) {
	notifications, err := s.Notifications(ctx, userID, period)
	if err != nil {
		return nil, err
	}
	messages := make([]string, len(notifications))
	for i, n := range notifications {
		messages[i] = n.Message()
	}
	return messages, nil
}

func (s *notificationService) Overview(ctx context.Context, userID int64, period domain.Period) ([]domain.BudgetProgress, error) {
	budgets, err := s.budgets.ListByPeriod(ctx, userID, period)
	if err != nil {
		return nil, err
	}
	if len(budgets) == 0 {
		return []domain.BudgetProgress{}, nil
	}

	spent, err := s.spending.SpendByCategory(ctx, userID, period)
	if err != nil {
		return nil, err
	}

	overview := make([]domain.BudgetProgress, len(budgets))
	for i, b := range budgets {
		used := spent[b.Category]
		progress := decimal.Zero
		if b.Amount.IsPositive() {
			progress = decimal.Min(used.Div(b.Amount), one)
		}
		overview[i] = domain.BudgetProgress{Budget: b, Used: used, Progress: progress}
	}
	return overview, nil
}

// evaluate picks the alert tier for a budget given the amount used. The comparison
// scales used by 100 instead of dividing so tier boundaries are exact.
func evaluate(b domain.Budget, used decimal.Decimal) (domain.Notification, bool) {
	if !b.Amount.IsPositive() {
		return domain.Notification{}, false
	}

	scaled := used.Mul(hundred)
	for _, th := range alertThresholds {
		if scaled.GreaterThanOrEqual(b.Amount.Mul(decimal.NewFromInt(th.percent))) {
			return domain.Notification{
				Category: b.Category,
				Used:     used,
				Amount:   b.Amount,
				Percent:  scaled.Div(b.Amount),
				Tier:     th.tier,
			}, true
		}
	}
	return domain.Notification{}, false
}
