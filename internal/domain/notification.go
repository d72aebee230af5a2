package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AlertTier is the severity of a budget usage alert.
type AlertTier string

const (
	TierEarly    AlertTier = "early"    // >= 25%
	TierWarning  AlertTier = "warning"  // >= 50%
	TierAlmost   AlertTier = "almost"   // >= 75%
	TierExceeded AlertTier = "exceeded" // >= 100%
)

// CurrencySymbol prefixes every amount in alert messages.
const CurrencySymbol = "₹"

// Notification is one budget alert for a category in a period.
type Notification struct {
	Category string
	Used     decimal.Decimal
	Amount   decimal.Decimal
	Percent  decimal.Decimal // used/amount*100, unrounded
	Tier     AlertTier
}

// Message renders the alert text. The prefixes and wording are consumed by existing
// clients and must not change.
func (n Notification) Message() string {
	used := CurrencySymbol + n.Used.StringFixed(2)
	amount := CurrencySymbol + n.Amount.StringFixed(2)
	pct := n.Percent.StringFixedBank(0)

	switch n.Tier {
	case TierExceeded:
		return fmt.Sprintf("❌ Budget EXCEEDED for %s! Spent %s of %s", n.Category, used, amount)
	case TierAlmost:
		return fmt.Sprintf("🚨 Budget almost used for %s (%s/%s)", n.Category, used, amount)
	case TierWarning:
		return fmt.Sprintf("🔥 Warning: %s at %s%% (%s/%s)", n.Category, pct, used, amount)
	case TierEarly:
		return fmt.Sprintf("⚠ Early alert: %s at %s%% (%s/%s)", n.Category, pct, used, amount)
	default:
		return ""
	}
}
