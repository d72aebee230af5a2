package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNotificationMessage(t *testing.T) {
	tests := []struct {
		name string
		n    Notification
		want string
	}{
		{
			name: "exceeded",
			n:    Notification{Category: "Food", Used: decimal.NewFromInt(1200), Amount: decimal.NewFromInt(1000), Percent: decimal.NewFromInt(120), Tier: TierExceeded},
			want: "❌ Budget EXCEEDED for Food! Spent ₹1200.00 of ₹1000.00",
		},
		{
			name: "almost used",
			n:    Notification{Category: "Food", Used: decimal.NewFromInt(750), Amount: decimal.NewFromInt(1000), Percent: decimal.NewFromInt(75), Tier: TierAlmost},
			want: "🚨 Budget almost used for Food (₹750.00/₹1000.00)",
		},
		{
			name: "warning",
			n:    Notification{Category: "Bills", Used: decimal.RequireFromString("60.5"), Amount: decimal.NewFromInt(100), Percent: decimal.RequireFromString("60.5"), Tier: TierWarning},
			want: "🔥 Warning: Bills at 60% (₹60.50/₹100.00)",
		},
		{
			name: "early alert rounds half to even",
			n:    Notification{Category: "Health", Used: decimal.RequireFromString("26.5"), Amount: decimal.NewFromInt(100), Percent: decimal.RequireFromString("26.5"), Tier: TierEarly},
			want: "⚠ Early alert: Health at 26% (₹26.50/₹100.00)",
		},
		{
			name: "early alert rounds up past half",
			n:    Notification{Category: "Health", Used: decimal.RequireFromString("26.6"), Amount: decimal.NewFromInt(100), Percent: decimal.RequireFromString("26.6"), Tier: TierEarly},
			want: "⚠ Early alert: Health at 27% (₹26.60/₹100.00)",
		},
		{
			name: "unknown tier",
			n:    Notification{Category: "Other"},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.n.Message())
		})
	}
}
