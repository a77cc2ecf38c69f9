package service

import (
	"time"

	"github.com/shopspring/decimal"
)

// Debt is a reporting view over an outstanding credit entry.
// DaysOverdue is negative while the debt is not yet due.
type Debt struct {
	ID          string
	Customer    string
	Amount      decimal.Decimal
	DueDate     time.Time
	DaysOverdue int
}

// Budget tracks spending against a limit for one category.
type Budget struct {
	Category string
	Limit    decimal.Decimal
	Spent    decimal.Decimal
}

// Remaining is the unspent part of the limit. It is negative when overspent.
func (b Budget) Remaining() decimal.Decimal {
	return b.Limit.Sub(b.Spent)
}

// PercentUsed is spent as a percentage of the limit, rounded to two places. A zero limit reports 0.
func (b Budget) PercentUsed() decimal.Decimal {
	if b.Limit.IsZero() {
		return decimal.Zero
	}
	return b.Spent.Div(b.Limit).Mul(decimal.NewFromInt(100)).Round(2)
}

// NotificationKind is the severity of a notification.
type NotificationKind string

const (
	NotificationKindInfo    NotificationKind = "info"
	NotificationKindSuccess NotificationKind = "success"
	NotificationKindWarning NotificationKind = "warning"
	NotificationKindError   NotificationKind = "error"
)

// Notification is a message shown on the dashboard.
type Notification struct {
	ID        string
	Type      NotificationKind
	Message   string
	Timestamp time.Time
	Read      bool
}

// TimeRange selects the window the dashboard metrics cover.
type TimeRange string

const (
	TimeRangeToday TimeRange = "today"
	TimeRangeWeek  TimeRange = "week"
	TimeRangeMonth TimeRange = "month"
)

// Metrics are the headline figures for a time range.
type Metrics struct {
	Revenue     decimal.Decimal
	Expenses    decimal.Decimal
	NetProfit   decimal.Decimal
	CreditGiven decimal.Decimal
	TotalDebt   decimal.Decimal
}

// CategoryTotal is the amount spent in one expense category.
type CategoryTotal struct {
	Category string
	Amount   decimal.Decimal
}

// Dashboard is everything the dashboard page renders for one business. Metrics and ExpenseBreakdown
// cover every entry in Range; Transactions lists only the most recent entries.
type Dashboard struct {
	Range               TimeRange
	Metrics             Metrics
	ExpenseBreakdown    []CategoryTotal
	Transactions        []Transaction
	Debts               []Debt
	Budgets             []Budget
	Notifications       []Notification
	UnreadNotifications int
}
