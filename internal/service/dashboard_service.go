package service

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

const (
	day = 24 * time.Hour

	uncategorized = "other"
)

// Start returns the beginning of the window r covers, relative to now. Unknown ranges are treated
// as today.
func (r TimeRange) Start(now time.Time) time.Time {
	switch r {
	case TimeRangeWeek:
		return now.Add(-7 * day)
	case TimeRangeMonth:
		return now.Add(-30 * day)
	default:
		return startOfDay(now)
	}
}

func (r TimeRange) Valid() bool {
	switch r {
	case TimeRangeToday, TimeRangeWeek, TimeRangeMonth:
		return true
	}
	return false
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).Add(day - time.Nanosecond)
}

// DaysOverdue is the number of whole days now is past due, negative before the due date.
func DaysOverdue(due, now time.Time) int {
	return int(math.Floor(now.Sub(due).Hours() / 24))
}

// DebtFromTransaction builds the debt view of a credit entry. ok is false for entries that are not
// outstanding credit with a due date.
func DebtFromTransaction(tx Transaction, now time.Time) (Debt, bool) {
	if tx.Type != TransactionKindCredit || tx.DueDate == nil {
		return Debt{}, false
	}
	if tx.Status == TransactionStatusCompleted || tx.Status == TransactionStatusCancelled {
		return Debt{}, false
	}

	return Debt{
		ID:          tx.ID,
		Customer:    tx.CustomerName,
		Amount:      tx.Amount,
		DueDate:     *tx.DueDate,
		DaysOverdue: DaysOverdue(*tx.DueDate, now),
	}, true
}

// Summarize computes the headline metrics over the entries that fall inside r.
// Total debt covers every outstanding debt regardless of range.
func Summarize(txs []Transaction, debts []Debt, r TimeRange, now time.Time) Metrics {
	start := r.Start(now)
	end := endOfDay(now)

	m := Metrics{
		Revenue:     decimal.Zero,
		Expenses:    decimal.Zero,
		CreditGiven: decimal.Zero,
		TotalDebt:   decimal.Zero,
	}
	for _, tx := range txs {
		if ts := tx.EntryTime(); ts.Before(start) || ts.After(end) {
			continue
		}

		switch tx.Type {
		case TransactionKindSale, TransactionKindRepayment:
			m.Revenue = m.Revenue.Add(tx.Amount)
		case TransactionKindExpense:
			m.Expenses = m.Expenses.Add(tx.Amount)
		case TransactionKindCredit:
			m.CreditGiven = m.CreditGiven.Add(tx.Amount)
		}
	}
	m.NetProfit = m.Revenue.Sub(m.Expenses)

	for _, d := range debts {
		m.TotalDebt = m.TotalDebt.Add(d.Amount)
	}
	return m
}

// ExpenseBreakdown sums the expense entries of txs per category, largest first. Entries without a
// category are grouped under "other".
func ExpenseBreakdown(txs []Transaction) []CategoryTotal {
	totals := map[string]decimal.Decimal{}
	for _, tx := range txs {
		if tx.Type != TransactionKindExpense {
			continue
		}
		category := tx.Category
		if category == "" {
			category = uncategorized
		}
		totals[category] = totals[category].Add(tx.Amount)
	}

	breakdown := make([]CategoryTotal, 0, len(totals))
	for category, amount := range totals {
		breakdown = append(breakdown, CategoryTotal{Category: category, Amount: amount})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if c := breakdown[i].Amount.Cmp(breakdown[j].Amount); c != 0 {
			return c > 0
		}
		return breakdown[i].Category < breakdown[j].Category
	})
	return breakdown
}

// UnreadCount is the number of notifications not yet read.
func UnreadCount(notifications []Notification) int {
	n := 0
	for _, notification := range notifications {
		if !notification.Read {
			n++
		}
	}
	return n
}

// rangeTransactions returns every entry of the business that falls inside r. Lookup failures yield
// an empty slice.
func (g *Gateway) rangeTransactions(ctx context.Context, businessID string, r TimeRange, now time.Time) []Transaction {
	query := TransactionQuery{BusinessID: businessID, Since: r.Start(now)}
	rows, err := g.store.FindTransactions(ctx, query)
	if err != nil {
		g.logger.WithError(err).WithField("businessID", businessID).Error("Gateway.rangeTransactions")
		return []Transaction{}
	}

	end := endOfDay(now)
	inRange := make([]Transaction, 0, len(rows))
	for _, tx := range rows {
		if query.Matches(tx) && !tx.EntryTime().After(end) {
			inRange = append(inRange, tx)
		}
	}
	return inRange
}

// Debts returns the outstanding debts for a business. Lookup failures yield an empty slice.
func (g *Gateway) Debts(ctx context.Context, businessID string) []Debt {
	debts, err := g.store.Debts(ctx, businessID)
	if err != nil || debts == nil {
		if err != nil {
			g.logger.WithError(err).WithField("businessID", businessID).Error("Gateway.Debts")
		}
		return []Debt{}
	}
	return debts
}

// Budgets returns the active budgets for a business. Lookup failures yield an empty slice.
func (g *Gateway) Budgets(ctx context.Context, businessID string) []Budget {
	budgets, err := g.store.Budgets(ctx, businessID)
	if err != nil || budgets == nil {
		if err != nil {
			g.logger.WithError(err).WithField("businessID", businessID).Error("Gateway.Budgets")
		}
		return []Budget{}
	}
	return budgets
}

// Notifications returns the account's notifications, newest first. Lookup failures yield an empty
// slice.
func (g *Gateway) Notifications(ctx context.Context, accountID string) []Notification {
	notifications, err := g.store.Notifications(ctx, accountID)
	if err != nil || notifications == nil {
		if err != nil {
			g.logger.WithError(err).WithField("accountID", accountID).Error("Gateway.Notifications")
		}
		return []Notification{}
	}
	return notifications
}

// Dashboard assembles the dashboard view for a business.
func (g *Gateway) Dashboard(ctx context.Context, account Account, business Business, r TimeRange) Dashboard {
	if !r.Valid() {
		r = TimeRangeToday
	}

	now := g.now()
	inRange := g.rangeTransactions(ctx, business.ID, r, now)
	debts := g.Debts(ctx, business.ID)
	notifications := g.Notifications(ctx, account.ID)

	return Dashboard{
		Range:               r,
		Metrics:             Summarize(inRange, debts, r, now),
		ExpenseBreakdown:    ExpenseBreakdown(inRange),
		Transactions:        g.Transactions(ctx, business.ID, defaultTransactionLimit),
		Debts:               debts,
		Budgets:             g.Budgets(ctx, business.ID),
		Notifications:       notifications,
		UnreadNotifications: UnreadCount(notifications),
	}
}
