package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestDaysOverdue(t *testing.T) {
	assert.Equal(t, -5, DaysOverdue(testNow.Add(5*day), testNow))
	assert.Equal(t, 10, DaysOverdue(testNow.Add(-10*day), testNow))
	assert.Equal(t, 0, DaysOverdue(testNow.Add(-time.Hour), testNow))
	assert.Equal(t, -1, DaysOverdue(testNow.Add(time.Hour), testNow))
}

func TestDebtFromTransaction(t *testing.T) {
	due := testNow.Add(-2 * day)
	tx := Transaction{
		ID: "3", Type: TransactionKindCredit, Amount: dec("1500"),
		CustomerName: "Jane Smith", DueDate: &due, Status: TransactionStatusPending,
	}

	debt, ok := DebtFromTransaction(tx, testNow)
	assert.True(t, ok)
	assert.Equal(t, "Jane Smith", debt.Customer)
	assert.Equal(t, 2, debt.DaysOverdue)
	assert.True(t, debt.Amount.Equal(dec("1500")))

	settled := tx
	settled.Status = TransactionStatusCompleted
	_, ok = DebtFromTransaction(settled, testNow)
	assert.False(t, ok)

	sale := tx
	sale.Type = TransactionKindSale
	_, ok = DebtFromTransaction(sale, testNow)
	assert.False(t, ok)
}

func TestBudgetPercentUsed(t *testing.T) {
	b := Budget{Category: "Transport", Limit: dec("5000"), Spent: dec("3200")}
	assert.True(t, b.PercentUsed().Equal(dec("64")))
	assert.True(t, b.Remaining().Equal(dec("1800")))

	assert.True(t, Budget{Limit: decimal.Zero, Spent: dec("10")}.PercentUsed().IsZero())
}

func TestTimeRangeStart(t *testing.T) {
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), TimeRangeToday.Start(testNow))
	assert.Equal(t, testNow.Add(-7*day), TimeRangeWeek.Start(testNow))
	assert.Equal(t, testNow.Add(-30*day), TimeRangeMonth.Start(testNow))
	assert.Equal(t, TimeRangeToday.Start(testNow), TimeRange("decade").Start(testNow))
}

func TestSummarize(t *testing.T) {
	at := func(d time.Duration) Transaction { return Transaction{CreatedAt: testNow.Add(d)} }

	sale := at(0)
	sale.Type, sale.Amount = TransactionKindSale, dec("2500")
	expense := at(-1 * day)
	expense.Type, expense.Amount = TransactionKindExpense, dec("800")
	credit := at(-2 * day)
	credit.Type, credit.Amount = TransactionKindCredit, dec("1500")
	repayment := at(-3 * day)
	repayment.Type, repayment.Amount = TransactionKindRepayment, dec("500")
	old := at(-40 * day)
	old.Type, old.Amount = TransactionKindSale, dec("9999")

	txs := []Transaction{sale, expense, credit, repayment, old}
	debts := []Debt{{Amount: dec("1500")}, {Amount: dec("800")}, {Amount: dec("2200")}}

	today := Summarize(txs, debts, TimeRangeToday, testNow)
	assert.True(t, today.Revenue.Equal(dec("2500")))
	assert.True(t, today.Expenses.IsZero())
	assert.True(t, today.TotalDebt.Equal(dec("4500")))

	week := Summarize(txs, debts, TimeRangeWeek, testNow)
	assert.True(t, week.Revenue.Equal(dec("3000")))
	assert.True(t, week.Expenses.Equal(dec("800")))
	assert.True(t, week.NetProfit.Equal(dec("2200")))
	assert.True(t, week.CreditGiven.Equal(dec("1500")))
}

func TestDashboard_AssemblesAndSwallowsFailures(t *testing.T) {
	gw, store, _ := newTestGateway(t)

	todayQuery := TransactionQuery{BusinessID: "biz-1", Since: TimeRangeToday.Start(testNow)}
	store.On("FindTransactions", mock.Anything, todayQuery).Return(makeTransactions(2, testNow), nil)
	store.On("Transactions", mock.Anything, "biz-1", defaultTransactionLimit).Return(makeTransactions(2, testNow), nil)
	store.On("Debts", mock.Anything, "biz-1").Return(nil, errors.New("timeout"))
	store.On("Budgets", mock.Anything, "biz-1").Return([]Budget{{Category: "Transport", Limit: dec("5000"), Spent: dec("3200")}}, nil)
	store.On("Notifications", mock.Anything, "acc-1").Return([]Notification{{ID: "1", Type: NotificationKindWarning}}, nil)

	got := gw.Dashboard(context.Background(), *testAccount(), *testBusiness(), "bogus")

	assert.Equal(t, TimeRangeToday, got.Range)
	assert.Len(t, got.Transactions, 2)
	assert.Empty(t, got.Debts)
	assert.Len(t, got.Budgets, 1)
	assert.Len(t, got.Notifications, 1)
	assert.Equal(t, 1, got.UnreadNotifications)
	assert.True(t, got.Metrics.Revenue.Equal(dec("10")))
}

func TestDashboard_MetricsCoverEveryEntryInRange(t *testing.T) {
	gw, store, _ := newTestGateway(t)

	sales := make([]Transaction, 80)
	for i := range sales {
		created := testNow.Add(-time.Duration(i) * time.Minute)
		sales[i] = Transaction{
			ID:         fmt.Sprintf("sale-%d", i),
			BusinessID: "biz-1",
			Type:       TransactionKindSale,
			Amount:     dec("1"),
			Status:     TransactionStatusCompleted,
			Timestamp:  created,
			CreatedAt:  created,
		}
	}

	store.On("FindTransactions", mock.Anything, TransactionQuery{BusinessID: "biz-1", Since: TimeRangeToday.Start(testNow)}).
		Return(sales, nil)
	store.On("Transactions", mock.Anything, "biz-1", defaultTransactionLimit).
		Return(append([]Transaction(nil), sales[:defaultTransactionLimit]...), nil)
	store.On("Debts", mock.Anything, "biz-1").Return([]Debt{}, nil)
	store.On("Budgets", mock.Anything, "biz-1").Return([]Budget{}, nil)
	store.On("Notifications", mock.Anything, "acc-1").Return([]Notification{}, nil)

	got := gw.Dashboard(context.Background(), *testAccount(), *testBusiness(), TimeRangeToday)

	assert.Len(t, got.Transactions, defaultTransactionLimit)
	assert.True(t, got.Metrics.Revenue.Equal(dec("80")), "revenue %s", got.Metrics.Revenue)
	assert.True(t, got.Metrics.NetProfit.Equal(dec("80")))
}

func TestDashboard_RangeLookupFailureYieldsZeroMetrics(t *testing.T) {
	gw, store, _ := newTestGateway(t)

	store.On("FindTransactions", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))
	store.On("Transactions", mock.Anything, "biz-1", defaultTransactionLimit).Return(makeTransactions(3, testNow), nil)
	store.On("Debts", mock.Anything, "biz-1").Return([]Debt{}, nil)
	store.On("Budgets", mock.Anything, "biz-1").Return([]Budget{}, nil)
	store.On("Notifications", mock.Anything, "acc-1").Return([]Notification{}, nil)

	got := gw.Dashboard(context.Background(), *testAccount(), *testBusiness(), TimeRangeWeek)

	assert.Equal(t, TimeRangeWeek, got.Range)
	assert.Len(t, got.Transactions, 3)
	assert.True(t, got.Metrics.Revenue.IsZero())
	assert.Empty(t, got.ExpenseBreakdown)
}

func TestExpenseBreakdown(t *testing.T) {
	txs := []Transaction{
		{Type: TransactionKindExpense, Category: "Transport", Amount: dec("200")},
		{Type: TransactionKindExpense, Category: "Stock", Amount: dec("800")},
		{Type: TransactionKindExpense, Category: "Transport", Amount: dec("700")},
		{Type: TransactionKindExpense, Amount: dec("50")},
		{Type: TransactionKindSale, Category: "Stock", Amount: dec("5000")},
	}

	got := ExpenseBreakdown(txs)

	if assert.Len(t, got, 3) {
		assert.Equal(t, "Transport", got[0].Category)
		assert.True(t, got[0].Amount.Equal(dec("900")))
		assert.Equal(t, "Stock", got[1].Category)
		assert.True(t, got[1].Amount.Equal(dec("800")))
		assert.Equal(t, "other", got[2].Category)
		assert.True(t, got[2].Amount.Equal(dec("50")))
	}
	assert.Empty(t, ExpenseBreakdown(nil))
}

func TestUnreadCount(t *testing.T) {
	notifications := []Notification{
		{ID: "1", Read: false},
		{ID: "2", Read: true},
		{ID: "3", Read: false},
	}
	assert.Equal(t, 2, UnreadCount(notifications))
	assert.Zero(t, UnreadCount(nil))
}
