package storage

import (
	"github.com/stephenafamo/bob"

	"github.com/hustler-ledger/ledger-server/internal/storage/sqlconfig"
)

type Reader struct {
	Accounts      *sqlconfig.AccountsTable
	Sessions      *sqlconfig.SessionsTable
	Businesses    *sqlconfig.BusinessesTable
	Transactions  *sqlconfig.TransactionsTable
	Budgets       *sqlconfig.BudgetsTable
	Notifications *sqlconfig.NotificationsTable
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{
		Accounts:      sqlconfig.NewAccountsTable(exec),
		Sessions:      sqlconfig.NewSessionsTable(exec),
		Businesses:    sqlconfig.NewBusinessesTable(exec),
		Transactions:  sqlconfig.NewTransactionsTable(exec),
		Budgets:       sqlconfig.NewBudgetsTable(exec),
		Notifications: sqlconfig.NewNotificationsTable(exec),
	}
}
